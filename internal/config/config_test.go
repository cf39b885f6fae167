package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readingscan/internal/config"
)

func createConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err, "config file must be created")

	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()

	assert.Equal(t, "Enter number followed by unit:", cfg.Prompt)
	assert.Equal(t, 1024, cfg.MaxLineBytes)
	assert.Equal(t, 5, cfg.Workers)
}

func TestLoad(t *testing.T) {
	tt := []struct {
		name    string
		content string
		want    config.Config
	}{
		{
			name:    "all fields set",
			content: "prompt: \"reading>\"\nmax_line_bytes: 64\nworkers: 2\n",
			want: config.Config{
				Prompt:       "reading>",
				MaxLineBytes: 64,
				Workers:      2,
			},
		},
		{
			name:    "omitted fields keep defaults",
			content: "prompt: \"reading>\"\n",
			want: config.Config{
				Prompt:       "reading>",
				MaxLineBytes: 1024,
				Workers:      5,
			},
		},
		{
			name:    "non-positive limits fall back to defaults",
			content: "max_line_bytes: -5\nworkers: 0\n",
			want:    config.Default(),
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			path := createConfigFile(t, tc.content)

			cfg, err := config.Load(path)
			require.NoError(t, err, "config must be loaded")

			assert.Equal(t, tc.want, cfg)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err, "missing file must be reported")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := createConfigFile(t, "prompt: [broken\n")

	_, err := config.Load(path)
	require.Error(t, err, "malformed yaml must be reported")
}
