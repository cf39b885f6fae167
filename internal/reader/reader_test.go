package reader_test

import (
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"readingscan/internal/reader"
)

func readAll(t *testing.T, lr *reader.LineReader) []string {
	var lines []string

	for {
		line, err := lr.ReadLine()
		if errors.Is(err, io.EOF) {
			return lines
		}

		require.NoError(t, err, "line must be read")

		lines = append(lines, line)
	}
}

func TestReadLine(t *testing.T) {
	tt := []struct {
		name  string
		input string
		max   int
		lines []string
	}{
		{
			name:  "short lines",
			input: "234 E\nabc\n",
			max:   1024,
			lines: []string{"234 E", "abc"},
		},
		{
			name:  "over-bound line truncated at the bound",
			input: "0123456789ABCDEF\nshort\n",
			max:   8,
			lines: []string{"01234567", "short"},
		},
		{
			name:  "unterminated final line",
			input: "tail",
			max:   16,
			lines: []string{"tail"},
		},
		{
			name:  "crlf terminators trimmed",
			input: "234 E\r\n12 V\r\n",
			max:   1024,
			lines: []string{"234 E", "12 V"},
		},
		{
			name:  "empty lines preserved",
			input: "\n\n",
			max:   16,
			lines: []string{"", ""},
		},
		{
			name:  "empty input",
			input: "",
			max:   16,
			lines: nil,
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			lr := reader.New(strings.NewReader(tc.input), tc.max)

			assert.Equal(t, tc.lines, readAll(t, lr))
		})
	}
}

func TestReadLineStreamError(t *testing.T) {
	errBroken := errors.New("broken stream")

	lr := reader.New(iotest.ErrReader(errBroken), 16)

	_, err := lr.ReadLine()
	require.Error(t, err, "stream failure must surface")
	assert.ErrorIs(t, err, errBroken)
	assert.NotErrorIs(t, err, io.EOF)
}
