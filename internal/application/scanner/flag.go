package scanner

import (
	"flag"
	"strings"
)

const (
	formatText     = "text"
	formatMarkdown = "md"
)

type cmdFlags struct {
	configPath string
	input      string
	format     string
	output     string
}

func readCMDFlags() (cmdFlags, error) {
	var (
		configPath string
		input      string
		format     string
		output     string
	)

	flag.StringVar(&configPath, "config", "", "path to yaml config file")
	flag.StringVar(&configPath, "c", "", "path to yaml config file")

	flag.StringVar(&input, "input", "", "file to parse instead of stdin")
	flag.StringVar(&input, "i", "", "file to parse instead of stdin")

	flag.StringVar(&format, "format", formatText, "summary format")
	flag.StringVar(&format, "fmt", formatText, "summary format")

	flag.StringVar(&output, "output", "", "file for summary output")
	flag.StringVar(&output, "o", "", "file for summary output")

	flag.Parse()

	if flag.NArg() != 0 {
		return cmdFlags{}, NewErrFlag("unexpected positional arguments")
	}

	format = strings.ToLower(format)
	if format != formatText && format != formatMarkdown {
		return cmdFlags{}, NewErrUnknownFormat(format)
	}

	return cmdFlags{
		configPath: configPath,
		input:      input,
		format:     format,
		output:     output,
	}, nil
}
