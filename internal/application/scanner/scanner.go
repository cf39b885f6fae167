package scanner

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"

	"readingscan/internal/config"
	"readingscan/internal/domain"
	"readingscan/internal/parser"
	"readingscan/internal/reader"
)

func Start() error {
	flags, err := readCMDFlags()
	if err != nil {
		return fmt.Errorf("read flags: %w", err)
	}

	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level: slog.LevelWarn,
	})))

	cfg := config.Default()

	if flags.configPath != "" {
		cfg, err = config.Load(flags.configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
	}

	lineParser := parser.NewLineParser()

	var info domain.SessionInfo

	if flags.input != "" {
		f, err := os.Open(flags.input)
		if err != nil {
			return fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()

		info, err = lineParser.Parse(f, cfg.MaxLineBytes, cfg.Workers)
		if err != nil {
			return fmt.Errorf("parse file: %w", err)
		}
	} else {
		info, err = Run(cfg, lineParser, os.Stdin, os.Stdout)
		if err != nil {
			return fmt.Errorf("run session: %w", err)
		}
	}

	out := os.Stdout

	if flags.output != "" {
		f, err := os.OpenFile(flags.output, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open output file: %w", err)
		}
		defer f.Close()

		out = f
	}

	render(lineParser, flags.format, info, out)

	return nil
}

// Run drives the interactive loop: prompt, read one line, parse it,
// report the result, until the input is exhausted. Malformed lines are
// reported and skipped; only a failing stream returns an error.
func Run(
	cfg config.Config,
	lineParser *parser.LineParser,
	in io.Reader,
	out io.Writer,
) (domain.SessionInfo, error) {
	lineReader := reader.New(in, cfg.MaxLineBytes)
	session := parser.NewSession()

	for {
		fmt.Fprintln(out, cfg.Prompt)

		text, err := lineReader.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return domain.SessionInfo{}, fmt.Errorf("read line: %w", err)
		}

		res := lineParser.ParseLine(text)
		session.Record(res)

		if reading, ok := res.Reading(); ok {
			fmt.Fprintf(out, "parsed reading: magnitude=%g unit=%s\n", reading.Magnitude, reading.Unit)
		} else {
			fmt.Fprintln(out, "could not parse line, expected <number> <unit>")
		}
	}

	return session.Info(), nil
}

func render(lineParser *parser.LineParser, format string, info domain.SessionInfo, w io.Writer) {
	switch format {
	case formatMarkdown:
		lineParser.Markdown(info, w)
	default:
		lineParser.Text(info, w)
	}
}
