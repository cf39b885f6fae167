package parser

import (
	"errors"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"readingscan/internal/domain"
	"readingscan/internal/reader"
)

const expectedFields = 2

// LineParser extracts a magnitude and a unit token from lines of the
// shape "<number> <unit>", e.g. "234 E".
type LineParser struct {
	format string
}

func NewLineParser() *LineParser {
	return &LineParser{
		format: "%g %s",
	}
}

// ParseLine matches one line against the format. Anything short of
// both fields matching is a failure; input past the unit token is
// ignored, matching sscanf semantics.
func (p *LineParser) ParseLine(text string) Result {
	var (
		magnitude float64
		unit      string
	)

	n, err := fmt.Sscanf(text, p.format, &magnitude, &unit)
	if err != nil || n < expectedFields {
		return Failure()
	}

	return Success(domain.NewReading(magnitude, unit))
}

func (p *LineParser) processLine(lines <-chan string, session *Session) error {
	for text := range lines {
		session.Record(p.ParseLine(text))
	}

	return nil
}

// Parse runs the whole stream through a pool of workers and returns
// the session summary. Malformed lines are counted, not fatal; only a
// failing stream aborts the parse.
func (p *LineParser) Parse(in io.Reader, maxLineBytes, workers int) (domain.SessionInfo, error) {
	if workers < 1 {
		workers = 1
	}

	session := NewSession()
	linesChan := make(chan string)

	eg := errgroup.Group{}

	eg.Go(func() error {
		defer close(linesChan)

		lineReader := reader.New(in, maxLineBytes)

		for number := 1; ; number++ {
			text, err := lineReader.ReadLine()
			if errors.Is(err, io.EOF) {
				return nil
			}

			if err != nil {
				return fmt.Errorf("read line #%d: %w", number, err)
			}

			linesChan <- text
		}
	})

	for i := 0; i < workers; i++ {
		eg.Go(func() error {
			return p.processLine(linesChan, session)
		})
	}

	if err := eg.Wait(); err != nil {
		return domain.SessionInfo{}, fmt.Errorf("eg.Wait(): %w", err)
	}

	return session.Info(), nil
}
