package reader

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// LineReader yields newline-terminated lines from a stream, bounding
// every line to a fixed number of bytes.
type LineReader struct {
	r   *bufio.Reader
	max int
}

func New(r io.Reader, maxLineBytes int) *LineReader {
	return &LineReader{
		r:   bufio.NewReader(r),
		max: maxLineBytes,
	}
}

// ReadLine returns the next line without its line terminator. A line
// longer than the bound is truncated at the bound and the rest of the
// physical line is discarded, so the following call starts at the next
// line. A final unterminated line is returned as-is; the call after it
// reports io.EOF. io.EOF is the clean end-of-input signal, any other
// error means the stream itself failed.
func (lr *LineReader) ReadLine() (string, error) {
	buf := make([]byte, 0, lr.max)

	for {
		c, err := lr.r.ReadByte()
		if err == io.EOF {
			if len(buf) == 0 {
				return "", io.EOF
			}

			return string(buf), nil
		}

		if err != nil {
			return "", fmt.Errorf("read byte: %w", err)
		}

		if c == '\n' {
			return strings.TrimSuffix(string(buf), "\r"), nil
		}

		if len(buf) < lr.max {
			buf = append(buf, c)
		}
	}
}
