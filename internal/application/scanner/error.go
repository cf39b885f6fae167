package scanner

import "fmt"

type ErrFlag struct {
	msg string
}

func NewErrFlag(msg string) ErrFlag {
	return ErrFlag{
		msg: msg,
	}
}

func (e ErrFlag) Error() string {
	return e.msg
}

type ErrUnknownFormat struct {
	format string
}

func NewErrUnknownFormat(format string) ErrUnknownFormat {
	return ErrUnknownFormat{
		format: format,
	}
}

func (e ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown output format %q", e.format)
}
