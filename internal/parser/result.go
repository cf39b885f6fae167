package parser

import "readingscan/internal/domain"

// Result is the outcome of parsing one line: either a full match with
// both fields extracted, or a failure.
type Result struct {
	reading domain.Reading
	ok      bool
}

func Success(reading domain.Reading) Result {
	return Result{
		reading: reading,
		ok:      true,
	}
}

func Failure() Result {
	return Result{}
}

func (r Result) OK() bool {
	return r.ok
}

// Reading returns the parsed reading. The reading is only meaningful
// when ok is true.
func (r Result) Reading() (domain.Reading, bool) {
	return r.reading, r.ok
}
