package listing

import (
	"github.com/ezrec/mipsasm/translate"
)

var f = translate.From

// ErrStyleUnknown is an output style name that is not recognized.
type ErrStyleUnknown string

func (err ErrStyleUnknown) Error() string {
	return f("unknown format '%v', use 'full', 'pc', 'clean' or 'bin'", string(err))
}

// ErrWordInvalid is a listing line that does not hold a single 8 digit hex word.
type ErrWordInvalid struct {
	LineNo int
	Text   string
}

func (err *ErrWordInvalid) Error() string {
	return f("line %d '%v' is not a hex word", err.LineNo, err.Text)
}
