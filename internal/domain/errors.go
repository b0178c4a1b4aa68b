package domain

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned by host stores when the requested entity does not
// exist. Any other error is a lookup failure, not an absence.
var ErrNotFound = errors.New("not found")

// ErrNoMandate means the record intends no direct debit (no frequency unit).
var ErrNoMandate = errors.New("no SDD specified, no mandate created")

// ValidationCode identifies why mandate extraction failed.
type ValidationCode string

const (
	MissingAmount        ValidationCode = "MissingAmount"
	MissingReference     ValidationCode = "MissingReference"
	UnknownFrequencyUnit ValidationCode = "UnknownFrequencyUnit"
	MissingIBAN          ValidationCode = "MissingIBAN"
	MissingBIC           ValidationCode = "MissingBIC"
)

// ValidationError is a typed mandate validation failure.
type ValidationError struct {
	Code     ValidationCode
	Severity Severity
	Title    string
	Message  string
	Err      error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// IsValidation reports whether err carries the given validation code.
func IsValidation(err error, code ValidationCode) bool {
	var ve *ValidationError
	return errors.As(err, &ve) && ve.Code == code
}
