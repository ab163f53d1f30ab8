package availability

import (
	"errors"
	"fmt"
)

// Error codes for caller configuration and input mistakes. These surface
// immediately rather than silently defaulting; a malformed time treated as
// midnight is a bug factory.
const (
	CodeInvalidTimeFormat = "invalidTimeFormat"
	CodeInvalidPolicy     = "invalidPolicy"
	CodeInvalidWindow     = "invalidWindow"
	CodeInvalidDate       = "invalidDate"
)

// InputError is a rejected engine input.
type InputError struct {
	Code    string
	Message string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, msg string) error {
	return &InputError{Code: code, Message: msg}
}

// ErrorCode extracts the engine error code from err, or "" if err is not an
// engine input error.
func ErrorCode(err error) string {
	var ie *InputError
	if errors.As(err, &ie) {
		return ie.Code
	}
	return ""
}
