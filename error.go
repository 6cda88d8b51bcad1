package newsclip

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// These are meant to be generic enough to be meaningful to an API consumer
// while still mapping cleanly onto the outcomes of the analysis pipeline.
const (
	ECONFLICT    = "conflict"    // action cannot be performed
	EEMPTY       = "empty"       // extraction produced no usable text
	EINTERNAL    = "internal"    // internal error (incl. persistence)
	EINVALID     = "invalid"     // validation failed
	ENORULE      = "no_rule"     // no scraping rule matched the source
	ENOTFOUND    = "not_found"   // entity does not exist
	EUNAVAILABLE = "unavailable" // page could not be fetched
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("newsclip error: code=%s message=%s", e.Code, e.Message)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// Errorf is a helper to construct an Error with formatting.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}
