package pagemeta

import (
	"errors"
	"fmt"
)

// General error codes.
const (
	EINTERNAL = "internal"
	EINVALID  = "invalid"
)

// Fetch error codes. They are reported verbatim in Result.Error.
const (
	ETIMEOUT             = "timeout"
	EUNKNOWNHOST         = "unknownhost"
	ECONNECT             = "connect"
	EMALFORMEDURL        = "malformedurl"
	ESSL                 = "ssl"
	EHTTPSTATUS          = "httpstatus"
	EUNSUPPORTEDMIMETYPE = "unsupportedmimetype"
	EIO                  = "io"
	ENAVIGATION          = "navigation"
)

// Error represents an application-specific error. Code is a short
// lowercase token; Message is human readable.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
