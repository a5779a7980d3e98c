package errors

import (
	"fmt"

	"github.com/eaugeas/ordtree/logs"
)

const (
	// ErrCodeInvalidValue is used when a value given to the
	// command cannot be parsed into a tree element
	ErrCodeInvalidValue = 1001

	// ErrCodeInvalidOrder is used when the requested traversal
	// order is not one of in, pre, post or all
	ErrCodeInvalidOrder = 1002
)

// Error is returned when an operation cannot be carried
// out because of the input it was given
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// New creates an Error with a formatted description
func New(code int, format string, args ...interface{}) *Error {
	return &Error{ErrorCode: code, Description: fmt.Sprintf(format, args...)}
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

// Log implementation of logs.Loggable
func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}
