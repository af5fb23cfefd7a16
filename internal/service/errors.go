package service

import "fmt"

// ErrorCode classifies service-boundary failures so callers can branch
// without string matching.
type ErrorCode string

const (
	ErrCodeStorage      ErrorCode = "storage"
	ErrCodeSourceFailed ErrorCode = "source_failed"
	ErrCodeBadRequest   ErrorCode = "bad_request"
)

// Error is a typed service error. It wraps the underlying cause when one
// exists.
type Error struct {
	Code ErrorCode
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newBadRequest(format string, args ...any) *Error {
	return &Error{Code: ErrCodeBadRequest, Msg: fmt.Sprintf(format, args...)}
}

func wrapStorage(msg string, err error) *Error {
	return &Error{Code: ErrCodeStorage, Msg: msg, Err: err}
}
