package web

import "github.com/pkg/errors"

// Error carries an http status alongside the underlying error so
// repositories can decide the response code where the failure happens.
type Error struct {
	Err    error
	Status int
}

func NewRequestError(err error, status int) error {
	return &Error{Err: err, Status: status}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return ""
	}
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsRequestError reports the *Error inside err, if any.
func IsRequestError(err error) (*Error, bool) {
	var webErr *Error
	if errors.As(err, &webErr) {
		return webErr, true
	}
	return nil, false
}
