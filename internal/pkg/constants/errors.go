package constants

import (
	"errors"
	"net/http"
)

// CodedError is an error that knows which HTTP status it maps to.
type CodedError struct {
	msg  string
	code int
}

func NewCodedError(msg string, code int) *CodedError {
	return &CodedError{msg: msg, code: code}
}

func (e *CodedError) Error() string {
	return e.msg
}

func (e *CodedError) Code() int {
	return e.code
}

var (
	ErrDBNotFound        = NewCodedError("not found", http.StatusNotFound)
	ErrUnauthorized      = NewCodedError("unauthorized", http.StatusUnauthorized)
	ErrMissingAuthCookie = NewCodedError("missing session cookie", http.StatusUnauthorized)
	ErrSessionNotFound   = NewCodedError("session not found", http.StatusNotFound)
	ErrUnsupportedYear   = NewCodedError("unsupported year", http.StatusBadRequest)
	ErrBadTrigger        = NewCodedError("unknown trigger", http.StatusBadRequest)
)

// ErrEmptyDataset is returned by loaders that produced no region records.
var ErrEmptyDataset = errors.New("dataset has no region records")
