package models

import (
	"errors"
	"fmt"
)

type ErrorKind string

const (
	ErrKindTransport   ErrorKind = "TRANSPORT_ERROR"
	ErrKindDecode      ErrorKind = "DECODE_ERROR"
	ErrKindEmptyResult ErrorKind = "EMPTY_RESULT"
	ErrKindValidation  ErrorKind = "VALIDATION_ERROR"
)

// FlowError is returned by the story and random-prompt flows. Message is the
// text shown to the user; Cause keeps the underlying error for logs.
type FlowError struct {
	Kind    ErrorKind `json:"kind"`
	Message string    `json:"message"`
	Cause   error     `json:"-"`
}

func (e *FlowError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *FlowError) Unwrap() error {
	return e.Cause
}

func NewFlowError(kind ErrorKind, msg string, cause error) *FlowError {
	return &FlowError{Kind: kind, Message: msg, Cause: cause}
}

// KindOf returns the kind of a FlowError anywhere in err's chain, or "" if
// there is none.
func KindOf(err error) ErrorKind {
	var fe *FlowError
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return ""
}

// IsKind reports whether err carries a FlowError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
