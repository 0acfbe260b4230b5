package models

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidFormat     = errors.New("invalid format")
	ErrEmptyQuestion     = errors.New("question cannot be empty")
	ErrBadRequest        = errors.New("bad request")
	ErrModelUnavailable  = errors.New("qa model unavailable")
	ErrCorpusUnavailable = errors.New("intent corpus is not loaded")
)

// NotFoundError is returned when a source file (intents corpus, QA context) does not exist.
type NotFoundError struct {
	Resource string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Resource)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

func NewNotFoundError(resource string) error {
	return &NotFoundError{Resource: resource}
}

// InvalidFormatError is returned when a source exists but its content is unusable:
// empty, unparseable, missing the required key, or holding malformed records.
type InvalidFormatError struct {
	Source string
	Reason string
}

func (e *InvalidFormatError) Error() string {
	if e.Source == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Source, e.Reason)
}

func (e *InvalidFormatError) Unwrap() error {
	return ErrInvalidFormat
}

func NewInvalidFormatError(source, reason string) error {
	return &InvalidFormatError{Source: source, Reason: reason}
}

// EmptyQuestionError is returned when a blank question reaches the resolver.
type EmptyQuestionError struct{}

func (e *EmptyQuestionError) Error() string {
	return "Question cannot be empty"
}

func (e *EmptyQuestionError) Unwrap() error {
	return ErrEmptyQuestion
}

func NewEmptyQuestionError() error {
	return &EmptyQuestionError{}
}
