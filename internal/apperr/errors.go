package apperr

import "fmt"

type ValidationError struct {
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

// SizeError reports a requested cloud size larger than the number of distinct words.
type SizeError struct {
	Requested  int
	Vocabulary int
}

func (e *SizeError) Error() string {
	return fmt.Sprintf("N cannot exceed vocabulary size: requested %d words, input has %d distinct words", e.Requested, e.Vocabulary)
}

func NewSize(requested, vocabulary int) *SizeError {
	return &SizeError{Requested: requested, Vocabulary: vocabulary}
}
