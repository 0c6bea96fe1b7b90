package gp

import "fmt"

// ErrInvalidModel indicates a model artifact that failed schema validation,
// decoding, or the structural checks that run after decoding.
type ErrInvalidModel struct {
	Err error
}

func (e *ErrInvalidModel) Error() string {
	return fmt.Sprintf("invalid model artifact: %v", e.Err)
}

func (e *ErrInvalidModel) Unwrap() error { return e.Err }

// ErrFormatVersion indicates an artifact written by an incompatible major
// version of the format.
type ErrFormatVersion struct {
	Found string
}

func (e *ErrFormatVersion) Error() string {
	return fmt.Sprintf("unsupported model format %s (this build reads %s)", e.Found, FormatVersion)
}
