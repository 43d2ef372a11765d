package jsonmodels

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic error handling.
// Use errors.Is() to check for these error types.
var (
	// ErrInvalidInput indicates FromEntity was given a non-object root value.
	ErrInvalidInput = errors.New("invalid input entity")

	// ErrTypeMismatch indicates a stored or entity value had the wrong shape
	// for its field's conversion.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrNotModel indicates a type does not embed Model.
	ErrNotModel = errors.New("not a model type")

	// ErrUnsupportedValue indicates a Go value has no Value representation.
	ErrUnsupportedValue = errors.New("unsupported value")

	// ErrUnmarshal indicates the codec failed to unmarshal input data.
	ErrUnmarshal = errors.New("unmarshal failed")

	// ErrMarshal indicates the codec failed to marshal output data.
	ErrMarshal = errors.New("marshal failed")
)

// ConversionError represents a failure while converting a field between its
// stored and entity representations. It wraps a sentinel error with context
// about which model and field failed.
type ConversionError struct {
	Err   error  // Underlying sentinel error (ErrTypeMismatch, etc.)
	Model string // Model type name
	Field string // Internal key of the field that failed
	Cause error  // Original error from a nested conversion, if any
}

func (e *ConversionError) Error() string {
	switch {
	case e.Field != "" && e.Cause != nil:
		return fmt.Sprintf("%s: field %s of %s: %v", e.Err.Error(), e.Field, e.Model, e.Cause)
	case e.Field != "":
		return fmt.Sprintf("%s: field %s of %s", e.Err.Error(), e.Field, e.Model)
	case e.Cause != nil:
		return fmt.Sprintf("%s: %s: %v", e.Err.Error(), e.Model, e.Cause)
	default:
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Model)
	}
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}

// CodecError represents a marshal/unmarshal error.
type CodecError struct {
	Err   error // Underlying sentinel error (ErrMarshal, ErrUnmarshal)
	Cause error // Original error from the codec
}

func (e *CodecError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Err.Error(), e.Cause)
	}
	return e.Err.Error()
}

func (e *CodecError) Unwrap() error {
	return e.Err
}

// newConversionError creates a ConversionError with model and field context.
func newConversionError(sentinel error, model, field string, cause error) error {
	return &ConversionError{
		Err:   sentinel,
		Model: model,
		Field: field,
		Cause: cause,
	}
}

// newCodecError creates a CodecError for marshal/unmarshal failures.
func newCodecError(sentinel error, cause error) error {
	return &CodecError{
		Err:   sentinel,
		Cause: cause,
	}
}
