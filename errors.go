package jsondec

import (
	"errors"

	"github.com/jsondec/jsondec/i18n"
	"github.com/jsondec/jsondec/jsonv"
)

// Failure message codes, resolved through the i18n catalog when the error is
// built. The default catalog yields the exact English strings documented on
// each primitive and combinator.
const (
	CodeExpectedString   = "expected_string"
	CodeExpectedBoolean  = "expected_boolean"
	CodeExpectedNumber   = "expected_number"
	CodeExpectedIntegral = "expected_integral_number"
	CodeNotConvertible   = "number_not_convertible"
	CodeExpectedNull     = "expected_null"
	CodeExpectedArray    = "expected_array"
	CodeExpectedObject   = "expected_object"
	CodeMissingField     = "missing_field"
	CodeIndexOutOfBounds = "index_out_of_bounds"
)

// DecodingError is the closed family of decode failures. The concrete
// variants are *FieldError, *IndexError, *OneOfError and *Failure; nothing
// else implements it. Every variant renders its full breadcrumb message via
// Error().
type DecodingError interface {
	error
	decodingError()
}

// FieldError marks a failure that occurred while processing the object
// member Name. It always wraps exactly one inner error; the outermost
// wrapper corresponds to the outermost container visited.
type FieldError struct {
	Name string
	Err  DecodingError
}

func (e *FieldError) Error() string { return Render(e) }
func (e *FieldError) Unwrap() error { return e.Err }
func (*FieldError) decodingError()  {}

// IndexError marks a failure that occurred while processing the array
// element at Index.
type IndexError struct {
	Index int
	Err   DecodingError
}

func (e *IndexError) Error() string { return Render(e) }
func (e *IndexError) Unwrap() error { return e.Err }
func (*IndexError) decodingError()  {}

// OneOfError aggregates the failures of every alternative tried by OneOf,
// in attempt order. OneOf flattens its inputs, so Errors never contains
// another *OneOfError and is never empty when produced by OneOf.
type OneOfError struct {
	Errors []DecodingError
}

func (e *OneOfError) Error() string { return Render(e) }
func (*OneOfError) decodingError()  {}

// Failure is the terminal leaf: the value itself did not match an
// expectation. Message carries the human-readable reason; Cause is set
// instead when a foreign error was intercepted at a combinator boundary.
// Value is the exact node that was examined.
type Failure struct {
	Message string
	Cause   error
	Value   jsonv.Value
}

func (e *Failure) Error() string { return Render(e) }
func (e *Failure) Unwrap() error { return e.Cause }
func (*Failure) decodingError()  {}

// Reason returns the human-readable explanation, falling back to the
// intercepted cause when no message was set.
func (e *Failure) Reason() string {
	if e.Message == "" && e.Cause != nil {
		return e.Cause.Error()
	}
	return e.Message
}

// AsDecodingError extracts a DecodingError from err using errors.As.
func AsDecodingError(err error) (DecodingError, bool) {
	if err == nil {
		return nil, false
	}
	var de DecodingError
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

func atField(name string, err DecodingError) *FieldError {
	return &FieldError{Name: name, Err: err}
}

func atIndex(i int, err DecodingError) *IndexError {
	return &IndexError{Index: i, Err: err}
}

func fail(code string, data map[string]string, v jsonv.Value) *Failure {
	return &Failure{Message: i18n.T(code, data), Value: v}
}

// asDecoding converts an error crossing a combinator boundary into a
// DecodingError. Foreign errors become a Failure carrying the node that was
// being examined, so callers of the public combinators only ever observe
// structured failures.
func asDecoding(err error, v jsonv.Value) DecodingError {
	if de, ok := AsDecodingError(err); ok {
		return de
	}
	return &Failure{Cause: err, Value: v}
}
