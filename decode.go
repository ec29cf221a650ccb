package jsondec

import "github.com/jsondec/jsondec/jsonv"

// Decoder attempts to produce a typed value from an untyped JSON node.
// A Decoder is a pure function with no captured mutable state: the same
// decoder may be applied repeatedly and from multiple goroutines, and
// decoding the same tree twice yields equal results. On failure the error is
// always a DecodingError.
type Decoder[T any] func(jsonv.Value) (T, error)

// Decode applies the decoder to v.
func (d Decoder[T]) Decode(v jsonv.Value) (T, error) { return d(v) }

// Map transforms a decoder's success value with f. Failures pass through
// untouched and f is never invoked on them, so the path wrapping added by
// outer combinators stays intact.
func Map[T, R any](d Decoder[T], f func(T) R) Decoder[R] {
	return func(v jsonv.Value) (R, error) {
		t, err := d(v)
		if err != nil {
			var zero R
			return zero, err
		}
		return f(t), nil
	}
}

// MapErr is Map for transforms that can themselves fail. An error returned
// by f that is not already a DecodingError is intercepted here and attached
// to the node being decoded as a Failure, keeping the structured-error
// contract intact for decoder authors.
func MapErr[T, R any](d Decoder[T], f func(T) (R, error)) Decoder[R] {
	return func(v jsonv.Value) (R, error) {
		t, err := d(v)
		if err != nil {
			var zero R
			return zero, err
		}
		r, err := f(t)
		if err != nil {
			var zero R
			return zero, asDecoding(err, v)
		}
		return r, nil
	}
}

// Of returns the decoder unchanged. The widening it performed in the source
// material is a no-op under Go's invariant generics; it remains for explicit
// call-site symmetry. Use Map with a conversion to actually change the
// result type.
func Of[T any](d Decoder[T]) Decoder[T] { return d }
