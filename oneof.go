package jsondec

import "github.com/jsondec/jsondec/jsonv"

// OneOf tries each alternative strictly left to right against the same
// value, returning the first success without attempting the rest. When
// every alternative fails, the failures are flattened — a OneOfError among
// them contributes its leaves rather than nesting — into a single
// OneOfError preserving attempt order.
func OneOf[T any](first Decoder[T], rest ...Decoder[T]) Decoder[T] {
	return func(v jsonv.Value) (T, error) {
		t, err := first(v)
		if err == nil {
			return t, nil
		}
		errs := flattenInto(nil, asDecoding(err, v))
		for _, d := range rest {
			t, err = d(v)
			if err == nil {
				return t, nil
			}
			errs = flattenInto(errs, asDecoding(err, v))
		}
		var zero T
		return zero, &OneOfError{Errors: errs}
	}
}

func flattenInto(dst []DecodingError, err DecodingError) []DecodingError {
	if oe, ok := err.(*OneOfError); ok {
		return append(dst, oe.Errors...)
	}
	return append(dst, err)
}

// Nullable decodes either the wrapped decoder's value (Some) or JSON null
// (None). A non-null value rejected by d produces a two-leaf OneOfError
// holding d's failure and "expected null".
func Nullable[T any](d Decoder[T]) Decoder[Option[T]] {
	return OneOf(Map(d, Some[T]), Null[Option[T]]())
}

// NullableOr is Nullable with the null branch yielding defaultValue
// directly.
func NullableOr[T any](d Decoder[T], defaultValue T) Decoder[T] {
	return OneOf(d, Map(Null[T](), func(T) T { return defaultValue }))
}
