package jsondec

import "github.com/jsondec/jsondec/jsonv"

// Array decodes every element of a JSON array with item, in index order.
// The first failing element aborts the decode, wrapped as an IndexError for
// its position; later elements are not examined. Success preserves element
// order.
func Array[T any](item Decoder[T]) Decoder[[]T] {
	return func(v jsonv.Value) ([]T, error) {
		arr, ok := v.(jsonv.Array)
		if !ok {
			return nil, fail(CodeExpectedArray, nil, v)
		}
		out := make([]T, 0, len(arr))
		for i, elem := range arr {
			t, err := item(elem)
			if err != nil {
				return nil, atIndex(i, asDecoding(err, elem))
			}
			out = append(out, t)
		}
		return out, nil
	}
}

// Index decodes the element at position i. An out-of-bounds position fails
// with IndexError(i, "expected array index to be in bounds") carrying the
// whole array.
func Index[T any](i int, value Decoder[T]) Decoder[T] {
	return func(v jsonv.Value) (T, error) {
		var zero T
		arr, ok := v.(jsonv.Array)
		if !ok {
			return zero, fail(CodeExpectedArray, nil, v)
		}
		if i < 0 || i >= len(arr) {
			return zero, atIndex(i, fail(CodeIndexOutOfBounds, nil, v))
		}
		t, err := value(arr[i])
		if err != nil {
			return zero, atIndex(i, asDecoding(err, arr[i]))
		}
		return t, nil
	}
}
