package jsondec

import (
	"math"

	"github.com/jsondec/jsondec/jsonv"
)

// String decodes a JSON string. Any other variant fails with
// "expected a string".
func String() Decoder[string] {
	return func(v jsonv.Value) (string, error) {
		s, ok := v.(jsonv.String)
		if !ok {
			return "", fail(CodeExpectedString, nil, v)
		}
		return string(s), nil
	}
}

// Bool decodes a JSON boolean.
func Bool() Decoder[bool] {
	return func(v jsonv.Value) (bool, error) {
		b, ok := v.(jsonv.Bool)
		if !ok {
			return false, fail(CodeExpectedBoolean, nil, v)
		}
		return bool(b), nil
	}
}

// Int decodes a JSON number with no fractional part that fits an int
// exactly. The checks run in order: number tag, integral-ness, width.
func Int() Decoder[int] {
	return func(v jsonv.Value) (int, error) {
		i, err := integral(v, "int")
		if err != nil {
			return 0, err
		}
		if i < math.MinInt || i > math.MaxInt {
			return 0, fail(CodeNotConvertible, map[string]string{"target": "int"}, v)
		}
		return int(i), nil
	}
}

// Int64 is Int for the full 64-bit width.
func Int64() Decoder[int64] {
	return func(v jsonv.Value) (int64, error) {
		return integral(v, "int64")
	}
}

func integral(v jsonv.Value, target string) (int64, error) {
	n, ok := v.(*jsonv.Number)
	if !ok {
		return 0, fail(CodeExpectedNumber, nil, v)
	}
	if !n.IsIntegral() {
		return 0, fail(CodeExpectedIntegral, nil, v)
	}
	i, ok := n.Int64()
	if !ok {
		return 0, fail(CodeNotConvertible, map[string]string{"target": target}, v)
	}
	return i, nil
}

// Float64 decodes any JSON number, narrowing lossily when needed. There is
// no range check.
func Float64() Decoder[float64] {
	return func(v jsonv.Value) (float64, error) {
		n, ok := v.(*jsonv.Number)
		if !ok {
			return 0, fail(CodeExpectedNumber, nil, v)
		}
		return n.Float64(), nil
	}
}

// Float32 is Float64 narrowed to float32.
func Float32() Decoder[float32] {
	return Map(Float64(), func(f float64) float32 { return float32(f) })
}

// Null succeeds only on JSON null, producing T's zero value. Anything else
// fails with "expected null".
func Null[T any]() Decoder[T] {
	return func(v jsonv.Value) (T, error) {
		var zero T
		if _, ok := v.(jsonv.Null); !ok {
			return zero, fail(CodeExpectedNull, nil, v)
		}
		return zero, nil
	}
}

// Raw decodes any JSON value as itself. It never fails; useful when a field
// must be captured for later, schema-free processing.
func Raw() Decoder[jsonv.Value] {
	return func(v jsonv.Value) (jsonv.Value, error) { return v, nil }
}
