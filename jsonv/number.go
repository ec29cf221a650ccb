package jsonv

import (
	"math"
	"math/big"
	"strconv"
)

// Number is a JSON number. The literal text is kept verbatim so nothing is
// lost between parse and write; numeric queries materialize a big.Rat per
// call rather than caching it, keeping Number values free of mutable state.
type Number struct {
	text string
}

func (*Number) Kind() Kind { return KindNumber }
func (*Number) value()     {}

// Num wraps a JSON number literal. The text must be a valid JSON number
// (the parser only ever produces valid literals); numeric queries on an
// invalid literal report non-integral / non-convertible.
func Num(text string) *Number { return &Number{text: text} }

// Int wraps an int64 as a Number.
func Int(v int64) *Number { return &Number{text: strconv.FormatInt(v, 10)} }

// Float wraps a float64 as a Number using the shortest round-trip form.
func Float(v float64) *Number { return &Number{text: strconv.FormatFloat(v, 'g', -1, 64)} }

// String returns the literal text.
func (n *Number) String() string { return n.text }

func (n *Number) rat() (*big.Rat, bool) {
	r, ok := new(big.Rat).SetString(n.text)
	if !ok {
		return nil, false
	}
	return r, true
}

// IsIntegral reports whether the number has no fractional part. The literal
// form does not matter: "2.0" and "2e0" are integral, "3.5" is not.
func (n *Number) IsIntegral() bool {
	r, ok := n.rat()
	return ok && r.IsInt()
}

// Int64 converts to int64 exactly. The second result is false when the
// number has a fractional part or does not fit in 64 bits.
func (n *Number) Int64() (int64, bool) {
	r, ok := n.rat()
	if !ok || !r.IsInt() {
		return 0, false
	}
	num := r.Num()
	if !num.IsInt64() {
		return 0, false
	}
	return num.Int64(), true
}

// Float64 converts to float64, possibly losing precision. Values beyond the
// float64 range saturate to ±Inf.
func (n *Number) Float64() float64 {
	r, ok := n.rat()
	if !ok {
		return math.NaN()
	}
	f, _ := r.Float64()
	return f
}

// Cmp compares two numbers by value, returning -1, 0 or +1. An invalid
// literal compares by text as a last resort.
func (n *Number) Cmp(other *Number) int {
	a, aok := n.rat()
	b, bok := other.rat()
	if !aok || !bok {
		switch {
		case n.text == other.text:
			return 0
		case n.text < other.text:
			return -1
		default:
			return 1
		}
	}
	return a.Cmp(b)
}
