package jsonv

import "iter"

// Kind discriminates the variants of a JSON value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "boolean"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Value is a parsed JSON value. The variants are Null, Bool, String, *Number,
// Array and *Object; no other type implements Value. A Value must be treated
// as immutable once constructed — nothing in this module mutates one after
// handing it out, which is what makes concurrent decoding safe.
type Value interface {
	Kind() Kind
	value()
}

// Null is the JSON null value.
type Null struct{}

func (Null) Kind() Kind { return KindNull }
func (Null) value()     {}

// Bool is a JSON boolean.
type Bool bool

func (Bool) Kind() Kind { return KindBool }
func (Bool) value()     {}

// String is a JSON string.
type String string

func (String) Kind() Kind { return KindString }
func (String) value()     {}

// Array is an ordered sequence of JSON values.
type Array []Value

func (Array) Kind() Kind { return KindArray }
func (Array) value()     {}

// Object is a JSON object. Key insertion order is preserved; duplicate keys
// resolve last-wins, keeping the position of the first occurrence.
type Object struct {
	keys   []string
	values map[string]Value
}

func (*Object) Kind() Kind { return KindObject }
func (*Object) value()     {}

// NewObject returns an empty object.
func NewObject() *Object {
	return &Object{values: map[string]Value{}}
}

// Set stores a key/value pair. Intended for construction; an Object reachable
// from decoding must not be modified afterwards.
func (o *Object) Set(key string, v Value) {
	if _, ok := o.values[key]; !ok {
		o.keys = append(o.keys, key)
	}
	o.values[key] = v
}

// Get looks up the value stored under key.
func (o *Object) Get(key string) (Value, bool) {
	v, ok := o.values[key]
	return v, ok
}

// Len reports the number of members.
func (o *Object) Len() int { return len(o.keys) }

// Keys returns the member keys in insertion order. The slice is a copy.
func (o *Object) Keys() []string {
	out := make([]string, len(o.keys))
	copy(out, o.keys)
	return out
}

// All iterates over members in insertion order.
func (o *Object) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		for _, k := range o.keys {
			if !yield(k, o.values[k]) {
				return
			}
		}
	}
}

// Member is a key/value pair used by ObjectOf.
type Member struct {
	Key   string
	Value Value
}

// ---- constructors for building trees in code ----

// Str wraps a Go string.
func Str(s string) String { return String(s) }

// Boolean wraps a Go bool.
func Boolean(b bool) Bool { return Bool(b) }

// Arr builds an array from the given items.
func Arr(items ...Value) Array { return Array(items) }

// ObjectOf builds an object from the given members, in order.
func ObjectOf(members ...Member) *Object {
	o := NewObject()
	for _, m := range members {
		o.Set(m.Key, m.Value)
	}
	return o
}

// Equal reports deep structural equality. Numbers compare by numeric value,
// so Equal(Num("2.0"), Num("2")) is true.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch av := a.(type) {
	case Null:
		return true
	case Bool:
		return av == b.(Bool)
	case String:
		return av == b.(String)
	case *Number:
		return av.Cmp(b.(*Number)) == 0
	case Array:
		bv := b.(Array)
		if len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object:
		bv := b.(*Object)
		if len(av.keys) != len(bv.keys) {
			return false
		}
		for i, k := range av.keys {
			if bv.keys[i] != k {
				return false
			}
			if !Equal(av.values[k], bv.values[k]) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
