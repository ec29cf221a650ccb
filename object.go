package jsondec

import "github.com/jsondec/jsondec/jsonv"

// Object decodes every member of a JSON object with value, producing a map
// keyed by member name. Members are visited in insertion order and the
// first failing member aborts the decode, wrapped as a FieldError for its
// key. The result is an ordinary Go map; its own iteration order is
// unspecified.
func Object[T any](value Decoder[T]) Decoder[map[string]T] {
	return func(v jsonv.Value) (map[string]T, error) {
		obj, ok := v.(*jsonv.Object)
		if !ok {
			return nil, fail(CodeExpectedObject, nil, v)
		}
		out := make(map[string]T, obj.Len())
		for key, member := range obj.All() {
			t, err := value(member)
			if err != nil {
				return nil, atField(key, asDecoding(err, member))
			}
			out[key] = t
		}
		return out, nil
	}
}

// Field decodes the member stored under name. A missing member fails with
// FieldError(name, "no value for field"); a present member that fails value
// has its error wrapped the same way.
func Field[T any](name string, value Decoder[T]) Decoder[T] {
	return func(v jsonv.Value) (T, error) {
		var zero T
		obj, ok := v.(*jsonv.Object)
		if !ok {
			return zero, fail(CodeExpectedObject, nil, v)
		}
		member, ok := obj.Get(name)
		if !ok {
			return zero, atField(name, fail(CodeMissingField, nil, v))
		}
		t, err := value(member)
		if err != nil {
			return zero, atField(name, asDecoding(err, member))
		}
		return t, nil
	}
}

// OptionalFieldOr is Field with absence yielding defaultValue instead of an
// error. A member that is present but invalid still fails.
func OptionalFieldOr[T any](name string, value Decoder[T], defaultValue T) Decoder[T] {
	return func(v jsonv.Value) (T, error) {
		var zero T
		obj, ok := v.(*jsonv.Object)
		if !ok {
			return zero, fail(CodeExpectedObject, nil, v)
		}
		member, ok := obj.Get(name)
		if !ok {
			return defaultValue, nil
		}
		t, err := value(member)
		if err != nil {
			return zero, atField(name, asDecoding(err, member))
		}
		return t, nil
	}
}

// OptionalField is OptionalFieldOr with the default being None.
func OptionalField[T any](name string, value Decoder[T]) Decoder[Option[T]] {
	return OptionalFieldOr(name, Map(value, Some[T]), None[T]())
}

// OptionalNullableField distinguishes a missing member from an explicit
// null: both yield None, any other value must satisfy value.
func OptionalNullableField[T any](name string, value Decoder[T]) Decoder[Option[T]] {
	return OptionalFieldOr(name, Nullable(value), None[T]())
}

// OptionalNullableFieldOr maps both a missing member and an explicit null to
// defaultValue.
func OptionalNullableFieldOr[T any](name string, value Decoder[T], defaultValue T) Decoder[T] {
	return OptionalNullableFieldOrElse(name, value, defaultValue, defaultValue)
}

// OptionalNullableFieldOrElse separates the three member states: missing
// yields whenMissing, explicit null yields whenNull, anything else must
// satisfy value.
func OptionalNullableFieldOrElse[T any](name string, value Decoder[T], whenMissing, whenNull T) Decoder[T] {
	withNull := Map(Nullable(value), func(o Option[T]) T { return o.OrElse(whenNull) })
	return OptionalFieldOr(name, withNull, whenMissing)
}
