package jsondec_test

import (
	"testing"

	jsondec "github.com/jsondec/jsondec"
	"github.com/jsondec/jsondec/jsonv"
)

func TestOneOf_FirstSuccessShortCircuits(t *testing.T) {
	calls := 0
	second := jsondec.Decoder[int](func(v jsonv.Value) (int, error) {
		calls++
		return jsondec.Int().Decode(v)
	})
	v, err := jsondec.OneOf(jsondec.Int(), second).Decode(mustParse(t, `7`))
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got v=%d err=%v", v, err)
	}
	if calls != 0 {
		t.Fatalf("later alternatives must not run after a success")
	}
}

func TestOneOf_AggregatesAllFailuresInOrder(t *testing.T) {
	asInt := jsondec.Int()
	asString := jsondec.Map(jsondec.String(), func(s string) int { return len(s) })

	_, err := jsondec.OneOf(asInt, asString).Decode(mustParse(t, `true`))
	de, _ := jsondec.AsDecodingError(err)
	oe, ok := de.(*jsondec.OneOfError)
	if !ok {
		t.Fatalf("expected OneOfError, got %T", de)
	}
	if len(oe.Errors) != 2 {
		t.Fatalf("expected 2 aggregated failures, got %d", len(oe.Errors))
	}
	first, ok := oe.Errors[0].(*jsondec.Failure)
	if !ok || first.Message != "expected a number" {
		t.Fatalf("expected the number failure first, got %v", oe.Errors[0])
	}
	second, ok := oe.Errors[1].(*jsondec.Failure)
	if !ok || second.Message != "expected a string" {
		t.Fatalf("expected the string failure second, got %v", oe.Errors[1])
	}
}

func TestOneOf_FlattensNestedOneOf(t *testing.T) {
	fail := func(msg string) jsondec.Decoder[int] {
		return func(v jsonv.Value) (int, error) {
			return 0, &jsondec.Failure{Message: msg, Value: v}
		}
	}
	nested := jsondec.OneOf(fail("a"), fail("b"))
	_, err := jsondec.OneOf(nested, fail("c")).Decode(mustParse(t, `0`))
	de, _ := jsondec.AsDecodingError(err)
	oe, ok := de.(*jsondec.OneOfError)
	if !ok {
		t.Fatalf("expected OneOfError, got %T", de)
	}
	if len(oe.Errors) != 3 {
		t.Fatalf("expected 3 flattened leaves, got %d", len(oe.Errors))
	}
	for i, want := range []string{"a", "b", "c"} {
		if _, nestedAgain := oe.Errors[i].(*jsondec.OneOfError); nestedAgain {
			t.Fatalf("OneOfError must never nest")
		}
		f := oe.Errors[i].(*jsondec.Failure)
		if f.Message != want {
			t.Fatalf("leaf %d: expected %q, got %q", i, want, f.Message)
		}
	}
}

func TestNullable_ThreeOutcomes(t *testing.T) {
	dec := jsondec.Nullable(jsondec.Int())

	o, err := dec.Decode(mustParse(t, `null`))
	if err != nil || o.IsSome() {
		t.Fatalf("expected None on null, got v=%v err=%v", o, err)
	}

	o, err = dec.Decode(mustParse(t, `7`))
	if v, ok := o.Get(); err != nil || !ok || v != 7 {
		t.Fatalf("expected Some(7), got v=%v err=%v", o, err)
	}

	_, err = dec.Decode(mustParse(t, `"x"`))
	de, _ := jsondec.AsDecodingError(err)
	oe, ok := de.(*jsondec.OneOfError)
	if !ok || len(oe.Errors) != 2 {
		t.Fatalf("expected a two-leaf OneOfError, got %v", de)
	}
	if f := oe.Errors[0].(*jsondec.Failure); f.Message != "expected a number" {
		t.Fatalf("expected the inner failure first, got %q", f.Message)
	}
	if f := oe.Errors[1].(*jsondec.Failure); f.Message != "expected null" {
		t.Fatalf("expected the null failure second, got %q", f.Message)
	}
}

func TestNullableOr_Default(t *testing.T) {
	dec := jsondec.NullableOr(jsondec.Int(), 42)

	v, err := dec.Decode(mustParse(t, `null`))
	if err != nil || v != 42 {
		t.Fatalf("expected the default on null, got v=%d err=%v", v, err)
	}
	v, err = dec.Decode(mustParse(t, `7`))
	if err != nil || v != 7 {
		t.Fatalf("expected 7, got v=%d err=%v", v, err)
	}
	_, err = dec.Decode(mustParse(t, `"x"`))
	if de, _ := jsondec.AsDecodingError(err); de == nil {
		t.Fatalf("expected a DecodingError, got %v", err)
	}
}
