// Package jsondec provides:
//
// - Type-safe decoding of parsed JSON trees via composable Decoder values
// - Primitive decoders (String/Bool/Int/Int64/Float32/Float64/Null)
// - Structural combinators (Array/Object/Field/OptionalField/Index) that
//   annotate failures with their position in the tree
// - Alternation (OneOf/Nullable) that aggregates branch failures instead of
//   reporting only the first
// - A stable error model (FieldError/IndexError/OneOfError/Failure) with a
//   deterministic breadcrumb renderer
//
// Design policy:
// - Keep only public APIs in the root package; the JSON value tree lives in
//   jsonv/, ready-made domain decoders in codec/, and the CLI in cmd/jsondec.
// - Decoders are pure values: no state, no I/O, safe for concurrent use.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	v, err := jsonv.Parse(data)
//	dec := jsondec.Field("user", jsondec.Field("name", jsondec.String()))
//	name, err := dec.Decode(v)
//
//	if de, ok := jsondec.AsDecodingError(err); ok {
//	    fmt.Println(jsondec.Render(de))
//	}
package jsondec
