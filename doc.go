package strictschema

// Package strictschema compiles declared data types into strict JSON Schema
// documents for structured-output consumers.
//
// - Declare types with dsl.Struct/dsl.Enum (or extract them from Go structs
//   with StructOf), register them in a Registry, then materialize documents.
// - A stable error model via Issues (declaration path, code, message); every
//   failure is a construction-time error in the declaration, never a runtime
//   condition.
// - Output follows the strict dialect: root is always an object,
//   additionalProperties is always false, required is always explicit.
//
// Design policy:
// - Keep only public APIs in the root package; builders live under dsl/, the
//   document representation and serializer under jsonschema/, YAML
//   declarations under decl/, and the CLI under cmd/strictschema.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	reg := strictschema.NewRegistry()
//	reg.MustRegister(dsl.Enum("Category").
//		Variant("Question").Variant("Statement").Variant("Answer").
//		MustBuild())
//	reg.MustRegister(dsl.Struct("Reply").
//		Field("body", dsl.String()).
//		Field("category", dsl.Ref("Category")).
//		MustBuild())
//	reg.Freeze()
//
//	data, err := reg.RootDocumentJSON("Reply")
