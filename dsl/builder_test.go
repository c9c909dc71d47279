package dsl_test

import (
	"testing"

	strictschema "github.com/strictschema/strictschema"
	"github.com/strictschema/strictschema/dsl"
)

func TestStructBuilder_DeclarationOrderAndAttributes(t *testing.T) {
	def, err := dsl.Struct("Profile").
		Doc("A user profile.").
		Field("id", dsl.String()).
		Field("age", dsl.Optional(dsl.Integer())).
		Field("secret", dsl.String()).Skip().
		Field("display", dsl.String()).Rename("display_name").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if def.Kind() != strictschema.KindStruct || def.Name() != "Profile" {
		t.Fatalf("unexpected definition identity: %v %q", def.Kind(), def.Name())
	}
	if def.Description() != "A user profile." {
		t.Fatalf("description: %q", def.Description())
	}

	fields := def.Fields()
	if len(fields) != 4 {
		t.Fatalf("expected declaration order preserved, got %d fields", len(fields))
	}
	if !fields[0].Required {
		t.Fatal("plain field must be required")
	}
	if fields[1].Required {
		t.Fatal("optional field must not be required")
	}
	if fields[2].Required || !fields[2].Attributes.Skip {
		t.Fatal("skipped field must not be required")
	}
	if fields[3].Key() != "display_name" {
		t.Fatalf("rename not applied: %q", fields[3].Key())
	}
	if fields[3].Name != "display" {
		t.Fatal("rename must not change field identity")
	}
}

func TestEnumBuilder_NumericSelection(t *testing.T) {
	def, err := dsl.Enum("Score").Repr(strictschema.ReprI32).
		Variant("One").Discriminant(1).
		Variant("Two").Discriminant(2).
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !def.NumericCapable() {
		t.Fatal("expected numeric-capable enum")
	}

	// Without the marker the same variants cannot build at all.
	_, err = dsl.Enum("Score").
		Variant("One").Discriminant(1).
		Variant("Two").Discriminant(2).
		Build()
	if !strictschema.HasCode(err, strictschema.CodeNumericWithoutRepresentation) {
		t.Fatalf("expected numeric_without_representation, got %v", err)
	}
}

func TestEnumBuilder_SkipPreservesOrder(t *testing.T) {
	def, err := dsl.Enum("Category").
		Variant("A").
		Variant("B").Skip().
		Variant("C").
		Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	variants := def.Variants()
	if len(variants) != 3 || !variants[1].Attributes.Skip {
		t.Fatalf("variant list mutated: %+v", variants)
	}
}

func TestMustBuild_PanicsOnInvalidDeclaration(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic")
		}
	}()
	dsl.Enum("Empty").Variant("Only").Skip().MustBuild()
}
