package strictschema

import (
	"github.com/strictschema/strictschema/i18n"
)

// PrimitiveKind enumerates the terminal schema types a field may resolve to.
type PrimitiveKind string

const (
	PrimitiveString  PrimitiveKind = "string"
	PrimitiveInteger PrimitiveKind = "integer"
	PrimitiveNumber  PrimitiveKind = "number"
	PrimitiveBoolean PrimitiveKind = "boolean"
)

type descKind int

const (
	descPrimitive descKind = iota
	descArray
	descOptional
	descReference
)

// TypeDescriptor is the abstract shape of a declared field type: a primitive,
// an array of another descriptor, an optional wrapper, or a named reference
// to an independently declared type. References are resolved lazily at
// materialization time, never at declaration time.
type TypeDescriptor struct {
	kind descKind
	prim PrimitiveKind
	elem *TypeDescriptor
	ref  string
}

// Primitive returns a descriptor for a terminal primitive kind.
func Primitive(kind PrimitiveKind) TypeDescriptor {
	return TypeDescriptor{kind: descPrimitive, prim: kind}
}

// ArrayOf returns a descriptor for an array of elem.
func ArrayOf(elem TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{kind: descArray, elem: &elem}
}

// OptionalOf returns a descriptor for a nullable inner. A field declared with
// an optional descriptor is never required.
func OptionalOf(inner TypeDescriptor) TypeDescriptor {
	return TypeDescriptor{kind: descOptional, elem: &inner}
}

// ReferenceTo returns a descriptor naming another declared type. The name is
// looked up in the Registry when a document using it is materialized.
func ReferenceTo(name string) TypeDescriptor {
	return TypeDescriptor{kind: descReference, ref: name}
}

// IsOptional reports whether the descriptor is an optional wrapper.
func (d TypeDescriptor) IsOptional() bool { return d.kind == descOptional }

// Reference returns the referenced type name when the descriptor terminates
// in a reference, unwrapping optional and array wrappers.
func (d TypeDescriptor) Reference() (string, bool) {
	switch d.kind {
	case descReference:
		return d.ref, true
	case descArray, descOptional:
		return d.elem.Reference()
	default:
		return "", false
	}
}

// FieldAttributes carries the declaration-time annotations of a field or
// variant. Immutable once extracted.
type FieldAttributes struct {
	Description string
	Rename      string
	Skip        bool
}

// FieldDescriptor is one struct field after attribute resolution.
// Required is always false for skipped fields and optional-typed fields.
type FieldDescriptor struct {
	Name       string
	Attributes FieldAttributes
	Type       TypeDescriptor
	Required   bool
}

// Key returns the emitted JSON key: the rename override when present,
// the declared name otherwise.
func (f FieldDescriptor) Key() string {
	if f.Attributes.Rename != "" {
		return f.Attributes.Rename
	}
	return f.Name
}

// VariantDescriptor is one enum variant after attribute resolution.
// Discriminant is the explicit integer value, present only for numeric-capable
// enums. HasPayload marks a non-unit declaration; such variants are rejected.
type VariantDescriptor struct {
	Name         string
	Attributes   FieldAttributes
	Discriminant *int64
	HasPayload   bool
}

// Key returns the emitted variant name: the rename override when present,
// the declared identifier otherwise.
func (v VariantDescriptor) Key() string {
	if v.Attributes.Rename != "" {
		return v.Attributes.Rename
	}
	return v.Name
}

// IntRepr is the fixed-width-integer representation marker required for
// numeric enums. The zero value means no marker was declared.
type IntRepr string

const (
	ReprNone IntRepr = ""
	ReprI8   IntRepr = "i8"
	ReprI16  IntRepr = "i16"
	ReprI32  IntRepr = "i32"
	ReprI64  IntRepr = "i64"
	ReprU8   IntRepr = "u8"
	ReprU16  IntRepr = "u16"
	ReprU32  IntRepr = "u32"
	ReprU64  IntRepr = "u64"
)

// ParseIntRepr maps a representation marker spelling to its IntRepr.
func ParseIntRepr(s string) (IntRepr, bool) {
	switch IntRepr(s) {
	case ReprI8, ReprI16, ReprI32, ReprI64, ReprU8, ReprU16, ReprU32, ReprU64:
		return IntRepr(s), true
	case ReprNone:
		return ReprNone, true
	default:
		return ReprNone, false
	}
}

// TypeKind discriminates TypeDefinition variants.
type TypeKind int

const (
	KindStruct TypeKind = iota
	KindEnum
)

// TypeDefinition is one user-declared type. It is created once at
// declaration-processing time and immutable thereafter; every schema request
// reuses the same definition.
type TypeDefinition struct {
	kind        TypeKind
	name        string
	description string
	fields      []FieldDescriptor
	variants    []VariantDescriptor
	repr        IntRepr
	numeric     bool
}

// Name returns the declared type name.
func (d *TypeDefinition) Name() string { return d.name }

// Kind returns the definition kind.
func (d *TypeDefinition) Kind() TypeKind { return d.kind }

// Description returns the declared type-level description, empty when absent.
func (d *TypeDefinition) Description() string { return d.description }

// Fields returns the ordered field list of a struct definition.
func (d *TypeDefinition) Fields() []FieldDescriptor { return d.fields }

// Variants returns the ordered variant list of an enum definition.
func (d *TypeDefinition) Variants() []VariantDescriptor { return d.variants }

// NumericCapable reports whether an enum definition renders as a numeric
// schema: every variant unit-shaped with an explicit discriminant, and a
// representation marker declared.
func (d *TypeDefinition) NumericCapable() bool { return d.numeric }

// NewStruct validates an ordered field list and returns an immutable struct
// definition. Duplicate emitted keys and descriptions on reference-typed
// fields are rejected.
func NewStruct(name, description string, fields []FieldDescriptor) (*TypeDefinition, error) {
	// Work on a copy; the caller's slice stays untouched either way.
	fields = append([]FieldDescriptor(nil), fields...)
	var iss Issues
	seen := make(map[string]struct{}, len(fields))
	for i := range fields {
		f := &fields[i]
		path := "/" + name + "/fields/" + f.Name
		if f.Attributes.Skip {
			f.Required = false
			continue
		}
		if _, dup := seen[f.Key()]; dup {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeDuplicateField, Message: i18n.T(CodeDuplicateField, nil), Hint: "emitted key: '" + f.Key() + "'"})
		}
		seen[f.Key()] = struct{}{}
		if _, isRef := f.Type.Reference(); isRef && f.Attributes.Description != "" {
			// The referenced type owns its description; the outer assembler
			// cannot graft one onto a fragment it did not construct.
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeMisplacedDescription, Message: i18n.T(CodeMisplacedDescription, nil), Hint: "move the description onto the referenced type"})
		}
		f.Required = !f.Type.IsOptional()
	}
	if iss != nil {
		return nil, iss
	}
	return &TypeDefinition{
		kind:        KindStruct,
		name:        name,
		description: description,
		fields:      fields,
	}, nil
}

// NewEnum validates an ordered variant list and returns an immutable enum
// definition. The numeric representation is selected only when every variant
// is unit-shaped with an explicit discriminant and repr carries a marker;
// discriminants without a marker are rejected rather than silently decaying
// to a schema the paired decoder cannot consume.
func NewEnum(name, description string, variants []VariantDescriptor, repr IntRepr) (*TypeDefinition, error) {
	var iss Issues
	live := 0
	allDiscriminants := true
	anyDiscriminant := false
	for _, v := range variants {
		path := "/" + name + "/variants/" + v.Name
		if v.HasPayload {
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeNonUnitVariant, Message: i18n.T(CodeNonUnitVariant, nil)})
			continue
		}
		if v.Attributes.Skip {
			continue
		}
		if v.Attributes.Description != "" {
			// Symmetric with the struct-field rule: the dialect has no slot
			// for per-variant documentation.
			iss = AppendIssues(iss, Issue{Path: path, Code: CodeMisplacedDescription, Message: i18n.T(CodeMisplacedDescription, nil), Hint: "move the description onto the enum type"})
		}
		live++
		if v.Discriminant != nil {
			anyDiscriminant = true
		} else {
			allDiscriminants = false
		}
	}
	if live == 0 {
		iss = AppendIssues(iss, Issue{Path: "/" + name, Code: CodeEmptyEnum, Message: i18n.T(CodeEmptyEnum, nil)})
	}
	if anyDiscriminant && repr == ReprNone {
		iss = AppendIssues(iss, Issue{Path: "/" + name, Code: CodeNumericWithoutRepresentation, Message: i18n.T(CodeNumericWithoutRepresentation, nil), Hint: "declare an integer representation marker (for example i32)"})
	}
	if iss != nil {
		return nil, iss
	}
	return &TypeDefinition{
		kind:        KindEnum,
		name:        name,
		description: description,
		variants:    variants,
		repr:        repr,
		numeric:     repr != ReprNone && live > 0 && allDiscriminants && anyDiscriminant,
	}, nil
}
