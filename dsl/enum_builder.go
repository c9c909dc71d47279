package dsl

import (
	"strings"

	strictschema "github.com/strictschema/strictschema"
)

// EnumBuilder accumulates an ordered variant list for an enum definition.
type EnumBuilder struct {
	name     string
	doc      []string
	repr     strictschema.IntRepr
	variants []variantDecl
}

type variantDecl struct {
	name         string
	doc          []string
	attrs        strictschema.FieldAttributes
	discriminant *int64
	payload      bool
}

type variantStep struct {
	b *EnumBuilder
}

// Enum creates a new enum declaration builder.
func Enum(name string) *EnumBuilder {
	return &EnumBuilder{name: name}
}

// Doc appends a documentation line to the type-level description.
func (b *EnumBuilder) Doc(line string) *EnumBuilder {
	b.doc = append(b.doc, strings.TrimSpace(line))
	return b
}

// Repr declares the fixed-width-integer representation marker that opts the
// enum into the numeric schema form.
func (b *EnumBuilder) Repr(r strictschema.IntRepr) *EnumBuilder {
	b.repr = r
	return b
}

// Variant appends a unit variant, in declaration order.
func (b *EnumBuilder) Variant(name string) *variantStep {
	b.variants = append(b.variants, variantDecl{name: name})
	return &variantStep{b: b}
}

// Doc attaches documentation to the current variant. Per-variant descriptions
// are not representable in the dialect; Build rejects them.
func (v *variantStep) Doc(line string) *variantStep {
	d := v.current()
	d.doc = append(d.doc, strings.TrimSpace(line))
	return v
}

// Rename overrides the emitted variant name.
func (v *variantStep) Rename(name string) *variantStep {
	v.current().attrs.Rename = name
	return v
}

// Skip removes the current variant from the emitted enum list.
func (v *variantStep) Skip() *variantStep {
	v.current().attrs.Skip = true
	return v
}

// Discriminant assigns the explicit integer value of the current variant.
func (v *variantStep) Discriminant(value int64) *variantStep {
	d := v.current()
	d.discriminant = &value
	return v
}

// Payload marks the current variant as carrying data. Such variants are
// rejected at Build; the marker exists so loaders can surface the error
// uniformly.
func (v *variantStep) Payload() *variantStep {
	v.current().payload = true
	return v
}

func (v *variantStep) current() *variantDecl { return &v.b.variants[len(v.b.variants)-1] }

// Variant continues the builder with the next variant.
func (v *variantStep) Variant(name string) *variantStep { return v.b.Variant(name) }

// Repr continues the builder with the representation marker.
func (v *variantStep) Repr(r strictschema.IntRepr) *EnumBuilder { return v.b.Repr(r) }

// Build finishes the declaration via the builder.
func (v *variantStep) Build() (*strictschema.TypeDefinition, error) { return v.b.Build() }

// MustBuild finishes the declaration via the builder, panicking on error.
func (v *variantStep) MustBuild() *strictschema.TypeDefinition { return v.b.MustBuild() }

// Build validates the declaration and returns the immutable definition.
func (b *EnumBuilder) Build() (*strictschema.TypeDefinition, error) {
	variants := make([]strictschema.VariantDescriptor, 0, len(b.variants))
	for _, d := range b.variants {
		attrs := d.attrs
		attrs.Description = joinDoc(d.doc)
		variants = append(variants, strictschema.VariantDescriptor{
			Name:         d.name,
			Attributes:   attrs,
			Discriminant: d.discriminant,
			HasPayload:   d.payload,
		})
	}
	return strictschema.NewEnum(b.name, joinDoc(b.doc), variants, b.repr)
}

// MustBuild is like Build but panics on error.
func (b *EnumBuilder) MustBuild() *strictschema.TypeDefinition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}
