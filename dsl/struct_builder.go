package dsl

import (
	"strings"

	strictschema "github.com/strictschema/strictschema"
)

// StructBuilder accumulates an ordered field list for a struct definition.
type StructBuilder struct {
	name   string
	doc    []string
	fields []fieldDecl
}

type fieldDecl struct {
	name  string
	typ   strictschema.TypeDescriptor
	doc   []string
	attrs strictschema.FieldAttributes
}

type fieldStep struct {
	b *StructBuilder
}

// Struct creates a new struct declaration builder.
func Struct(name string) *StructBuilder {
	return &StructBuilder{name: name}
}

// Doc appends a documentation line to the type-level description.
// Consecutive lines are trimmed and joined with a single space.
func (b *StructBuilder) Doc(line string) *StructBuilder {
	b.doc = append(b.doc, strings.TrimSpace(line))
	return b
}

// Field appends a field with its type descriptor, in declaration order.
func (b *StructBuilder) Field(name string, t strictschema.TypeDescriptor) *fieldStep {
	b.fields = append(b.fields, fieldDecl{name: name, typ: t})
	return &fieldStep{b: b}
}

// Doc appends a documentation line to the current field.
func (f *fieldStep) Doc(line string) *fieldStep {
	d := f.current()
	d.doc = append(d.doc, strings.TrimSpace(line))
	return f
}

// Rename overrides the emitted JSON key of the current field. Field identity
// and type resolution keep using the declared name.
func (f *fieldStep) Rename(key string) *fieldStep {
	f.current().attrs.Rename = key
	return f
}

// Skip removes the current field from every downstream structure, as if it
// had never been declared.
func (f *fieldStep) Skip() *fieldStep {
	f.current().attrs.Skip = true
	return f
}

func (f *fieldStep) current() *fieldDecl { return &f.b.fields[len(f.b.fields)-1] }

// Field continues the builder with the next field.
func (f *fieldStep) Field(name string, t strictschema.TypeDescriptor) *fieldStep {
	return f.b.Field(name, t)
}

// Build finishes the declaration via the builder.
func (f *fieldStep) Build() (*strictschema.TypeDefinition, error) { return f.b.Build() }

// MustBuild finishes the declaration via the builder, panicking on error.
func (f *fieldStep) MustBuild() *strictschema.TypeDefinition { return f.b.MustBuild() }

// Build validates the declaration and returns the immutable definition.
func (b *StructBuilder) Build() (*strictschema.TypeDefinition, error) {
	fields := make([]strictschema.FieldDescriptor, 0, len(b.fields))
	for _, d := range b.fields {
		attrs := d.attrs
		attrs.Description = joinDoc(d.doc)
		fields = append(fields, strictschema.FieldDescriptor{
			Name:       d.name,
			Attributes: attrs,
			Type:       d.typ,
		})
	}
	return strictschema.NewStruct(b.name, joinDoc(b.doc), fields)
}

// MustBuild is like Build but panics on error.
func (b *StructBuilder) MustBuild() *strictschema.TypeDefinition {
	def, err := b.Build()
	if err != nil {
		panic(err)
	}
	return def
}

func joinDoc(lines []string) string {
	kept := lines[:0:0]
	for _, l := range lines {
		if l != "" {
			kept = append(kept, l)
		}
	}
	return strings.Join(kept, " ")
}
