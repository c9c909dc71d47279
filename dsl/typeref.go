package dsl

import (
	strictschema "github.com/strictschema/strictschema"
)

// String returns the string primitive descriptor.
func String() strictschema.TypeDescriptor {
	return strictschema.Primitive(strictschema.PrimitiveString)
}

// Integer returns the integer primitive descriptor. All fixed-width and
// pointer-width integer kinds share this shape.
func Integer() strictschema.TypeDescriptor {
	return strictschema.Primitive(strictschema.PrimitiveInteger)
}

// Number returns the floating-point primitive descriptor.
func Number() strictschema.TypeDescriptor {
	return strictschema.Primitive(strictschema.PrimitiveNumber)
}

// Boolean returns the boolean primitive descriptor.
func Boolean() strictschema.TypeDescriptor {
	return strictschema.Primitive(strictschema.PrimitiveBoolean)
}

// Array wraps elem into an array descriptor.
func Array(elem strictschema.TypeDescriptor) strictschema.TypeDescriptor {
	return strictschema.ArrayOf(elem)
}

// Optional wraps inner into a nullable descriptor; fields declared with it
// are never required.
func Optional(inner strictschema.TypeDescriptor) strictschema.TypeDescriptor {
	return strictschema.OptionalOf(inner)
}

// Ref names another declared type. Resolution happens lazily when a document
// using the reference is materialized.
func Ref(name string) strictschema.TypeDescriptor {
	return strictschema.ReferenceTo(name)
}
