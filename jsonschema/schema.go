// Package jsonschema holds the strict-dialect document representation and its
// canonical serializer. Values are plain trees; composing them never mutates
// shared state, so any fragment can be embedded into any property slot.
package jsonschema

// Property is one ordered object property.
type Property struct {
	Key    string
	Schema *Schema
}

// Properties preserves field declaration order; a plain map would not.
type Properties []Property

// Get returns the schema stored under key, nil when absent.
func (p Properties) Get(key string) *Schema {
	for _, it := range p {
		if it.Key == key {
			return it.Schema
		}
	}
	return nil
}

// Schema is a strict-dialect schema value: a primitive, array, enum, object,
// or anyOf wrapper. Field order here mirrors the canonical key order the
// serializer emits.
type Schema struct {
	// Type is the flat type name ("string", "object", ...). Empty for anyOf
	// wrappers.
	Type string
	// Nullable widens Type to the two-element form [Type, "null"].
	Nullable bool
	// Enum holds closed variant values: string names or int64 discriminants,
	// in declaration order.
	Enum []any
	// Items is the element schema of an array.
	Items *Schema
	// AnyOf composes alternatives when the base schema has no flat type key.
	AnyOf []*Schema
	// AdditionalProperties is always false on object schemas in this dialect.
	AdditionalProperties *bool
	// Properties holds ordered object properties.
	Properties Properties
	// Required lists the keys of required properties in declaration order.
	// Object schemas always carry a non-nil (possibly empty) list.
	Required []string
	// Description is merged in when the declaration carries one.
	Description string
}

// Document is the root value handed to the structured-output consumer.
// Only object schemas may sit at the root, and Strict is always true.
type Document struct {
	Name        string
	Description *string
	Strict      bool
	Schema      *Schema
}

// False returns a pointer to false for AdditionalProperties.
func False() *bool {
	v := false
	return &v
}

// Clone returns a copy sharing no mutable top-level state with s.
// Nested schemas are reused as-is; callers only ever adjust top-level fields
// (Nullable, Description) after cloning.
func (s *Schema) Clone() *Schema {
	if s == nil {
		return nil
	}
	dup := *s
	return &dup
}
