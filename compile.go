package strictschema

import (
	"github.com/strictschema/strictschema/i18n"
	js "github.com/strictschema/strictschema/jsonschema"
)

// structProducer and enumProducer are the two SchemaProducer implementations,
// dispatched over the definition kind. Every materialization builds a fresh
// value tree; no rendering shares mutable state with another.

type structProducer struct{ def *TypeDefinition }

func (p structProducer) Definition() *TypeDefinition { return p.def }

func (p structProducer) RootDocument(reg *Registry) (*js.Document, error) {
	schema, err := structSchema(p.def, reg, map[string]struct{}{p.def.Name(): {}})
	if err != nil {
		return nil, err
	}
	doc := &js.Document{Name: p.def.Name(), Strict: true, Schema: schema}
	if d := p.def.Description(); d != "" {
		doc.Description = &d
	}
	return doc, nil
}

func (p structProducer) Fragment(reg *Registry) (*js.Schema, error) {
	return p.fragment(reg, map[string]struct{}{p.def.Name(): {}})
}

func (p structProducer) fragment(reg *Registry, active map[string]struct{}) (*js.Schema, error) {
	schema, err := structSchema(p.def, reg, active)
	if err != nil {
		return nil, err
	}
	schema.Description = p.def.Description()
	return schema, nil
}

type enumProducer struct{ def *TypeDefinition }

func (p enumProducer) Definition() *TypeDefinition { return p.def }

func (p enumProducer) RootDocument(*Registry) (*js.Document, error) {
	return nil, Issues{{Path: "/" + p.def.Name(), Code: CodeUnsupportedRootType, Message: i18n.T(CodeUnsupportedRootType, nil), Hint: "embed the enum as a struct field instead"}}
}

func (p enumProducer) Fragment(*Registry) (*js.Schema, error) {
	return enumSchema(p.def), nil
}

// structSchema assembles the object schema: properties and required in field
// declaration order after skip-filtering, additionalProperties pinned false.
// active tracks the type names currently being expanded so a reference cycle
// is reported instead of recursing forever.
func structSchema(def *TypeDefinition, reg *Registry, active map[string]struct{}) (*js.Schema, error) {
	schema := &js.Schema{
		Type:                 "object",
		AdditionalProperties: js.False(),
		Properties:           make(js.Properties, 0, len(def.Fields())),
		Required:             []string{},
	}
	for _, f := range def.Fields() {
		if f.Attributes.Skip {
			continue
		}
		fs, err := fieldSchema(def.Name(), f, reg, active)
		if err != nil {
			return nil, err
		}
		schema.Properties = append(schema.Properties, js.Property{Key: f.Key(), Schema: fs})
		if f.Required {
			schema.Required = append(schema.Required, f.Key())
		}
	}
	return schema, nil
}

func fieldSchema(typeName string, f FieldDescriptor, reg *Registry, active map[string]struct{}) (*js.Schema, error) {
	s, err := descriptorSchema("/"+typeName+"/fields/"+f.Name, f.Type, reg, active)
	if err != nil {
		return nil, err
	}
	if f.Attributes.Description != "" {
		// Reference-typed fields never reach here; NewStruct rejects them.
		s.Description = f.Attributes.Description
	}
	return s, nil
}

// descriptorSchema renders a type descriptor into a schema value, looking up
// references in the registry at materialization time.
func descriptorSchema(path string, d TypeDescriptor, reg *Registry, active map[string]struct{}) (*js.Schema, error) {
	switch d.kind {
	case descPrimitive:
		return &js.Schema{Type: string(d.prim)}, nil
	case descArray:
		items, err := descriptorSchema(path, *d.elem, reg, active)
		if err != nil {
			return nil, err
		}
		return &js.Schema{Type: "array", Items: items}, nil
	case descOptional:
		inner, err := descriptorSchema(path, *d.elem, reg, active)
		if err != nil {
			return nil, err
		}
		return nullable(inner), nil
	case descReference:
		if _, expanding := active[d.ref]; expanding {
			// The inline dialect has no $ref; a cycle would have to embed a
			// type inside its own expansion.
			return nil, Issues{{Path: path, Code: CodeCyclicReference, Message: i18n.T(CodeCyclicReference, nil), Hint: "'" + d.ref + "' is already being expanded"}}
		}
		p, ok := reg.Producer(d.ref)
		if !ok {
			// Reported against the field that actually uses the reference;
			// resolution is intentionally lazy.
			return nil, Issues{{Path: path, Code: CodeUnresolvedReference, Message: i18n.T(CodeUnresolvedReference, nil), Hint: "register '" + d.ref + "' before materializing"}}
		}
		sp, isStruct := p.(structProducer)
		if !isStruct {
			return p.Fragment(reg)
		}
		active[d.ref] = struct{}{}
		frag, err := sp.fragment(reg, active)
		delete(active, d.ref)
		return frag, err
	default:
		return nil, Issues{{Path: path, Code: CodeUnsupportedTypeShape, Message: i18n.T(CodeUnsupportedTypeShape, nil)}}
	}
}

// nullable widens a schema to admit null: the two-element type array when the
// base has a flat type key, an anyOf wrapper otherwise.
func nullable(s *js.Schema) *js.Schema {
	if s.Type != "" && !s.Nullable {
		dup := s.Clone()
		dup.Nullable = true
		return dup
	}
	return &js.Schema{AnyOf: []*js.Schema{s, {Type: "null"}}}
}

// enumSchema assembles the closed-set fragment: numeric when the definition
// qualified at construction time, string otherwise. Variant order is
// declaration order across skips.
func enumSchema(def *TypeDefinition) *js.Schema {
	values := make([]any, 0, len(def.Variants()))
	for _, v := range def.Variants() {
		if v.Attributes.Skip {
			continue
		}
		if def.NumericCapable() {
			values = append(values, *v.Discriminant)
		} else {
			values = append(values, v.Key())
		}
	}
	kind := "string"
	if def.NumericCapable() {
		kind = "number"
	}
	return &js.Schema{Type: kind, Enum: values, Description: def.Description()}
}
