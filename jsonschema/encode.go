package jsonschema

import (
	"bytes"

	json "github.com/goccy/go-json"
)

// Canonical key order: type, enum, items, anyOf, additionalProperties,
// properties, required, description. Every fragment is complete and
// self-delimiting, so embedding one into a property slot is pure
// concatenation and the composed document stays byte-identical to its parts.

// MarshalJSON renders the root document as
// {"name":...,"description":...,"strict":...,"schema":{...}}.
// Description serializes as null when absent.
func (d *Document) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"name":`)
	if err := appendValue(&buf, d.Name); err != nil {
		return nil, err
	}
	buf.WriteString(`,"description":`)
	if d.Description == nil {
		buf.WriteString("null")
	} else if err := appendValue(&buf, *d.Description); err != nil {
		return nil, err
	}
	buf.WriteString(`,"strict":`)
	if d.Strict {
		buf.WriteString("true")
	} else {
		buf.WriteString("false")
	}
	buf.WriteString(`,"schema":`)
	sb, err := d.Schema.MarshalJSON()
	if err != nil {
		return nil, err
	}
	buf.Write(sb)
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalJSON renders a schema value in the canonical key order.
func (s *Schema) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	first := true
	key := func(k string) {
		if !first {
			buf.WriteByte(',')
		}
		first = false
		buf.WriteByte('"')
		buf.WriteString(k)
		buf.WriteString(`":`)
	}

	if s.Type != "" {
		key("type")
		if s.Nullable {
			buf.WriteByte('[')
			if err := appendValue(&buf, s.Type); err != nil {
				return nil, err
			}
			buf.WriteString(`,"null"]`)
		} else if err := appendValue(&buf, s.Type); err != nil {
			return nil, err
		}
	}
	if s.Enum != nil {
		key("enum")
		buf.WriteByte('[')
		for i, v := range s.Enum {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(&buf, v); err != nil {
				return nil, err
			}
		}
		buf.WriteByte(']')
	}
	if s.Items != nil {
		key("items")
		b, err := s.Items.MarshalJSON()
		if err != nil {
			return nil, err
		}
		buf.Write(b)
	}
	if len(s.AnyOf) > 0 {
		key("anyOf")
		buf.WriteByte('[')
		for i, alt := range s.AnyOf {
			if i > 0 {
				buf.WriteByte(',')
			}
			b, err := alt.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte(']')
	}
	if s.AdditionalProperties != nil {
		key("additionalProperties")
		if *s.AdditionalProperties {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	}
	if s.Properties != nil {
		key("properties")
		buf.WriteByte('{')
		for i, p := range s.Properties {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(&buf, p.Key); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			b, err := p.Schema.MarshalJSON()
			if err != nil {
				return nil, err
			}
			buf.Write(b)
		}
		buf.WriteByte('}')
	}
	if s.Required != nil {
		key("required")
		buf.WriteByte('[')
		for i, r := range s.Required {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(&buf, r); err != nil {
				return nil, err
			}
		}
		buf.WriteByte(']')
	}
	if s.Description != "" {
		key("description")
		if err := appendValue(&buf, s.Description); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func appendValue(buf *bytes.Buffer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	buf.Write(b)
	return nil
}
