package strictschema

import (
	"reflect"
	"strings"

	"github.com/strictschema/strictschema/i18n"
)

// StructOption adjusts struct extraction.
type StructOption func(*structOptions)

type structOptions struct {
	description string
}

// WithDescription attaches a type-level description to the extracted
// definition. Go doc comments are not visible at runtime, so the description
// is supplied here instead.
func WithDescription(text string) StructOption {
	return func(o *structOptions) { o.description = strings.TrimSpace(text) }
}

// StructOf extracts a struct definition from the Go struct type T.
//
// Field handling mirrors the declaration rules of the DSL:
//   - the json tag renames the emitted key; json:"-" skips the field
//   - the description tag documents the field (rejected on reference fields)
//   - a pointer type makes the field optional
//   - a slice maps to an array of its element shape
//   - string/integer/float/bool kinds map to their primitives
//   - any other defined type becomes a lazy reference by its type name
func StructOf[T any](opts ...StructOption) (*TypeDefinition, error) {
	var o structOptions
	for _, opt := range opts {
		opt(&o)
	}

	t := reflect.TypeOf((*T)(nil)).Elem()
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct || t.Name() == "" {
		return nil, Issues{{Path: "/" + t.String(), Code: CodeUnsupportedTypeShape, Message: i18n.T(CodeUnsupportedTypeShape, nil), Hint: "expected a named struct type"}}
	}

	var iss Issues
	fields := make([]FieldDescriptor, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		attrs := resolveFieldAttributes(sf)
		fd := FieldDescriptor{Name: sf.Name, Attributes: attrs}
		if attrs.Skip {
			fields = append(fields, fd)
			continue
		}
		desc, err := typeDescriptorOf("/"+t.Name()+"/fields/"+sf.Name, sf.Type)
		if err != nil {
			iss = AppendIssues(iss, err...)
			continue
		}
		fd.Type = desc
		fields = append(fields, fd)
	}
	if iss != nil {
		return nil, iss
	}
	return NewStruct(t.Name(), o.description, fields)
}

// MustStructOf is like StructOf but panics on error.
func MustStructOf[T any](opts ...StructOption) *TypeDefinition {
	def, err := StructOf[T](opts...)
	if err != nil {
		panic(err)
	}
	return def
}

// resolveFieldAttributes applies the repository-wide tag rules.
// Priority: json tag name > field name; json:"-" skips the field; the
// description tag supplies documentation text.
func resolveFieldAttributes(sf reflect.StructField) FieldAttributes {
	attrs := FieldAttributes{Description: strings.TrimSpace(sf.Tag.Get("description"))}
	if jt := sf.Tag.Get("json"); jt != "" {
		if jt == "-" {
			attrs.Skip = true
			return attrs
		}
		name := jt
		if i := strings.IndexByte(jt, ','); i >= 0 {
			name = jt[:i]
		}
		if name != "" && name != sf.Name {
			attrs.Rename = name
		}
	}
	return attrs
}

func typeDescriptorOf(path string, t reflect.Type) (TypeDescriptor, Issues) {
	switch t.Kind() {
	case reflect.Ptr:
		inner, iss := typeDescriptorOf(path, t.Elem())
		if iss != nil {
			return TypeDescriptor{}, iss
		}
		return OptionalOf(inner), nil
	case reflect.Slice, reflect.Array:
		elem, iss := typeDescriptorOf(path, t.Elem())
		if iss != nil {
			return TypeDescriptor{}, iss
		}
		return ArrayOf(elem), nil
	case reflect.Struct:
		if t.Name() == "" {
			return TypeDescriptor{}, Issues{{Path: path, Code: CodeUnsupportedTypeShape, Message: i18n.T(CodeUnsupportedTypeShape, nil), Hint: "anonymous structs cannot be referenced by name"}}
		}
		return ReferenceTo(t.Name()), nil
	case reflect.String:
		if defined(t) {
			return ReferenceTo(t.Name()), nil
		}
		return Primitive(PrimitiveString), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if defined(t) {
			return ReferenceTo(t.Name()), nil
		}
		return Primitive(PrimitiveInteger), nil
	case reflect.Float32, reflect.Float64:
		if defined(t) {
			return ReferenceTo(t.Name()), nil
		}
		return Primitive(PrimitiveNumber), nil
	case reflect.Bool:
		if defined(t) {
			return ReferenceTo(t.Name()), nil
		}
		return Primitive(PrimitiveBoolean), nil
	default:
		return TypeDescriptor{}, Issues{{Path: path, Code: CodeUnsupportedTypeShape, Message: i18n.T(CodeUnsupportedTypeShape, nil), Hint: "cannot map " + t.String()}}
	}
}

// defined reports whether t is a user-defined named type rather than a
// builtin kind; such types resolve as references to registered definitions.
func defined(t reflect.Type) bool {
	return t.Name() != "" && t.PkgPath() != ""
}
