// Package decl loads type declarations from YAML files and turns them into
// registrable definitions. It is the file-based counterpart of the dsl
// builders; both produce the same immutable TypeDefinition values.
package decl

import (
	"io"

	"gopkg.in/yaml.v3"

	strictschema "github.com/strictschema/strictschema"
	"github.com/strictschema/strictschema/dsl"
	"github.com/strictschema/strictschema/i18n"
)

// File is the top-level declaration document.
type File struct {
	Types []Type `yaml:"types"`
}

// Type declares one struct or enum. Exactly one of Struct/Enum names it.
type Type struct {
	Struct   string    `yaml:"struct"`
	Enum     string    `yaml:"enum"`
	Doc      string    `yaml:"doc"`
	Repr     string    `yaml:"repr"`
	Fields   []Field   `yaml:"fields"`
	Variants []Variant `yaml:"variants"`
}

// Field declares one struct field.
type Field struct {
	Name   string `yaml:"name"`
	Type   string `yaml:"type"`
	Doc    string `yaml:"doc"`
	Rename string `yaml:"rename"`
	Skip   bool   `yaml:"skip"`
}

// Variant declares one enum variant. A fields list marks a non-unit variant,
// which the compiler rejects.
type Variant struct {
	Name   string  `yaml:"name"`
	Doc    string  `yaml:"doc"`
	Rename string  `yaml:"rename"`
	Skip   bool    `yaml:"skip"`
	Value  *int64  `yaml:"value"`
	Fields []Field `yaml:"fields"`
}

// Parse decodes a declaration document and compiles every declared type, in
// file order.
func Parse(data []byte) ([]*strictschema.TypeDefinition, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, strictschema.Issues{{Path: "/", Code: strictschema.CodeParseError, Message: i18n.T(strictschema.CodeParseError, nil), Cause: err}}
	}
	defs := make([]*strictschema.TypeDefinition, 0, len(f.Types))
	for _, t := range f.Types {
		def, err := compileType(t)
		if err != nil {
			return nil, err
		}
		defs = append(defs, def)
	}
	return defs, nil
}

// Load reads and parses a declaration document from r.
func Load(r io.Reader) ([]*strictschema.TypeDefinition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, strictschema.Issues{{Path: "/", Code: strictschema.CodeParseError, Message: i18n.T(strictschema.CodeParseError, nil), Cause: err}}
	}
	return Parse(data)
}

// Register parses a declaration document and registers every compiled type.
func Register(reg *strictschema.Registry, data []byte) error {
	defs, err := Parse(data)
	if err != nil {
		return err
	}
	for _, def := range defs {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}

func compileType(t Type) (*strictschema.TypeDefinition, error) {
	switch {
	case t.Struct != "" && t.Enum == "":
		return compileStruct(t)
	case t.Enum != "" && t.Struct == "":
		return compileEnum(t)
	default:
		return nil, strictschema.Issues{{Path: "/", Code: strictschema.CodeParseError, Message: i18n.T(strictschema.CodeParseError, nil), Hint: "each entry declares exactly one of struct/enum"}}
	}
}

func compileStruct(t Type) (*strictschema.TypeDefinition, error) {
	b := dsl.Struct(t.Struct).Doc(t.Doc)
	for _, f := range t.Fields {
		desc, err := ParseTypeExpr("/"+t.Struct+"/fields/"+f.Name, f.Type)
		if err != nil {
			return nil, err
		}
		step := b.Field(f.Name, desc).Doc(f.Doc).Rename(f.Rename)
		if f.Skip {
			step.Skip()
		}
	}
	return b.Build()
}

func compileEnum(t Type) (*strictschema.TypeDefinition, error) {
	repr, ok := strictschema.ParseIntRepr(t.Repr)
	if !ok {
		return nil, strictschema.Issues{{Path: "/" + t.Enum, Code: strictschema.CodeParseError, Message: i18n.T(strictschema.CodeParseError, nil), Hint: "unknown repr: '" + t.Repr + "'"}}
	}
	b := dsl.Enum(t.Enum).Doc(t.Doc).Repr(repr)
	for _, v := range t.Variants {
		step := b.Variant(v.Name).Doc(v.Doc).Rename(v.Rename)
		if v.Skip {
			step.Skip()
		}
		if v.Value != nil {
			step.Discriminant(*v.Value)
		}
		if len(v.Fields) > 0 {
			step.Payload()
		}
	}
	return b.Build()
}
