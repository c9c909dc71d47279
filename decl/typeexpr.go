package decl

import (
	"strings"

	strictschema "github.com/strictschema/strictschema"
	"github.com/strictschema/strictschema/i18n"
)

// ParseTypeExpr maps a declaration-file type expression onto a descriptor.
//
// Grammar: a primitive name, a wrapper around another expression, or a bare
// identifier taken as a lazy reference:
//
//	string | integer | number | boolean
//	array<EXPR> | optional<EXPR>
//	TypeName
//
// Anything else (tuples, multi-argument wrappers, unknown wrappers) is an
// unsupported type shape.
func ParseTypeExpr(path, expr string) (strictschema.TypeDescriptor, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return strictschema.TypeDescriptor{}, shapeIssue(path, "empty type expression")
	}

	if open := strings.IndexByte(expr, '<'); open >= 0 {
		if !strings.HasSuffix(expr, ">") {
			return strictschema.TypeDescriptor{}, shapeIssue(path, "unterminated wrapper: '"+expr+"'")
		}
		wrapper := strings.TrimSpace(expr[:open])
		arg := expr[open+1 : len(expr)-1]
		if depthAwareComma(arg) {
			return strictschema.TypeDescriptor{}, shapeIssue(path, "wrappers take exactly one type argument: '"+expr+"'")
		}
		inner, err := ParseTypeExpr(path, arg)
		if err != nil {
			return strictschema.TypeDescriptor{}, err
		}
		switch wrapper {
		case "array":
			return strictschema.ArrayOf(inner), nil
		case "optional":
			return strictschema.OptionalOf(inner), nil
		default:
			return strictschema.TypeDescriptor{}, shapeIssue(path, "unknown wrapper: '"+wrapper+"'")
		}
	}

	if strings.ContainsAny(expr, ">,") {
		return strictschema.TypeDescriptor{}, shapeIssue(path, "malformed type expression: '"+expr+"'")
	}

	switch expr {
	case "string":
		return strictschema.Primitive(strictschema.PrimitiveString), nil
	case "integer":
		return strictschema.Primitive(strictschema.PrimitiveInteger), nil
	case "number":
		return strictschema.Primitive(strictschema.PrimitiveNumber), nil
	case "boolean":
		return strictschema.Primitive(strictschema.PrimitiveBoolean), nil
	default:
		return strictschema.ReferenceTo(expr), nil
	}
}

// depthAwareComma reports a top-level comma inside a wrapper argument.
func depthAwareComma(s string) bool {
	depth := 0
	for _, r := range s {
		switch r {
		case '<':
			depth++
		case '>':
			depth--
		case ',':
			if depth == 0 {
				return true
			}
		}
	}
	return false
}

func shapeIssue(path, hint string) error {
	return strictschema.Issues{{
		Path:    path,
		Code:    strictschema.CodeUnsupportedTypeShape,
		Message: i18n.T(strictschema.CodeUnsupportedTypeShape, nil),
		Hint:    hint,
	}}
}
