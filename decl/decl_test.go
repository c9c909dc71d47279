package decl_test

import (
	"strings"
	"testing"

	strictschema "github.com/strictschema/strictschema"
	"github.com/strictschema/strictschema/decl"
)

const declarations = `
types:
  - enum: Category
    doc: Message category.
    variants:
      - name: Question
      - name: Statement
      - name: Answer
  - struct: Message
    doc: One chat message.
    fields:
      - name: body
        type: string
        doc: Free-form text.
      - name: category
        type: Category
      - name: score
        type: optional<integer>
      - name: tags
        type: array<string>
      - name: draft
        type: boolean
        rename: is_draft
      - name: internal
        type: string
        skip: true
`

func TestRegister_EndToEnd(t *testing.T) {
	reg := strictschema.NewRegistry()
	if err := decl.Register(reg, []byte(declarations)); err != nil {
		t.Fatalf("Register: %v", err)
	}
	reg.Freeze()

	got, err := reg.RootDocumentJSON("Message")
	if err != nil {
		t.Fatalf("RootDocumentJSON: %v", err)
	}
	want := `{"name":"Message","description":"One chat message.","strict":true,` +
		`"schema":{"type":"object","additionalProperties":false,` +
		`"properties":{` +
		`"body":{"type":"string","description":"Free-form text."},` +
		`"category":{"type":"string","enum":["Question","Statement","Answer"],"description":"Message category."},` +
		`"score":{"type":["integer","null"]},` +
		`"tags":{"type":"array","items":{"type":"string"}},` +
		`"is_draft":{"type":"boolean"}},` +
		`"required":["body","category","tags","is_draft"]}}`
	if string(got) != want {
		t.Fatalf("document mismatch\n got=%s\nwant=%s", got, want)
	}
}

func TestLoad_Reader(t *testing.T) {
	defs, err := decl.Load(strings.NewReader(declarations))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
}

func TestParse_NumericEnum(t *testing.T) {
	src := `
types:
  - enum: NicenessScore
    repr: i32
    variants:
      - {name: One, value: 1}
      - {name: Two, value: 2}
`
	defs, err := decl.Parse([]byte(src))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(defs) != 1 || !defs[0].NumericCapable() {
		t.Fatal("expected a numeric-capable enum")
	}
}

func TestParse_PayloadVariantRejected(t *testing.T) {
	src := `
types:
  - enum: Shape
    variants:
      - name: Circle
      - name: Rect
        fields:
          - {name: w, type: integer}
`
	_, err := decl.Parse([]byte(src))
	if !strictschema.HasCode(err, strictschema.CodeNonUnitVariant) {
		t.Fatalf("expected non_unit_variant, got %v", err)
	}
}

func TestParse_VariantDocRejected(t *testing.T) {
	src := `
types:
  - enum: Category
    variants:
      - name: Question
        doc: not representable
`
	_, err := decl.Parse([]byte(src))
	if !strictschema.HasCode(err, strictschema.CodeMisplacedDescription) {
		t.Fatalf("expected misplaced_description, got %v", err)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	_, err := decl.Parse([]byte("types: ["))
	if !strictschema.HasCode(err, strictschema.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParse_AmbiguousEntry(t *testing.T) {
	_, err := decl.Parse([]byte("types:\n  - struct: A\n    enum: B\n"))
	if !strictschema.HasCode(err, strictschema.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParse_UnknownRepr(t *testing.T) {
	src := `
types:
  - enum: Score
    repr: i33
    variants:
      - {name: One, value: 1}
`
	_, err := decl.Parse([]byte(src))
	if !strictschema.HasCode(err, strictschema.CodeParseError) {
		t.Fatalf("expected parse_error, got %v", err)
	}
}

func TestParseTypeExpr(t *testing.T) {
	cases := []struct {
		expr string
		ok   bool
	}{
		{"string", true},
		{"integer", true},
		{"number", true},
		{"boolean", true},
		{"array<string>", true},
		{"optional<array<integer>>", true},
		{"Category", true},
		{"", false},
		{"array<", false},
		{"array<a,b>", false},
		{"tuple<a>", false},
		{"a>b", false},
	}
	for _, tc := range cases {
		_, err := decl.ParseTypeExpr("/T/fields/f", tc.expr)
		if tc.ok && err != nil {
			t.Errorf("%q: unexpected error %v", tc.expr, err)
		}
		if !tc.ok && !strictschema.HasCode(err, strictschema.CodeUnsupportedTypeShape) {
			t.Errorf("%q: expected unsupported_type_shape, got %v", tc.expr, err)
		}
	}
}
