package jsonschema_test

import (
	"testing"

	json "github.com/goccy/go-json"

	js "github.com/strictschema/strictschema/jsonschema"
)

func TestSchema_CanonicalKeyOrder(t *testing.T) {
	s := &js.Schema{
		Type:                 "object",
		AdditionalProperties: js.False(),
		Properties: js.Properties{
			{Key: "b", Schema: &js.Schema{Type: "string"}},
			{Key: "a", Schema: &js.Schema{Type: "integer"}},
		},
		Required:    []string{"b"},
		Description: "ordered",
	}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"object","additionalProperties":false,` +
		`"properties":{"b":{"type":"string"},"a":{"type":"integer"}},` +
		`"required":["b"],"description":"ordered"}`
	if string(got) != want {
		t.Fatalf("order mismatch\n got=%s\nwant=%s", got, want)
	}
}

func TestSchema_NullableType(t *testing.T) {
	got, err := json.Marshal(&js.Schema{Type: "string", Nullable: true})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"type":["string","null"]}` {
		t.Fatalf("nullable mismatch: %s", got)
	}
}

func TestSchema_AnyOf(t *testing.T) {
	s := &js.Schema{AnyOf: []*js.Schema{{Type: "string"}, {Type: "null"}}}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"anyOf":[{"type":"string"},{"type":"null"}]}` {
		t.Fatalf("anyOf mismatch: %s", got)
	}
}

func TestSchema_EmptyRequiredStaysExplicit(t *testing.T) {
	s := &js.Schema{
		Type:                 "object",
		AdditionalProperties: js.False(),
		Properties:           js.Properties{},
		Required:             []string{},
	}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"type":"object","additionalProperties":false,"properties":{},"required":[]}` {
		t.Fatalf("empty object mismatch: %s", got)
	}
}

func TestDocument_NullDescription(t *testing.T) {
	doc := &js.Document{
		Name:   "Reply",
		Strict: true,
		Schema: &js.Schema{
			Type:                 "object",
			AdditionalProperties: js.False(),
			Properties:           js.Properties{},
			Required:             []string{},
		},
	}
	got, err := json.Marshal(doc)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"name":"Reply","description":null,"strict":true,` +
		`"schema":{"type":"object","additionalProperties":false,"properties":{},"required":[]}}`
	if string(got) != want {
		t.Fatalf("document mismatch\n got=%s\nwant=%s", got, want)
	}
}

func TestSchema_EnumValues(t *testing.T) {
	s := &js.Schema{Type: "number", Enum: []any{int64(1), int64(2), int64(10)}}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(got) != `{"type":"number","enum":[1,2,10]}` {
		t.Fatalf("enum mismatch: %s", got)
	}
}

func TestSchema_KeyEscaping(t *testing.T) {
	s := &js.Schema{
		Type:                 "object",
		AdditionalProperties: js.False(),
		Properties: js.Properties{
			{Key: `quo"te`, Schema: &js.Schema{Type: "string"}},
		},
		Required: []string{`quo"te`},
	}
	got, err := json.Marshal(s)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	want := `{"type":"object","additionalProperties":false,` +
		`"properties":{"quo\"te":{"type":"string"}},"required":["quo\"te"]}`
	if string(got) != want {
		t.Fatalf("escaping mismatch: %s", got)
	}
}

func TestProperties_Get(t *testing.T) {
	p := js.Properties{
		{Key: "a", Schema: &js.Schema{Type: "string"}},
	}
	if p.Get("a") == nil || p.Get("b") != nil {
		t.Fatal("Get lookup broken")
	}
}
