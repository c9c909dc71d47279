package strictschema

import (
	"sync"

	json "github.com/goccy/go-json"

	"github.com/strictschema/strictschema/i18n"
	js "github.com/strictschema/strictschema/jsonschema"
)

// SchemaProducer renders the schema of exactly one registered definition.
// Struct definitions additionally serve as root documents; every definition
// serves as an embeddable fragment.
type SchemaProducer interface {
	// Definition returns the immutable definition this producer is bound to.
	Definition() *TypeDefinition
	// RootDocument materializes the full strict document. Fails with
	// unsupported_root_type for non-struct definitions.
	RootDocument(reg *Registry) (*js.Document, error)
	// Fragment materializes the schema value embeddable into another type's
	// property slot.
	Fragment(reg *Registry) (*js.Schema, error)
}

// Registry owns the mapping from type name to schema producer. It is
// populated during initialization and read-only after Freeze; readers after
// that point need no coordination beyond the RWMutex already in place for
// concurrent initialization.
type Registry struct {
	mu        sync.RWMutex
	producers map[string]SchemaProducer
	frozen    bool
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{producers: make(map[string]SchemaProducer)}
}

// Register binds a producer for def under its declared name. Registration
// after Freeze and duplicate names are rejected.
func (r *Registry) Register(def *TypeDefinition) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.frozen {
		return Issues{{Path: "/" + def.Name(), Code: CodeRegistryFrozen, Message: i18n.T(CodeRegistryFrozen, nil)}}
	}
	if _, dup := r.producers[def.Name()]; dup {
		return Issues{{Path: "/" + def.Name(), Code: CodeDuplicateType, Message: i18n.T(CodeDuplicateType, nil)}}
	}
	switch def.Kind() {
	case KindStruct:
		r.producers[def.Name()] = structProducer{def: def}
	default:
		r.producers[def.Name()] = enumProducer{def: def}
	}
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(def *TypeDefinition) {
	if err := r.Register(def); err != nil {
		panic(err)
	}
}

// Freeze completes initialization. Afterwards the registry only serves reads.
func (r *Registry) Freeze() {
	r.mu.Lock()
	r.frozen = true
	r.mu.Unlock()
}

// Producer looks up the producer registered under name.
func (r *Registry) Producer(name string) (SchemaProducer, bool) {
	r.mu.RLock()
	p, ok := r.producers[name]
	r.mu.RUnlock()
	return p, ok
}

// RootDocument materializes the root document for the named type.
func (r *Registry) RootDocument(name string) (*js.Document, error) {
	p, ok := r.Producer(name)
	if !ok {
		return nil, Issues{{Path: "/" + name, Code: CodeUnresolvedReference, Message: i18n.T(CodeUnresolvedReference, nil)}}
	}
	return p.RootDocument(r)
}

// Fragment materializes the embeddable schema for the named type.
func (r *Registry) Fragment(name string) (*js.Schema, error) {
	p, ok := r.Producer(name)
	if !ok {
		return nil, Issues{{Path: "/" + name, Code: CodeUnresolvedReference, Message: i18n.T(CodeUnresolvedReference, nil)}}
	}
	return p.Fragment(r)
}

// RootDocumentJSON materializes and serializes the root document in one step.
func (r *Registry) RootDocumentJSON(name string) ([]byte, error) {
	doc, err := r.RootDocument(name)
	if err != nil {
		return nil, err
	}
	return json.Marshal(doc)
}

// FragmentJSON materializes and serializes a fragment in one step.
func (r *Registry) FragmentJSON(name string) ([]byte, error) {
	frag, err := r.Fragment(name)
	if err != nil {
		return nil, err
	}
	return json.Marshal(frag)
}
