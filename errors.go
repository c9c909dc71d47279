package strictschema

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	// CodeUnsupportedTypeShape reports a field type that is not a recognized
	// primitive, array, optional, or reference.
	CodeUnsupportedTypeShape = "unsupported_type_shape"
	// CodeNonUnitVariant reports an enum variant that carries data.
	CodeNonUnitVariant = "non_unit_variant"
	// CodeNumericWithoutRepresentation reports integer discriminants declared
	// without an explicit fixed-width representation marker.
	CodeNumericWithoutRepresentation = "numeric_without_representation"
	// CodeMisplacedDescription reports a description attached to a field or
	// variant whose schema the assembler does not itself construct.
	CodeMisplacedDescription = "misplaced_description"
	// CodeUnsupportedRootType reports a non-struct definition used as a root
	// document.
	CodeUnsupportedRootType = "unsupported_root_type"
	// CodeUnresolvedReference reports a referenced type with no registered
	// producer at materialization time.
	CodeUnresolvedReference = "unresolved_reference"
	// CodeCyclicReference reports a reference cycle encountered during
	// materialization; the inline dialect cannot embed a type inside its own
	// expansion.
	CodeCyclicReference = "cyclic_reference"
	// CodeEmptyEnum reports an enum whose variant list is empty after
	// skip-filtering.
	CodeEmptyEnum = "empty_enum"
	// CodeDuplicateField reports two fields or variants resolving to the same
	// emitted key.
	CodeDuplicateField = "duplicate_field"
	// CodeDuplicateType reports a second registration under an already
	// registered type name.
	CodeDuplicateType = "duplicate_type"
	// CodeRegistryFrozen reports a registration attempted after Freeze.
	CodeRegistryFrozen = "registry_frozen"
	// CodeParseError reports a malformed declaration input (YAML, type
	// expressions).
	CodeParseError = "parse_error"
)

// Issue represents a single declaration error.
type Issue struct {
	Path    string // Declaration identity (for example: /Reply/fields/category).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, offending tokens, etc.
	Cause   error  // Optional: underlying error.
}

// Issues is a collection of declaration errors that implements error.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		// e.g. unresolved_reference at /Reply/fields/category
		fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasCode reports whether any issue in err carries the given code.
func HasCode(err error, code string) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Code == code {
			return true
		}
	}
	return false
}
