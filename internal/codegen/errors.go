package codegen

import "fmt"

// UnsupportedKindError is returned when traversal reaches a node kind with
// no emission rule.
type UnsupportedKindError struct {
	Kind string
}

func (e *UnsupportedKindError) Error() string {
	return fmt.Sprintf("codegen: unsupported node kind %s", e.Kind)
}

// MalformedASTError is returned when a structural invariant the generator
// depends on (see internal/ast's validate cluster) does not hold at the
// point the generator tries to rely on it.
type MalformedASTError struct {
	Detail string
}

func (e *MalformedASTError) Error() string {
	return fmt.Sprintf("codegen: malformed AST: %s", e.Detail)
}
