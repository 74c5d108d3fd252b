package ast

import "fmt"

// validateDeclareFunctions checks that a DeclareFunction's identifier carries
// a TypeAnnotation whose inner type is a FunctionTypeAnnotation — the only
// shape the generator knows how to render as `declare function f(...): T;`.
func validateDeclareFunctions(a *Arena) error {
	for i, n := range a.nodes {
		if n.Kind != KindDeclareFunction {
			continue
		}
		df := n.Payload.(DeclareFunction)
		if df.Id == NoHandle || a.Kind(df.Id) != KindIdentifier {
			return fmt.Errorf("ast: node %d: DeclareFunction.id must be an Identifier", i)
		}
		id := a.Get(df.Id).Payload.(Identifier)
		if id.TypeAnnotation == NoHandle || a.Kind(id.TypeAnnotation) != KindTypeAnnotation {
			return fmt.Errorf("ast: node %d: DeclareFunction identifier has no TypeAnnotation", i)
		}
		wrapper := a.Get(id.TypeAnnotation).Payload.(TypeAnnotation)
		if wrapper.TypeAnnotation == NoHandle || a.Kind(wrapper.TypeAnnotation) != KindFunctionTypeAnnotation {
			return fmt.Errorf("ast: node %d: DeclareFunction identifier's type annotation must be a FunctionTypeAnnotation", i)
		}
	}
	return nil
}
