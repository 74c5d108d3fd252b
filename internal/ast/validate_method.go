package ast

import "fmt"

// validateMethodDefinitions checks that every MethodDefinition's Value is a
// FunctionExpression, since the generator's method emitter (spec §4.5)
// assumes it can read params/body/generator/async straight off that payload.
func validateMethodDefinitions(a *Arena) error {
	for i, n := range a.nodes {
		if n.Kind != KindMethodDefinition {
			continue
		}
		md := n.Payload.(MethodDefinition)
		if md.Value == NoHandle {
			return fmt.Errorf("ast: node %d: MethodDefinition has no value", i)
		}
		if k := a.Kind(md.Value); k != KindFunctionExpression {
			return fmt.Errorf("ast: node %d: MethodDefinition.value is %s, want FunctionExpression", i, k)
		}
	}
	return nil
}
