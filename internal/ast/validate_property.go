package ast

import "fmt"

// validateObjectProperties checks that any Property that is a getter, a
// setter, or shaped like a method (Method) has a FunctionExpression value.
// Plain `key: value` (PropertyKindInit, Method false) properties are exempt.
func validateObjectProperties(a *Arena) error {
	for i, n := range a.nodes {
		if n.Kind != KindProperty {
			continue
		}
		p := n.Payload.(Property)
		if p.Kind == PropertyKindInit && !p.Method {
			continue
		}
		if p.Value == NoHandle {
			return fmt.Errorf("ast: node %d: Property has no value", i)
		}
		if k := a.Kind(p.Value); k != KindFunctionExpression {
			return fmt.Errorf("ast: node %d: getter/setter/method Property.value is %s, want FunctionExpression", i, k)
		}
	}
	return nil
}
