package ast

import (
	"fmt"

	"jsgen/internal/atom"
)

// validateVariance checks that every Variance node's Kind atom resolves, in
// atoms, to "plus" or "minus" — the only two spellings the generator emits
// (`+`/`-`).
func validateVariance(a *Arena, atoms *atom.Table) error {
	for i, n := range a.nodes {
		if n.Kind != KindVariance {
			continue
		}
		v := n.Payload.(Variance)
		text, ok := atoms.TryResolve(v.Kind)
		if !ok {
			return fmt.Errorf("ast: node %d: Variance.kind does not resolve to an interned string", i)
		}
		if text != "plus" && text != "minus" {
			return fmt.Errorf("ast: node %d: Variance.kind is %q, want \"plus\" or \"minus\"", i, text)
		}
	}
	return nil
}
