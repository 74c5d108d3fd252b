package ast

import "fmt"

// validateTemplateElements checks that every TemplateElement is referenced
// only from a TemplateLiteral's Quasis list; a TemplateElement reached any
// other way has no defined emission (spec §4.5).
func validateTemplateElements(a *Arena) error {
	referenced := make(map[Handle]bool)
	for _, n := range a.nodes {
		if n.Kind != KindTemplateLiteral {
			continue
		}
		tl := n.Payload.(TemplateLiteral)
		for _, q := range tl.Quasis {
			referenced[q] = true
		}
	}

	for i, n := range a.nodes {
		if n.Kind != KindTemplateElement {
			continue
		}
		if !referenced[Handle(i)] {
			return fmt.Errorf("ast: node %d: TemplateElement is not a quasi of any TemplateLiteral", i)
		}
	}
	return nil
}
