package ast

import "jsgen/internal/atom"

// Validate runs every structural invariant check against a, returning the
// first violation found. Call it once after building (or decoding) a tree
// and before handing it to the generator; the generator itself assumes these
// invariants already hold and does not re-check them.
func Validate(a *Arena, atoms *atom.Table) error {
	if err := validateMethodDefinitions(a); err != nil {
		return err
	}
	if err := validateObjectProperties(a); err != nil {
		return err
	}
	if err := validateTemplateElements(a); err != nil {
		return err
	}
	if err := validateDeclareFunctions(a); err != nil {
		return err
	}
	if err := validateVariance(a, atoms); err != nil {
		return err
	}
	return nil
}
