// Package wireschema builds the JSON Schema describing internal/wireast's
// wire AST input format, for `jsgen schema` and downstream tooling that
// wants to validate a tree before handing it to `jsgen generate`.
//
// Grounded on MacroPower-x's magicschema/generator.go, which builds
// *jsonschema.Schema values by hand (Type/Properties/AdditionalProperties)
// rather than reflecting over a Go struct; wireschema does the same, since
// the wire format is a hand-authored external contract (Babel-AST-shaped
// JSON), not a Go type to infer from.
package wireschema

import (
	"github.com/google/jsonschema-go/jsonschema"
)

// position describes the {line, column} shape every wire node's start/end
// carries.
func position() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"line":   {Type: "integer", Minimum: jsonschema.Ptr(1.0)},
			"column": {Type: "integer", Minimum: jsonschema.Ptr(1.0)},
		},
		Required:             []string{"line", "column"},
		AdditionalProperties: falseSchema(),
	}
}

func falseSchema() *jsonschema.Schema {
	return &jsonschema.Schema{Not: &jsonschema.Schema{}}
}

func trueSchema() *jsonschema.Schema {
	return &jsonschema.Schema{}
}

// node returns the schema for any wire node: the "type" discriminator,
// optional source positions, and an open-ended bag of kind-specific
// fields. A fully closed per-kind schema (one oneOf branch per of the ~130
// ast.Kind values in internal/ast/kind.go) is deliberately not attempted
// here: it would duplicate the decode tables in internal/wireast file for
// file with no behavioral payoff, since internal/wireast's per-kind decode
// functions are already the authoritative, enforced shape-checkers. This
// schema exists so external tooling (editors, fixture generators) gets a
// structural sanity check, not a restatement of the decoder.
func node() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type: "object",
		Properties: map[string]*jsonschema.Schema{
			"type":  {Type: "string", Description: "AST node kind, e.g. \"Program\", \"BinaryExpression\"."},
			"start": position(),
			"end":   position(),
		},
		Required:             []string{"type"},
		AdditionalProperties: trueSchema(),
	}
}

// Build returns the root schema for a wireast document: a single top-level
// node (conventionally a Program).
func Build() *jsonschema.Schema {
	root := node()
	root.Title = "jsgen wire AST"
	root.Description = "JSON wire-format input consumed by internal/wireast.Decode and the `jsgen generate` CLI."
	root.ID = "https://jsgen.invalid/schema/wireast.json"
	return root
}
