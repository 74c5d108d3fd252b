// Package wireast decodes a JSON wire-format AST into an ast.Arena.
//
// A real JS/Flow parser is out of scope for this repository (spec §1): the
// generator only ever reads a tree through ast.Arena/ast.Handle. wireast is
// the fixture/wire-format boundary that both the CLI (jsgen generate) and
// tests use to build a tree to feed the generator, the way
// internal/parser/mysql/parser.go's convertCreateTable/parseTableOptions
// convert a foreign tagged representation (a TiDB parse tree) into the
// teacher's own internal/core model by switching on an external "kind" tag.
package wireast

import (
	"encoding/json"
	"fmt"

	"jsgen/internal/ast"
	"jsgen/internal/atom"
)

// Decode parses raw JSON wire-format source into a fresh Arena, interning
// identifier/literal text into atoms. It returns the arena and the handle
// to the root node (normally a Program); the interned text stays in atoms.
func Decode(raw []byte, atoms *atom.Table) (*ast.Arena, ast.Handle, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, ast.NoHandle, fmt.Errorf("wireast: %w", err)
	}
	d := &decoder{arena: ast.NewArena(), atoms: atoms}
	h, err := d.decodeEnvelope(env, raw)
	if err != nil {
		return nil, ast.NoHandle, err
	}
	return d.arena, h, nil
}

// wirePos mirrors the {line, col} shape of every wire node's start/end.
type wirePos struct {
	Line   int `json:"line"`
	Column int `json:"column"`
}

// envelope captures the fields every wire node carries regardless of kind;
// kind-specific fields are re-decoded from the same raw bytes into a
// map[string]json.RawMessage by fields().
type envelope struct {
	Type  string   `json:"type"`
	Start *wirePos `json:"start"`
	End   *wirePos `json:"end"`
}

type decoder struct {
	arena *ast.Arena
	atoms *atom.Table
}

func fields(raw []byte) (map[string]json.RawMessage, error) {
	var m map[string]json.RawMessage
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("wireast: %w", err)
	}
	return m, nil
}

func (d *decoder) rangeOf(env envelope) ast.Range {
	var r ast.Range
	if env.Start != nil {
		r.Start = ast.Position{Line: env.Start.Line, Column: env.Start.Column}
	} else {
		r.Start = ast.Position{Line: 1, Column: 1}
	}
	if env.End != nil {
		r.End = ast.Position{Line: env.End.Line, Column: env.End.Column}
	} else {
		r.End = r.Start
	}
	return r
}

// decodeEnvelope is the single dispatch point: every node decode goes
// through here so nested decode calls (node, optNode, nodeList) share one place
// that knows how to turn raw bytes into an (envelope, fields) pair and then
// into an arena node. Kind-specific logic lives in the decodeX functions
// spread across statements.go/expressions.go/declarations.go/jsx.go/
// types.go/enums.go, mirroring how internal/codegen splits emission by
// category.
func (d *decoder) decodeEnvelope(env envelope, raw []byte) (ast.Handle, error) {
	f, err := fields(raw)
	if err != nil {
		return ast.NoHandle, err
	}
	rng := d.rangeOf(env)

	fn, ok := dispatch[env.Type]
	if !ok {
		return ast.NoHandle, fmt.Errorf("wireast: unknown node type %q", env.Type)
	}
	kind, payload, err := fn(d, f)
	if err != nil {
		return ast.NoHandle, fmt.Errorf("wireast: decoding %s: %w", env.Type, err)
	}
	return d.arena.Add(kind, rng, payload), nil
}

// decodeFunc is the per-kind decode entry: given the raw field map, it
// returns the arena Kind and the kind-specific payload to store.
type decodeFunc func(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error)

// dispatch maps a wire node's "type" string to its decode function. Each
// category file (statements.go, expressions.go, declarations.go, jsx.go,
// types.go, enums.go) contributes its slice of the table through an init,
// mirroring how internal/codegen splits emission across the same
// categories.
var dispatch = map[string]decodeFunc{}

func register(entries map[string]decodeFunc) {
	for k, v := range entries {
		dispatch[k] = v
	}
}

// node decodes a required child node under key into a Handle.
func (d *decoder) node(f map[string]json.RawMessage, key string) (ast.Handle, error) {
	raw, ok := f[key]
	if !ok || string(raw) == "null" {
		return ast.NoHandle, fmt.Errorf("missing required field %q", key)
	}
	return d.decodeRaw(raw)
}

// optNode decodes an optional child node under key, returning NoHandle if
// the key is absent or JSON null.
func (d *decoder) optNode(f map[string]json.RawMessage, key string) (ast.Handle, error) {
	raw, ok := f[key]
	if !ok || string(raw) == "null" {
		return ast.NoHandle, nil
	}
	return d.decodeRaw(raw)
}

func (d *decoder) decodeRaw(raw json.RawMessage) (ast.Handle, error) {
	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return ast.NoHandle, err
	}
	return d.decodeEnvelope(env, raw)
}

// nodeList decodes an array of child nodes under key; an absent or JSON null
// key yields a nil list, not an error. Elements that
// are JSON null become ast.NoHandle in the result, which is how array
// elisions (`[1, , 3]`) and other optional-slot-in-a-list shapes round-trip.
func (d *decoder) nodeList(f map[string]json.RawMessage, key string) ([]ast.Handle, error) {
	raw, ok := f[key]
	if !ok || string(raw) == "null" {
		return nil, nil
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("field %q: %w", key, err)
	}
	out := make([]ast.Handle, len(items))
	for i, item := range items {
		if string(item) == "null" {
			out[i] = ast.NoHandle
			continue
		}
		h, err := d.decodeRaw(item)
		if err != nil {
			return nil, fmt.Errorf("field %q[%d]: %w", key, i, err)
		}
		out[i] = h
	}
	return out, nil
}

func str(f map[string]json.RawMessage, key string) (string, error) {
	raw, ok := f[key]
	if !ok {
		return "", fmt.Errorf("missing required field %q", key)
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("field %q: %w", key, err)
	}
	return s, nil
}

func strOr(f map[string]json.RawMessage, key, def string) string {
	s, err := str(f, key)
	if err != nil {
		return def
	}
	return s
}

func boolField(f map[string]json.RawMessage, key string) bool {
	raw, ok := f[key]
	if !ok {
		return false
	}
	var b bool
	_ = json.Unmarshal(raw, &b)
	return b
}

func numField(f map[string]json.RawMessage, key string) (float64, error) {
	raw, ok := f[key]
	if !ok {
		return 0, fmt.Errorf("missing required field %q", key)
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err != nil {
		return 0, fmt.Errorf("field %q: %w", key, err)
	}
	return n, nil
}

func (d *decoder) atomField(f map[string]json.RawMessage, key string) (atom.ID, error) {
	s, err := str(f, key)
	if err != nil {
		return atom.Invalid, err
	}
	return d.atoms.Intern(s), nil
}

// codeUnits decodes a string field into UTF-16 code units, matching
// ast.StringLiteral/DirectiveLiteral's storage (spec §3: "JS source strings
// are logically UTF-16").
func codeUnits(f map[string]json.RawMessage, key string) ([]uint16, error) {
	s, err := str(f, key)
	if err != nil {
		return nil, err
	}
	return utf16Encode(s), nil
}

func utf16Encode(s string) []uint16 {
	out := make([]uint16, 0, len(s))
	for _, r := range s {
		if r <= 0xFFFF {
			out = append(out, uint16(r))
			continue
		}
		r -= 0x10000
		out = append(out, uint16(0xD800+(r>>10)), uint16(0xDC00+(r&0x3FF)))
	}
	return out
}
