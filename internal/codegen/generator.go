// Package codegen walks an AST arena and emits JavaScript (with Flow type
// annotations and JSX) source text plus a Source Map v3 document.
//
// The traversal, precedence/paren integration, and source-map segment
// bookkeeping are ported from the reference generator's GenJS struct and
// gen_node dispatch; node emission is split across statements.go,
// expressions.go, declarations.go, jsx.go, types.go, and enums.go by
// category, mirroring how internal/codegen's teacher ancestor
// (internal/parser/mysql's convertCreateTable/parseTableOptions) keeps one
// switch arm per tagged external shape.
package codegen

import (
	"io"

	"jsgen/internal/ast"
	"jsgen/internal/atom"
	"jsgen/internal/sourcemap"
)

// Mode selects pretty (indented, spaced) vs compact output.
type Mode uint8

const (
	Compact Mode = iota
	Pretty
)

// Generator holds everything one Generate call needs: the arena and atom
// table being read, the output buffer, the in-flight source-map segment,
// and the current indentation depth.
type Generator struct {
	arena *ast.Arena
	atoms *atom.Table
	buf   *buffer
	sm    *sourcemap.Builder
	mode  Mode

	indent int

	pendingSet bool
	pendingDst [2]int // line, col (1-based)
	pendingSrc [2]int // line, col (1-based)

	// genErr latches the first non-I/O error (unsupported kind, malformed
	// AST) seen during traversal, separately from buf.err which latches
	// writer failures.
	genErr error
}

func newGenerator(arena *ast.Arena, atoms *atom.Table, w io.Writer, mode Mode, sourceName string) *Generator {
	return &Generator{
		arena: arena,
		atoms: atoms,
		buf:   newBuffer(w),
		sm:    sourcemap.NewBuilder(sourceName),
		mode:  mode,
	}
}

func (g *Generator) pretty() bool { return g.mode == Pretty }

// Generate walks root and writes its emission to w, returning the finalized
// source map. root may be a Program or any statement/expression the caller
// selects directly (spec §6).
func Generate(arena *ast.Arena, atoms *atom.Table, w io.Writer, root ast.Handle, mode Mode, sourceName string) (*sourcemap.Map, error) {
	g := newGenerator(arena, atoms, w, mode, sourceName)

	g.emit(root)
	if g.genErr != nil {
		return nil, g.genErr
	}

	g.buf.newline()
	g.flushPending()

	if g.buf.err != nil {
		return nil, g.buf.err
	}
	return g.sm.Finalize(), nil
}

// addSegment pairs the current output position with node h's source-range
// start, flushing whatever segment was already pending.
func (g *Generator) addSegment(h ast.Handle) {
	g.flushPending()

	rng := g.arena.Range(h)
	line, col := g.buf.position()
	g.pendingSet = true
	g.pendingDst = [2]int{line, col}
	g.pendingSrc = [2]int{rng.Start.Line, rng.Start.Column}
}

// flushPending converts the pending segment to 0-based positions and hands
// it to the source-map builder.
func (g *Generator) flushPending() {
	if !g.pendingSet {
		return
	}
	srcID := 0
	g.sm.AddRaw(
		g.pendingDst[0]-1, g.pendingDst[1]-1,
		g.pendingSrc[0]-1, g.pendingSrc[1]-1,
		&srcID, nil,
	)
	g.pendingSet = false
}

// space writes a single space in Pretty mode and nothing in Compact mode.
func (g *Generator) space() {
	if g.pretty() {
		g.buf.writeASCII(" ")
	}
}

// newlineOrNothing emits a newline in Pretty mode and nothing in Compact.
func (g *Generator) newlineOrNothing() {
	if g.pretty() {
		g.buf.newline()
	}
}

// writeIndent emits the current indentation level in Pretty mode.
func (g *Generator) writeIndent() {
	if g.pretty() {
		g.buf.indent(g.indent * 2)
	}
}

func (g *Generator) comma() {
	g.buf.writeASCII(",")
	g.space()
}
