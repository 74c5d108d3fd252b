package codegen

import "jsgen/internal/ast"

func (g *Generator) emitEnumBody(h ast.Handle, kindWord string) {
	eb := g.arena.Get(h).Payload.(ast.EnumBody)
	if eb.ExplicitType {
		g.buf.writeASCII(":")
		g.space()
		g.buf.writeASCII(kindWord)
		g.space()
	}
	g.buf.writeASCII("{")
	g.indent++
	for _, m := range eb.Members {
		g.newlineOrNothing()
		g.writeIndent()
		g.emit(m)
		g.buf.writeASCII(",")
	}
	if eb.HasUnknownMembers {
		g.newlineOrNothing()
		g.writeIndent()
		g.buf.writeASCII("...")
	}
	g.indent--
	g.newlineOrNothing()
	g.writeIndent()
	g.buf.writeASCII("}")
}
