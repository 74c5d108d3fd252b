package codegen

import "jsgen/internal/ast"

func (g *Generator) emitJSXElement(h ast.Handle) {
	je := g.arena.Get(h).Payload.(ast.JSXElement)
	g.emit(je.OpeningElement)
	if je.ClosingElement == ast.NoHandle {
		return
	}
	for _, c := range je.Children {
		g.emit(c)
	}
	g.emit(je.ClosingElement)
}

func (g *Generator) emitJSXFragment(h ast.Handle) {
	jf := g.arena.Get(h).Payload.(ast.JSXFragment)
	g.emit(jf.OpeningFragment)
	for _, c := range jf.Children {
		g.emit(c)
	}
	g.emit(jf.ClosingFragment)
}

func (g *Generator) emitJSXOpeningElement(h ast.Handle) {
	oe := g.arena.Get(h).Payload.(ast.JSXOpeningElement)
	g.buf.writeASCII("<")
	g.emit(oe.Name)
	for _, a := range oe.Attributes {
		g.buf.writeASCII(" ")
		g.emit(a)
	}
	if oe.SelfClosing {
		g.buf.writeASCII("/>")
		return
	}
	g.buf.writeASCII(">")
}

func (g *Generator) emitJSXAttribute(h ast.Handle) {
	attr := g.arena.Get(h).Payload.(ast.JSXAttribute)
	g.emit(attr.Name)
	if attr.Value != ast.NoHandle {
		g.buf.writeASCII("=")
		g.emit(attr.Value)
	}
}
