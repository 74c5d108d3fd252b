package codegen

import (
	"jsgen/internal/ast"
	"jsgen/internal/paren"
)

func (g *Generator) emitUnionType(h ast.Handle) {
	types := g.arena.Get(h).Payload.(ast.UnionTypeAnnotation).Types
	for i, t := range types {
		if i > 0 {
			g.space()
			g.buf.writeASCII("|")
			g.space()
		}
		g.emitExprChild(h, t, paren.Anywhere)
	}
}

func (g *Generator) emitIntersectionType(h ast.Handle) {
	types := g.arena.Get(h).Payload.(ast.IntersectionTypeAnnotation).Types
	for i, t := range types {
		if i > 0 {
			g.space()
			g.buf.writeASCII("&")
			g.space()
		}
		g.emitExprChild(h, t, paren.Anywhere)
	}
}

func (g *Generator) emitGenericType(h ast.Handle) {
	gt := g.arena.Get(h).Payload.(ast.GenericTypeAnnotation)
	g.emit(gt.Id)
	if gt.TypeParameters != ast.NoHandle {
		g.emit(gt.TypeParameters)
	}
}

// emitFunctionType emits a bare function type. FunctionTypeAnnotation has no
// entry in the precedence table, so the oracle always wraps it in parens
// when it appears as a union/intersection member or anywhere else parens
// would be needed to disambiguate it from the surrounding type.
func (g *Generator) emitFunctionType(h ast.Handle) {
	ft := g.arena.Get(h).Payload.(ast.FunctionTypeAnnotation)
	if ft.TypeParameters != ast.NoHandle {
		g.emit(ft.TypeParameters)
	}
	g.buf.writeASCII("(")
	wrote := false
	if ft.This != ast.NoHandle {
		g.buf.writeASCII("this:")
		g.space()
		g.emit(ft.This)
		wrote = true
	}
	for _, p := range ft.Params {
		if wrote {
			g.comma()
		}
		g.emit(p)
		wrote = true
	}
	if ft.Rest != ast.NoHandle {
		if wrote {
			g.comma()
		}
		g.buf.writeASCII("...")
		g.emit(ft.Rest)
	}
	g.buf.writeASCII(")")
	g.buf.writeASCII("=>")
	g.space()
	g.emit(ft.ReturnType)
}

func (g *Generator) emitFunctionTypeParam(h ast.Handle) {
	p := g.arena.Get(h).Payload.(ast.FunctionTypeParam)
	if p.Name != ast.NoHandle {
		g.emit(p.Name)
		if p.Optional {
			g.buf.writeASCII("?")
		}
		g.buf.writeASCII(":")
		g.space()
	}
	g.emit(p.TypeAnnotation)
}

func (g *Generator) emitTypeParamList(params []ast.Handle) {
	g.buf.writeASCII("<")
	for i, p := range params {
		if i > 0 {
			g.comma()
		}
		g.emit(p)
	}
	g.buf.writeASCII(">")
}

func (g *Generator) emitTypeParameter(h ast.Handle) {
	tp := g.arena.Get(h).Payload.(ast.TypeParameter)
	if tp.Variance != ast.NoHandle {
		g.emit(tp.Variance)
	}
	text, _ := g.atoms.TryResolve(tp.Name)
	g.buf.writeUTF8(text)
	if tp.Bound != ast.NoHandle {
		g.buf.writeASCII(":")
		g.space()
		g.emit(tp.Bound)
	}
	if tp.Default != ast.NoHandle {
		g.buf.writeASCII("=")
		g.space()
		g.emit(tp.Default)
	}
}

func (g *Generator) emitTypeAlias(h ast.Handle) {
	ta := g.arena.Get(h).Payload.(ast.TypeAlias)
	g.buf.writeASCII("type ")
	g.emit(ta.Id)
	if ta.TypeParameters != ast.NoHandle {
		g.emit(ta.TypeParameters)
	}
	g.space()
	g.buf.writeASCII("=")
	g.space()
	g.emitExprChild(h, ta.Right, paren.Anywhere)
	g.buf.writeASCII(";")
}
