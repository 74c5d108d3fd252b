package codegen

import (
	"jsgen/internal/ast"
)

func (g *Generator) emitExportNamed(h ast.Handle) {
	end := g.arena.Get(h).Payload.(ast.ExportNamedDeclaration)
	g.buf.writeASCII("export ")
	if end.Declaration != ast.NoHandle {
		g.emit(end.Declaration)
		return
	}
	g.buf.writeASCII("{")
	for i, s := range end.Specifiers {
		if i > 0 {
			g.comma()
		}
		g.emit(s)
	}
	g.buf.writeASCII("}")
	if end.Source != ast.NoHandle {
		g.buf.writeASCII(" from ")
		g.emit(end.Source)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitExportDefault(h ast.Handle) {
	decl := g.arena.Get(h).Payload.(ast.ExportDefaultDeclaration).Declaration
	g.buf.writeASCII("export default ")
	g.emit(decl)
	switch g.arena.Kind(decl) {
	case ast.KindFunctionDeclaration, ast.KindClassDeclaration:
	default:
		g.buf.writeASCII(";")
	}
}

func (g *Generator) emitExportAll(h ast.Handle) {
	ea := g.arena.Get(h).Payload.(ast.ExportAllDeclaration)
	g.buf.writeASCII("export *")
	if ea.Exported != ast.NoHandle {
		g.buf.writeASCII(" as ")
		g.emit(ea.Exported)
	}
	g.buf.writeASCII(" from ")
	g.emit(ea.Source)
	g.buf.writeASCII(";")
}

func (g *Generator) emitExportSpecifier(h ast.Handle) {
	es := g.arena.Get(h).Payload.(ast.ExportSpecifier)
	g.emit(es.Local)
	if es.Exported != es.Local {
		g.buf.writeASCII(" as ")
		g.emit(es.Exported)
	}
}

func (g *Generator) emitImportDeclaration(h ast.Handle) {
	id := g.arena.Get(h).Payload.(ast.ImportDeclaration)

	if len(id.Specifiers) == 0 {
		g.buf.writeASCII("import ")
		g.emit(id.Source)
		g.emitImportAttributes(id.Attributes)
		g.buf.writeASCII(";")
		return
	}

	g.buf.writeASCII("import ")
	if id.ImportKind == ast.ImportKindType {
		g.buf.writeASCII("type ")
	} else if id.ImportKind == ast.ImportKindTypeof {
		g.buf.writeASCII("typeof ")
	}

	var named []ast.Handle
	i := 0
	for ; i < len(id.Specifiers); i++ {
		s := id.Specifiers[i]
		switch g.arena.Kind(s) {
		case ast.KindImportDefaultSpecifier, ast.KindImportNamespaceSpecifier:
			if i > 0 {
				g.comma()
			}
			g.emit(s)
		default:
			named = id.Specifiers[i:]
			i = len(id.Specifiers)
		}
	}
	if len(named) > 0 {
		if g.arena.Kind(id.Specifiers[0]) == ast.KindImportDefaultSpecifier ||
			g.arena.Kind(id.Specifiers[0]) == ast.KindImportNamespaceSpecifier {
			g.comma()
		}
		g.buf.writeASCII("{")
		for j, s := range named {
			if j > 0 {
				g.comma()
			}
			g.emit(s)
		}
		g.buf.writeASCII("}")
	}

	g.buf.writeASCII(" from ")
	g.emit(id.Source)
	g.emitImportAttributes(id.Attributes)
	g.buf.writeASCII(";")
}

func (g *Generator) emitImportAttributes(attrs []ast.Handle) {
	if len(attrs) == 0 {
		return
	}
	g.buf.writeASCII(" assert {")
	for i, a := range attrs {
		if i > 0 {
			g.comma()
		}
		g.emit(a)
	}
	g.buf.writeASCII("}")
}

func (g *Generator) emitImportSpecifier(h ast.Handle) {
	is := g.arena.Get(h).Payload.(ast.ImportSpecifier)
	if is.ImportKind == ast.ImportKindType {
		g.buf.writeASCII("type ")
	} else if is.ImportKind == ast.ImportKindTypeof {
		g.buf.writeASCII("typeof ")
	}
	g.emit(is.Imported)
	if is.Local != is.Imported {
		g.buf.writeASCII(" as ")
		g.emit(is.Local)
	}
}
