package codegen

import (
	"jsgen/internal/ast"
	"jsgen/internal/paren"
)

// endsWithBlock reports whether h's emission ends with a `}`, looking
// through the bodies of loops, with, labels, try/catch/finally, if/else and
// export wrappers — ported from the reference generator's ends_with_block.
// The if/else and do-while emitters consult it to choose the separator
// before `else` and `while`.
func endsWithBlock(a *ast.Arena, h ast.Handle) bool {
	n := a.Get(h)
	switch n.Kind {
	case ast.KindBlockStatement, ast.KindFunctionDeclaration, ast.KindClassDeclaration,
		ast.KindSwitchStatement:
		return true
	case ast.KindWhileStatement:
		return endsWithBlock(a, n.Payload.(ast.WhileStatement).Body)
	case ast.KindForStatement:
		return endsWithBlock(a, n.Payload.(ast.ForStatement).Body)
	case ast.KindForInStatement:
		return endsWithBlock(a, n.Payload.(ast.ForInStatement).Body)
	case ast.KindForOfStatement:
		return endsWithBlock(a, n.Payload.(ast.ForOfStatement).Body)
	case ast.KindWithStatement:
		return endsWithBlock(a, n.Payload.(ast.WithStatement).Body)
	case ast.KindLabeledStatement:
		return endsWithBlock(a, n.Payload.(ast.LabeledStatement).Body)
	case ast.KindTryStatement:
		ts := n.Payload.(ast.TryStatement)
		if ts.Finalizer != ast.NoHandle {
			return endsWithBlock(a, ts.Finalizer)
		}
		if ts.Handler != ast.NoHandle {
			return endsWithBlock(a, a.Get(ts.Handler).Payload.(ast.CatchClause).Body)
		}
		return endsWithBlock(a, ts.Block)
	case ast.KindIfStatement:
		ifs := n.Payload.(ast.IfStatement)
		if ifs.Alternate != ast.NoHandle {
			return endsWithBlock(a, ifs.Alternate)
		}
		return endsWithBlock(a, ifs.Consequent)
	case ast.KindExportNamedDeclaration:
		end := n.Payload.(ast.ExportNamedDeclaration)
		if end.Declaration != ast.NoHandle {
			return endsWithBlock(a, end.Declaration)
		}
		return false
	case ast.KindExportDefaultDeclaration:
		return endsWithBlock(a, n.Payload.(ast.ExportDefaultDeclaration).Declaration)
	}
	return false
}

// isIfWithoutElse reports whether h is an IfStatement with no else branch.
func isIfWithoutElse(a *ast.Arena, h ast.Handle) bool {
	n := a.Get(h)
	if n.Kind != ast.KindIfStatement {
		return false
	}
	return n.Payload.(ast.IfStatement).Alternate == ast.NoHandle
}

func (g *Generator) emitBlockStatement(h ast.Handle) {
	body := g.arena.Get(h).Payload.(ast.BlockStatement).Body
	g.buf.writeASCII("{")
	if len(body) > 0 {
		g.indent++
		g.newlineOrNothing()
		g.emitStatementList(body)
		g.indent--
		g.newlineOrNothing()
		g.writeIndent()
	}
	g.buf.writeASCII("}")
}

// emitBodyAsBlock emits body verbatim if it already is a BlockStatement, or
// wraps it in one otherwise — used to avoid the dangling-else ambiguity when
// an if-without-else sits as the consequent of an if-with-else.
func (g *Generator) emitBodyAsBlock(body ast.Handle) {
	if g.arena.Kind(body) == ast.KindBlockStatement {
		g.emit(body)
		return
	}
	g.buf.writeASCII("{")
	g.indent++
	g.newlineOrNothing()
	g.writeIndent()
	g.emit(body)
	g.indent--
	g.newlineOrNothing()
	g.writeIndent()
	g.buf.writeASCII("}")
}

func (g *Generator) emitExpressionStatement(h ast.Handle) {
	expr := g.arena.Get(h).Payload.(ast.ExpressionStatement).Expression
	g.emitExprChild(h, expr, paren.Anywhere)
	g.buf.writeASCII(";")
}

func (g *Generator) emitIfStatement(h ast.Handle) {
	ifs := g.arena.Get(h).Payload.(ast.IfStatement)

	g.buf.writeASCII("if(")
	g.emit(ifs.Test)
	g.buf.writeASCII(")")

	if ifs.Alternate != ast.NoHandle && isIfWithoutElse(g.arena, ifs.Consequent) {
		g.emitBodyAsBlock(ifs.Consequent)
	} else {
		g.emitClauseBody(ifs.Consequent)
	}

	if ifs.Alternate == ast.NoHandle {
		return
	}

	if endsWithBlock(g.arena, ifs.Consequent) || isIfWithoutElse(g.arena, ifs.Consequent) {
		g.space()
	} else if g.pretty() {
		g.buf.newline()
		g.writeIndent()
	}
	g.buf.writeASCII("else")
	if g.arena.Kind(ifs.Alternate) == ast.KindIfStatement {
		g.buf.writeASCII(" ")
		g.emit(ifs.Alternate)
	} else {
		g.emitKeywordBody(ifs.Alternate)
	}
}

// emitClauseBody emits the body of an if/while/for/with clause. A block is
// emitted inline, after a space in pretty mode only; anything else (itself
// always self-terminating, per every statement emitter writing its own
// trailing ";" or "}") follows directly in compact mode, or goes on a new
// line one indent level deeper in pretty mode.
func (g *Generator) emitClauseBody(body ast.Handle) {
	if g.arena.Kind(body) == ast.KindBlockStatement {
		g.space()
		g.emit(body)
		return
	}
	if g.pretty() {
		g.indent++
		g.buf.newline()
		g.writeIndent()
		g.emit(body)
		g.indent--
		return
	}
	g.emit(body)
}

func (g *Generator) emitForStatement(h ast.Handle) {
	fs := g.arena.Get(h).Payload.(ast.ForStatement)
	g.buf.writeASCII("for(")
	if fs.Init != ast.NoHandle {
		if g.arena.Kind(fs.Init) == ast.KindVariableDeclaration {
			g.emit(fs.Init)
		} else {
			g.emitExprChild(h, fs.Init, paren.Anywhere)
		}
	}
	g.buf.writeASCII(";")
	g.space()
	if fs.Test != ast.NoHandle {
		g.emit(fs.Test)
	}
	g.buf.writeASCII(";")
	g.space()
	if fs.Update != ast.NoHandle {
		g.emit(fs.Update)
	}
	g.buf.writeASCII(")")
	g.emitClauseBody(fs.Body)
}

func (g *Generator) emitForInStatement(h ast.Handle) {
	fs := g.arena.Get(h).Payload.(ast.ForInStatement)
	g.buf.writeASCII("for(")
	g.emit(fs.Left)
	g.buf.writeASCII(" in ")
	g.emit(fs.Right)
	g.buf.writeASCII(")")
	g.emitClauseBody(fs.Body)
}

func (g *Generator) emitForOfStatement(h ast.Handle) {
	fs := g.arena.Get(h).Payload.(ast.ForOfStatement)
	g.buf.writeASCII("for")
	if fs.IsAwait {
		g.buf.writeASCII(" await")
	}
	g.buf.writeASCII("(")
	g.emit(fs.Left)
	g.buf.writeASCII(" of ")
	g.emit(fs.Right)
	g.buf.writeASCII(")")
	g.emitClauseBody(fs.Body)
}

func (g *Generator) emitWhileStatement(h ast.Handle) {
	ws := g.arena.Get(h).Payload.(ast.WhileStatement)
	g.buf.writeASCII("while(")
	g.emit(ws.Test)
	g.buf.writeASCII(")")
	g.emitClauseBody(ws.Body)
}

// emitKeywordBody emits body right after a bare keyword (no intervening
// punctuation): a block gets an optional pretty-mode space, anything else
// needs a mandatory space to avoid merging with the keyword into one
// identifier token (e.g. "do" + "x++" would read back as "dox++").
func (g *Generator) emitKeywordBody(body ast.Handle) {
	if g.arena.Kind(body) == ast.KindBlockStatement {
		g.space()
		g.emit(body)
		return
	}
	g.buf.writeASCII(" ")
	if g.pretty() {
		g.indent++
		g.emit(body)
		g.indent--
		return
	}
	g.emit(body)
}

func (g *Generator) emitDoWhileStatement(h ast.Handle) {
	ds := g.arena.Get(h).Payload.(ast.DoWhileStatement)
	g.buf.writeASCII("do")
	g.emitKeywordBody(ds.Body)
	if endsWithBlock(g.arena, ds.Body) {
		g.space()
	} else {
		g.newlineOrNothing()
		g.writeIndent()
	}
	g.buf.writeASCII("while(")
	g.emit(ds.Test)
	g.buf.writeASCII(");")
}

func (g *Generator) emitReturnStatement(h ast.Handle) {
	rs := g.arena.Get(h).Payload.(ast.ReturnStatement)
	g.buf.writeASCII("return")
	if rs.Argument != ast.NoHandle {
		g.buf.writeASCII(" ")
		g.emitExprChild(h, rs.Argument, paren.Anywhere)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitBreakStatement(h ast.Handle) {
	bs := g.arena.Get(h).Payload.(ast.BreakStatement)
	g.buf.writeASCII("break")
	if bs.Label != ast.NoHandle {
		g.buf.writeASCII(" ")
		g.emit(bs.Label)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitContinueStatement(h ast.Handle) {
	cs := g.arena.Get(h).Payload.(ast.ContinueStatement)
	g.buf.writeASCII("continue")
	if cs.Label != ast.NoHandle {
		g.buf.writeASCII(" ")
		g.emit(cs.Label)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitThrowStatement(h ast.Handle) {
	ts := g.arena.Get(h).Payload.(ast.ThrowStatement)
	g.buf.writeASCII("throw ")
	g.emitExprChild(h, ts.Argument, paren.Anywhere)
	g.buf.writeASCII(";")
}

func (g *Generator) emitTryStatement(h ast.Handle) {
	ts := g.arena.Get(h).Payload.(ast.TryStatement)
	g.buf.writeASCII("try")
	g.space()
	g.emit(ts.Block)
	if ts.Handler != ast.NoHandle {
		g.space()
		g.emit(ts.Handler)
	}
	if ts.Finalizer != ast.NoHandle {
		g.space()
		g.buf.writeASCII("finally")
		g.space()
		g.emit(ts.Finalizer)
	}
}

func (g *Generator) emitCatchClause(h ast.Handle) {
	cc := g.arena.Get(h).Payload.(ast.CatchClause)
	g.buf.writeASCII("catch")
	if cc.Param != ast.NoHandle {
		g.buf.writeASCII("(")
		g.emit(cc.Param)
		g.buf.writeASCII(")")
	}
	g.space()
	g.emit(cc.Body)
}

func (g *Generator) emitSwitchStatement(h ast.Handle) {
	ss := g.arena.Get(h).Payload.(ast.SwitchStatement)
	g.buf.writeASCII("switch(")
	g.emit(ss.Discriminant)
	g.buf.writeASCII(")")
	g.space()
	g.buf.writeASCII("{")
	g.indent++
	for _, c := range ss.Cases {
		g.newlineOrNothing()
		g.writeIndent()
		g.emitSwitchCase(c)
	}
	g.indent--
	g.newlineOrNothing()
	g.writeIndent()
	g.buf.writeASCII("}")
}

func (g *Generator) emitSwitchCase(h ast.Handle) {
	sc := g.arena.Get(h).Payload.(ast.SwitchCase)
	if sc.Test != ast.NoHandle {
		g.buf.writeASCII("case ")
		g.emit(sc.Test)
		g.buf.writeASCII(":")
	} else {
		g.buf.writeASCII("default:")
	}
	g.indent++
	for _, s := range sc.Consequent {
		g.newlineOrNothing()
		g.writeIndent()
		g.emit(s)
	}
	g.indent--
}

func (g *Generator) emitLabeledStatement(h ast.Handle) {
	ls := g.arena.Get(h).Payload.(ast.LabeledStatement)
	g.emit(ls.Label)
	g.buf.writeASCII(":")
	g.space()
	g.emit(ls.Body)
}

func (g *Generator) emitWithStatement(h ast.Handle) {
	ws := g.arena.Get(h).Payload.(ast.WithStatement)
	g.buf.writeASCII("with(")
	g.emit(ws.Object)
	g.buf.writeASCII(")")
	g.emitClauseBody(ws.Body)
}

func (g *Generator) emitVariableDeclaration(h ast.Handle) {
	vd := g.arena.Get(h).Payload.(ast.VariableDeclaration)
	switch vd.Kind {
	case ast.VarKindLet:
		g.buf.writeASCII("let ")
	case ast.VarKindConst:
		g.buf.writeASCII("const ")
	default:
		g.buf.writeASCII("var ")
	}
	for i, d := range vd.Declarations {
		if i > 0 {
			g.comma()
		}
		g.emit(d)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitVariableDeclarator(h ast.Handle) {
	vd := g.arena.Get(h).Payload.(ast.VariableDeclarator)
	g.emit(vd.Id)
	if vd.Init != ast.NoHandle {
		g.space()
		g.buf.writeASCII("=")
		g.space()
		g.emitExprChild(h, vd.Init, paren.Right)
	}
}
