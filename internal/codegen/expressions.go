package codegen

import (
	"jsgen/internal/ast"
	"jsgen/internal/paren"
	"jsgen/internal/precedence"
)

func (g *Generator) emitArrayExpression(h ast.Handle) {
	ae := g.arena.Get(h).Payload.(ast.ArrayExpression)
	g.buf.writeASCII("[")
	for i, el := range ae.Elements {
		if i > 0 {
			g.comma()
		}
		if el == ast.NoHandle {
			continue // elision: an array hole.
		}
		// Spreads are written as is; any other element is parenthesized only
		// when it binds no tighter than a comma (Seq or below).
		if g.arena.Kind(el) != ast.KindSpreadElement {
			if prec, _ := precedence.Of(g.arena, el, g.pretty()); prec <= precedence.Seq {
				g.buf.writeASCII("(")
				g.emit(el)
				g.buf.writeASCII(")")
				continue
			}
		}
		g.emit(el)
	}
	if len(ae.Elements) > 0 && ae.Elements[len(ae.Elements)-1] == ast.NoHandle {
		// A trailing hole needs an extra comma so it round-trips as a hole
		// rather than being absorbed as a plain trailing comma.
		g.buf.writeASCII(",")
	}
	g.buf.writeASCII("]")
}

func (g *Generator) emitObjectExpression(h ast.Handle) {
	props := g.arena.Get(h).Payload.(ast.ObjectExpression).Properties
	g.emitPropertyList(props)
}

func (g *Generator) emitObjectPattern(h ast.Handle) {
	props := g.arena.Get(h).Payload.(ast.ObjectPattern).Properties
	g.emitPropertyList(props)
}

func (g *Generator) emitPropertyList(props []ast.Handle) {
	g.buf.writeASCII("{")
	if len(props) > 0 {
		g.indent++
		g.newlineOrNothing()
		for i, p := range props {
			if i > 0 {
				g.buf.writeASCII(",")
				g.newlineOrNothing()
			}
			g.writeIndent()
			g.emit(p)
		}
		g.indent--
		g.newlineOrNothing()
		g.writeIndent()
	}
	g.buf.writeASCII("}")
}

func (g *Generator) emitArrayPattern(h ast.Handle) {
	els := g.arena.Get(h).Payload.(ast.ArrayPattern).Elements
	g.buf.writeASCII("[")
	for i, el := range els {
		if i > 0 {
			g.comma()
		}
		if el == ast.NoHandle {
			continue
		}
		g.emit(el)
	}
	g.buf.writeASCII("]")
}

func (g *Generator) emitProperty(h ast.Handle) {
	p := g.arena.Get(h).Payload.(ast.Property)

	if p.Shorthand {
		g.emit(p.Key)
		if p.Value != ast.NoHandle && g.arena.Kind(p.Value) == ast.KindAssignmentPattern {
			ap := g.arena.Get(p.Value).Payload.(ast.AssignmentPattern)
			g.space()
			g.buf.writeASCII("=")
			g.space()
			g.emit(ap.Right)
		}
		return
	}

	switch p.Kind {
	case ast.PropertyKindGet:
		g.buf.writeASCII("get ")
	case ast.PropertyKindSet:
		g.buf.writeASCII("set ")
	}

	if p.Method || p.Kind != ast.PropertyKindInit {
		g.emitPropertyKey(p.Key, p.Computed)
		fe := g.arena.Get(p.Value).Payload.(ast.FunctionExpression)
		g.emitFunctionSignatureAndBody(fe)
		return
	}

	g.emitPropertyKey(p.Key, p.Computed)
	g.buf.writeASCII(":")
	g.space()
	g.emitExprChild(h, p.Value, paren.Right)
}

func (g *Generator) emitPropertyKey(key ast.Handle, computed bool) {
	if computed {
		g.buf.writeASCII("[")
		g.emit(key)
		g.buf.writeASCII("]")
		return
	}
	g.emit(key)
}

// emitFunction emits a FunctionDeclaration or FunctionExpression. keyword is
// "function".
func (g *Generator) emitFunction(h ast.Handle, keyword string) {
	n := g.arena.Get(h)
	var id, typeParams, retType, predicate, body ast.Handle
	var params []ast.Handle
	var isGenerator, isAsync bool

	switch n.Kind {
	case ast.KindFunctionDeclaration:
		fd := n.Payload.(ast.FunctionDeclaration)
		id, typeParams, retType, predicate, body = fd.Id, fd.TypeParameters, fd.ReturnType, fd.Predicate, fd.Body
		params, isGenerator, isAsync = fd.Params, fd.Generator, fd.IsAsync
	default:
		fe := n.Payload.(ast.FunctionExpression)
		id, typeParams, retType, predicate, body = fe.Id, fe.TypeParameters, fe.ReturnType, fe.Predicate, fe.Body
		params, isGenerator, isAsync = fe.Params, fe.Generator, fe.IsAsync
	}

	if isAsync {
		g.buf.writeASCII("async ")
	}
	g.buf.writeASCII(keyword)
	if isGenerator {
		g.buf.writeASCII("*")
	}
	if id != ast.NoHandle {
		g.buf.writeASCII(" ")
		g.emit(id)
	}
	g.emitSignature(typeParams, params, retType, predicate)
	g.space()
	g.emit(body)
}

func (g *Generator) emitFunctionSignatureAndBody(fe ast.FunctionExpression) {
	g.emitSignature(fe.TypeParameters, fe.Params, fe.ReturnType, fe.Predicate)
	g.space()
	g.emit(fe.Body)
}

func (g *Generator) emitSignature(typeParams ast.Handle, params []ast.Handle, retType, predicate ast.Handle) {
	if typeParams != ast.NoHandle {
		g.emit(typeParams)
	}
	g.buf.writeASCII("(")
	for i, p := range params {
		if i > 0 {
			g.comma()
		}
		g.emit(p)
	}
	g.buf.writeASCII(")")
	if retType != ast.NoHandle {
		g.buf.writeASCII(":")
		g.space()
		g.emit(retType)
	}
	if predicate != ast.NoHandle {
		g.buf.writeASCII(" %checks(")
		g.emit(predicate)
		g.buf.writeASCII(")")
	}
}

func (g *Generator) emitArrowFunction(h ast.Handle) {
	af := g.arena.Get(h).Payload.(ast.ArrowFunctionExpression)
	if af.IsAsync {
		g.buf.writeASCII("async ")
	}

	// A single untyped, non-destructured, non-default, non-rest parameter
	// prints without parens.
	if af.TypeParameters == ast.NoHandle && len(af.Params) == 1 && af.ReturnType == ast.NoHandle {
		p := af.Params[0]
		if g.arena.Kind(p) == ast.KindIdentifier {
			id := g.arena.Get(p).Payload.(ast.Identifier)
			if id.TypeAnnotation == ast.NoHandle && !id.Optional {
				g.emit(p)
				g.buf.writeASCII("=>")
				g.emitArrowBody(h, af.Body)
				return
			}
		}
	}

	g.emitSignature(af.TypeParameters, af.Params, af.ReturnType, af.Predicate)
	g.buf.writeASCII("=>")
	g.emitArrowBody(h, af.Body)
}

func (g *Generator) emitArrowBody(h, body ast.Handle) {
	g.space()
	if g.arena.Kind(body) == ast.KindBlockStatement {
		g.emit(body)
		return
	}
	g.emitExprChild(h, body, paren.Right)
}

func (g *Generator) emitClass(h ast.Handle) {
	n := g.arena.Get(h)
	var id, typeParams, superClass, superTypeParams, body ast.Handle
	var implements, decorators []ast.Handle

	switch n.Kind {
	case ast.KindClassDeclaration:
		cd := n.Payload.(ast.ClassDeclaration)
		id, typeParams, superClass, superTypeParams, body = cd.Id, cd.TypeParameters, cd.SuperClass, cd.SuperTypeParameters, cd.Body
		implements, decorators = cd.Implements, cd.Decorators
	default:
		ce := n.Payload.(ast.ClassExpression)
		id, typeParams, superClass, superTypeParams, body = ce.Id, ce.TypeParameters, ce.SuperClass, ce.SuperTypeParameters, ce.Body
		implements, decorators = ce.Implements, ce.Decorators
	}

	for _, d := range decorators {
		g.emit(d)
		g.newlineOrNothing()
		g.writeIndent()
	}

	g.buf.writeASCII("class")
	if id != ast.NoHandle {
		g.buf.writeASCII(" ")
		g.emit(id)
	}
	if typeParams != ast.NoHandle {
		g.emit(typeParams)
	}
	if superClass != ast.NoHandle {
		g.buf.writeASCII(" extends ")
		g.emitExprChild(h, superClass, paren.Left)
		if superTypeParams != ast.NoHandle {
			g.emit(superTypeParams)
		}
	}
	if len(implements) > 0 {
		g.buf.writeASCII(" implements ")
		for i, impl := range implements {
			if i > 0 {
				g.comma()
			}
			g.emit(impl)
		}
	}
	g.space()
	g.emit(body)
}

func (g *Generator) emitClassBody(h ast.Handle) {
	members := g.arena.Get(h).Payload.(ast.ClassBody).Body
	g.buf.writeASCII("{")
	if len(members) > 0 {
		g.indent++
		for _, m := range members {
			g.newlineOrNothing()
			g.writeIndent()
			g.emit(m)
		}
		g.indent--
		g.newlineOrNothing()
		g.writeIndent()
	}
	g.buf.writeASCII("}")
}

func (g *Generator) emitClassProperty(h ast.Handle) {
	cp := g.arena.Get(h).Payload.(ast.ClassProperty)
	if cp.IsStatic {
		g.buf.writeASCII("static ")
	}
	g.emitPropertyKey(cp.Key, cp.Computed)
	if cp.Value != ast.NoHandle {
		g.space()
		g.buf.writeASCII("=")
		g.space()
		g.emitExprChild(h, cp.Value, paren.Right)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitClassPrivateProperty(h ast.Handle) {
	cp := g.arena.Get(h).Payload.(ast.ClassPrivateProperty)
	if cp.IsStatic {
		g.buf.writeASCII("static ")
	}
	g.buf.writeASCII("#")
	g.emit(cp.Key)
	if cp.Value != ast.NoHandle {
		g.space()
		g.buf.writeASCII("=")
		g.space()
		g.emitExprChild(h, cp.Value, paren.Right)
	}
	g.buf.writeASCII(";")
}

func (g *Generator) emitMethodDefinition(h ast.Handle) {
	md := g.arena.Get(h).Payload.(ast.MethodDefinition)
	if md.IsStatic {
		g.buf.writeASCII("static ")
	}
	fe := g.arena.Get(md.Value).Payload.(ast.FunctionExpression)
	if fe.IsAsync {
		g.buf.writeASCII("async ")
	}
	if fe.Generator {
		g.buf.writeASCII("*")
	}
	switch md.Kind {
	case ast.MethodKindGet:
		g.buf.writeASCII("get ")
	case ast.MethodKindSet:
		g.buf.writeASCII("set ")
	}
	g.emitPropertyKey(md.Key, md.Computed)
	g.emitFunctionSignatureAndBody(fe)
}

func (g *Generator) emitTemplateLiteral(h ast.Handle) {
	tl := g.arena.Get(h).Payload.(ast.TemplateLiteral)
	g.buf.writeASCII("`")
	for i, q := range tl.Quasis {
		g.emit(q)
		if i < len(tl.Expressions) {
			g.buf.writeASCII("${")
			g.emit(tl.Expressions[i])
			g.buf.writeASCII("}")
		}
	}
	g.buf.writeASCII("`")
}

func (g *Generator) emitMemberExpr(h ast.Handle) {
	n := g.arena.Get(h)
	me := n.Payload.(ast.MemberExpr)
	optional := n.Kind == ast.KindOptionalMemberExpression

	g.emitExprChild(h, me.Object, paren.Left)
	if me.Computed {
		if optional {
			g.buf.writeASCII("?.")
		}
		g.buf.writeASCII("[")
		g.emit(me.Property)
		g.buf.writeASCII("]")
		return
	}
	if optional {
		g.buf.writeASCII("?.")
	} else {
		g.buf.writeASCII(".")
	}
	g.emit(me.Property)
}

func (g *Generator) emitCallExpr(h ast.Handle) {
	n := g.arena.Get(h)
	ce := n.Payload.(ast.CallExpr)
	optional := n.Kind == ast.KindOptionalCallExpression

	g.emitExprChild(h, ce.Callee, paren.Left)
	if optional {
		g.buf.writeASCII("?.")
	}
	g.buf.writeASCII("(")
	for i, a := range ce.Arguments {
		if i > 0 {
			g.comma()
		}
		g.emitExprChild(h, a, paren.Anywhere)
	}
	g.buf.writeASCII(")")
}

func (g *Generator) emitNewExpression(h ast.Handle) {
	ne := g.arena.Get(h).Payload.(ast.NewExpression)
	g.buf.writeASCII("new ")
	g.emitExprChild(h, ne.Callee, paren.Left)
	g.buf.writeASCII("(")
	for i, a := range ne.Arguments {
		if i > 0 {
			g.comma()
		}
		g.emitExprChild(h, a, paren.Anywhere)
	}
	g.buf.writeASCII(")")
}

func (g *Generator) emitUpdateExpression(h ast.Handle) {
	ue := g.arena.Get(h).Payload.(ast.UpdateExpression)
	op := "++"
	if ue.Operator == ast.UpdateDecr {
		op = "--"
	}
	if ue.Prefix {
		g.buf.writeASCII(op)
		g.emitExprChild(h, ue.Argument, paren.Right)
		return
	}
	g.emitExprChild(h, ue.Argument, paren.Left)
	g.buf.writeASCII(op)
}

var unaryOpText = map[ast.UnaryOp]string{
	ast.UnaryMinus:  "-",
	ast.UnaryPlus:   "+",
	ast.UnaryNot:    "!",
	ast.UnaryBitNot: "~",
	ast.UnaryTypeof: "typeof ",
	ast.UnaryVoid:   "void ",
	ast.UnaryDelete: "delete ",
}

func (g *Generator) emitUnaryExpression(h ast.Handle) {
	ue := g.arena.Get(h).Payload.(ast.UnaryExpression)
	g.buf.writeASCII(unaryOpText[ue.Operator])
	g.emitExprChild(h, ue.Argument, paren.Right)
}

var binaryOpText = map[ast.BinaryOp]string{
	ast.BinEq: "==", ast.BinNotEq: "!=", ast.BinStrictEq: "===", ast.BinStrictNotEq: "!==",
	ast.BinLess: "<", ast.BinLessEq: "<=", ast.BinGreater: ">", ast.BinGreaterEq: ">=",
	ast.BinLShift: "<<", ast.BinRShift: ">>", ast.BinURShift: ">>>",
	ast.BinAdd: "+", ast.BinSub: "-", ast.BinMul: "*", ast.BinDiv: "/", ast.BinMod: "%",
	ast.BinBitOr: "|", ast.BinBitXor: "^", ast.BinBitAnd: "&",
	ast.BinIn: "in", ast.BinInstanceof: "instanceof", ast.BinExp: "**",
}

// isWordBinaryOp reports whether op is spelled as a keyword ("in",
// "instanceof") rather than a symbol, which always needs a surrounding word
// boundary even in compact mode.
func isWordBinaryOp(op ast.BinaryOp) bool {
	return op == ast.BinIn || op == ast.BinInstanceof
}

func (g *Generator) emitBinaryExpression(h ast.Handle) {
	be := g.arena.Get(h).Payload.(ast.BinaryExpression)
	g.emitExprChild(h, be.Left, paren.Left)
	if isWordBinaryOp(be.Operator) {
		g.buf.writeASCII(" ")
	} else {
		g.space()
	}
	g.buf.writeASCII(binaryOpText[be.Operator])
	if isWordBinaryOp(be.Operator) {
		g.buf.writeASCII(" ")
	} else {
		g.space()
	}
	g.emitExprChild(h, be.Right, paren.Right)
}

var logicalOpText = map[ast.LogicalOp]string{
	ast.LogicalOr: "||", ast.LogicalAnd: "&&", ast.LogicalNullish: "??",
}

func (g *Generator) emitLogicalExpression(h ast.Handle) {
	le := g.arena.Get(h).Payload.(ast.LogicalExpression)
	g.emitExprChild(h, le.Left, paren.Left)
	g.space()
	g.buf.writeASCII(logicalOpText[le.Operator])
	g.space()
	g.emitExprChild(h, le.Right, paren.Right)
}

func (g *Generator) emitConditionalExpression(h ast.Handle) {
	ce := g.arena.Get(h).Payload.(ast.ConditionalExpression)
	g.emitExprChild(h, ce.Test, paren.Left)
	g.space()
	g.buf.writeASCII("?")
	g.space()
	g.emitExprChild(h, ce.Consequent, paren.Anywhere)
	g.space()
	g.buf.writeASCII(":")
	g.space()
	g.emitExprChild(h, ce.Alternate, paren.Right)
}

var assignOpText = map[ast.AssignOp]string{
	ast.AssignPlain: "=", ast.AssignAdd: "+=", ast.AssignSub: "-=", ast.AssignMul: "*=",
	ast.AssignDiv: "/=", ast.AssignMod: "%=", ast.AssignExp: "**=",
	ast.AssignLShift: "<<=", ast.AssignRShift: ">>=", ast.AssignURShift: ">>>=",
	ast.AssignBitOr: "|=", ast.AssignBitXor: "^=", ast.AssignBitAnd: "&=",
	ast.AssignOr: "||=", ast.AssignAnd: "&&=", ast.AssignNullish: "??=",
}

func (g *Generator) emitAssignmentExpression(h ast.Handle) {
	ae := g.arena.Get(h).Payload.(ast.AssignmentExpression)
	g.emitExprChild(h, ae.Left, paren.Left)
	g.space()
	g.buf.writeASCII(assignOpText[ae.Operator])
	g.space()
	g.emitExprChild(h, ae.Right, paren.Right)
}

func (g *Generator) emitSequenceExpression(h ast.Handle) {
	exprs := g.arena.Get(h).Payload.(ast.SequenceExpression).Expressions
	for i, e := range exprs {
		if i > 0 {
			g.comma()
		}
		// First element at Left, the rest at Right; relies on SequenceExpression being Rtl in internal/precedence.
		pos := paren.Right
		if i == 0 {
			pos = paren.Left
		}
		g.emitExprChild(h, e, pos)
	}
}

func (g *Generator) emitYieldExpression(h ast.Handle) {
	ye := g.arena.Get(h).Payload.(ast.YieldExpression)
	g.buf.writeASCII("yield")
	if ye.Delegate {
		g.buf.writeASCII("*")
	}
	if ye.Argument != ast.NoHandle {
		g.buf.writeASCII(" ")
		g.emitExprChild(h, ye.Argument, paren.Right)
	}
}
