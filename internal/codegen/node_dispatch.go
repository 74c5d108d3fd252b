package codegen

import (
	"strings"

	"jsgen/internal/ast"
	"jsgen/internal/paren"
)

// fail latches the first logic error (as opposed to I/O error, which the
// buffer itself latches) seen during traversal.
func (g *Generator) fail(err error) {
	if g.genErr == nil {
		g.genErr = err
	}
}

// emit is the single recursive entry point every node goes through: it adds
// the node's pending source-map segment, then dispatches on Kind.
func (g *Generator) emit(h ast.Handle) {
	if g.genErr != nil || g.buf.err != nil {
		return
	}
	if h == ast.NoHandle {
		g.fail(&MalformedASTError{Detail: "attempt to emit a NoHandle node"})
		return
	}

	g.addSegment(h)
	n := g.arena.Get(h)

	switch n.Kind {
	case ast.KindProgram:
		g.emitProgram(h)
	case ast.KindEmptyStatement:
		g.buf.writeASCII(";")
	case ast.KindBlockStatement:
		g.emitBlockStatement(h)
	case ast.KindExpressionStatement:
		g.emitExpressionStatement(h)
	case ast.KindIfStatement:
		g.emitIfStatement(h)
	case ast.KindForStatement:
		g.emitForStatement(h)
	case ast.KindForInStatement:
		g.emitForInStatement(h)
	case ast.KindForOfStatement:
		g.emitForOfStatement(h)
	case ast.KindWhileStatement:
		g.emitWhileStatement(h)
	case ast.KindDoWhileStatement:
		g.emitDoWhileStatement(h)
	case ast.KindReturnStatement:
		g.emitReturnStatement(h)
	case ast.KindBreakStatement:
		g.emitBreakStatement(h)
	case ast.KindContinueStatement:
		g.emitContinueStatement(h)
	case ast.KindThrowStatement:
		g.emitThrowStatement(h)
	case ast.KindTryStatement:
		g.emitTryStatement(h)
	case ast.KindCatchClause:
		g.emitCatchClause(h)
	case ast.KindSwitchStatement:
		g.emitSwitchStatement(h)
	case ast.KindLabeledStatement:
		g.emitLabeledStatement(h)
	case ast.KindWithStatement:
		g.emitWithStatement(h)
	case ast.KindVariableDeclaration:
		g.emitVariableDeclaration(h)
	case ast.KindVariableDeclarator:
		g.emitVariableDeclarator(h)
	case ast.KindDecorator:
		g.buf.writeASCII("@")
		g.emit(n.Payload.(ast.Decorator).Expression)

	case ast.KindFunctionDeclaration:
		g.emitFunction(h, "function")
	case ast.KindClassDeclaration:
		g.emitClass(h)
	case ast.KindExportNamedDeclaration:
		g.emitExportNamed(h)
	case ast.KindExportDefaultDeclaration:
		g.emitExportDefault(h)
	case ast.KindExportAllDeclaration:
		g.emitExportAll(h)
	case ast.KindExportSpecifier:
		g.emitExportSpecifier(h)
	case ast.KindImportDeclaration:
		g.emitImportDeclaration(h)
	case ast.KindImportSpecifier:
		g.emitImportSpecifier(h)
	case ast.KindImportDefaultSpecifier:
		g.emit(n.Payload.(ast.ImportDefaultSpecifier).Local)
	case ast.KindImportNamespaceSpecifier:
		g.buf.writeASCII("* as ")
		g.emit(n.Payload.(ast.ImportNamespaceSpecifier).Local)
	case ast.KindImportAttribute:
		attr := n.Payload.(ast.ImportAttribute)
		g.emit(attr.Key)
		g.buf.writeASCII(":")
		g.space()
		g.emit(attr.Value)

	case ast.KindIdentifier:
		g.emitIdentifier(h)
	case ast.KindNullLiteral:
		g.buf.writeASCII("null")
	case ast.KindBooleanLiteral:
		if n.Payload.(ast.BooleanLiteral).Value {
			g.buf.writeASCII("true")
		} else {
			g.buf.writeASCII("false")
		}
	case ast.KindStringLiteral:
		g.buf.writeUTF8(escapeString(n.Payload.(ast.StringLiteral).CodeUnits))
	case ast.KindNumericLiteral:
		g.buf.writeASCII(formatNumber(n.Payload.(ast.NumericLiteral).Value))
	case ast.KindRegExpLiteral:
		re := n.Payload.(ast.RegExpLiteral)
		g.buf.writeASCII("/")
		g.buf.writeUTF8(re.Pattern)
		g.buf.writeASCII("/")
		g.buf.writeASCII(re.Flags)
	case ast.KindDirectiveLiteral:
		g.buf.writeUTF8(escapeString(n.Payload.(ast.DirectiveLiteral).CodeUnits))
	case ast.KindThisExpression:
		g.buf.writeASCII("this")
	case ast.KindSuper:
		g.buf.writeASCII("super")

	case ast.KindArrayExpression:
		g.emitArrayExpression(h)
	case ast.KindObjectExpression:
		g.emitObjectExpression(h)
	case ast.KindObjectPattern:
		g.emitObjectPattern(h)
	case ast.KindArrayPattern:
		g.emitArrayPattern(h)
	case ast.KindAssignmentPattern:
		ap := n.Payload.(ast.AssignmentPattern)
		g.emit(ap.Left)
		g.space()
		g.buf.writeASCII("=")
		g.space()
		g.emit(ap.Right)
	case ast.KindRestElement:
		g.buf.writeASCII("...")
		g.emit(n.Payload.(ast.RestElement).Argument)
	case ast.KindSpreadElement:
		g.buf.writeASCII("...")
		g.emitExprChild(h, n.Payload.(ast.SpreadElement).Argument, paren.Anywhere)
	case ast.KindProperty:
		g.emitProperty(h)
	case ast.KindFunctionExpression:
		g.emitFunction(h, "function")
	case ast.KindArrowFunctionExpression:
		g.emitArrowFunction(h)
	case ast.KindClassExpression:
		g.emitClass(h)
	case ast.KindClassBody:
		g.emitClassBody(h)
	case ast.KindClassProperty:
		g.emitClassProperty(h)
	case ast.KindClassPrivateProperty:
		g.emitClassPrivateProperty(h)
	case ast.KindMethodDefinition:
		g.emitMethodDefinition(h)
	case ast.KindTemplateLiteral:
		g.emitTemplateLiteral(h)
	case ast.KindTemplateElement:
		for i, line := range strings.Split(n.Payload.(ast.TemplateElement).Raw, "\n") {
			if i > 0 {
				g.buf.newline()
			}
			g.buf.writeUTF8(line)
		}
	case ast.KindTaggedTemplateExpression:
		tt := n.Payload.(ast.TaggedTemplateExpression)
		g.emitExprChild(h, tt.Tag, paren.Left)
		g.emit(tt.Quasi)
	case ast.KindMemberExpression, ast.KindOptionalMemberExpression:
		g.emitMemberExpr(h)
	case ast.KindCallExpression, ast.KindOptionalCallExpression:
		g.emitCallExpr(h)
	case ast.KindNewExpression:
		g.emitNewExpression(h)
	case ast.KindMetaProperty:
		mp := n.Payload.(ast.MetaProperty)
		g.emit(mp.Meta)
		g.buf.writeASCII(".")
		g.emit(mp.Property)
	case ast.KindUpdateExpression:
		g.emitUpdateExpression(h)
	case ast.KindUnaryExpression:
		g.emitUnaryExpression(h)
	case ast.KindBinaryExpression:
		g.emitBinaryExpression(h)
	case ast.KindLogicalExpression:
		g.emitLogicalExpression(h)
	case ast.KindConditionalExpression:
		g.emitConditionalExpression(h)
	case ast.KindAssignmentExpression:
		g.emitAssignmentExpression(h)
	case ast.KindSequenceExpression:
		g.emitSequenceExpression(h)
	case ast.KindYieldExpression:
		g.emitYieldExpression(h)
	case ast.KindImportExpression:
		g.buf.writeASCII("import(")
		g.emit(n.Payload.(ast.ImportExpression).Source)
		g.buf.writeASCII(")")

	case ast.KindJSXElement:
		g.emitJSXElement(h)
	case ast.KindJSXFragment:
		g.emitJSXFragment(h)
	case ast.KindJSXOpeningElement:
		g.emitJSXOpeningElement(h)
	case ast.KindJSXClosingElement:
		ce := n.Payload.(ast.JSXClosingElement)
		g.buf.writeASCII("</")
		g.emit(ce.Name)
		g.buf.writeASCII(">")
	case ast.KindJSXOpeningFragment:
		g.buf.writeASCII("<>")
	case ast.KindJSXClosingFragment:
		g.buf.writeASCII("</>")
	case ast.KindJSXAttribute:
		g.emitJSXAttribute(h)
	case ast.KindJSXSpreadAttribute:
		g.buf.writeASCII("{...")
		g.emit(n.Payload.(ast.JSXSpreadAttribute).Argument)
		g.buf.writeASCII("}")
	case ast.KindJSXExpressionContainer:
		g.buf.writeASCII("{")
		g.emit(n.Payload.(ast.JSXExpressionContainer).Expression)
		g.buf.writeASCII("}")
	case ast.KindJSXText:
		for i, line := range strings.Split(n.Payload.(ast.JSXText).Raw, "\n") {
			if i > 0 {
				g.buf.newline()
			}
			g.buf.writeUTF8(line)
		}

	case ast.KindTypeAnnotation:
		g.emit(n.Payload.(ast.TypeAnnotation).TypeAnnotation)
	case ast.KindAnyTypeAnnotation:
		g.buf.writeASCII("any")
	case ast.KindMixedTypeAnnotation:
		g.buf.writeASCII("mixed")
	case ast.KindEmptyTypeAnnotation:
		g.buf.writeASCII("empty")
	case ast.KindExistsTypeAnnotation:
		g.buf.writeASCII("*")
	case ast.KindVoidTypeAnnotation:
		g.buf.writeASCII("void")
	case ast.KindNullLiteralTypeAnnotation:
		g.buf.writeASCII("null")
	case ast.KindStringTypeAnnotation:
		g.buf.writeASCII("string")
	case ast.KindNumberTypeAnnotation:
		g.buf.writeASCII("number")
	case ast.KindBooleanTypeAnnotation:
		g.buf.writeASCII("boolean")
	case ast.KindSymbolTypeAnnotation:
		g.buf.writeASCII("symbol")
	case ast.KindStringLiteralTypeAnnotation:
		g.buf.writeUTF8(escapeString(n.Payload.(ast.StringLiteralTypeAnnotation).Value))
	case ast.KindNumberLiteralTypeAnnotation:
		g.buf.writeASCII(formatNumber(n.Payload.(ast.NumberLiteralTypeAnnotation).Value))
	case ast.KindBooleanLiteralTypeAnnotation:
		if n.Payload.(ast.BooleanLiteralTypeAnnotation).Value {
			g.buf.writeASCII("true")
		} else {
			g.buf.writeASCII("false")
		}
	case ast.KindUnionTypeAnnotation:
		g.emitUnionType(h)
	case ast.KindIntersectionTypeAnnotation:
		g.emitIntersectionType(h)
	case ast.KindGenericTypeAnnotation:
		g.emitGenericType(h)
	case ast.KindNullableTypeAnnotation:
		g.buf.writeASCII("?")
		g.emit(n.Payload.(ast.NullableTypeAnnotation).TypeAnnotation)
	case ast.KindArrayTypeAnnotation:
		g.emitExprChild(h, n.Payload.(ast.ArrayTypeAnnotation).ElementType, paren.Left)
		g.buf.writeASCII("[]")
	case ast.KindFunctionTypeAnnotation:
		g.emitFunctionType(h)
	case ast.KindFunctionTypeParam:
		g.emitFunctionTypeParam(h)
	case ast.KindTypeParameterDeclaration:
		g.emitTypeParamList(n.Payload.(ast.TypeParameterDeclaration).Params)
	case ast.KindTypeParameterInstantiation:
		g.emitTypeParamList(n.Payload.(ast.TypeParameterInstantiation).Params)
	case ast.KindTypeParameter:
		g.emitTypeParameter(h)
	case ast.KindTypeAlias:
		g.emitTypeAlias(h)
	case ast.KindDeclareFunction:
		g.buf.writeASCII("declare function ")
		g.emit(n.Payload.(ast.DeclareFunction).Id)
		g.buf.writeASCII(";")
	case ast.KindVariance:
		text, _ := g.atoms.TryResolve(n.Payload.(ast.Variance).Kind)
		if text == "minus" {
			g.buf.writeASCII("-")
		} else {
			g.buf.writeASCII("+")
		}

	case ast.KindEnumDeclaration:
		ed := n.Payload.(ast.EnumDeclaration)
		g.buf.writeASCII("enum ")
		g.emit(ed.Id)
		g.space()
		g.emit(ed.Body)
	case ast.KindEnumStringBody:
		g.emitEnumBody(h, "string")
	case ast.KindEnumNumberBody:
		g.emitEnumBody(h, "number")
	case ast.KindEnumBooleanBody:
		g.emitEnumBody(h, "boolean")
	case ast.KindEnumSymbolBody:
		g.emitEnumBody(h, "symbol")
	case ast.KindEnumDefaultedMember:
		g.emit(n.Payload.(ast.EnumDefaultedMember).Id)
	case ast.KindEnumStringMember, ast.KindEnumNumberMember, ast.KindEnumBooleanMember:
		em := n.Payload.(ast.EnumMember)
		g.emit(em.Id)
		g.space()
		g.buf.writeASCII("=")
		g.space()
		g.emit(em.Init)

	default:
		g.fail(&UnsupportedKindError{Kind: n.Kind.String()})
	}
}

// emitExprChild emits child, reached from parent at childPos, wrapping it in
// parens (or a bare space, in compact sign-merge cases) exactly as the
// parenthesization oracle dictates.
func (g *Generator) emitExprChild(parent, child ast.Handle, pos paren.ChildPos) {
	switch paren.Need(g.arena, parent, child, pos, g.pretty()) {
	case paren.Yes:
		g.buf.writeASCII("(")
		g.emit(child)
		g.buf.writeASCII(")")
	case paren.Space:
		g.buf.writeASCII(" ")
		g.emit(child)
	default:
		g.emit(child)
	}
}

func (g *Generator) emitIdentifier(h ast.Handle) {
	id := g.arena.Get(h).Payload.(ast.Identifier)
	text, ok := g.atoms.TryResolve(id.Name)
	if !ok {
		g.fail(&MalformedASTError{Detail: "Identifier.Name does not resolve to an interned string"})
		return
	}
	g.buf.writeUTF8(text)
	if id.Optional {
		g.buf.writeASCII("?")
	}
	if id.TypeAnnotation != ast.NoHandle {
		g.buf.writeASCII(":")
		g.space()
		g.emit(id.TypeAnnotation)
	}
}

func (g *Generator) emitProgram(h ast.Handle) {
	body := g.arena.Get(h).Payload.(ast.Program).Body
	g.emitStatementList(body)
}

// emitStatementList emits a sequence of statements, each indented and
// separated from the previous one by a newline in pretty mode. Semicolon
// placement for expression statements and declarations is handled by the
// individual emitters; this
// helper only manages inter-statement spacing.
func (g *Generator) emitStatementList(stmts []ast.Handle) {
	for i, s := range stmts {
		if i > 0 {
			g.newlineOrNothing()
		}
		g.writeIndent()
		g.emit(s)
	}
}
