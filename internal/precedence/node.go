package precedence

import "jsgen/internal/ast"

// Of returns the precedence and associativity of node, reading whatever
// extra context (the current pretty/compact mode, the node's payload) the
// rule for that kind needs. It mirrors the reference generator's
// get_precedence dispatch: any kind not listed here sits at AlwaysParen,
// which forces the oracle to always parenthesize it as a child.
func Of(a *ast.Arena, h ast.Handle, pretty bool) (Precedence, Assoc) {
	n := a.Get(h)
	switch n.Kind {
	case ast.KindIdentifier, ast.KindNullLiteral, ast.KindBooleanLiteral,
		ast.KindStringLiteral, ast.KindNumericLiteral, ast.KindRegExpLiteral,
		ast.KindThisExpression, ast.KindSuper, ast.KindArrayExpression,
		ast.KindObjectExpression, ast.KindObjectPattern, ast.KindFunctionExpression,
		ast.KindClassExpression, ast.KindTemplateLiteral:
		return Primary, Ltr

	case ast.KindMemberExpression, ast.KindOptionalMemberExpression,
		ast.KindMetaProperty, ast.KindCallExpression, ast.KindOptionalCallExpression:
		return Member, Ltr

	case ast.KindNewExpression:
		ne := n.Payload.(ast.NewExpression)
		if pretty || len(ne.Arguments) != 0 {
			return Member, Ltr
		}
		return NewNoArgs, Ltr

	case ast.KindTaggedTemplateExpression, ast.KindImportExpression:
		return TaggedTemplate, Ltr

	case ast.KindUpdateExpression:
		ue := n.Payload.(ast.UpdateExpression)
		if ue.Prefix {
			return PostUpdate, Ltr
		}
		return Unary, Rtl

	case ast.KindUnaryExpression:
		return Unary, Rtl

	case ast.KindBinaryExpression:
		be := n.Payload.(ast.BinaryExpression)
		return BinStart + BinaryPrecedence(be.Operator), Ltr

	case ast.KindLogicalExpression:
		le := n.Payload.(ast.LogicalExpression)
		return BinStart + LogicalPrecedence(le.Operator), Ltr

	case ast.KindConditionalExpression:
		return Cond, Rtl

	case ast.KindAssignmentExpression:
		return Assign, Rtl

	case ast.KindYieldExpression, ast.KindArrowFunctionExpression:
		return Yield, Ltr

	case ast.KindSequenceExpression:
		return Seq, Rtl

	case ast.KindExistsTypeAnnotation, ast.KindEmptyTypeAnnotation,
		ast.KindStringTypeAnnotation, ast.KindNumberTypeAnnotation,
		ast.KindStringLiteralTypeAnnotation, ast.KindNumberLiteralTypeAnnotation,
		ast.KindBooleanTypeAnnotation, ast.KindBooleanLiteralTypeAnnotation,
		ast.KindNullLiteralTypeAnnotation, ast.KindSymbolTypeAnnotation,
		ast.KindAnyTypeAnnotation, ast.KindMixedTypeAnnotation, ast.KindVoidTypeAnnotation:
		return Primary, Ltr

	case ast.KindUnionTypeAnnotation:
		return UnionType, Ltr

	case ast.KindIntersectionTypeAnnotation:
		return IntersectionType, Ltr
	}

	return AlwaysParen, Ltr
}
