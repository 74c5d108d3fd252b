// Package paren implements the parenthesization oracle: given a parent node,
// a child node, and the child's position relative to the parent, it decides
// whether the child needs to be wrapped in parens (or, for a couple of unary
// cases, just separated by a space) when the generator emits it.
//
// The oracle is ported verbatim from the reference generator's need_parens:
// an ordered list of context-sensitive overrides, falling back to a
// precedence/associativity comparison when none apply.
package paren

import (
	"jsgen/internal/ast"
	"jsgen/internal/precedence"
)

// ChildPos is the child's syntactic position relative to its parent.
type ChildPos uint8

const (
	Left ChildPos = iota
	Anywhere
	Right
)

// NeedParens is the oracle's verdict for a given child.
type NeedParens uint8

const (
	No NeedParens = iota
	Yes
	// Space means a single space is sufficient to separate the child from
	// the parent without emitting parens (e.g. `- -x` instead of `-(-x)`),
	// used only in compact mode; pretty mode always promotes this to Yes.
	Space
)

func from(b bool) NeedParens {
	if b {
		return Yes
	}
	return No
}

// Need decides whether child, reached from parent at childPos, needs
// parens. pretty selects pretty vs. compact mode, which affects the unary
// sign-merge rule (see signMergeNeeded) and the precedence precedence.Of
// gives an argument-less NewExpression.
func Need(a *ast.Arena, parent, child ast.Handle, childPos ChildPos, pretty bool) NeedParens {
	parentNode := a.Get(parent)
	childNode := a.Get(child)

	switch parentNode.Kind {
	case ast.KindArrowFunctionExpression:
		// (x) => ({x: 10}) needs parens to avoid confusing it with a block
		// and a labeled statement.
		if childPos == Right && childNode.Kind == ast.KindObjectExpression {
			return Yes
		}

	case ast.KindForStatement:
		// for((a in b);..;..) needs parens to avoid confusing it with
		// for(a in b).
		if childNode.Kind == ast.KindBinaryExpression {
			be := childNode.Payload.(ast.BinaryExpression)
			return from(be.Operator == ast.BinIn)
		}
		return No

	case ast.KindExpressionStatement:
		// Expression statement like (function () {} + 1) needs parens.
		return from(rootStartsWith(a, child, pretty, func(n *ast.Node) bool {
			switch n.Kind {
			case ast.KindFunctionExpression, ast.KindClassExpression,
				ast.KindObjectExpression, ast.KindObjectPattern:
				return true
			}
			return false
		}))
	}

	if signMergeNeeded(a, parentNode, child, childPos, pretty) {
		if pretty {
			return Yes
		}
		return Space
	}

	if parentNode.Kind == ast.KindMemberExpression || parentNode.Kind == ast.KindCallExpression {
		if (childNode.Kind == ast.KindOptionalMemberExpression || childNode.Kind == ast.KindOptionalCallExpression) &&
			childPos == Left {
			// When optional chains are terminated by non-optional
			// member/calls, the left-hand side needs parens: avoids
			// confusing `(a?.b).c` with `a?.b.c`.
			return Yes
		}
	}

	if (checkAndOr(parentNode) && checkNullish(childNode)) || (checkNullish(parentNode) && checkAndOr(childNode)) {
		// Nullish coalescing always requires parens when mixed with any
		// other logical operation.
		return Yes
	}

	childPrec, _ := precedence.Of(a, child, pretty)
	if childPrec == precedence.AlwaysParen {
		return Yes
	}

	parentPrec, parentAssoc := precedence.Of(a, parent, pretty)

	if childPrec < parentPrec {
		return Yes
	}
	if childPrec > parentPrec {
		return No
	}
	if childPos == Anywhere {
		return Yes
	}
	if childPrec == precedence.Top {
		return No
	}
	if parentAssoc == precedence.Rtl {
		return from(childPos == Left)
	}
	return from(childPos == Right)
}

// signMergeNeeded implements the `-(-x)` / `+(+x)` / `a-(-x)` / `a+(+x)`
// override: adjacent +/- tokens that would otherwise merge into `--`/`++`/
// `+-` need a separator.
func signMergeNeeded(a *ast.Arena, parentNode *ast.Node, child ast.Handle, childPos ChildPos, pretty bool) bool {
	switch {
	case isUnaryOp(parentNode, ast.UnaryMinus):
		return rootStartsWith(a, child, pretty, checkMinus)
	case isUnaryOp(parentNode, ast.UnaryPlus):
		return rootStartsWith(a, child, pretty, checkPlus)
	case childPos == Right && isBinaryOp(parentNode, ast.BinSub):
		return rootStartsWith(a, child, pretty, checkMinus)
	case childPos == Right && isBinaryOp(parentNode, ast.BinAdd):
		return rootStartsWith(a, child, pretty, checkPlus)
	}
	return false
}

func isUnaryOp(n *ast.Node, op ast.UnaryOp) bool {
	if n.Kind != ast.KindUnaryExpression {
		return false
	}
	return n.Payload.(ast.UnaryExpression).Operator == op
}

func isBinaryOp(n *ast.Node, op ast.BinaryOp) bool {
	if n.Kind != ast.KindBinaryExpression {
		return false
	}
	return n.Payload.(ast.BinaryExpression).Operator == op
}

func isUpdatePrefix(n *ast.Node, op ast.UpdateOp) bool {
	if n.Kind != ast.KindUpdateExpression {
		return false
	}
	ue := n.Payload.(ast.UpdateExpression)
	return ue.Prefix && ue.Operator == op
}

func checkPlus(n *ast.Node) bool {
	return isUnaryOp(n, ast.UnaryPlus) || isUpdatePrefix(n, ast.UpdateIncr)
}

func checkMinus(n *ast.Node) bool {
	return isUnaryOp(n, ast.UnaryMinus) || isUpdatePrefix(n, ast.UpdateDecr)
}

func checkAndOr(n *ast.Node) bool {
	if n.Kind != ast.KindLogicalExpression {
		return false
	}
	op := n.Payload.(ast.LogicalExpression).Operator
	return op == ast.LogicalAnd || op == ast.LogicalOr
}

func checkNullish(n *ast.Node) bool {
	if n.Kind != ast.KindLogicalExpression {
		return false
	}
	return n.Payload.(ast.LogicalExpression).Operator == ast.LogicalNullish
}

// rootStartsWith reports whether expr's leftmost leaf (the node reached by
// always descending into the leftmost child that would print without
// leading parens) satisfies pred.
func rootStartsWith(a *ast.Arena, expr ast.Handle, pretty bool, pred func(*ast.Node) bool) bool {
	return spineStartsWith(a, expr, ast.NoHandle, pretty, pred)
}

// spineStartsWith is expr_starts_with ported directly: it walks the
// leftmost-printed spine of expr, stopping as soon as need_parens would
// force a paren onto the node it's about to descend into.
func spineStartsWith(a *ast.Arena, expr, parent ast.Handle, pretty bool, pred func(*ast.Node) bool) bool {
	if parent != ast.NoHandle {
		if Need(a, parent, expr, Left, pretty) == Yes {
			return false
		}
	}

	n := a.Get(expr)
	if pred(n) {
		return true
	}

	switch n.Kind {
	case ast.KindCallExpression, ast.KindOptionalCallExpression:
		callee := n.Payload.(ast.CallExpr).Callee
		return spineStartsWith(a, callee, expr, pretty, pred)
	case ast.KindBinaryExpression:
		left := n.Payload.(ast.BinaryExpression).Left
		return spineStartsWith(a, left, expr, pretty, pred)
	case ast.KindLogicalExpression:
		left := n.Payload.(ast.LogicalExpression).Left
		return spineStartsWith(a, left, expr, pretty, pred)
	case ast.KindConditionalExpression:
		test := n.Payload.(ast.ConditionalExpression).Test
		return spineStartsWith(a, test, expr, pretty, pred)
	case ast.KindAssignmentExpression:
		left := n.Payload.(ast.AssignmentExpression).Left
		return spineStartsWith(a, left, expr, pretty, pred)
	case ast.KindUpdateExpression:
		ue := n.Payload.(ast.UpdateExpression)
		return !ue.Prefix && spineStartsWith(a, ue.Argument, expr, pretty, pred)
	case ast.KindUnaryExpression:
		// Unary expressions in this AST are always prefix, so this branch
		// mirrors the reference's `!prefix && ...` but never actually
		// recurses; kept for structural parity with the ported source.
		return false
	case ast.KindMemberExpression, ast.KindOptionalMemberExpression:
		object := n.Payload.(ast.MemberExpr).Object
		return spineStartsWith(a, object, expr, pretty, pred)
	case ast.KindTaggedTemplateExpression:
		tag := n.Payload.(ast.TaggedTemplateExpression).Tag
		return spineStartsWith(a, tag, expr, pretty, pred)
	}
	return false
}
