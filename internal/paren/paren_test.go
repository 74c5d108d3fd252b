package paren

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jsgen/internal/ast"
)

func TestArrowBodyObjectExpressionNeedsParens(t *testing.T) {
	a := ast.NewArena()
	body := a.Add(ast.KindObjectExpression, ast.Range{}, ast.ObjectExpression{})
	arrow := a.Add(ast.KindArrowFunctionExpression, ast.Range{}, ast.ArrowFunctionExpression{Body: body, Expression: true, TypeParameters: ast.NoHandle, ReturnType: ast.NoHandle, Predicate: ast.NoHandle})

	assert.Equal(t, Yes, Need(a, arrow, body, Right, true))
}

func TestForInitInExpressionNeedsParens(t *testing.T) {
	a := ast.NewArena()
	left := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	right := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	inExpr := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinIn, Left: left, Right: right})
	body := a.Add(ast.KindBlockStatement, ast.Range{}, ast.BlockStatement{})
	forStmt := a.Add(ast.KindForStatement, ast.Range{}, ast.ForStatement{Init: inExpr, Test: ast.NoHandle, Update: ast.NoHandle, Body: body})

	assert.Equal(t, Yes, Need(a, forStmt, inExpr, Left, true))
}

func TestExpressionStatementStartingWithFunctionNeedsParens(t *testing.T) {
	a := ast.NewArena()
	fnBody := a.Add(ast.KindBlockStatement, ast.Range{}, ast.BlockStatement{})
	fn := a.Add(ast.KindFunctionExpression, ast.Range{}, ast.FunctionExpression{Id: ast.NoHandle, Body: fnBody, TypeParameters: ast.NoHandle, ReturnType: ast.NoHandle, Predicate: ast.NoHandle})
	one := a.Add(ast.KindNumericLiteral, ast.Range{}, ast.NumericLiteral{Value: 1})
	sum := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: fn, Right: one})
	stmt := a.Add(ast.KindExpressionStatement, ast.Range{}, ast.ExpressionStatement{Expression: sum})

	assert.Equal(t, Yes, Need(a, stmt, sum, Anywhere, true))
}

func TestUnaryMinusOfNegativeNumberMergesWithSpaceInCompactMode(t *testing.T) {
	a := ast.NewArena()
	inner := a.Add(ast.KindUnaryExpression, ast.Range{}, ast.UnaryExpression{Operator: ast.UnaryMinus, Argument: a.Add(ast.KindNumericLiteral, ast.Range{}, ast.NumericLiteral{Value: 5})})
	outer := a.Add(ast.KindUnaryExpression, ast.Range{}, ast.UnaryExpression{Operator: ast.UnaryMinus, Argument: inner})

	assert.Equal(t, Space, Need(a, outer, inner, Right, false))
	assert.Equal(t, Yes, Need(a, outer, inner, Right, true))
}

func TestOptionalChainTerminatedByPlainMemberNeedsParensOnLeft(t *testing.T) {
	a := ast.NewArena()
	obj := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	prop := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	optChain := a.Add(ast.KindOptionalMemberExpression, ast.Range{}, ast.MemberExpr{Object: obj, Property: prop})
	outerProp := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	outer := a.Add(ast.KindMemberExpression, ast.Range{}, ast.MemberExpr{Object: optChain, Property: outerProp})

	assert.Equal(t, Yes, Need(a, outer, optChain, Left, true))
}

func TestNullishMixedWithAndNeedsParens(t *testing.T) {
	a := ast.NewArena()
	x := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	y := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	nullish := a.Add(ast.KindLogicalExpression, ast.Range{}, ast.LogicalExpression{Operator: ast.LogicalNullish, Left: x, Right: y})
	z := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	and := a.Add(ast.KindLogicalExpression, ast.Range{}, ast.LogicalExpression{Operator: ast.LogicalAnd, Left: nullish, Right: z})

	assert.Equal(t, Yes, Need(a, and, nullish, Left, true))
}

func TestEqualPrecedenceLtrAssociativityRightChildNeedsParens(t *testing.T) {
	a := ast.NewArena()
	x := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	y := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	inner := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: x, Right: y})
	z := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	outer := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: z, Right: inner})

	assert.Equal(t, Yes, Need(a, outer, inner, Right, true))
}

func TestHigherPrecedenceChildNeverNeedsParens(t *testing.T) {
	a := ast.NewArena()
	x := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	y := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	mul := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinMul, Left: x, Right: y})
	z := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})
	add := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: mul, Right: z})

	assert.Equal(t, No, Need(a, add, mul, Left, true))
}
