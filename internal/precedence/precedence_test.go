package precedence

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"jsgen/internal/ast"
)

func TestBinaryPrecedenceOrdering(t *testing.T) {
	assert.Greater(t, BinaryPrecedence(ast.BinExp), BinaryPrecedence(ast.BinMul))
	assert.Greater(t, BinaryPrecedence(ast.BinMul), BinaryPrecedence(ast.BinAdd))
	assert.Greater(t, BinaryPrecedence(ast.BinAdd), BinaryPrecedence(ast.BinLShift))
	assert.Equal(t, BinaryPrecedence(ast.BinBitOr), Precedence(4))
}

func TestInAndInstanceofOutrankEveryOtherBinaryOperator(t *testing.T) {
	in := BinaryPrecedence(ast.BinIn)
	instanceof := BinaryPrecedence(ast.BinInstanceof)
	assert.Equal(t, in, instanceof)
	assert.Greater(t, in, BinaryPrecedence(ast.BinExp))
}

func TestLogicalPrecedenceOrdering(t *testing.T) {
	assert.Greater(t, LogicalPrecedence(ast.LogicalAnd), LogicalPrecedence(ast.LogicalOr))
	assert.Greater(t, LogicalPrecedence(ast.LogicalOr), LogicalPrecedence(ast.LogicalNullish))
}

func TestOfPrimaryExpressions(t *testing.T) {
	a := ast.NewArena()
	h := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{})

	prec, assoc := Of(a, h, true)
	assert.Equal(t, Primary, prec)
	assert.Equal(t, Ltr, assoc)
}

func TestOfNewExpressionWithNoArgsIsWeakerInCompactMode(t *testing.T) {
	a := ast.NewArena()
	h := a.Add(ast.KindNewExpression, ast.Range{}, ast.NewExpression{Callee: ast.NoHandle})

	prec, _ := Of(a, h, false)
	assert.Equal(t, NewNoArgs, prec)

	prettyPrec, _ := Of(a, h, true)
	assert.Equal(t, Member, prettyPrec)
}

func TestOfUnknownKindIsAlwaysParen(t *testing.T) {
	a := ast.NewArena()
	h := a.Add(ast.KindJSXText, ast.Range{}, ast.JSXText{Raw: "x"})

	prec, _ := Of(a, h, true)
	assert.Equal(t, AlwaysParen, prec)
}
