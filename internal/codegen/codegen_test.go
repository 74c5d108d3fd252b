package codegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsgen/internal/ast"
	"jsgen/internal/atom"
)

func generate(t *testing.T, a *ast.Arena, atoms *atom.Table, root ast.Handle, mode Mode) string {
	t.Helper()
	var buf bytes.Buffer
	_, err := Generate(a, atoms, &buf, root, mode, "in.js")
	require.NoError(t, err)
	return buf.String()
}

func num(a *ast.Arena, v float64) ast.Handle {
	return a.Add(ast.KindNumericLiteral, ast.Range{}, ast.NumericLiteral{Value: v})
}

func ident(a *ast.Arena, atoms *atom.Table, name string) ast.Handle {
	return a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{Name: atoms.Intern(name), TypeAnnotation: ast.NoHandle})
}

func exprStmt(a *ast.Arena, expr ast.Handle) ast.Handle {
	return a.Add(ast.KindExpressionStatement, ast.Range{}, ast.ExpressionStatement{Expression: expr})
}

func program(a *ast.Arena, stmts ...ast.Handle) ast.Handle {
	return a.Add(ast.KindProgram, ast.Range{}, ast.Program{Body: stmts})
}

func TestBinarySubtractionOfNegativeNumberMergesWithSpaceInCompactMode(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	one := num(a, 1)
	two := num(a, 2)
	negTwo := a.Add(ast.KindUnaryExpression, ast.Range{}, ast.UnaryExpression{Operator: ast.UnaryMinus, Argument: two})
	sub := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinSub, Left: one, Right: negTwo})
	root := program(a, exprStmt(a, sub))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "1- -2;\n", out)
}

func TestBinarySubtractionOfNegativeNumberParenthesizedInPrettyMode(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	one := num(a, 1)
	two := num(a, 2)
	negTwo := a.Add(ast.KindUnaryExpression, ast.Range{}, ast.UnaryExpression{Operator: ast.UnaryMinus, Argument: two})
	sub := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinSub, Left: one, Right: negTwo})
	root := program(a, exprStmt(a, sub))

	out := generate(t, a, atoms, root, Pretty)
	assert.Contains(t, out, "1 - (-2);")
}

func TestLeftAssociativeAdditionChainNeedsNoParens(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	one, two, three := num(a, 1), num(a, 2), num(a, 3)
	inner := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: one, Right: two})
	outer := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: inner, Right: three})
	root := program(a, exprStmt(a, outer))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "1+2+3;\n", out)
}

func TestRightChildOfSamePrecedenceAdditionNeedsParens(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	one, two, three := num(a, 1), num(a, 2), num(a, 3)
	inner := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: two, Right: three})
	outer := a.Add(ast.KindBinaryExpression, ast.Range{}, ast.BinaryExpression{Operator: ast.BinAdd, Left: one, Right: inner})
	root := program(a, exprStmt(a, outer))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "1+(2+3);\n", out)
}

func TestNullishMixedWithAndNeedsParens(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	x, y, z := ident(a, atoms, "a"), ident(a, atoms, "b"), ident(a, atoms, "c")
	and := a.Add(ast.KindLogicalExpression, ast.Range{}, ast.LogicalExpression{Operator: ast.LogicalAnd, Left: x, Right: y})
	nullish := a.Add(ast.KindLogicalExpression, ast.Range{}, ast.LogicalExpression{Operator: ast.LogicalNullish, Left: and, Right: z})
	root := program(a, exprStmt(a, nullish))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "(a&&b)??c;\n", out)
}

func TestOptionalChainTerminatedByPlainMemberNeedsParens(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	x := ident(a, atoms, "a")
	b := ident(a, atoms, "b")
	c := ident(a, atoms, "c")
	optMember := a.Add(ast.KindOptionalMemberExpression, ast.Range{}, ast.MemberExpr{Object: x, Property: b})
	plainMember := a.Add(ast.KindMemberExpression, ast.Range{}, ast.MemberExpr{Object: optMember, Property: c})
	root := program(a, exprStmt(a, plainMember))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "(a?.b).c;\n", out)
}

func TestIIFENeedsParensAroundFunctionExpression(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	body := a.Add(ast.KindBlockStatement, ast.Range{}, ast.BlockStatement{})
	fn := a.Add(ast.KindFunctionExpression, ast.Range{}, ast.FunctionExpression{
		Id: ast.NoHandle, Body: body,
		TypeParameters: ast.NoHandle, ReturnType: ast.NoHandle, Predicate: ast.NoHandle,
	})
	call := a.Add(ast.KindCallExpression, ast.Range{}, ast.CallExpr{Callee: fn})
	root := program(a, exprStmt(a, call))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "(function(){}());\n", out)
}

func TestNestedIfWithoutElseInsideIfWithElseGetsBraces(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	aId, bId, cId, dId := ident(a, atoms, "a"), ident(a, atoms, "b"), ident(a, atoms, "c"), ident(a, atoms, "d")
	innerConsequent := exprStmt(a, cId)
	inner := a.Add(ast.KindIfStatement, ast.Range{}, ast.IfStatement{Test: bId, Consequent: innerConsequent, Alternate: ast.NoHandle})
	outerAlternate := exprStmt(a, dId)
	outer := a.Add(ast.KindIfStatement, ast.Range{}, ast.IfStatement{Test: aId, Consequent: inner, Alternate: outerAlternate})
	root := program(a, outer)

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "if(a){if(b)c;}else d;\n", out)
}

func TestArrowFunctionReturningObjectLiteralNeedsParens(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	x := a.Add(ast.KindIdentifier, ast.Range{}, ast.Identifier{Name: atoms.Intern("x"), TypeAnnotation: ast.NoHandle})
	obj := a.Add(ast.KindObjectExpression, ast.Range{}, ast.ObjectExpression{})
	arrow := a.Add(ast.KindArrowFunctionExpression, ast.Range{}, ast.ArrowFunctionExpression{
		Params: []ast.Handle{x}, Body: obj, Expression: true,
		TypeParameters: ast.NoHandle, ReturnType: ast.NoHandle, Predicate: ast.NoHandle,
	})
	root := program(a, exprStmt(a, arrow))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "x=>({});\n", out)
}

func TestSparseArrayWithTrailingHoleAddsExtraComma(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	one, three := num(a, 1), num(a, 3)
	arr := a.Add(ast.KindArrayExpression, ast.Range{}, ast.ArrayExpression{
		Elements: []ast.Handle{one, ast.NoHandle, three, ast.NoHandle},
	})
	root := program(a, exprStmt(a, arr))

	out := generate(t, a, atoms, root, Compact)
	assert.Equal(t, "[1,,3,,];\n", out)
}

func TestUnsupportedKindIsReportedAsAGenerationError(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	bogus := a.Add(ast.Kind(9999), ast.Range{}, nil)
	root := program(a, exprStmt(a, bogus))

	var buf bytes.Buffer
	_, err := Generate(a, atoms, &buf, root, Compact, "in.js")
	require.Error(t, err)
	var unsupported *UnsupportedKindError
	assert.ErrorAs(t, err, &unsupported)
}

func TestSourceMapCarriesOneSourceAndNonEmptyMappings(t *testing.T) {
	a := ast.NewArena()
	atoms := atom.New()

	one := num(a, 1)
	root := program(a, exprStmt(a, one))

	var buf bytes.Buffer
	m, err := Generate(a, atoms, &buf, root, Compact, "in.js")
	require.NoError(t, err)
	assert.Equal(t, []string{"in.js"}, m.Sources)
	assert.NotEmpty(t, m.Mappings)
}
