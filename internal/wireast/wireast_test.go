package wireast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsgen/internal/ast"
	"jsgen/internal/atom"
)

func decode(t *testing.T, src string) (*ast.Arena, ast.Handle) {
	t.Helper()
	atoms := atom.New()
	arena, root, err := Decode([]byte(src), atoms)
	require.NoError(t, err)
	return arena, root
}

func TestDecodeEmptyProgram(t *testing.T) {
	arena, root := decode(t, `{"type":"Program","start":{"line":1,"column":0},"end":{"line":1,"column":0},"body":[]}`)
	assert.Equal(t, ast.KindProgram, arena.Kind(root))
	prog := arena.Get(root).Payload.(ast.Program)
	assert.Empty(t, prog.Body)
}

func TestDecodeRangePositions(t *testing.T) {
	arena, root := decode(t, `{"type":"Program","start":{"line":1,"column":0},"end":{"line":3,"column":5},"body":[]}`)
	rng := arena.Range(root)
	assert.Equal(t, ast.Position{Line: 1, Column: 0}, rng.Start)
	assert.Equal(t, ast.Position{Line: 3, Column: 5}, rng.End)
}

func TestDecodeIdentifierInternsAtom(t *testing.T) {
	atoms := atom.New()
	arena, root, err := Decode([]byte(`{"type":"Identifier","start":{"line":1,"column":0},"end":{"line":1,"column":1},"name":"x"}`), atoms)
	require.NoError(t, err)
	id := arena.Get(root).Payload.(ast.Identifier)
	assert.Equal(t, "x", atoms.Resolve(id.Name))
	assert.Equal(t, ast.NoHandle, id.TypeAnnotation)
}

func TestDecodeStringLiteralEncodesUTF16(t *testing.T) {
	arena, root := decode(t, `{"type":"StringLiteral","start":{"line":1,"column":0},"end":{"line":1,"column":4},"value":"hi"}`)
	lit := arena.Get(root).Payload.(ast.StringLiteral)
	assert.Equal(t, []uint16{'h', 'i'}, lit.CodeUnits)
}

func TestDecodeStringLiteralSurrogatePair(t *testing.T) {
	arena, root := decode(t, `{"type":"StringLiteral","start":{"line":1,"column":0},"end":{"line":1,"column":1},"value":"😀"}`)
	lit := arena.Get(root).Payload.(ast.StringLiteral)
	require.Len(t, lit.CodeUnits, 2)
	assert.Equal(t, uint16(0xD83D), lit.CodeUnits[0])
	assert.Equal(t, uint16(0xDE00), lit.CodeUnits[1])
}

func TestDecodeBinaryExpression(t *testing.T) {
	src := `{
		"type":"BinaryExpression","start":{"line":1,"column":0},"end":{"line":1,"column":5},
		"operator":"+",
		"left":{"type":"NumericLiteral","start":{"line":1,"column":0},"end":{"line":1,"column":1},"value":1},
		"right":{"type":"NumericLiteral","start":{"line":1,"column":4},"end":{"line":1,"column":5},"value":2}
	}`
	arena, root := decode(t, src)
	bin := arena.Get(root).Payload.(ast.BinaryExpression)
	assert.Equal(t, ast.BinAdd, bin.Operator)
	assert.Equal(t, ast.KindNumericLiteral, arena.Kind(bin.Left))
	assert.Equal(t, ast.KindNumericLiteral, arena.Kind(bin.Right))
}

func TestDecodeUnknownBinaryOperatorErrors(t *testing.T) {
	atoms := atom.New()
	src := `{
		"type":"BinaryExpression","start":{"line":1,"column":0},"end":{"line":1,"column":1},
		"operator":"<=>",
		"left":{"type":"NumericLiteral","start":{"line":1,"column":0},"end":{"line":1,"column":1},"value":1},
		"right":{"type":"NumericLiteral","start":{"line":1,"column":0},"end":{"line":1,"column":1},"value":1}
	}`
	_, _, err := Decode([]byte(src), atoms)
	assert.Error(t, err)
}

func TestDecodeUnknownNodeTypeErrors(t *testing.T) {
	atoms := atom.New()
	_, _, err := Decode([]byte(`{"type":"NotARealNode","start":{"line":1,"column":0},"end":{"line":1,"column":0}}`), atoms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NotARealNode")
}

func TestDecodeArrayExpressionElision(t *testing.T) {
	src := `{
		"type":"ArrayExpression","start":{"line":1,"column":0},"end":{"line":1,"column":5},
		"elements":[null, {"type":"NumericLiteral","start":{"line":1,"column":0},"end":{"line":1,"column":1},"value":1}]
	}`
	arena, root := decode(t, src)
	arr := arena.Get(root).Payload.(ast.ArrayExpression)
	require.Len(t, arr.Elements, 2)
	assert.Equal(t, ast.NoHandle, arr.Elements[0])
	assert.Equal(t, ast.KindNumericLiteral, arena.Kind(arr.Elements[1]))
}

func TestDecodeMissingRequiredFieldErrors(t *testing.T) {
	atoms := atom.New()
	_, _, err := Decode([]byte(`{"type":"ExpressionStatement","start":{"line":1,"column":0},"end":{"line":1,"column":0}}`), atoms)
	assert.Error(t, err)
}

func TestDecodeVariableDeclarationKind(t *testing.T) {
	src := `{
		"type":"VariableDeclaration","start":{"line":1,"column":0},"end":{"line":1,"column":9},
		"kind":"const",
		"declarations":[{
			"type":"VariableDeclarator","start":{"line":1,"column":6},"end":{"line":1,"column":9},
			"id":{"type":"Identifier","start":{"line":1,"column":6},"end":{"line":1,"column":7},"name":"x"},
			"init":null
		}]
	}`
	arena, root := decode(t, src)
	decl := arena.Get(root).Payload.(ast.VariableDeclaration)
	assert.Equal(t, ast.VarKindConst, decl.Kind)
	require.Len(t, decl.Declarations, 1)
	declr := arena.Get(decl.Declarations[0]).Payload.(ast.VariableDeclarator)
	assert.Equal(t, ast.NoHandle, declr.Init)
}

func TestDecodeLeafKindsHaveNilPayload(t *testing.T) {
	arena, root := decode(t, `{"type":"ThisExpression","start":{"line":1,"column":0},"end":{"line":1,"column":4}}`)
	assert.Equal(t, ast.KindThisExpression, arena.Kind(root))
	assert.Nil(t, arena.Get(root).Payload)
}
