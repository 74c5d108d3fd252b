package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jsgen/internal/atom"
)

func TestValidateMethodDefinitionValueMustBeFunctionExpression(t *testing.T) {
	a := NewArena()
	key := a.Add(KindIdentifier, Range{}, Identifier{})
	notAFunc := a.Add(KindNullLiteral, Range{}, nil)
	a.Add(KindMethodDefinition, Range{}, MethodDefinition{Key: key, Value: notAFunc, Kind: MethodKindMethod})

	err := validateMethodDefinitions(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "want FunctionExpression")
}

func TestValidateMethodDefinitionAcceptsFunctionExpression(t *testing.T) {
	a := NewArena()
	key := a.Add(KindIdentifier, Range{}, Identifier{})
	body := a.Add(KindBlockStatement, Range{}, BlockStatement{})
	fn := a.Add(KindFunctionExpression, Range{}, FunctionExpression{Id: NoHandle, Body: body, TypeParameters: NoHandle, ReturnType: NoHandle, Predicate: NoHandle})
	a.Add(KindMethodDefinition, Range{}, MethodDefinition{Key: key, Value: fn, Kind: MethodKindMethod})

	assert.NoError(t, validateMethodDefinitions(a))
}

func TestValidatePropertyPlainInitIsExempt(t *testing.T) {
	a := NewArena()
	key := a.Add(KindIdentifier, Range{}, Identifier{})
	val := a.Add(KindNumericLiteral, Range{}, NumericLiteral{Value: 1})
	a.Add(KindProperty, Range{}, Property{Key: key, Value: val, Kind: PropertyKindInit})

	assert.NoError(t, validateObjectProperties(a))
}

func TestValidatePropertyGetterMustBeFunctionExpression(t *testing.T) {
	a := NewArena()
	key := a.Add(KindIdentifier, Range{}, Identifier{})
	val := a.Add(KindNumericLiteral, Range{}, NumericLiteral{Value: 1})
	a.Add(KindProperty, Range{}, Property{Key: key, Value: val, Kind: PropertyKindGet})

	err := validateObjectProperties(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "getter/setter/method")
}

func TestValidateTemplateElementMustBelongToTemplateLiteral(t *testing.T) {
	a := NewArena()
	a.Add(KindTemplateElement, Range{}, TemplateElement{Raw: "x", Tail: true})

	err := validateTemplateElements(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a quasi")
}

func TestValidateTemplateElementReferencedFromTemplateLiteral(t *testing.T) {
	a := NewArena()
	elem := a.Add(KindTemplateElement, Range{}, TemplateElement{Raw: "x", Tail: true})
	a.Add(KindTemplateLiteral, Range{}, TemplateLiteral{Quasis: []Handle{elem}})

	assert.NoError(t, validateTemplateElements(a))
}

func TestValidateDeclareFunctionRequiresFunctionTypeAnnotation(t *testing.T) {
	a := NewArena()
	id := a.Add(KindIdentifier, Range{}, Identifier{TypeAnnotation: NoHandle})
	a.Add(KindDeclareFunction, Range{}, DeclareFunction{Id: id})

	err := validateDeclareFunctions(a)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no TypeAnnotation")
}

func TestValidateDeclareFunctionAcceptsWellFormedAnnotation(t *testing.T) {
	a := NewArena()
	ret := a.Add(KindVoidTypeAnnotation, Range{}, nil)
	fnType := a.Add(KindFunctionTypeAnnotation, Range{}, FunctionTypeAnnotation{ReturnType: ret, Rest: NoHandle, TypeParameters: NoHandle, This: NoHandle})
	wrapper := a.Add(KindTypeAnnotation, Range{}, TypeAnnotation{TypeAnnotation: fnType})
	id := a.Add(KindIdentifier, Range{}, Identifier{TypeAnnotation: wrapper})
	a.Add(KindDeclareFunction, Range{}, DeclareFunction{Id: id})

	assert.NoError(t, validateDeclareFunctions(a))
}

func TestValidateVarianceRejectsUnknownSpelling(t *testing.T) {
	atoms := atom.New()
	a := NewArena()
	a.Add(KindVariance, Range{}, Variance{Kind: atoms.Intern("covariant")})

	err := validateVariance(a, atoms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `want "plus" or "minus"`)
}

func TestValidateVarianceAcceptsPlusAndMinus(t *testing.T) {
	atoms := atom.New()
	a := NewArena()
	a.Add(KindVariance, Range{}, Variance{Kind: atoms.Intern("plus")})
	a.Add(KindVariance, Range{}, Variance{Kind: atoms.Intern("minus")})

	assert.NoError(t, validateVariance(a, atoms))
}

func TestValidateRunsAllChecks(t *testing.T) {
	atoms := atom.New()
	a := NewArena()
	a.Add(KindTemplateElement, Range{}, TemplateElement{Raw: "bad", Tail: true})

	err := Validate(a, atoms)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is not a quasi")
}

func TestArenaAddAndGet(t *testing.T) {
	a := NewArena()
	h := a.Add(KindNullLiteral, Range{Start: Position{Line: 1, Column: 1}, End: Position{Line: 1, Column: 5}}, nil)
	assert.Equal(t, KindNullLiteral, a.Kind(h))
	assert.Equal(t, 1, a.Len())
	assert.Equal(t, 5, a.Range(h).End.Column)
}
