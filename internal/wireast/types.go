package wireast

import (
	"encoding/json"

	"jsgen/internal/ast"
)

func init() {
	register(map[string]decodeFunc{
		"TypeAnnotation":               decodeTypeAnnotation,
		"AnyTypeAnnotation":            decodeLeaf(ast.KindAnyTypeAnnotation),
		"MixedTypeAnnotation":          decodeLeaf(ast.KindMixedTypeAnnotation),
		"EmptyTypeAnnotation":          decodeLeaf(ast.KindEmptyTypeAnnotation),
		"ExistsTypeAnnotation":         decodeLeaf(ast.KindExistsTypeAnnotation),
		"VoidTypeAnnotation":           decodeLeaf(ast.KindVoidTypeAnnotation),
		"NullLiteralTypeAnnotation":    decodeLeaf(ast.KindNullLiteralTypeAnnotation),
		"StringTypeAnnotation":         decodeLeaf(ast.KindStringTypeAnnotation),
		"NumberTypeAnnotation":         decodeLeaf(ast.KindNumberTypeAnnotation),
		"BooleanTypeAnnotation":        decodeLeaf(ast.KindBooleanTypeAnnotation),
		"SymbolTypeAnnotation":         decodeLeaf(ast.KindSymbolTypeAnnotation),
		"StringLiteralTypeAnnotation":  decodeStringLiteralTypeAnnotation,
		"NumberLiteralTypeAnnotation":  decodeNumberLiteralTypeAnnotation,
		"BooleanLiteralTypeAnnotation": decodeBooleanLiteralTypeAnnotation,
		"UnionTypeAnnotation":          decodeUnionTypeAnnotation,
		"IntersectionTypeAnnotation":   decodeIntersectionTypeAnnotation,
		"GenericTypeAnnotation":        decodeGenericTypeAnnotation,
		"NullableTypeAnnotation":       decodeNullableTypeAnnotation,
		"ArrayTypeAnnotation":          decodeArrayTypeAnnotation,
		"FunctionTypeAnnotation":       decodeFunctionTypeAnnotation,
		"FunctionTypeParam":            decodeFunctionTypeParam,
		"TypeParameterDeclaration":     decodeTypeParameterDeclaration,
		"TypeParameterInstantiation":   decodeTypeParameterInstantiation,
		"TypeParameter":                decodeTypeParameter,
		"TypeAlias":                    decodeTypeAlias,
		"DeclareFunction":              decodeDeclareFunction,
		"Variance":                     decodeVariance,
	})
}

func decodeTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	inner, err := d.node(f, "typeAnnotation")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTypeAnnotation, ast.TypeAnnotation{TypeAnnotation: inner}, nil
}

func decodeStringLiteralTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	cu, err := codeUnits(f, "value")
	if err != nil {
		return 0, nil, err
	}
	raw := strOr(f, "raw", "")
	return ast.KindStringLiteralTypeAnnotation, ast.StringLiteralTypeAnnotation{Value: cu, Raw: raw}, nil
}

func decodeNumberLiteralTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	v, err := numField(f, "value")
	if err != nil {
		return 0, nil, err
	}
	raw := strOr(f, "raw", "")
	return ast.KindNumberLiteralTypeAnnotation, ast.NumberLiteralTypeAnnotation{Value: v, Raw: raw}, nil
}

func decodeBooleanLiteralTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	return ast.KindBooleanLiteralTypeAnnotation, ast.BooleanLiteralTypeAnnotation{Value: boolField(f, "value")}, nil
}

func decodeUnionTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	types, err := d.nodeList(f, "types")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindUnionTypeAnnotation, ast.UnionTypeAnnotation{Types: types}, nil
}

func decodeIntersectionTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	types, err := d.nodeList(f, "types")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindIntersectionTypeAnnotation, ast.IntersectionTypeAnnotation{Types: types}, nil
}

func decodeGenericTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.node(f, "id")
	if err != nil {
		return 0, nil, err
	}
	typeParams, err := d.optNode(f, "typeParameters")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindGenericTypeAnnotation, ast.GenericTypeAnnotation{Id: id, TypeParameters: typeParams}, nil
}

func decodeNullableTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	inner, err := d.node(f, "typeAnnotation")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindNullableTypeAnnotation, ast.NullableTypeAnnotation{TypeAnnotation: inner}, nil
}

func decodeArrayTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	elem, err := d.node(f, "elementType")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindArrayTypeAnnotation, ast.ArrayTypeAnnotation{ElementType: elem}, nil
}

func decodeFunctionTypeAnnotation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	params, err := d.nodeList(f, "params")
	if err != nil {
		return 0, nil, err
	}
	rest, err := d.optNode(f, "rest")
	if err != nil {
		return 0, nil, err
	}
	retType, err := d.node(f, "returnType")
	if err != nil {
		return 0, nil, err
	}
	typeParams, err := d.optNode(f, "typeParameters")
	if err != nil {
		return 0, nil, err
	}
	this, err := d.optNode(f, "this")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindFunctionTypeAnnotation, ast.FunctionTypeAnnotation{
		Params: params, Rest: rest, ReturnType: retType, TypeParameters: typeParams, This: this,
	}, nil
}

func decodeFunctionTypeParam(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	name, err := d.optNode(f, "name")
	if err != nil {
		return 0, nil, err
	}
	typeAnn, err := d.node(f, "typeAnnotation")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindFunctionTypeParam, ast.FunctionTypeParam{Name: name, TypeAnnotation: typeAnn, Optional: boolField(f, "optional")}, nil
}

func decodeTypeParameterDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	params, err := d.nodeList(f, "params")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTypeParameterDeclaration, ast.TypeParameterDeclaration{Params: params}, nil
}

func decodeTypeParameterInstantiation(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	params, err := d.nodeList(f, "params")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTypeParameterInstantiation, ast.TypeParameterInstantiation{Params: params}, nil
}

func decodeTypeParameter(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	name, err := d.atomField(f, "name")
	if err != nil {
		return 0, nil, err
	}
	bound, err := d.optNode(f, "bound")
	if err != nil {
		return 0, nil, err
	}
	variance, err := d.optNode(f, "variance")
	if err != nil {
		return 0, nil, err
	}
	def, err := d.optNode(f, "default")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTypeParameter, ast.TypeParameter{Name: name, Bound: bound, Variance: variance, Default: def}, nil
}

func decodeTypeAlias(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.node(f, "id")
	if err != nil {
		return 0, nil, err
	}
	typeParams, err := d.optNode(f, "typeParameters")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTypeAlias, ast.TypeAlias{Id: id, TypeParameters: typeParams, Right: right}, nil
}

func decodeDeclareFunction(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.node(f, "id")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindDeclareFunction, ast.DeclareFunction{Id: id}, nil
}

func decodeVariance(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	kind, err := d.atomField(f, "kind")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindVariance, ast.Variance{Kind: kind}, nil
}
