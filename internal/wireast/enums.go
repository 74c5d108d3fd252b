package wireast

import (
	"encoding/json"

	"jsgen/internal/ast"
)

func init() {
	register(map[string]decodeFunc{
		"EnumDeclaration":     decodeEnumDeclaration,
		"EnumStringBody":      decodeEnumBody(ast.KindEnumStringBody),
		"EnumNumberBody":      decodeEnumBody(ast.KindEnumNumberBody),
		"EnumBooleanBody":     decodeEnumBody(ast.KindEnumBooleanBody),
		"EnumSymbolBody":      decodeEnumBody(ast.KindEnumSymbolBody),
		"EnumDefaultedMember": decodeEnumDefaultedMember,
		"EnumStringMember":    decodeEnumMember(ast.KindEnumStringMember),
		"EnumNumberMember":    decodeEnumMember(ast.KindEnumNumberMember),
		"EnumBooleanMember":   decodeEnumMember(ast.KindEnumBooleanMember),
	})
}

func decodeEnumDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.node(f, "id")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindEnumDeclaration, ast.EnumDeclaration{Id: id, Body: body}, nil
}

func decodeEnumBody(kind ast.Kind) decodeFunc {
	return func(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
		members, err := d.nodeList(f, "members")
		if err != nil {
			return 0, nil, err
		}
		return kind, ast.EnumBody{
			Members:           members,
			ExplicitType:      boolField(f, "explicitType"),
			HasUnknownMembers: boolField(f, "hasUnknownMembers"),
		}, nil
	}
}

func decodeEnumDefaultedMember(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.node(f, "id")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindEnumDefaultedMember, ast.EnumDefaultedMember{Id: id}, nil
}

func decodeEnumMember(kind ast.Kind) decodeFunc {
	return func(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
		id, err := d.node(f, "id")
		if err != nil {
			return 0, nil, err
		}
		init, err := d.node(f, "init")
		if err != nil {
			return 0, nil, err
		}
		return kind, ast.EnumMember{Id: id, Init: init}, nil
	}
}
