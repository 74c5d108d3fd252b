package wireast

import (
	"encoding/json"
	"fmt"

	"jsgen/internal/ast"
)

func init() {
	register(map[string]decodeFunc{
		"FunctionDeclaration":      decodeFunctionDeclaration,
		"ClassDeclaration":         decodeClassDeclaration,
		"ExportNamedDeclaration":   decodeExportNamedDeclaration,
		"ExportDefaultDeclaration": decodeExportDefaultDeclaration,
		"ExportAllDeclaration":     decodeExportAllDeclaration,
		"ExportSpecifier":          decodeExportSpecifier,
		"ImportDeclaration":        decodeImportDeclaration,
		"ImportSpecifier":          decodeImportSpecifier,
		"ImportDefaultSpecifier":   decodeImportDefaultSpecifier,
		"ImportNamespaceSpecifier": decodeImportNamespaceSpecifier,
		"ImportAttribute":          decodeImportAttribute,

		"Identifier":        decodeIdentifier,
		"NullLiteral":       decodeLeaf(ast.KindNullLiteral),
		"BooleanLiteral":    decodeBooleanLiteral,
		"StringLiteral":     decodeStringLiteral,
		"NumericLiteral":    decodeNumericLiteral,
		"RegExpLiteral":     decodeRegExpLiteral,
		"DirectiveLiteral":  decodeDirectiveLiteral,
		"ThisExpression":    decodeLeaf(ast.KindThisExpression),
		"Super":             decodeLeaf(ast.KindSuper),
	})
}

// decodeLeaf builds a decodeFunc for kinds with no payload.
func decodeLeaf(kind ast.Kind) decodeFunc {
	return func(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
		return kind, nil, nil
	}
}

func decodeFunctionDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.optNode(f, "id")
	if err != nil {
		return 0, nil, err
	}
	params, err := d.nodeList(f, "params")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	typeParams, err := d.optNode(f, "typeParameters")
	if err != nil {
		return 0, nil, err
	}
	retType, err := d.optNode(f, "returnType")
	if err != nil {
		return 0, nil, err
	}
	predicate, err := d.optNode(f, "predicate")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindFunctionDeclaration, ast.FunctionDeclaration{
		Id: id, Params: params, Body: body,
		TypeParameters: typeParams, ReturnType: retType, Predicate: predicate,
		Generator: boolField(f, "generator"), IsAsync: boolField(f, "async"),
	}, nil
}

func decodeClassDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.optNode(f, "id")
	if err != nil {
		return 0, nil, err
	}
	typeParams, err := d.optNode(f, "typeParameters")
	if err != nil {
		return 0, nil, err
	}
	super, err := d.optNode(f, "superClass")
	if err != nil {
		return 0, nil, err
	}
	superTypeParams, err := d.optNode(f, "superTypeParameters")
	if err != nil {
		return 0, nil, err
	}
	implements, err := d.nodeList(f, "implements")
	if err != nil {
		return 0, nil, err
	}
	decorators, err := d.nodeList(f, "decorators")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindClassDeclaration, ast.ClassDeclaration{
		Id: id, TypeParameters: typeParams, SuperClass: super, SuperTypeParameters: superTypeParams,
		Implements: implements, Decorators: decorators, Body: body,
	}, nil
}

func decodeExportNamedDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	decl, err := d.optNode(f, "declaration")
	if err != nil {
		return 0, nil, err
	}
	specs, err := d.nodeList(f, "specifiers")
	if err != nil {
		return 0, nil, err
	}
	source, err := d.optNode(f, "source")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindExportNamedDeclaration, ast.ExportNamedDeclaration{Declaration: decl, Specifiers: specs, Source: source}, nil
}

func decodeExportDefaultDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	decl, err := d.node(f, "declaration")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindExportDefaultDeclaration, ast.ExportDefaultDeclaration{Declaration: decl}, nil
}

func decodeExportAllDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	source, err := d.node(f, "source")
	if err != nil {
		return 0, nil, err
	}
	exported, err := d.optNode(f, "exported")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindExportAllDeclaration, ast.ExportAllDeclaration{Source: source, Exported: exported}, nil
}

func decodeExportSpecifier(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	local, err := d.node(f, "local")
	if err != nil {
		return 0, nil, err
	}
	exported, err := d.node(f, "exported")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindExportSpecifier, ast.ExportSpecifier{Local: local, Exported: exported}, nil
}

var importKinds = map[string]ast.ImportKind{
	"value": ast.ImportKindValue, "type": ast.ImportKindType, "typeof": ast.ImportKindTypeof,
}

func importKindField(f map[string]json.RawMessage) (ast.ImportKind, error) {
	s := strOr(f, "importKind", "value")
	ik, ok := importKinds[s]
	if !ok {
		return 0, fmt.Errorf("unknown importKind %q", s)
	}
	return ik, nil
}

func decodeImportDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	specs, err := d.nodeList(f, "specifiers")
	if err != nil {
		return 0, nil, err
	}
	source, err := d.node(f, "source")
	if err != nil {
		return 0, nil, err
	}
	attrs, err := d.nodeList(f, "attributes")
	if err != nil {
		return 0, nil, err
	}
	ik, err := importKindField(f)
	if err != nil {
		return 0, nil, err
	}
	return ast.KindImportDeclaration, ast.ImportDeclaration{Specifiers: specs, Source: source, Attributes: attrs, ImportKind: ik}, nil
}

func decodeImportSpecifier(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	imported, err := d.node(f, "imported")
	if err != nil {
		return 0, nil, err
	}
	local, err := d.node(f, "local")
	if err != nil {
		return 0, nil, err
	}
	ik, err := importKindField(f)
	if err != nil {
		return 0, nil, err
	}
	return ast.KindImportSpecifier, ast.ImportSpecifier{Imported: imported, Local: local, ImportKind: ik}, nil
}

func decodeImportDefaultSpecifier(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	local, err := d.node(f, "local")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindImportDefaultSpecifier, ast.ImportDefaultSpecifier{Local: local}, nil
}

func decodeImportNamespaceSpecifier(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	local, err := d.node(f, "local")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindImportNamespaceSpecifier, ast.ImportNamespaceSpecifier{Local: local}, nil
}

func decodeImportAttribute(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	key, err := d.node(f, "key")
	if err != nil {
		return 0, nil, err
	}
	value, err := d.node(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindImportAttribute, ast.ImportAttribute{Key: key, Value: value}, nil
}

func decodeIdentifier(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	name, err := d.atomField(f, "name")
	if err != nil {
		return 0, nil, err
	}
	typeAnn, err := d.optNode(f, "typeAnnotation")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindIdentifier, ast.Identifier{Name: name, TypeAnnotation: typeAnn, Optional: boolField(f, "optional")}, nil
}

func decodeBooleanLiteral(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	return ast.KindBooleanLiteral, ast.BooleanLiteral{Value: boolField(f, "value")}, nil
}

func decodeStringLiteral(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	cu, err := codeUnits(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindStringLiteral, ast.StringLiteral{CodeUnits: cu}, nil
}

func decodeNumericLiteral(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	v, err := numField(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindNumericLiteral, ast.NumericLiteral{Value: v}, nil
}

func decodeRegExpLiteral(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	pattern, err := str(f, "pattern")
	if err != nil {
		return 0, nil, err
	}
	flags := strOr(f, "flags", "")
	return ast.KindRegExpLiteral, ast.RegExpLiteral{Pattern: pattern, Flags: flags}, nil
}

func decodeDirectiveLiteral(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	cu, err := codeUnits(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindDirectiveLiteral, ast.DirectiveLiteral{CodeUnits: cu}, nil
}
