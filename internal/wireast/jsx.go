package wireast

import (
	"encoding/json"

	"jsgen/internal/ast"
)

func init() {
	register(map[string]decodeFunc{
		"JSXElement":              decodeJSXElement,
		"JSXFragment":             decodeJSXFragment,
		"JSXOpeningElement":       decodeJSXOpeningElement,
		"JSXClosingElement":       decodeJSXClosingElement,
		"JSXOpeningFragment":      decodeLeaf(ast.KindJSXOpeningFragment),
		"JSXClosingFragment":      decodeLeaf(ast.KindJSXClosingFragment),
		"JSXAttribute":            decodeJSXAttribute,
		"JSXSpreadAttribute":      decodeJSXSpreadAttribute,
		"JSXExpressionContainer":  decodeJSXExpressionContainer,
		"JSXText":                 decodeJSXText,
		"JSXIdentifier":           decodeIdentifier,
	})
}

func decodeJSXElement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	opening, err := d.node(f, "openingElement")
	if err != nil {
		return 0, nil, err
	}
	closing, err := d.optNode(f, "closingElement")
	if err != nil {
		return 0, nil, err
	}
	children, err := d.nodeList(f, "children")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXElement, ast.JSXElement{OpeningElement: opening, ClosingElement: closing, Children: children}, nil
}

func decodeJSXFragment(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	opening, err := d.node(f, "openingFragment")
	if err != nil {
		return 0, nil, err
	}
	closing, err := d.node(f, "closingFragment")
	if err != nil {
		return 0, nil, err
	}
	children, err := d.nodeList(f, "children")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXFragment, ast.JSXFragment{OpeningFragment: opening, ClosingFragment: closing, Children: children}, nil
}

func decodeJSXOpeningElement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	name, err := d.node(f, "name")
	if err != nil {
		return 0, nil, err
	}
	attrs, err := d.nodeList(f, "attributes")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXOpeningElement, ast.JSXOpeningElement{Name: name, Attributes: attrs, SelfClosing: boolField(f, "selfClosing")}, nil
}

func decodeJSXClosingElement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	name, err := d.node(f, "name")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXClosingElement, ast.JSXClosingElement{Name: name}, nil
}

func decodeJSXAttribute(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	name, err := d.node(f, "name")
	if err != nil {
		return 0, nil, err
	}
	value, err := d.optNode(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXAttribute, ast.JSXAttribute{Name: name, Value: value}, nil
}

func decodeJSXSpreadAttribute(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	arg, err := d.node(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXSpreadAttribute, ast.JSXSpreadAttribute{Argument: arg}, nil
}

func decodeJSXExpressionContainer(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	expr, err := d.node(f, "expression")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindJSXExpressionContainer, ast.JSXExpressionContainer{Expression: expr}, nil
}

func decodeJSXText(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	raw := strOr(f, "value", strOr(f, "raw", ""))
	return ast.KindJSXText, ast.JSXText{Raw: raw}, nil
}
