package wireast

import (
	"encoding/json"
	"fmt"

	"jsgen/internal/ast"
)

func init() {
	register(map[string]decodeFunc{
		"Program":              decodeProgram,
		"EmptyStatement":       decodeEmptyStatement,
		"BlockStatement":       decodeBlockStatement,
		"ExpressionStatement":  decodeExpressionStatement,
		"IfStatement":          decodeIfStatement,
		"ForStatement":         decodeForStatement,
		"ForInStatement":       decodeForInStatement,
		"ForOfStatement":       decodeForOfStatement,
		"WhileStatement":       decodeWhileStatement,
		"DoWhileStatement":     decodeDoWhileStatement,
		"ReturnStatement":      decodeReturnStatement,
		"BreakStatement":       decodeBreakStatement,
		"ContinueStatement":    decodeContinueStatement,
		"ThrowStatement":       decodeThrowStatement,
		"TryStatement":         decodeTryStatement,
		"CatchClause":          decodeCatchClause,
		"SwitchStatement":      decodeSwitchStatement,
		"SwitchCase":           decodeSwitchCase,
		"LabeledStatement":     decodeLabeledStatement,
		"WithStatement":        decodeWithStatement,
		"VariableDeclaration":  decodeVariableDeclaration,
		"VariableDeclarator":   decodeVariableDeclarator,
		"Decorator":            decodeDecorator,
	})
}

func decodeProgram(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	body, err := d.nodeList(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindProgram, ast.Program{Body: body}, nil
}

func decodeEmptyStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	return ast.KindEmptyStatement, nil, nil
}

func decodeBlockStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	body, err := d.nodeList(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindBlockStatement, ast.BlockStatement{Body: body}, nil
}

func decodeExpressionStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	expr, err := d.node(f, "expression")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindExpressionStatement, ast.ExpressionStatement{Expression: expr}, nil
}

func decodeIfStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	test, err := d.node(f, "test")
	if err != nil {
		return 0, nil, err
	}
	cons, err := d.node(f, "consequent")
	if err != nil {
		return 0, nil, err
	}
	alt, err := d.optNode(f, "alternate")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindIfStatement, ast.IfStatement{Test: test, Consequent: cons, Alternate: alt}, nil
}

func decodeForStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	init, err := d.optNode(f, "init")
	if err != nil {
		return 0, nil, err
	}
	test, err := d.optNode(f, "test")
	if err != nil {
		return 0, nil, err
	}
	update, err := d.optNode(f, "update")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindForStatement, ast.ForStatement{Init: init, Test: test, Update: update, Body: body}, nil
}

func decodeForInStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	left, err := d.node(f, "left")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindForInStatement, ast.ForInStatement{Left: left, Right: right, Body: body}, nil
}

func decodeForOfStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	left, err := d.node(f, "left")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindForOfStatement, ast.ForOfStatement{Left: left, Right: right, Body: body, IsAwait: boolField(f, "await")}, nil
}

func decodeWhileStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	test, err := d.node(f, "test")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindWhileStatement, ast.WhileStatement{Test: test, Body: body}, nil
}

func decodeDoWhileStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	test, err := d.node(f, "test")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindDoWhileStatement, ast.DoWhileStatement{Test: test, Body: body}, nil
}

func decodeReturnStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	arg, err := d.optNode(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindReturnStatement, ast.ReturnStatement{Argument: arg}, nil
}

func decodeBreakStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	label, err := d.optNode(f, "label")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindBreakStatement, ast.BreakStatement{Label: label}, nil
}

func decodeContinueStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	label, err := d.optNode(f, "label")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindContinueStatement, ast.ContinueStatement{Label: label}, nil
}

func decodeThrowStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	arg, err := d.node(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindThrowStatement, ast.ThrowStatement{Argument: arg}, nil
}

func decodeTryStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	block, err := d.node(f, "block")
	if err != nil {
		return 0, nil, err
	}
	handler, err := d.optNode(f, "handler")
	if err != nil {
		return 0, nil, err
	}
	finalizer, err := d.optNode(f, "finalizer")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTryStatement, ast.TryStatement{Block: block, Handler: handler, Finalizer: finalizer}, nil
}

func decodeCatchClause(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	param, err := d.optNode(f, "param")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindCatchClause, ast.CatchClause{Param: param, Body: body}, nil
}

func decodeSwitchStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	disc, err := d.node(f, "discriminant")
	if err != nil {
		return 0, nil, err
	}
	cases, err := d.nodeList(f, "cases")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindSwitchStatement, ast.SwitchStatement{Discriminant: disc, Cases: cases}, nil
}

func decodeSwitchCase(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	test, err := d.optNode(f, "test")
	if err != nil {
		return 0, nil, err
	}
	cons, err := d.nodeList(f, "consequent")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindSwitchCase, ast.SwitchCase{Test: test, Consequent: cons}, nil
}

func decodeLabeledStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	label, err := d.node(f, "label")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindLabeledStatement, ast.LabeledStatement{Label: label, Body: body}, nil
}

func decodeWithStatement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	object, err := d.node(f, "object")
	if err != nil {
		return 0, nil, err
	}
	body, err := d.node(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindWithStatement, ast.WithStatement{Object: object, Body: body}, nil
}

var varKinds = map[string]ast.VarKind{"var": ast.VarKindVar, "let": ast.VarKindLet, "const": ast.VarKindConst}

func decodeVariableDeclaration(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	kindStr, err := str(f, "kind")
	if err != nil {
		return 0, nil, err
	}
	vk, ok := varKinds[kindStr]
	if !ok {
		return 0, nil, fmt.Errorf("unknown variable declaration kind %q", kindStr)
	}
	decls, err := d.nodeList(f, "declarations")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindVariableDeclaration, ast.VariableDeclaration{Kind: vk, Declarations: decls}, nil
}

func decodeVariableDeclarator(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	id, err := d.node(f, "id")
	if err != nil {
		return 0, nil, err
	}
	init, err := d.optNode(f, "init")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindVariableDeclarator, ast.VariableDeclarator{Id: id, Init: init}, nil
}

func decodeDecorator(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	expr, err := d.node(f, "expression")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindDecorator, ast.Decorator{Expression: expr}, nil
}
