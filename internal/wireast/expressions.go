package wireast

import (
	"encoding/json"
	"fmt"

	"jsgen/internal/ast"
)

func init() {
	register(map[string]decodeFunc{
		"ArrayExpression":           decodeArrayExpression,
		"ObjectExpression":          decodeObjectExpression,
		"ObjectPattern":             decodeObjectPattern,
		"ArrayPattern":              decodeArrayPattern,
		"AssignmentPattern":         decodeAssignmentPattern,
		"RestElement":               decodeRestElement,
		"SpreadElement":             decodeSpreadElement,
		"Property":                  decodeProperty,
		"FunctionExpression":        decodeFunctionExpression,
		"ArrowFunctionExpression":   decodeArrowFunctionExpression,
		"ClassExpression":           decodeClassExpression,
		"ClassBody":                 decodeClassBody,
		"ClassProperty":             decodeClassProperty,
		"ClassPrivateProperty":      decodeClassPrivateProperty,
		"MethodDefinition":          decodeMethodDefinition,
		"TemplateLiteral":           decodeTemplateLiteral,
		"TemplateElement":           decodeTemplateElement,
		"TaggedTemplateExpression":  decodeTaggedTemplateExpression,
		"MemberExpression":          decodeMemberExpr(ast.KindMemberExpression),
		"OptionalMemberExpression":  decodeMemberExpr(ast.KindOptionalMemberExpression),
		"CallExpression":            decodeCallExpr(ast.KindCallExpression),
		"OptionalCallExpression":    decodeCallExpr(ast.KindOptionalCallExpression),
		"NewExpression":             decodeNewExpression,
		"MetaProperty":              decodeMetaProperty,
		"UpdateExpression":          decodeUpdateExpression,
		"UnaryExpression":           decodeUnaryExpression,
		"BinaryExpression":          decodeBinaryExpression,
		"LogicalExpression":         decodeLogicalExpression,
		"ConditionalExpression":     decodeConditionalExpression,
		"AssignmentExpression":      decodeAssignmentExpression,
		"SequenceExpression":        decodeSequenceExpression,
		"YieldExpression":           decodeYieldExpression,
		"ImportExpression":          decodeImportExpression,
	})
}

func decodeArrayExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	elems, err := d.nodeList(f, "elements")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindArrayExpression, ast.ArrayExpression{Elements: elems}, nil
}

func decodeObjectExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	props, err := d.nodeList(f, "properties")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindObjectExpression, ast.ObjectExpression{Properties: props}, nil
}

func decodeObjectPattern(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	props, err := d.nodeList(f, "properties")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindObjectPattern, ast.ObjectPattern{Properties: props}, nil
}

func decodeArrayPattern(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	elems, err := d.nodeList(f, "elements")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindArrayPattern, ast.ArrayPattern{Elements: elems}, nil
}

func decodeAssignmentPattern(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	left, err := d.node(f, "left")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindAssignmentPattern, ast.AssignmentPattern{Left: left, Right: right}, nil
}

func decodeRestElement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	arg, err := d.node(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindRestElement, ast.RestElement{Argument: arg}, nil
}

func decodeSpreadElement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	arg, err := d.node(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindSpreadElement, ast.SpreadElement{Argument: arg}, nil
}

var propertyKinds = map[string]ast.PropertyKind{"init": ast.PropertyKindInit, "get": ast.PropertyKindGet, "set": ast.PropertyKindSet}

func decodeProperty(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	key, err := d.node(f, "key")
	if err != nil {
		return 0, nil, err
	}
	value, err := d.node(f, "value")
	if err != nil {
		return 0, nil, err
	}
	kindStr := strOr(f, "kind", "init")
	pk, ok := propertyKinds[kindStr]
	if !ok {
		return 0, nil, fmt.Errorf("unknown property kind %q", kindStr)
	}
	return ast.KindProperty, ast.Property{
		Key: key, Value: value, Kind: pk,
		Computed: boolField(f, "computed"), Shorthand: boolField(f, "shorthand"), Method: boolField(f, "method"),
	}, nil
}

func decodeFunctionExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
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
	return ast.KindFunctionExpression, ast.FunctionExpression{
		Id: id, Params: params, Body: body,
		TypeParameters: typeParams, ReturnType: retType, Predicate: predicate,
		Generator: boolField(f, "generator"), IsAsync: boolField(f, "async"),
	}, nil
}

func decodeArrowFunctionExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
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
	return ast.KindArrowFunctionExpression, ast.ArrowFunctionExpression{
		Params: params, Body: body, TypeParameters: typeParams, ReturnType: retType, Predicate: predicate,
		Expression: boolField(f, "expression"), IsAsync: boolField(f, "async"),
	}, nil
}

func decodeClassExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
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
	return ast.KindClassExpression, ast.ClassExpression{
		Id: id, TypeParameters: typeParams, SuperClass: super, SuperTypeParameters: superTypeParams,
		Implements: implements, Decorators: decorators, Body: body,
	}, nil
}

func decodeClassBody(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	body, err := d.nodeList(f, "body")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindClassBody, ast.ClassBody{Body: body}, nil
}

func decodeClassProperty(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	key, err := d.node(f, "key")
	if err != nil {
		return 0, nil, err
	}
	value, err := d.optNode(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindClassProperty, ast.ClassProperty{
		Key: key, Value: value, Computed: boolField(f, "computed"), IsStatic: boolField(f, "static"),
	}, nil
}

func decodeClassPrivateProperty(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	key, err := d.node(f, "key")
	if err != nil {
		return 0, nil, err
	}
	value, err := d.optNode(f, "value")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindClassPrivateProperty, ast.ClassPrivateProperty{Key: key, Value: value, IsStatic: boolField(f, "static")}, nil
}

var methodKinds = map[string]ast.MethodKind{
	"method": ast.MethodKindMethod, "constructor": ast.MethodKindConstructor,
	"get": ast.MethodKindGet, "set": ast.MethodKindSet,
}

func decodeMethodDefinition(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	key, err := d.node(f, "key")
	if err != nil {
		return 0, nil, err
	}
	value, err := d.node(f, "value")
	if err != nil {
		return 0, nil, err
	}
	kindStr := strOr(f, "kind", "method")
	mk, ok := methodKinds[kindStr]
	if !ok {
		return 0, nil, fmt.Errorf("unknown method kind %q", kindStr)
	}
	return ast.KindMethodDefinition, ast.MethodDefinition{
		Key: key, Value: value, Kind: mk, Computed: boolField(f, "computed"), IsStatic: boolField(f, "static"),
	}, nil
}

func decodeTemplateLiteral(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	quasis, err := d.nodeList(f, "quasis")
	if err != nil {
		return 0, nil, err
	}
	exprs, err := d.nodeList(f, "expressions")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTemplateLiteral, ast.TemplateLiteral{Quasis: quasis, Expressions: exprs}, nil
}

func decodeTemplateElement(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	raw, err := str(f, "raw")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTemplateElement, ast.TemplateElement{Raw: raw, Tail: boolField(f, "tail")}, nil
}

func decodeTaggedTemplateExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	tag, err := d.node(f, "tag")
	if err != nil {
		return 0, nil, err
	}
	quasi, err := d.node(f, "quasi")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindTaggedTemplateExpression, ast.TaggedTemplateExpression{Tag: tag, Quasi: quasi}, nil
}

func decodeMemberExpr(kind ast.Kind) decodeFunc {
	return func(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
		object, err := d.node(f, "object")
		if err != nil {
			return 0, nil, err
		}
		property, err := d.node(f, "property")
		if err != nil {
			return 0, nil, err
		}
		return kind, ast.MemberExpr{Object: object, Property: property, Computed: boolField(f, "computed")}, nil
	}
}

func decodeCallExpr(kind ast.Kind) decodeFunc {
	return func(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
		callee, err := d.node(f, "callee")
		if err != nil {
			return 0, nil, err
		}
		args, err := d.nodeList(f, "arguments")
		if err != nil {
			return 0, nil, err
		}
		return kind, ast.CallExpr{Callee: callee, Arguments: args}, nil
	}
}

func decodeNewExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	callee, err := d.node(f, "callee")
	if err != nil {
		return 0, nil, err
	}
	args, err := d.nodeList(f, "arguments")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindNewExpression, ast.NewExpression{Callee: callee, Arguments: args}, nil
}

func decodeMetaProperty(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	meta, err := d.node(f, "meta")
	if err != nil {
		return 0, nil, err
	}
	property, err := d.node(f, "property")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindMetaProperty, ast.MetaProperty{Meta: meta, Property: property}, nil
}

var updateOps = map[string]ast.UpdateOp{"++": ast.UpdateIncr, "--": ast.UpdateDecr}

func decodeUpdateExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	op, err := str(f, "operator")
	if err != nil {
		return 0, nil, err
	}
	uo, ok := updateOps[op]
	if !ok {
		return 0, nil, fmt.Errorf("unknown update operator %q", op)
	}
	arg, err := d.node(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindUpdateExpression, ast.UpdateExpression{Operator: uo, Prefix: boolField(f, "prefix"), Argument: arg}, nil
}

var unaryOps = map[string]ast.UnaryOp{
	"-": ast.UnaryMinus, "+": ast.UnaryPlus, "!": ast.UnaryNot, "~": ast.UnaryBitNot,
	"typeof": ast.UnaryTypeof, "void": ast.UnaryVoid, "delete": ast.UnaryDelete,
}

func decodeUnaryExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	op, err := str(f, "operator")
	if err != nil {
		return 0, nil, err
	}
	uo, ok := unaryOps[op]
	if !ok {
		return 0, nil, fmt.Errorf("unknown unary operator %q", op)
	}
	arg, err := d.node(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindUnaryExpression, ast.UnaryExpression{Operator: uo, Argument: arg}, nil
}

var binaryOps = map[string]ast.BinaryOp{
	"==": ast.BinEq, "!=": ast.BinNotEq, "===": ast.BinStrictEq, "!==": ast.BinStrictNotEq,
	"<": ast.BinLess, "<=": ast.BinLessEq, ">": ast.BinGreater, ">=": ast.BinGreaterEq,
	"<<": ast.BinLShift, ">>": ast.BinRShift, ">>>": ast.BinURShift,
	"+": ast.BinAdd, "-": ast.BinSub, "*": ast.BinMul, "/": ast.BinDiv, "%": ast.BinMod,
	"|": ast.BinBitOr, "^": ast.BinBitXor, "&": ast.BinBitAnd,
	"in": ast.BinIn, "instanceof": ast.BinInstanceof, "**": ast.BinExp,
}

func decodeBinaryExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	op, err := str(f, "operator")
	if err != nil {
		return 0, nil, err
	}
	bo, ok := binaryOps[op]
	if !ok {
		return 0, nil, fmt.Errorf("unknown binary operator %q", op)
	}
	left, err := d.node(f, "left")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindBinaryExpression, ast.BinaryExpression{Operator: bo, Left: left, Right: right}, nil
}

var logicalOps = map[string]ast.LogicalOp{"||": ast.LogicalOr, "&&": ast.LogicalAnd, "??": ast.LogicalNullish}

func decodeLogicalExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	op, err := str(f, "operator")
	if err != nil {
		return 0, nil, err
	}
	lo, ok := logicalOps[op]
	if !ok {
		return 0, nil, fmt.Errorf("unknown logical operator %q", op)
	}
	left, err := d.node(f, "left")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindLogicalExpression, ast.LogicalExpression{Operator: lo, Left: left, Right: right}, nil
}

func decodeConditionalExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	test, err := d.node(f, "test")
	if err != nil {
		return 0, nil, err
	}
	cons, err := d.node(f, "consequent")
	if err != nil {
		return 0, nil, err
	}
	alt, err := d.node(f, "alternate")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindConditionalExpression, ast.ConditionalExpression{Test: test, Consequent: cons, Alternate: alt}, nil
}

var assignOps = map[string]ast.AssignOp{
	"=": ast.AssignPlain, "+=": ast.AssignAdd, "-=": ast.AssignSub, "*=": ast.AssignMul,
	"/=": ast.AssignDiv, "%=": ast.AssignMod, "**=": ast.AssignExp,
	"<<=": ast.AssignLShift, ">>=": ast.AssignRShift, ">>>=": ast.AssignURShift,
	"|=": ast.AssignBitOr, "^=": ast.AssignBitXor, "&=": ast.AssignBitAnd,
	"||=": ast.AssignOr, "&&=": ast.AssignAnd, "??=": ast.AssignNullish,
}

func decodeAssignmentExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	op, err := str(f, "operator")
	if err != nil {
		return 0, nil, err
	}
	ao, ok := assignOps[op]
	if !ok {
		return 0, nil, fmt.Errorf("unknown assignment operator %q", op)
	}
	left, err := d.node(f, "left")
	if err != nil {
		return 0, nil, err
	}
	right, err := d.node(f, "right")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindAssignmentExpression, ast.AssignmentExpression{Operator: ao, Left: left, Right: right}, nil
}

func decodeSequenceExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	exprs, err := d.nodeList(f, "expressions")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindSequenceExpression, ast.SequenceExpression{Expressions: exprs}, nil
}

func decodeYieldExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	arg, err := d.optNode(f, "argument")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindYieldExpression, ast.YieldExpression{Argument: arg, Delegate: boolField(f, "delegate")}, nil
}

func decodeImportExpression(d *decoder, f map[string]json.RawMessage) (ast.Kind, any, error) {
	source, err := d.node(f, "source")
	if err != nil {
		return 0, nil, err
	}
	return ast.KindImportExpression, ast.ImportExpression{Source: source}, nil
}
