package ast

// Kind tags every node in the tree. It is a closed enumeration: the
// generator's dispatch switch (internal/codegen) must have a case for every
// value reachable from a supported root, and treats any other kind as an
// "unsupported kind" error (spec §7).
type Kind uint16

const (
	KindInvalid Kind = iota

	// Program & statements.
	KindProgram
	KindEmptyStatement
	KindBlockStatement
	KindExpressionStatement
	KindIfStatement
	KindForStatement
	KindForInStatement
	KindForOfStatement
	KindWhileStatement
	KindDoWhileStatement
	KindReturnStatement
	KindBreakStatement
	KindContinueStatement
	KindThrowStatement
	KindTryStatement
	KindCatchClause
	KindSwitchStatement
	KindSwitchCase
	KindLabeledStatement
	KindWithStatement
	KindVariableDeclaration
	KindVariableDeclarator
	KindDecorator

	// Declarations & modules.
	KindFunctionDeclaration
	KindClassDeclaration
	KindExportNamedDeclaration
	KindExportDefaultDeclaration
	KindExportAllDeclaration
	KindExportSpecifier
	KindImportDeclaration
	KindImportSpecifier
	KindImportDefaultSpecifier
	KindImportNamespaceSpecifier
	KindImportAttribute

	// Identifiers & literals.
	KindIdentifier
	KindNullLiteral
	KindBooleanLiteral
	KindStringLiteral
	KindNumericLiteral
	KindRegExpLiteral
	KindDirectiveLiteral
	KindThisExpression
	KindSuper

	// Expressions.
	KindArrayExpression
	KindObjectExpression
	KindObjectPattern
	KindArrayPattern
	KindAssignmentPattern
	KindRestElement
	KindSpreadElement
	KindProperty
	KindFunctionExpression
	KindArrowFunctionExpression
	KindClassExpression
	KindClassBody
	KindClassProperty
	KindClassPrivateProperty
	KindMethodDefinition
	KindTemplateLiteral
	KindTemplateElement
	KindTaggedTemplateExpression
	KindMemberExpression
	KindOptionalMemberExpression
	KindCallExpression
	KindOptionalCallExpression
	KindNewExpression
	KindMetaProperty
	KindUpdateExpression
	KindUnaryExpression
	KindBinaryExpression
	KindLogicalExpression
	KindConditionalExpression
	KindAssignmentExpression
	KindSequenceExpression
	KindYieldExpression
	KindImportExpression

	// JSX.
	KindJSXElement
	KindJSXFragment
	KindJSXOpeningElement
	KindJSXClosingElement
	KindJSXOpeningFragment
	KindJSXClosingFragment
	KindJSXAttribute
	KindJSXSpreadAttribute
	KindJSXExpressionContainer
	KindJSXText

	// Flow type annotations.
	KindTypeAnnotation
	KindAnyTypeAnnotation
	KindMixedTypeAnnotation
	KindEmptyTypeAnnotation
	KindExistsTypeAnnotation
	KindVoidTypeAnnotation
	KindNullLiteralTypeAnnotation
	KindStringTypeAnnotation
	KindNumberTypeAnnotation
	KindBooleanTypeAnnotation
	KindSymbolTypeAnnotation
	KindStringLiteralTypeAnnotation
	KindNumberLiteralTypeAnnotation
	KindBooleanLiteralTypeAnnotation
	KindUnionTypeAnnotation
	KindIntersectionTypeAnnotation
	KindGenericTypeAnnotation
	KindNullableTypeAnnotation
	KindArrayTypeAnnotation
	KindFunctionTypeAnnotation
	KindFunctionTypeParam
	KindTypeParameterDeclaration
	KindTypeParameterInstantiation
	KindTypeParameter
	KindTypeAlias
	KindDeclareFunction
	KindVariance

	// Flow enums.
	KindEnumDeclaration
	KindEnumStringBody
	KindEnumNumberBody
	KindEnumBooleanBody
	KindEnumSymbolBody
	KindEnumDefaultedMember
	KindEnumStringMember
	KindEnumNumberMember
	KindEnumBooleanMember

	kindCount
)

var kindNames = [...]string{
	KindInvalid:                      "Invalid",
	KindProgram:                      "Program",
	KindEmptyStatement:               "EmptyStatement",
	KindBlockStatement:                "BlockStatement",
	KindExpressionStatement:          "ExpressionStatement",
	KindIfStatement:                  "IfStatement",
	KindForStatement:                 "ForStatement",
	KindForInStatement:               "ForInStatement",
	KindForOfStatement:               "ForOfStatement",
	KindWhileStatement:               "WhileStatement",
	KindDoWhileStatement:             "DoWhileStatement",
	KindReturnStatement:              "ReturnStatement",
	KindBreakStatement:               "BreakStatement",
	KindContinueStatement:            "ContinueStatement",
	KindThrowStatement:               "ThrowStatement",
	KindTryStatement:                 "TryStatement",
	KindCatchClause:                  "CatchClause",
	KindSwitchStatement:              "SwitchStatement",
	KindSwitchCase:                   "SwitchCase",
	KindLabeledStatement:             "LabeledStatement",
	KindWithStatement:                "WithStatement",
	KindVariableDeclaration:          "VariableDeclaration",
	KindVariableDeclarator:           "VariableDeclarator",
	KindDecorator:                    "Decorator",
	KindFunctionDeclaration:          "FunctionDeclaration",
	KindClassDeclaration:             "ClassDeclaration",
	KindExportNamedDeclaration:       "ExportNamedDeclaration",
	KindExportDefaultDeclaration:     "ExportDefaultDeclaration",
	KindExportAllDeclaration:         "ExportAllDeclaration",
	KindExportSpecifier:              "ExportSpecifier",
	KindImportDeclaration:            "ImportDeclaration",
	KindImportSpecifier:              "ImportSpecifier",
	KindImportDefaultSpecifier:       "ImportDefaultSpecifier",
	KindImportNamespaceSpecifier:     "ImportNamespaceSpecifier",
	KindImportAttribute:              "ImportAttribute",
	KindIdentifier:                   "Identifier",
	KindNullLiteral:                  "NullLiteral",
	KindBooleanLiteral:               "BooleanLiteral",
	KindStringLiteral:                "StringLiteral",
	KindNumericLiteral:               "NumericLiteral",
	KindRegExpLiteral:                "RegExpLiteral",
	KindDirectiveLiteral:             "DirectiveLiteral",
	KindThisExpression:               "ThisExpression",
	KindSuper:                        "Super",
	KindArrayExpression:              "ArrayExpression",
	KindObjectExpression:             "ObjectExpression",
	KindObjectPattern:                "ObjectPattern",
	KindArrayPattern:                 "ArrayPattern",
	KindAssignmentPattern:            "AssignmentPattern",
	KindRestElement:                  "RestElement",
	KindSpreadElement:                "SpreadElement",
	KindProperty:                     "Property",
	KindFunctionExpression:           "FunctionExpression",
	KindArrowFunctionExpression:      "ArrowFunctionExpression",
	KindClassExpression:              "ClassExpression",
	KindClassBody:                    "ClassBody",
	KindClassProperty:                "ClassProperty",
	KindClassPrivateProperty:         "ClassPrivateProperty",
	KindMethodDefinition:             "MethodDefinition",
	KindTemplateLiteral:              "TemplateLiteral",
	KindTemplateElement:              "TemplateElement",
	KindTaggedTemplateExpression:     "TaggedTemplateExpression",
	KindMemberExpression:             "MemberExpression",
	KindOptionalMemberExpression:     "OptionalMemberExpression",
	KindCallExpression:               "CallExpression",
	KindOptionalCallExpression:       "OptionalCallExpression",
	KindNewExpression:                "NewExpression",
	KindMetaProperty:                 "MetaProperty",
	KindUpdateExpression:             "UpdateExpression",
	KindUnaryExpression:              "UnaryExpression",
	KindBinaryExpression:             "BinaryExpression",
	KindLogicalExpression:            "LogicalExpression",
	KindConditionalExpression:        "ConditionalExpression",
	KindAssignmentExpression:         "AssignmentExpression",
	KindSequenceExpression:           "SequenceExpression",
	KindYieldExpression:              "YieldExpression",
	KindImportExpression:             "ImportExpression",
	KindJSXElement:                   "JSXElement",
	KindJSXFragment:                  "JSXFragment",
	KindJSXOpeningElement:            "JSXOpeningElement",
	KindJSXClosingElement:            "JSXClosingElement",
	KindJSXOpeningFragment:           "JSXOpeningFragment",
	KindJSXClosingFragment:           "JSXClosingFragment",
	KindJSXAttribute:                 "JSXAttribute",
	KindJSXSpreadAttribute:           "JSXSpreadAttribute",
	KindJSXExpressionContainer:       "JSXExpressionContainer",
	KindJSXText:                      "JSXText",
	KindTypeAnnotation:               "TypeAnnotation",
	KindAnyTypeAnnotation:            "AnyTypeAnnotation",
	KindMixedTypeAnnotation:          "MixedTypeAnnotation",
	KindEmptyTypeAnnotation:          "EmptyTypeAnnotation",
	KindExistsTypeAnnotation:         "ExistsTypeAnnotation",
	KindVoidTypeAnnotation:           "VoidTypeAnnotation",
	KindNullLiteralTypeAnnotation:    "NullLiteralTypeAnnotation",
	KindStringTypeAnnotation:         "StringTypeAnnotation",
	KindNumberTypeAnnotation:         "NumberTypeAnnotation",
	KindBooleanTypeAnnotation:        "BooleanTypeAnnotation",
	KindSymbolTypeAnnotation:         "SymbolTypeAnnotation",
	KindStringLiteralTypeAnnotation:  "StringLiteralTypeAnnotation",
	KindNumberLiteralTypeAnnotation:  "NumberLiteralTypeAnnotation",
	KindBooleanLiteralTypeAnnotation: "BooleanLiteralTypeAnnotation",
	KindUnionTypeAnnotation:          "UnionTypeAnnotation",
	KindIntersectionTypeAnnotation:   "IntersectionTypeAnnotation",
	KindGenericTypeAnnotation:        "GenericTypeAnnotation",
	KindNullableTypeAnnotation:       "NullableTypeAnnotation",
	KindArrayTypeAnnotation:          "ArrayTypeAnnotation",
	KindFunctionTypeAnnotation:       "FunctionTypeAnnotation",
	KindFunctionTypeParam:            "FunctionTypeParam",
	KindTypeParameterDeclaration:     "TypeParameterDeclaration",
	KindTypeParameterInstantiation:   "TypeParameterInstantiation",
	KindTypeParameter:                "TypeParameter",
	KindTypeAlias:                    "TypeAlias",
	KindDeclareFunction:              "DeclareFunction",
	KindVariance:                     "Variance",
	KindEnumDeclaration:              "EnumDeclaration",
	KindEnumStringBody:               "EnumStringBody",
	KindEnumNumberBody:               "EnumNumberBody",
	KindEnumBooleanBody:              "EnumBooleanBody",
	KindEnumSymbolBody:               "EnumSymbolBody",
	KindEnumDefaultedMember:          "EnumDefaultedMember",
	KindEnumStringMember:             "EnumStringMember",
	KindEnumNumberMember:             "EnumNumberMember",
	KindEnumBooleanMember:            "EnumBooleanMember",
}

// String returns the kind's name, or a placeholder for an out-of-range
// value (which should not occur for any Kind produced by this package).
func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}
