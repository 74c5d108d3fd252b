package ast

import "jsgen/internal/atom"

// This file holds the kind-specific payload struct for every Kind that
// carries one. Leaf kinds (ThisExpression, Super, NullLiteral, the bare Flow
// primitive-type annotations, JSXOpeningFragment/JSXClosingFragment) carry no
// payload; their Node.Payload is nil.

// VarKind is the declaration keyword of a VariableDeclaration.
type VarKind uint8

const (
	VarKindVar VarKind = iota
	VarKindLet
	VarKindConst
)

// PropertyKind distinguishes an ObjectExpression property's role.
type PropertyKind uint8

const (
	PropertyKindInit PropertyKind = iota
	PropertyKindGet
	PropertyKindSet
)

// MethodKind distinguishes a MethodDefinition's role.
type MethodKind uint8

const (
	MethodKindMethod MethodKind = iota
	MethodKindConstructor
	MethodKindGet
	MethodKindSet
)

// ImportKind distinguishes a value import from a Flow type-only import.
type ImportKind uint8

const (
	ImportKindValue ImportKind = iota
	ImportKindType
	ImportKindTypeof
)

// BinaryOp enumerates BinaryExpression operators.
type BinaryOp uint8

const (
	BinEq BinaryOp = iota
	BinNotEq
	BinStrictEq
	BinStrictNotEq
	BinLess
	BinLessEq
	BinGreater
	BinGreaterEq
	BinLShift
	BinRShift
	BinURShift
	BinAdd
	BinSub
	BinMul
	BinDiv
	BinMod
	BinBitOr
	BinBitXor
	BinBitAnd
	BinIn
	BinInstanceof
	BinExp
)

// LogicalOp enumerates LogicalExpression operators.
type LogicalOp uint8

const (
	LogicalOr LogicalOp = iota
	LogicalAnd
	LogicalNullish
)

// UnaryOp enumerates UnaryExpression operators.
type UnaryOp uint8

const (
	UnaryMinus UnaryOp = iota
	UnaryPlus
	UnaryNot
	UnaryBitNot
	UnaryTypeof
	UnaryVoid
	UnaryDelete
)

// UpdateOp enumerates UpdateExpression operators.
type UpdateOp uint8

const (
	UpdateIncr UpdateOp = iota
	UpdateDecr
)

// AssignOp enumerates AssignmentExpression operators ("=" and the compound
// forms; "=" is AssignPlain).
type AssignOp uint8

const (
	AssignPlain AssignOp = iota
	AssignAdd
	AssignSub
	AssignMul
	AssignDiv
	AssignMod
	AssignExp
	AssignLShift
	AssignRShift
	AssignURShift
	AssignBitOr
	AssignBitXor
	AssignBitAnd
	AssignOr
	AssignAnd
	AssignNullish
)

// Program is the translation unit root.
type Program struct {
	Body []Handle
}

// BlockStatement is a `{ ... }` statement list.
type BlockStatement struct {
	Body []Handle
}

// ExpressionStatement wraps a bare expression used as a statement.
type ExpressionStatement struct {
	Expression Handle
}

type IfStatement struct {
	Test       Handle
	Consequent Handle
	Alternate  Handle // NoHandle if there is no else-branch.
}

type ForStatement struct {
	Init   Handle // NoHandle if omitted.
	Test   Handle // NoHandle if omitted.
	Update Handle // NoHandle if omitted.
	Body   Handle
}

type ForInStatement struct {
	Left  Handle
	Right Handle
	Body  Handle
}

type ForOfStatement struct {
	Left    Handle
	Right   Handle
	Body    Handle
	IsAwait bool
}

type WhileStatement struct {
	Test Handle
	Body Handle
}

type DoWhileStatement struct {
	Test Handle
	Body Handle
}

type ReturnStatement struct {
	Argument Handle // NoHandle for a bare `return;`.
}

type BreakStatement struct {
	Label Handle // NoHandle if unlabeled.
}

type ContinueStatement struct {
	Label Handle // NoHandle if unlabeled.
}

type ThrowStatement struct {
	Argument Handle
}

type TryStatement struct {
	Block     Handle
	Handler   Handle // NoHandle if there is no catch clause.
	Finalizer Handle // NoHandle if there is no finally block.
}

type CatchClause struct {
	Param Handle // NoHandle for a parameterless catch.
	Body  Handle
}

type SwitchStatement struct {
	Discriminant Handle
	Cases        []Handle
}

type SwitchCase struct {
	Test       Handle // NoHandle for `default:`.
	Consequent []Handle
}

type LabeledStatement struct {
	Label Handle
	Body  Handle
}

type WithStatement struct {
	Object Handle
	Body   Handle
}

type VariableDeclaration struct {
	Kind         VarKind
	Declarations []Handle
}

type VariableDeclarator struct {
	Id   Handle
	Init Handle // NoHandle if uninitialized.
}

type Decorator struct {
	Expression Handle
}

type FunctionDeclaration struct {
	Id             Handle // NoHandle for an anonymous default-export function.
	Params         []Handle
	Body           Handle
	TypeParameters Handle
	ReturnType     Handle
	Predicate      Handle
	Generator      bool
	IsAsync        bool
}

type ClassDeclaration struct {
	Id                  Handle // NoHandle for an anonymous default-export class.
	TypeParameters      Handle
	SuperClass          Handle // NoHandle if there is no `extends`.
	SuperTypeParameters Handle
	Implements          []Handle
	Decorators          []Handle
	Body                Handle
}

type ExportNamedDeclaration struct {
	Declaration Handle // NoHandle if this is a specifier-list export.
	Specifiers  []Handle
	Source      Handle // NoHandle if not a re-export.
}

type ExportDefaultDeclaration struct {
	Declaration Handle
}

type ExportAllDeclaration struct {
	Source   Handle
	Exported Handle // NoHandle for a bare `export * from`.
}

type ExportSpecifier struct {
	Local    Handle
	Exported Handle
}

type ImportDeclaration struct {
	Specifiers []Handle
	Source     Handle
	Attributes []Handle
	ImportKind ImportKind
}

type ImportSpecifier struct {
	Imported   Handle
	Local      Handle
	ImportKind ImportKind
}

type ImportDefaultSpecifier struct {
	Local Handle
}

type ImportNamespaceSpecifier struct {
	Local Handle
}

type ImportAttribute struct {
	Key   Handle
	Value Handle
}

// Identifier carries an optional Flow type annotation and optionality marker
// (`foo?: T` in a parameter position).
type Identifier struct {
	Name           atom.ID
	TypeAnnotation Handle // NoHandle if absent.
	Optional       bool
}

type BooleanLiteral struct {
	Value bool
}

// StringLiteral stores the value as UTF-16 code units: JS string literals are
// logically UTF-16, and the escaping rules in the generator (spec §4.5)
// operate on code units, not runes.
type StringLiteral struct {
	CodeUnits []uint16
}

type NumericLiteral struct {
	Value float64
}

type RegExpLiteral struct {
	Pattern string
	Flags   string
}

// DirectiveLiteral is the raw-string form used in a directive prologue
// (e.g. "use strict";). It carries the same payload shape as StringLiteral
// and is emitted identically.
type DirectiveLiteral struct {
	CodeUnits []uint16
}

type ArrayExpression struct {
	// Elements may contain NoHandle entries, representing elisions (array
	// holes): `[1, , 3]`.
	Elements []Handle
}

type ObjectExpression struct {
	Properties []Handle
}

type ObjectPattern struct {
	Properties []Handle
}

type ArrayPattern struct {
	Elements []Handle
}

type AssignmentPattern struct {
	Left  Handle
	Right Handle
}

type RestElement struct {
	Argument Handle
}

type SpreadElement struct {
	Argument Handle
}

type Property struct {
	Key       Handle
	Value     Handle
	Kind      PropertyKind
	Computed  bool
	Shorthand bool
	Method    bool
}

type FunctionExpression struct {
	Id             Handle // NoHandle if anonymous.
	Params         []Handle
	Body           Handle
	TypeParameters Handle
	ReturnType     Handle
	Predicate      Handle
	Generator      bool
	IsAsync        bool
}

type ArrowFunctionExpression struct {
	Params         []Handle
	Body           Handle // either a BlockStatement or, if Expression, any expression.
	TypeParameters Handle
	ReturnType     Handle
	Predicate      Handle
	Expression     bool
	IsAsync        bool
}

type ClassExpression struct {
	Id                  Handle
	TypeParameters      Handle
	SuperClass          Handle
	SuperTypeParameters Handle
	Implements          []Handle
	Decorators          []Handle
	Body                Handle
}

type ClassBody struct {
	Body []Handle
}

type ClassProperty struct {
	Key      Handle
	Value    Handle // NoHandle if uninitialized.
	Computed bool
	IsStatic bool
}

type ClassPrivateProperty struct {
	Key      Handle
	Value    Handle
	IsStatic bool
}

type MethodDefinition struct {
	Key      Handle
	Value    Handle // always a FunctionExpression; see ast invariants.
	Kind     MethodKind
	Computed bool
	IsStatic bool
}

type TemplateLiteral struct {
	Quasis      []Handle // TemplateElement nodes, len(Quasis) == len(Expressions)+1.
	Expressions []Handle
}

type TemplateElement struct {
	Raw  string
	Tail bool
}

type TaggedTemplateExpression struct {
	Tag   Handle
	Quasi Handle
}

// MemberExpr is the shared payload for MemberExpression and
// OptionalMemberExpression; the distinction the generator and the
// parenthesization oracle care about lives in Node.Kind, not here.
type MemberExpr struct {
	Object   Handle
	Property Handle
	Computed bool
}

// CallExpr is the shared payload for CallExpression and
// OptionalCallExpression.
type CallExpr struct {
	Callee    Handle
	Arguments []Handle
}

type NewExpression struct {
	Callee    Handle
	Arguments []Handle
}

type MetaProperty struct {
	Meta     Handle
	Property Handle
}

type UpdateExpression struct {
	Operator UpdateOp
	Prefix   bool
	Argument Handle
}

type UnaryExpression struct {
	Operator UnaryOp
	Argument Handle
}

type BinaryExpression struct {
	Operator BinaryOp
	Left     Handle
	Right    Handle
}

type LogicalExpression struct {
	Operator LogicalOp
	Left     Handle
	Right    Handle
}

type ConditionalExpression struct {
	Test       Handle
	Consequent Handle
	Alternate  Handle
}

type AssignmentExpression struct {
	Operator AssignOp
	Left     Handle
	Right    Handle
}

type SequenceExpression struct {
	Expressions []Handle
}

type YieldExpression struct {
	Argument Handle // NoHandle for a bare `yield;`.
	Delegate bool
}

type ImportExpression struct {
	Source Handle
}

type JSXElement struct {
	OpeningElement Handle
	ClosingElement Handle // NoHandle if self-closing.
	Children       []Handle
}

type JSXFragment struct {
	OpeningFragment Handle
	ClosingFragment Handle
	Children        []Handle
}

type JSXOpeningElement struct {
	Name        Handle
	Attributes  []Handle
	SelfClosing bool
}

type JSXClosingElement struct {
	Name Handle
}

type JSXAttribute struct {
	Name  Handle
	Value Handle // NoHandle for a bare boolean attribute.
}

type JSXSpreadAttribute struct {
	Argument Handle
}

type JSXExpressionContainer struct {
	Expression Handle
}

type JSXText struct {
	Raw string
}

// TypeAnnotation wraps an inner Flow type, matching the upstream AST shape
// where `foo: T` stores a TypeAnnotation node whose TypeAnnotation field
// points at the real type (T), rather than pointing at T directly.
type TypeAnnotation struct {
	TypeAnnotation Handle
}

type StringLiteralTypeAnnotation struct {
	Value []uint16
	Raw   string
}

type NumberLiteralTypeAnnotation struct {
	Value float64
	Raw   string
}

type BooleanLiteralTypeAnnotation struct {
	Value bool
}

type UnionTypeAnnotation struct {
	Types []Handle
}

type IntersectionTypeAnnotation struct {
	Types []Handle
}

type GenericTypeAnnotation struct {
	Id             Handle
	TypeParameters Handle // NoHandle if not instantiated.
}

type NullableTypeAnnotation struct {
	TypeAnnotation Handle
}

type ArrayTypeAnnotation struct {
	ElementType Handle
}

type FunctionTypeAnnotation struct {
	Params         []Handle
	Rest           Handle // NoHandle if there is no rest parameter.
	ReturnType     Handle
	TypeParameters Handle
	This           Handle // NoHandle if there is no explicit `this` param.
}

type FunctionTypeParam struct {
	Name           Handle // NoHandle for an unnamed param (`(string) => void`).
	TypeAnnotation Handle
	Optional       bool
}

type TypeParameterDeclaration struct {
	Params []Handle
}

type TypeParameterInstantiation struct {
	Params []Handle
}

type TypeParameter struct {
	Name     atom.ID
	Bound    Handle // NoHandle if unbounded.
	Variance Handle // NoHandle if invariant.
	Default  Handle // NoHandle if no default.
}

type TypeAlias struct {
	Id             Handle
	TypeParameters Handle
	Right          Handle
}

// DeclareFunction wraps a single Identifier whose TypeAnnotation resolves to
// a FunctionTypeAnnotation; see ast invariants.
type DeclareFunction struct {
	Id Handle
}

// Variance.Kind must resolve to "plus" or "minus"; see ast invariants.
type Variance struct {
	Kind atom.ID
}

type EnumDeclaration struct {
	Id   Handle
	Body Handle
}

// EnumBody is the shared payload for the four enum body kinds
// (EnumStringBody/EnumNumberBody/EnumBooleanBody/EnumSymbolBody); which one
// applies lives in Node.Kind.
type EnumBody struct {
	Members           []Handle
	ExplicitType      bool
	HasUnknownMembers bool
}

type EnumDefaultedMember struct {
	Id Handle
}

// EnumMember is the shared payload for EnumStringMember/EnumNumberMember/
// EnumBooleanMember.
type EnumMember struct {
	Id   Handle
	Init Handle
}
