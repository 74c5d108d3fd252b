package ast

// Position is a 1-indexed line/column pair, matching the convention used by
// Source Map v3 consumers and most JS tooling.
type Position struct {
	Line   int
	Column int
}

// Range is the source span a node was parsed from. It is carried purely for
// diagnostics and source-map generation; the generator never reads source
// text through it.
type Range struct {
	Start Position
	End   Position
}

// Handle is an index into an Arena. Handle 0 is the first node added, so a
// zero-valued Handle field refers to that node; NoHandle is the explicit
// "absent" value for optional children.
type Handle int32

// NoHandle marks an optional child slot (e.g. an absent else-branch, or an
// absent type annotation) as not present.
const NoHandle Handle = -1

// Node is one arena slot: a kind tag, its source range, and a kind-specific
// payload. Payload holds one of the structs in payload.go; callers type-assert
// it after checking Kind, mirroring a closed sum type.
type Node struct {
	Kind    Kind
	Range   Range
	Payload any
}
