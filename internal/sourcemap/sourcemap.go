// Package sourcemap accumulates generated-position/source-position pairs
// during code generation and finalizes them into a Source Map v3 document.
//
// The pending-segment strategy ported from the reference generator's
// add_segment/flush_cur_token lives in internal/codegen (addSegment/
// flushPending): it converts each flushed segment to 0-based positions and
// hands it to Builder.AddRaw. Segments are stored in the order they arrive;
// there is no sorting or deduplication pass, matching the reference.
package sourcemap

import (
	"encoding/json"
)

// Segment is one mapping entry, already converted to the 0-based positions
// Source Map v3 expects.
type Segment struct {
	DstLine int
	DstCol  int
	SrcLine int
	SrcCol  int
	// SrcID, if non-nil, indexes the Map's Sources list. The generator
	// always has exactly one source file, so every segment it produces
	// carries SrcID pointing at index 0.
	SrcID *int
	// NameID, if non-nil, indexes the Map's Names list. The generator
	// never associates a name with a segment, so this is always nil in
	// practice; the field exists for format completeness.
	NameID *int
}

// Builder accumulates segments over one generation call. The zero value is
// ready to use.
type Builder struct {
	sources []string
	names   []string
	segs    []Segment
}

// NewBuilder creates a Builder whose single source file is named source.
func NewBuilder(source string) *Builder {
	return &Builder{sources: []string{source}}
}

// AddRaw appends one already-0-based segment. srcID and nameID follow the
// same "nil means absent" convention as Segment.
func (b *Builder) AddRaw(dstLine, dstCol, srcLine, srcCol int, srcID, nameID *int) {
	b.segs = append(b.segs, Segment{
		DstLine: dstLine,
		DstCol:  dstCol,
		SrcLine: srcLine,
		SrcCol:  srcCol,
		SrcID:   srcID,
		NameID:  nameID,
	})
}

// Map is the Source Map v3 document, directly (de)serializable as JSON.
type Map struct {
	Version  int      `json:"version"`
	Sources  []string `json:"sources"`
	Names    []string `json:"names"`
	Mappings string   `json:"mappings"`
}

// Finalize encodes the accumulated segments into a Source Map v3 document.
func (b *Builder) Finalize() *Map {
	return &Map{
		Version:  3,
		Sources:  append([]string(nil), b.sources...),
		Names:    append([]string(nil), b.names...),
		Mappings: encodeMappings(b.segs),
	}
}

// MarshalJSON lets a *Builder be handed directly to encoding/json by
// finalizing it first.
func (b *Builder) MarshalJSON() ([]byte, error) {
	return json.Marshal(b.Finalize())
}
