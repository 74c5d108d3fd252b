package sourcemap

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intp(n int) *int { return &n }

func TestFinalizeEmptyBuilderHasNoMappings(t *testing.T) {
	b := NewBuilder("in.js")
	m := b.Finalize()
	assert.Equal(t, 3, m.Version)
	assert.Equal(t, []string{"in.js"}, m.Sources)
	assert.Equal(t, "", m.Mappings)
}

func TestEncodeMappingsSingleSegment(t *testing.T) {
	b := NewBuilder("in.js")
	b.AddRaw(0, 0, 0, 0, intp(0), nil)
	m := b.Finalize()
	assert.Equal(t, "AAAA", m.Mappings)
}

func TestEncodeMappingsSameLineCommaSeparated(t *testing.T) {
	b := NewBuilder("in.js")
	b.AddRaw(0, 0, 0, 0, intp(0), nil)
	b.AddRaw(0, 4, 0, 2, intp(0), nil)
	m := b.Finalize()
	assert.Contains(t, m.Mappings, ",")
	assert.NotContains(t, m.Mappings, ";")
}

func TestEncodeMappingsAdvancesLineWithSemicolons(t *testing.T) {
	b := NewBuilder("in.js")
	b.AddRaw(0, 0, 0, 0, intp(0), nil)
	b.AddRaw(2, 0, 1, 0, intp(0), nil)
	m := b.Finalize()
	assert.Equal(t, 2, countByte(m.Mappings, ';'))
}

func TestMapMarshalsAsValidJSON(t *testing.T) {
	b := NewBuilder("in.js")
	b.AddRaw(0, 0, 0, 0, intp(0), nil)

	raw, err := json.Marshal(b)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, float64(3), decoded["version"])
	assert.Equal(t, "in.js", decoded["sources"].([]any)[0])
}

func countByte(s string, b byte) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			n++
		}
	}
	return n
}
