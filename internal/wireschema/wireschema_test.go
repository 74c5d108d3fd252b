package wireschema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildRootSchema(t *testing.T) {
	s := Build()
	require.NotNil(t, s)
	assert.Equal(t, "object", s.Type)
	assert.Equal(t, "jsgen wire AST", s.Title)
	assert.Contains(t, s.Required, "type")
}

func TestBuildNodeAllowsOpenFields(t *testing.T) {
	s := Build()
	require.NotNil(t, s.AdditionalProperties)
	assert.Nil(t, s.AdditionalProperties.Not)
}

func TestPositionRequiresLineAndColumn(t *testing.T) {
	props := Build().Properties
	require.Contains(t, props, "start")
	pos := props["start"]
	assert.ElementsMatch(t, []string{"line", "column"}, pos.Required)
	require.NotNil(t, pos.AdditionalProperties)
	require.NotNil(t, pos.AdditionalProperties.Not)
}

func TestPositionFieldsHaveMinimum(t *testing.T) {
	pos := Build().Properties["start"]
	require.NotNil(t, pos.Properties["line"].Minimum)
	assert.Equal(t, 1.0, *pos.Properties["line"].Minimum)
}
