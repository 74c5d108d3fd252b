package atom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInternIdempotent(t *testing.T) {
	tbl := New()

	foo1 := tbl.Intern("foo")
	foo2 := tbl.Intern("foo")
	assert.Equal(t, foo1, foo2)

	bar := tbl.Intern("bar")
	assert.NotEqual(t, foo1, bar)

	assert.Equal(t, "foo", tbl.Resolve(foo1))
	assert.Equal(t, "bar", tbl.Resolve(bar))
}

func TestInternDistinctTextsGetDistinctIDs(t *testing.T) {
	tbl := New()
	a := tbl.Intern("a")
	b := tbl.Intern("b")
	assert.NotEqual(t, a, b)
}

func TestTryResolveOutOfRange(t *testing.T) {
	tbl := New()
	id := tbl.Intern("only")

	_, ok := tbl.TryResolve(id + 1)
	assert.False(t, ok)

	_, ok = tbl.TryResolve(Invalid)
	assert.False(t, ok)

	text, ok := tbl.TryResolve(id)
	require.True(t, ok)
	assert.Equal(t, "only", text)
}

func TestLen(t *testing.T) {
	tbl := New()
	assert.Equal(t, 0, tbl.Len())
	tbl.Intern("a")
	tbl.Intern("b")
	tbl.Intern("a")
	assert.Equal(t, 2, tbl.Len())
}

func TestWithDebugContextRestoresOnPanic(t *testing.T) {
	outer := New()
	outer.Intern("outer")

	inner := New()
	id := inner.Intern("inner-value")

	WithDebugContext(outer, func() {
		assert.NotPanics(t, func() {
			func() {
				defer func() { _ = recover() }()
				WithDebugContext(inner, func() {
					assert.Equal(t, "0(inner-value)", DebugString(id))
					panic("boom")
				})
			}()
		})
		// outer must be restored even though the nested call panicked.
		assert.Equal(t, "0(outer)", DebugString(ID(0)))
	})
}

func TestDebugStringWithoutContext(t *testing.T) {
	assert.Equal(t, "invalid", DebugString(Invalid))
	assert.Equal(t, "5", DebugString(ID(5)))
}
