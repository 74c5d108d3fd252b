// Package atom provides a string-uniquing table used throughout the AST for
// identifier and literal text. Every string is stored exactly once; repeated
// interning of equal text returns the same compact, stable id.
package atom

import (
	"strconv"
	"sync"
)

// ID identifies a unique interned string. The zero value is not special;
// Invalid is the only reserved id.
type ID uint32

// Invalid is reserved and never returned by Table.Intern.
const Invalid ID = 1<<32 - 1

// Table is a string interner. The zero value is not usable; use New.
//
// A Table may be read (Resolve/TryResolve) concurrently with other reads
// with no external synchronization. Intern takes an exclusive lock, so
// concurrent Intern calls are safe, but the contract promised to callers
// is single-threaded: concurrent insert and read against
// the same Table is the caller's responsibility to serialize if it matters
// to them, matching the upstream table's "interior mutation, externally
// synchronized" contract.
type Table struct {
	mu      sync.RWMutex
	strings []string
	index   map[string]ID
}

// New creates an empty Table.
func New() *Table {
	return &Table{index: make(map[string]ID)}
}

// Intern inserts text if absent and returns its id. Interning the same text
// twice, on the same Table, always returns the same id.
func (t *Table) Intern(text string) ID {
	t.mu.RLock()
	if id, ok := t.index[text]; ok {
		t.mu.RUnlock()
		return id
	}
	t.mu.RUnlock()

	t.mu.Lock()
	defer t.mu.Unlock()
	if id, ok := t.index[text]; ok {
		return id
	}

	n := len(t.strings)
	if n >= int(Invalid) {
		panic("atom: table capacity exceeded")
	}
	id := ID(n)
	t.strings = append(t.strings, text)
	t.index[text] = id
	return id
}

// Resolve returns the text for id. id must have been returned by Intern on
// this Table; resolving an out-of-range or Invalid id is undefined behavior
// (it may panic). Callers handling untrusted ids should use TryResolve.
func (t *Table) Resolve(id ID) string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.strings[id]
}

// TryResolve is the checked counterpart of Resolve: it reports false for
// Invalid and for any id outside the table's range instead of panicking.
func (t *Table) TryResolve(id ID) (string, bool) {
	if id == Invalid {
		return "", false
	}
	t.mu.RLock()
	defer t.mu.RUnlock()
	if int(id) >= len(t.strings) {
		return "", false
	}
	return t.strings[id], true
}

// Len returns the number of distinct interned strings.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.strings)
}

// All returns a snapshot of every interned string, indexed by ID (All()[i]
// is the text that Intern returned id i for). Intended for diagnostic dumps
// (cmd/jsgen's "atoms" subcommand); not used by the generator itself.
func (t *Table) All() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	out := make([]string, len(t.strings))
	copy(out, t.strings)
	return out
}

var (
	debugMu    sync.Mutex
	debugTable *Table
)

// WithDebugContext installs table as the active table for the duration of
// action, restoring whatever was previously active on return — including
// when action panics. It exists solely so diagnostic dumps can render an ID
// as "N(text)" without threading a Table through every call site; see
// DebugString.
func WithDebugContext(table *Table, action func()) {
	debugMu.Lock()
	prev := debugTable
	debugTable = table
	debugMu.Unlock()

	defer func() {
		debugMu.Lock()
		debugTable = prev
		debugMu.Unlock()
	}()

	action()
}

// DebugString renders id as "N" or, if a debug context is active and the id
// resolves in it, "N(text)". Intended for diagnostic dumps only.
func DebugString(id ID) string {
	debugMu.Lock()
	t := debugTable
	debugMu.Unlock()

	if t == nil {
		return itoa(id)
	}
	if text, ok := t.TryResolve(id); ok {
		return itoa(id) + "(" + text + ")"
	}
	return itoa(id)
}

func itoa(id ID) string {
	if id == Invalid {
		return "invalid"
	}
	return strconv.FormatUint(uint64(id), 10)
}
