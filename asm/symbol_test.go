package asm

import (
	"maps"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSymbolTable(t *testing.T) {
	assert := assert.New(t)

	st := &SymbolTable{}

	assert.NoError(st.Insert("count", Symbol{Kind: SYMBOL_REGISTER, Location: 3}))
	assert.NoError(st.Insert("main.count", Symbol{Kind: SYMBOL_REGISTER, Location: 4}))
	assert.NoError(st.Insert("LIMIT", Symbol{Kind: SYMBOL_CONST, Value: 10}))

	err := st.Insert("count", Symbol{Kind: SYMBOL_DATA})
	assert.ErrorIs(err, ErrDuplicateSymbol)

	// Process scope first.
	sym, err := st.Lookup("count", "main.")
	assert.NoError(err)
	assert.Equal(4, sym.Location)

	// Global fallback.
	sym, err = st.Lookup("count", "other.")
	assert.NoError(err)
	assert.Equal(3, sym.Location)

	sym, err = st.Lookup("LIMIT", "main.")
	assert.NoError(err)
	assert.Equal(SYMBOL_CONST, sym.Kind)
	assert.Equal(10, sym.Value)

	_, err = st.Lookup("missing", "main.")
	assert.ErrorIs(err, ErrUndeclared)
	assert.Contains(err.Error(), "missing")

	_, ok := st.Get("main.count")
	assert.True(ok)
	_, ok = st.Get("other.count")
	assert.False(ok)

	assert.Equal(3, st.Len())
	names := slices.Collect(maps.Keys(maps.Collect(st.All())))
	slices.Sort(names)
	assert.Equal([]string{"LIMIT", "count", "main.count"}, names)

	var ordered []string
	for name := range st.All() {
		ordered = append(ordered, name)
	}
	assert.Equal(names, ordered)
}

func TestSymbolKind(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("register", SYMBOL_REGISTER.String())
	assert.Equal("label", SYMBOL_LABEL.String())
	assert.Equal("SymbolKind(9)", SymbolKind(9).String())
}
