package asm

import (
	"iter"
	"maps"
	"slices"
)

// SymbolKind is the type of a named symbol.
type SymbolKind int

//go:generate go tool stringer -linecomment -type=SymbolKind
const (
	SYMBOL_REGISTER = SymbolKind(0) // register
	SYMBOL_DATA     = SymbolKind(1) // data
	SYMBOL_CONST    = SymbolKind(2) // const
	SYMBOL_LABEL    = SymbolKind(3) // label
)

// Symbol is a named register, data item, constant or label.
type Symbol struct {
	Kind     SymbolKind
	Value    int // Initial or constant value.
	Size     int // Size in bytes, for data.
	Location int // Register number, data address or program address.
}

// SymbolTable maps qualified names to symbols.
// Symbols declared inside a process are qualified by the process scope.
type SymbolTable struct {
	symbols map[string]Symbol
}

// Insert adds a new symbol. Redefinition is not permitted.
func (st *SymbolTable) Insert(name string, sym Symbol) (err error) {
	if st.symbols == nil {
		st.symbols = make(map[string]Symbol)
	}

	_, ok := st.symbols[name]
	if ok {
		err = &ErrToken{Text: name, Err: ErrDuplicateSymbol}
		return
	}

	st.symbols[name] = sym
	return
}

// Get returns the symbol with an exact qualified name.
func (st *SymbolTable) Get(name string) (sym Symbol, ok bool) {
	sym, ok = st.symbols[name]
	return
}

// Lookup finds a name in the given scope, falling back to the global scope.
func (st *SymbolTable) Lookup(name string, scope string) (sym Symbol, err error) {
	if len(scope) != 0 {
		sym, ok := st.symbols[scope+name]
		if ok {
			return sym, nil
		}
	}

	sym, ok := st.symbols[name]
	if !ok {
		err = &ErrToken{Text: name, Err: ErrUndeclared}
	}

	return
}

// Len returns the number of symbols.
func (st *SymbolTable) Len() int {
	return len(st.symbols)
}

// All iterates over all symbols in name order.
func (st *SymbolTable) All() iter.Seq2[string, Symbol] {
	return func(yield func(string, Symbol) bool) {
		for _, name := range slices.Sorted(maps.Keys(st.symbols)) {
			if !yield(name, st.symbols[name]) {
				return
			}
		}
	}
}

// reset removes all symbols.
func (st *SymbolTable) reset() {
	clear(st.symbols)
}
