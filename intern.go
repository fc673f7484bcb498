package pcfg

// SymbolTable is a bijection between non-terminal symbols and dense uint32
// ids, built up while a grammar is loaded and then treated as read-only for
// the lifetime of a decode.
type SymbolTable struct {
	toSymbol []Symbol
	toID     map[Symbol]uint32
	Initial  uint32
}

// NewSymbolTable returns an empty table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{toID: map[Symbol]uint32{}}
}

// Intern returns s's id, assigning it the next free id if this is the first
// time s has been seen.
func (t *SymbolTable) Intern(s Symbol) uint32 {
	if id, ok := t.toID[s]; ok {
		return id
	}
	id := uint32(len(t.toSymbol))
	t.toSymbol = append(t.toSymbol, s)
	t.toID[s] = id
	return id
}

// Lookup returns s's id without interning it.
func (t *SymbolTable) Lookup(s Symbol) (uint32, bool) {
	id, ok := t.toID[s]
	return id, ok
}

// Symbol returns the symbol interned with the given id.
func (t *SymbolTable) Symbol(id uint32) Symbol {
	return t.toSymbol[id]
}

// Len returns the number of distinct non-terminals interned so far.
func (t *SymbolTable) Len() int {
	return len(t.toSymbol)
}

// SetInitial interns s (if needed) and records it as the grammar's start
// symbol.
func (t *SymbolTable) SetInitial(s Symbol) {
	t.Initial = t.Intern(s)
}
