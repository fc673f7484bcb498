package pcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolTableInternIdempotent(t *testing.T) {
	st := NewSymbolTable()
	id1 := st.Intern("NP")
	id2 := st.Intern("NP")
	require.Equal(t, id1, id2)
	require.Equal(t, 1, st.Len())

	id3 := st.Intern("VP")
	require.NotEqual(t, id1, id3)
	require.Equal(t, 2, st.Len())
}

func TestSymbolTableLookup(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("NP")

	id, ok := st.Lookup("NP")
	require.True(t, ok)
	require.Equal(t, Symbol("NP"), st.Symbol(id))

	_, ok = st.Lookup("VP")
	require.False(t, ok)
}

func TestSymbolTableSetInitial(t *testing.T) {
	st := NewSymbolTable()
	st.Intern("NP")
	st.SetInitial("ROOT")

	require.Equal(t, Symbol("ROOT"), st.Symbol(st.Initial))
	id, ok := st.Lookup("ROOT")
	require.True(t, ok)
	require.Equal(t, st.Initial, id)
}
