package pcfg

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestParseTreeLineSExprRoundTrip(t *testing.T) {
	input := "(NP (D the) (N ball))"
	tree, err := ParseTreeLine(input)
	require.NoError(t, err)
	require.Equal(t, input, tree.SExpr())
}

func TestParseTreeLineLeaf(t *testing.T) {
	tree, err := ParseTreeLine("word")
	require.NoError(t, err)
	require.Equal(t, Symbol("word"), tree.Symbol)
	require.Nil(t, tree.Children)
}

func TestNodeLeaves(t *testing.T) {
	tree, err := ParseTreeLine("(S (NP (D the) (N dog)) (VP (V barks)))")
	require.NoError(t, err)

	got := tree.Leaves()
	want := []Symbol{"the", "dog", "barks"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Leaves() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseTreeLineErrors(t *testing.T) {
	cases := []string{
		"",
		"(NP",
		"(NP)",
		"(NP (D the)) extra",
	}
	for _, line := range cases {
		if _, err := ParseTreeLine(line); err == nil {
			t.Errorf("expected error parsing %q", line)
		}
	}
}
