package pcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultSignatureBucketsFeatures(t *testing.T) {
	require.Equal(t, "UNK-CAPS-INIT-ed", DefaultSignature("Walked", 0))
	require.Equal(t, "UNK-NUM-99", DefaultSignature("99", 1))
	require.Equal(t, "UNK-HYPH-up", DefaultSignature("follow-up", 2))
	require.Equal(t, "UNK", DefaultSignature("", 0))
}

func scenarioDIndex(t *testing.T) *RuleIndex {
	t.Helper()
	lines := []string{
		"S -> NP VP 1.0",
		"VP -> VP PP 1.0",
		"VP -> V NP 1.0",
		"PP -> P NP 1.0",
		"NP -> Det N 1.0",
		"NP -> PN 1.0",
		"VP eats 1.0",
		"PN she 1.0",
		"V eats 1.0",
		"P with 1.0",
		"N fish 1.0",
		"N fork 1.0",
		"Det a 1.0",
	}
	idx := NewRuleIndex("S")
	for _, line := range lines {
		wr, err := ParseGrammarLine(line)
		require.NoError(t, err)
		idx.InsertRule(wr)
	}
	return idx
}

func TestUnkifyDeunkifyRoundTrip(t *testing.T) {
	idx := scenarioDIndex(t)
	idx.InsertRule(WeightedRule{Rule: Lexical("N", "UNK"), Weight: 0.01})

	sentence := []string{"she", "eats", "a", "xyzzy", "with", "a", "fork"}
	unkified, overwritten := Unkify(sentence, idx)
	require.Equal(t, "UNK", unkified[3])
	require.Equal(t, "xyzzy", overwritten[3])

	result := Decode(idx, unkified, PruneOptions{})
	require.NotNil(t, result)

	Deunkify(result, overwritten)
	leaves := result.Leaves()
	var surface []string
	for _, l := range leaves {
		surface = append(surface, l.Type.Terminal)
	}
	require.Contains(t, surface, "xyzzy")
	require.NotContains(t, surface, "UNK")
}

func TestSmoothDeunkifyRoundTrip(t *testing.T) {
	idx := scenarioDIndex(t)
	idx.InsertRule(WeightedRule{Rule: Lexical("N", "UNK-CAPS-zy"), Weight: 0.01})

	sentence := []string{"she", "eats", "a", "Xyzzy", "with", "a", "fork"}
	smoothed, overwritten := Smooth(sentence, idx, DefaultSignature)
	require.Equal(t, "UNK-CAPS-zy", smoothed[3])
	require.Equal(t, "Xyzzy", overwritten[3])

	result := Decode(idx, smoothed, PruneOptions{})
	require.NotNil(t, result)

	Deunkify(result, overwritten)
	var surface []string
	for _, l := range result.Leaves() {
		surface = append(surface, l.Type.Terminal)
	}
	require.Contains(t, surface, "Xyzzy")
	require.NotContains(t, surface, "UNK-CAPS-zy")
}

func TestCountLeavesAndKeepWords(t *testing.T) {
	tree, err := ParseTreeLine("(S (NP (D the) (N dog)) (VP (V barks)) (PUNCT (N dog)))")
	require.NoError(t, err)

	counts := CountLeaves(tree)
	require.Equal(t, 2, counts["dog"])
	require.Equal(t, 1, counts["the"])

	keep := KeepWords(counts, 1)
	require.True(t, keep["dog"])
	require.False(t, keep["the"])
}

func TestUnkifyTreeReplacesOnlyDroppedWords(t *testing.T) {
	tree, err := ParseTreeLine("(S (NP (D the) (N dog)) (VP (V barks)))")
	require.NoError(t, err)

	keep := map[string]bool{"dog": true, "barks": true}
	unkified := UnkifyTree(tree, keep)

	require.Equal(t, []Symbol{"UNK", "dog", "barks"}, unkified.Leaves())
}

func TestSmoothTreeUsesPositionalSignature(t *testing.T) {
	tree, err := ParseTreeLine("(S (NP (D the) (N Dog)) (VP (V barks)))")
	require.NoError(t, err)

	keep := map[string]bool{"the": true, "barks": true}
	smoothed := SmoothTree(tree, keep, DefaultSignature)

	require.Equal(t, []Symbol{"the", Symbol(DefaultSignature("Dog", 1)), "barks"}, smoothed.Leaves())
}
