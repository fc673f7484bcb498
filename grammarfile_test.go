package pcfg

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGrammarFileWriteReadRoundTrip(t *testing.T) {
	g := &PCFG{Rules: []WeightedRule{
		{Rule: NonLexical("NP", []Symbol{"D", "N"}), Weight: 1},
		{Rule: Lexical("D", "the"), Weight: 1},
		{Rule: Lexical("N", "ball"), Weight: 0.5},
		{Rule: Lexical("N", "dog"), Weight: 0.5},
	}}

	var rulesBuf, lexiconBuf, wordsBuf bytes.Buffer
	require.NoError(t, WriteRules(&rulesBuf, g))
	require.NoError(t, WriteLexicon(&lexiconBuf, g))
	require.NoError(t, WriteWords(&wordsBuf, g))

	rules, err := ReadRules(&rulesBuf)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.False(t, rules[0].Rule.IsLexical())

	lexicon, err := ReadLexicon(&lexiconBuf)
	require.NoError(t, err)
	require.Len(t, lexicon, 3)
	for _, wr := range lexicon {
		require.True(t, wr.Rule.IsLexical())
	}

	words, err := ReadWords(&wordsBuf)
	require.NoError(t, err)
	require.Equal(t, []string{"ball", "dog", "the"}, words)
}

func TestReadRulesSkipsWrongKindLine(t *testing.T) {
	input := bytes.NewBufferString("the UNK 0.01\nNP -> D N 1\n")
	rules, err := ReadRules(input)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, Symbol("NP"), rules[0].Rule.LHS)
}

func TestReadRulesSkipsMalformedLineAndContinues(t *testing.T) {
	input := bytes.NewBufferString("-> D N 1\nNP -> D N 1\n")
	rules, err := ReadRules(input)
	require.NoError(t, err)
	require.Len(t, rules, 1)
	require.Equal(t, Symbol("NP"), rules[0].Rule.LHS)
}

func TestParseGrammarLineRejectsMissingLHS(t *testing.T) {
	_, err := ParseGrammarLine("-> D N 1")
	require.Error(t, err)
}

func TestParseGrammarLineRejectsTooManyLexicalTokens(t *testing.T) {
	_, err := ParseGrammarLine("D the extra 1")
	require.Error(t, err)
}
