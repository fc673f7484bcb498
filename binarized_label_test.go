package pcfg

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBinarizedLabelStringRoundTrip(t *testing.T) {
	cases := []BinarizedLabel{
		Bare("NP"),
		Markovized("FRAG", []Symbol{"NP-TMP", "."}, nil),
		Markovized("FRAG", nil, []Symbol{"ROOT"}),
		Markovized("FRAG", []Symbol{"NP-TMP", "."}, []Symbol{"ROOT", "S"}),
	}

	for _, label := range cases {
		text := label.String()
		parsed, err := ParseBinarizedLabel(text)
		require.NoError(t, err)
		assert.Equal(t, label, parsed, "round trip for %q", text)
	}
}

func TestBinarizedLabelStringForm(t *testing.T) {
	assert.Equal(t, "NP", Bare("NP").String())
	assert.Equal(t, "FRAG|<NP-TMP,.>", Markovized("FRAG", []Symbol{"NP-TMP", "."}, nil).String())
	assert.Equal(t, "FRAG^<ROOT>", Markovized("FRAG", nil, []Symbol{"ROOT"}).String())
	assert.Equal(t, "FRAG|<NP-TMP,.>^<ROOT>", Markovized("FRAG", []Symbol{"NP-TMP", "."}, []Symbol{"ROOT"}).String())
}

func TestBinarizedLabelIsMarkovized(t *testing.T) {
	assert.False(t, Bare("NP").IsMarkovized())
	assert.False(t, Markovized("NP", nil, []Symbol{"ROOT"}).IsMarkovized())
	assert.True(t, Markovized("NP", []Symbol{"VP"}, nil).IsMarkovized())
}

func TestParseBinarizedLabelErrors(t *testing.T) {
	_, err := ParseBinarizedLabel("|<X>")
	assert.Error(t, err)

	_, err = ParseBinarizedLabel("NP|<X")
	assert.Error(t, err)
}
