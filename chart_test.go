package pcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestChartCellStartPartitionsEntries checks that CellStart assigns every
// (start, span) cell a distinct, non-overlapping block of numNT entries that
// together exactly cover the chart's backing array, for several sentence
// lengths.
func TestChartCellStartPartitionsEntries(t *testing.T) {
	const numNT = 3
	for n := 1; n <= 6; n++ {
		chart := NewChart(n, numNT)
		seen := make([]bool, len(chart.entries))

		for span := 1; span <= n; span++ {
			for start := 0; start+span <= n; start++ {
				base := chart.CellStart(start, span)
				require.GreaterOrEqual(t, base, 0, "n=%d span=%d start=%d", n, span, start)
				require.LessOrEqual(t, base+numNT, len(chart.entries), "n=%d span=%d start=%d", n, span, start)
				for i := base; i < base+numNT; i++ {
					require.False(t, seen[i], "entry %d covered twice (n=%d span=%d start=%d)", i, n, span, start)
					seen[i] = true
				}
			}
		}

		for i, s := range seen {
			require.True(t, s, "entry %d never covered (n=%d)", i, n)
		}
	}
}

func TestChartCellAliasesEntries(t *testing.T) {
	chart := NewChart(3, 2)
	cell := chart.Cell(1, 2)
	cell[0] = ChartEntry{Weight: 0.5, HasBP: true}

	base := chart.CellStart(1, 2)
	require.Equal(t, 0.5, chart.At(base).Weight)
	require.True(t, chart.At(base).HasBP)
}
