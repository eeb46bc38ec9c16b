package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ghzStabilizer(t *testing.T) *Tableau {
	t.Helper()
	tab := NewTableau(4, 4)
	rows := []string{"XXXX", "ZZII", "IZZI", "IIZZ"}
	for i, s := range rows {
		p, err := ParsePauli(s)
		require.NoError(t, err)
		tab.SetRow(i, p)
	}
	return tab
}

func TestCanonicalizeProducesXBeforeZRows(t *testing.T) {
	tab := ghzStabilizer(t)
	xr, zr := Canonicalize(tab, true)

	assert.Equal(t, 1, xr, "exactly one X-led row (XXXX)")
	assert.Equal(t, 4, zr, "all four rows claimed")

	for i := 0; i < xr; i++ {
		row := tab.Row(i)
		found := false
		for k := 0; k < row.NQubits(); k++ {
			if row.XView().Test(uint(k)) {
				found = true
				break
			}
		}
		assert.True(t, found, "X-led row %d should have a nonzero X part", i)
	}
}

func TestCanonicalizeRowsPairwiseCommute(t *testing.T) {
	tab := ghzStabilizer(t)
	Canonicalize(tab, true)

	for i := 0; i < tab.Size(); i++ {
		for j := 0; j < tab.Size(); j++ {
			if i == j {
				continue
			}
			assert.Equal(t, uint8(0), Comm(tab.Row(i), tab, j),
				"rows %d and %d must commute after canonicalization", i, j)
		}
	}
}

func TestCanonicalizeRREFSurvivorsAvoidRestrictedColumns(t *testing.T) {
	tab := ghzStabilizer(t)
	Canonicalize(tab, true)

	// Restrict to qubit 0 only: of the GHZ canonical rows (XXXX, ZIIZ,
	// IZIZ, IIZZ), XXXX and ZIIZ touch qubit 0 and become pivots, while the
	// other two survive in front of them (tail == 2).
	tail := CanonicalizeRREF(tab, []int{0}, true)
	assert.GreaterOrEqual(t, tail, 0)
	assert.LessOrEqual(t, tail, tab.Size())

	for k := 0; k < tail; k++ {
		row := tab.Row(k)
		assert.False(t, row.XView().Test(0), "surviving row %d should have no support on the restricted qubit", k)
		assert.False(t, row.ZView().Test(0), "surviving row %d should have no support on the restricted qubit", k)
	}
	for k := tail; k < tab.Size(); k++ {
		row := tab.Row(k)
		hasSupport := row.XView().Test(0) || row.ZView().Test(0)
		assert.True(t, hasSupport, "pivot row %d should carry support on the restricted qubit", k)
	}
}
