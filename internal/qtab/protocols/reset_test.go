package protocols

import (
	"testing"

	"github.com/latticeq/qtab/internal/qtab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResetQubitsStabilizerReplacesTarget(t *testing.T) {
	s := buildStabilizer(t, "XXXX", "ZZII", "IZZI", "IIZZ")

	newstateTab := core.NewTableau(1, 1)
	newstateTab.SetRow(0, mustParse(t, "Z"))
	newstate := core.NewStabilizer(newstateTab)

	ResetQubitsStabilizer(s, newstate, []int{0}, true)

	assert.Equal(t, "+1 IIZZ", s.Row(0).String())
	assert.Equal(t, "+1 IZIZ", s.Row(1).String())
	assert.Equal(t, "+1 ZIII", s.Row(2).String())
	assert.True(t, s.Row(3).IsIdentity())

	for i := 0; i < s.Rank(); i++ {
		for j := 0; j < s.Rank(); j++ {
			if i == j {
				continue
			}
			assert.Equal(t, uint8(0), core.Comm(s.Row(i), s.Tab, j),
				"rows %d and %d must commute after reset", i, j)
		}
	}
}

func TestResetQubitsMixedStabilizerSetsRank(t *testing.T) {
	tab := core.NewTableau(4, 4)
	rows := []string{"XXXX", "ZZII", "IZZI", "IIZZ"}
	for i, rs := range rows {
		tab.SetRow(i, mustParse(t, rs))
	}
	core.Canonicalize(tab, true)
	m := core.NewMixedStabilizer(tab, 4)

	newstateTab := core.NewTableau(1, 1)
	newstateTab.SetRow(0, mustParse(t, "Z"))
	newstate := core.NewStabilizer(newstateTab)

	ResetQubitsMixedStabilizer(m, newstate, []int{0}, true)

	assert.Equal(t, 3, m.Rank)
	assert.Equal(t, "+1 ZIII", m.Tab.Row(2).String())
}

func TestResetQubitsMixedDestabilizerInstallsPhase(t *testing.T) {
	d := buildMixedDestabilizer(t, 2, 2,
		"X_", "_X",
		"Z_", "_Z",
	)

	newstateTab := core.NewTableau(1, 1)
	newstateTab.SetRow(0, mustParse(t, "-1 Z"))
	newstate := core.NewStabilizer(newstateTab)

	require.NotPanics(t, func() {
		ResetQubitsMixedDestabilizer(d, newstate, []int{0}, true)
	})

	assert.Equal(t, core.PhaseMinusOne, d.Stab(0).Phase)
}
