package protocols

import (
	"testing"

	"github.com/latticeq/qtab/internal/qtab/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParse(t *testing.T, s string) *core.Pauli {
	t.Helper()
	p, err := core.ParsePauli(s)
	require.NoError(t, err)
	return p
}

func TestProjectStabilizerGHZDestruction(t *testing.T) {
	s := buildStabilizer(t, "XXXX", "ZZII", "IZZI", "IIZZ")

	anticom, result := ProjectStabilizer(s, mustParse(t, "ZIII"), true, true)
	assert.Equal(t, 1, anticom)
	assert.False(t, result.OK)

	core.Canonicalize(s.Tab, true)
	assert.Equal(t, "+1 ZIII", s.Row(0).String())
	assert.Equal(t, "+1 IZII", s.Row(1).String())
	assert.Equal(t, "+1 IIZI", s.Row(2).String())
	assert.Equal(t, "+1 IIIZ", s.Row(3).String())
}

func TestProjectStabilizerConsistentProjection(t *testing.T) {
	s := buildStabilizer(t, "ZII", "IXI", "IIY")
	before := []string{s.Row(0).String(), s.Row(1).String(), s.Row(2).String()}

	anticom, result := ProjectStabilizer(s, mustParse(t, "-1 ZII"), true, true)
	assert.Equal(t, 0, anticom)
	require.True(t, result.OK)
	assert.Equal(t, core.PhaseMinusOne, result.Phase)

	for i, want := range before {
		assert.Equal(t, want, s.Row(i).String(), "row %d should be unchanged", i)
	}
}

func TestProjectStabilizerOutsideGroup(t *testing.T) {
	tab := core.NewTableau(3, 2)
	tab.SetRow(0, mustParse(t, "XZI"))
	tab.SetRow(1, mustParse(t, "IZI"))
	s := core.NewStabilizer(tab)

	anticom, result := ProjectStabilizer(s, mustParse(t, "IIX"), true, true)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, "+1 XZI", s.Row(0).String())
	assert.Equal(t, "+1 IZI", s.Row(1).String())
}

func TestProjectMixedStabilizerRankGrowth(t *testing.T) {
	tab := core.NewTableau(3, 3)
	tab.SetRow(0, mustParse(t, "XZI"))
	tab.SetRow(1, mustParse(t, "IZI"))
	m := core.NewMixedStabilizer(tab, 2)

	anticom, result := ProjectMixedStabilizer(m, mustParse(t, "IIX"), true, true)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, 3, m.Rank)
	assert.Equal(t, "+1 IIX", m.Tab.Row(2).String())
}

func TestProjectMixedStabilizerFreshRankGrowth(t *testing.T) {
	tab := core.NewTableau(3, 3)
	tab.SetRow(0, mustParse(t, "ZII"))
	tab.SetRow(1, mustParse(t, "IZI"))
	m := core.NewMixedStabilizer(tab, 2)

	anticom, result := ProjectMixedStabilizer(m, mustParse(t, "IIX"), true, true)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, 3, m.Rank)
	assert.Equal(t, "+1 IIX", m.Tab.Row(2).String())
}

func buildMixedDestabilizer(t *testing.T, n, rank int, rows ...string) *core.MixedDestabilizer {
	t.Helper()
	require.Equal(t, 2*n, len(rows))
	tab := core.NewTableau(n, 2*n)
	for i, s := range rows {
		tab.SetRow(i, mustParse(t, s))
	}
	d, err := core.NewMixedDestabilizer(tab, n, rank)
	require.NoError(t, err)
	return d
}

func TestProjectMixedDestabilizerRankGrowth(t *testing.T) {
	d := buildMixedDestabilizer(t, 3, 2,
		"X__", "_X_", // destab
		"__X",        // logical-X
		"Z__", "_Z_", // stab
		"__Z", // logical-Z
	)

	anticom, result := ProjectMixedDestabilizer(d, mustParse(t, "IIX"), true, true)
	assert.Equal(t, 0, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, 3, d.Rank)

	assert.Equal(t, "+1 X__", d.Destab(0).String())
	assert.Equal(t, "+1 _X_", d.Destab(1).String())
	assert.Equal(t, "+1 __Z", d.Destab(2).String())

	assert.Equal(t, "+1 Z__", d.Stab(0).String())
	assert.Equal(t, "+1 _Z_", d.Stab(1).String())
	assert.Equal(t, "+1 __X", d.Stab(2).String())
}

func TestProjectMixedDestabilizerCaseA(t *testing.T) {
	d := buildMixedDestabilizer(t, 2, 2,
		"X_", "_X",
		"Z_", "_Z",
	)

	anticom, result := ProjectMixedDestabilizer(d, mustParse(t, "-1 X_"), true, true)
	assert.Equal(t, 1, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, 2, d.Rank)
	assert.Equal(t, "-1 X_", d.Stab(0).String())
}

func TestProjectDestabilizerRejectsNonFullRank(t *testing.T) {
	tab := core.NewTableau(2, 4)
	tab.SetRow(0, mustParse(t, "X_"))
	tab.SetRow(1, mustParse(t, "_X"))
	tab.SetRow(2, mustParse(t, "Z_"))
	tab.SetRow(3, mustParse(t, "_Z"))
	d, err := core.NewDestabilizer(tab, 2)
	require.NoError(t, err)
	d.Rank = 1

	_, _, err = ProjectDestabilizer(d, mustParse(t, "X_"), true, true)
	assert.ErrorIs(t, err, ErrBadDataStructure)
}

func TestDestabilizerStabilizerAgreement(t *testing.T) {
	tab := core.NewTableau(2, 4)
	tab.SetRow(0, mustParse(t, "X_"))
	tab.SetRow(1, mustParse(t, "_X"))
	tab.SetRow(2, mustParse(t, "Z_"))
	tab.SetRow(3, mustParse(t, "_Z"))
	d, err := core.NewDestabilizer(tab, 2)
	require.NoError(t, err)

	_, destabResult, err := ProjectDestabilizer(d, mustParse(t, "-1 Z_"), true, true)
	require.NoError(t, err)
	require.True(t, destabResult.OK)

	s := core.NewStabilizer(core.NewTableau(2, 2))
	s.Tab.SetRow(0, mustParse(t, "Z_"))
	s.Tab.SetRow(1, mustParse(t, "_Z"))
	core.Canonicalize(s.Tab, true)
	_, stabResult := ProjectStabilizer(s, mustParse(t, "-1 Z_"), true, true)
	require.True(t, stabResult.OK)

	assert.Equal(t, stabResult.Phase, destabResult.Phase)
}
