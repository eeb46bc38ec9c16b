package qtab

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGHZStabilizer(t *testing.T) *Stabilizer {
	t.Helper()
	s := NewStabilizer(4, 4)
	rows := []string{"XXXX", "ZZII", "IZZI", "IIZZ"}
	for i, rs := range rows {
		p, err := ParsePauli(rs)
		require.NoError(t, err)
		s.SetRow(i, p)
	}
	s.Canonicalize(true)
	return s
}

func TestStabilizerProjectGHZDestruction(t *testing.T) {
	s := newGHZStabilizer(t)

	p, err := ParsePauli("ZIII")
	require.NoError(t, err)
	anticom, result := s.Project(p, true, true)

	assert.Equal(t, 1, anticom)
	assert.False(t, result.OK)

	s.Canonicalize(true)
	assert.Equal(t, "+1 ZIII", s.Row(0).String())
	assert.Equal(t, "+1 IZII", s.Row(1).String())
	assert.Equal(t, "+1 IIZI", s.Row(2).String())
	assert.Equal(t, "+1 IIIZ", s.Row(3).String())
}

func TestStabilizerFingerprintStableAcrossCalls(t *testing.T) {
	s := newGHZStabilizer(t)
	a := s.Fingerprint()
	b := s.Fingerprint()
	assert.Equal(t, a, b)
}

func TestStabilizerFingerprintChangesOnMutation(t *testing.T) {
	s := newGHZStabilizer(t)
	before := s.Fingerprint()

	p, err := ParsePauli("ZIII")
	require.NoError(t, err)
	s.Project(p, true, true)

	after := s.Fingerprint()
	assert.NotEqual(t, before, after)
}

func TestDestabilizerProjectRejectsNonFullRank(t *testing.T) {
	rows := make([]*Pauli, 4)
	for i, rs := range []string{"X_", "_X", "Z_", "_Z"} {
		p, err := ParsePauli(rs)
		require.NoError(t, err)
		rows[i] = p
	}
	d, err := NewDestabilizer(2, rows)
	require.NoError(t, err)
	d.inner.Rank = 1

	p, err := ParsePauli("X_")
	require.NoError(t, err)
	_, _, err = d.Project(p, true, true)

	require.Error(t, err)
	var tabErr *TableauError
	require.True(t, errors.As(err, &tabErr))
	assert.Equal(t, ErrBadDataStructure, tabErr.Code)
}

func TestMixedStabilizerProjectGrowsRank(t *testing.T) {
	rows := make([]*Pauli, 2)
	for i, rs := range []string{"Z__", "_Z_"} {
		p, err := ParsePauli(rs)
		require.NoError(t, err)
		rows[i] = p
	}
	m := NewMixedStabilizer(3, rows)
	require.Equal(t, 2, m.Rank())

	p, err := ParsePauli("IIX")
	require.NoError(t, err)
	anticom, result := m.Project(p, true, true)

	assert.Equal(t, 0, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, 3, m.Rank())
	assert.Equal(t, "+1 IIX", m.Row(2).String())
}

func TestMixedDestabilizerProjectGrowsRank(t *testing.T) {
	rows := make([]*Pauli, 6)
	for i, rs := range []string{"X__", "_X_", "__X", "Z__", "_Z_", "__Z"} {
		p, err := ParsePauli(rs)
		require.NoError(t, err)
		rows[i] = p
	}
	d, err := NewMixedDestabilizer(3, 2, rows)
	require.NoError(t, err)

	p, err := ParsePauli("IIX")
	require.NoError(t, err)
	anticom, result := d.Project(p, true, true)

	assert.Equal(t, 0, anticom)
	assert.False(t, result.OK)
	assert.Equal(t, 3, d.Rank())
	assert.Equal(t, "+1 __X", d.Stab(2).String())
	assert.Equal(t, "+1 __Z", d.Destab(2).String())
}
