package core

import "fmt"

// Stabilizer is a tableau of r <= n pairwise-commuting, linearly
// independent rows. r == n describes a pure state up to phase; r < n
// describes a mixed state.
type Stabilizer struct {
	Tab *Tableau
}

// NewStabilizer builds a Stabilizer from generator rows, taking ownership
// of tab (no copy).
func NewStabilizer(tab *Tableau) *Stabilizer { return &Stabilizer{Tab: tab} }

// Rank is the number of generator rows.
func (s *Stabilizer) Rank() int { return s.Tab.Size() }

// Row returns generator i (0-indexed).
func (s *Stabilizer) Row(i int) *Pauli { return s.Tab.Row(i) }

// Destabilizer pairs a Stabilizer with n destabilizer rows so that
// destabilizer row i anticommutes with stabilizer row i and commutes with
// every other stabilizer/destabilizer row. Internally it is a single
// 2n-row Tableau: rows [0, N) are the destabilizer, rows [N, 2N) are the
// stabilizer. Rank tracks how many of the N stabilizer rows are actually
// live generators; project! on a Destabilizer requires Rank == N and
// raises a bad-data-structure error otherwise, since a partially-filled
// Destabilizer cannot distinguish "in group" from "logical" without the
// rank bookkeeping a MixedDestabilizer carries.
type Destabilizer struct {
	Tab  *Tableau
	N    int
	Rank int
}

// NewDestabilizer builds a full-rank Destabilizer (Rank == N) from exactly
// N destabilizer rows followed by N stabilizer rows. It returns an error
// if tab does not have exactly 2N rows.
func NewDestabilizer(tab *Tableau, n int) (*Destabilizer, error) {
	if tab.Size() != 2*n {
		return nil, fmt.Errorf("qtab: Destabilizer requires exactly 2*n=%d rows, got %d", 2*n, tab.Size())
	}
	return &Destabilizer{Tab: tab, N: n, Rank: n}, nil
}

// Destab returns destabilizer row i (0-indexed, i in [0, N)).
func (d *Destabilizer) Destab(i int) *Pauli { return d.Tab.Row(i) }

// Stab returns stabilizer row i (0-indexed, i in [0, N)).
func (d *Destabilizer) Stab(i int) *Pauli { return d.Tab.Row(d.N + i) }

// MixedStabilizer is a Stabilizer tableau with physical capacity n but an
// explicit Rank field r <= n; only rows [0, Rank) are meaningful.
type MixedStabilizer struct {
	Tab  *Tableau
	Rank int
}

// NewMixedStabilizer builds a MixedStabilizer with capacity n and the
// given initial rank (rows [0, rank) must already hold the live
// generators; rows [rank, n) are scratch).
func NewMixedStabilizer(tab *Tableau, rank int) *MixedStabilizer {
	return &MixedStabilizer{Tab: tab, Rank: rank}
}

// ActivePrefix returns the live generators as a Stabilizer sharing storage
// with the first Rank rows of m.
func (m *MixedStabilizer) ActivePrefix() *Stabilizer {
	return NewStabilizer(m.Tab.Sub(0, m.Rank))
}

// MixedDestabilizer is a 2n-row tableau partitioned into four blocks of
// sizes Rank, N-Rank, Rank, N-Rank in the order: destabilizers
// [0, Rank), logical-X [Rank, N), stabilizers [N, N+Rank), logical-Z
// [N+Rank, 2N).
type MixedDestabilizer struct {
	Tab  *Tableau
	N    int
	Rank int
}

// NewMixedDestabilizer builds a MixedDestabilizer from a 2N-row tableau
// already laid out in the destab/logicalX/stab/logicalZ order, with the
// given initial rank.
func NewMixedDestabilizer(tab *Tableau, n, rank int) (*MixedDestabilizer, error) {
	if tab.Size() != 2*n {
		return nil, fmt.Errorf("qtab: MixedDestabilizer requires exactly 2*n=%d rows, got %d", 2*n, tab.Size())
	}
	return &MixedDestabilizer{Tab: tab, N: n, Rank: rank}, nil
}

// Destab returns destabilizer row i (0-indexed, i in [0, Rank)).
func (d *MixedDestabilizer) Destab(i int) *Pauli { return d.Tab.Row(i) }

// LogicalX returns logical-X row i (0-indexed local index, i in [0, N-Rank)).
func (d *MixedDestabilizer) LogicalX(i int) *Pauli { return d.Tab.Row(d.Rank + i) }

// Stab returns stabilizer row i (0-indexed, i in [0, Rank)).
func (d *MixedDestabilizer) Stab(i int) *Pauli { return d.Tab.Row(d.N + i) }

// LogicalZ returns logical-Z row i (0-indexed local index, i in [0, N-Rank)).
func (d *MixedDestabilizer) LogicalZ(i int) *Pauli { return d.Tab.Row(d.N + d.Rank + i) }
