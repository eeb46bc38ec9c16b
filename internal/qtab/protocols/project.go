package protocols

import "github.com/latticeq/qtab/internal/qtab/core"

// anticommutingRow returns the smallest row index in [0, upto) of t that
// anticommutes with p, or -1 if none does.
func anticommutingRow(p *core.Pauli, t *core.Tableau, upto int) int {
	for i := 0; i < upto; i++ {
		if core.Comm(p, t, i) == 1 {
			return i
		}
	}
	return -1
}

// ProjectStabilizer implements project!(S, P; keepResult, phases) (spec
// §4.2). anticomIndex is 1-indexed (0 means P commutes with every row),
// mirroring the convention the destabilizer/mixed variants below share.
func ProjectStabilizer(s *core.Stabilizer, p *core.Pauli, keepResult, phases bool) (anticomIndex int, result core.PhaseResult) {
	r := s.Rank()
	a := anticommutingRow(p, s.Tab, r)

	if a == -1 {
		if !keepResult {
			return 0, core.NotInGroup()
		}
		core.Canonicalize(s.Tab, phases)
		cp := p.Copy()
		ok, _ := Generate(cp, s, false)
		if !ok {
			return 0, core.NotInGroup()
		}
		return 0, core.ResultPhase(cp.Phase)
	}

	for i := a + 1; i < r; i++ {
		if core.Comm(p, s.Tab, i) == 1 {
			core.MulLeftRow(s.Tab, i, a, phases)
		}
	}
	s.Tab.SetRow(a, p.Copy())
	return a + 1, core.NotInGroup()
}

// ProjectDestabilizer implements project!(D, P; keepResult, phases) (spec
// §4.3). It requires d.Rank == d.N; otherwise it returns a
// BadDataStructure error, since a partially-filled Destabilizer cannot
// distinguish "in group" from "logical" without the rank bookkeeping a
// MixedDestabilizer carries.
func ProjectDestabilizer(d *core.Destabilizer, p *core.Pauli, keepResult, phases bool) (anticomIndex int, result core.PhaseResult, err error) {
	if d.Rank != d.N {
		return 0, core.PhaseResult{}, badDataStructure("ProjectDestabilizer", "Destabilizer")
	}

	n := d.N
	a := -1
	for i := 0; i < n; i++ {
		if core.Comm(p, d.Tab, n+i) == 1 {
			a = i
			break
		}
	}

	if a == -1 {
		if !keepResult {
			return 0, core.NotInGroup(), nil
		}
		q := core.Zero(n)
		q.Phase = p.Phase
		for i := 0; i < n; i++ {
			if core.Comm(p, d.Tab, i) == 1 {
				core.MulLeftPauli(d.Tab, n+i, q, true)
			}
		}
		return 0, core.ResultPhase(q.Phase), nil
	}

	AnticommUpdateRows(d.Tab, p, n, n, a, phases)
	oldStab := d.Tab.Row(n + a).Copy()
	d.Tab.SetRow(a, oldStab)
	d.Tab.SetRow(n+a, p.Copy())
	return a + 1, core.NotInGroup(), nil
}

// ProjectMixedStabilizer implements project!(M, P; keepResult, phases)
// (spec §4.4): it delegates to ProjectStabilizer on the active prefix,
// then, if p turned out to be a new independent generator (anticom=0 and
// not-in-group), appends it and grows Rank by 0 or 1.
func ProjectMixedStabilizer(m *core.MixedStabilizer, p *core.Pauli, keepResult, phases bool) (anticomIndex int, result core.PhaseResult) {
	anticomIndex, result = ProjectStabilizer(m.ActivePrefix(), p, keepResult, phases)
	if anticomIndex != 0 || result.OK {
		return anticomIndex, result
	}

	m.Tab.SetRow(m.Rank, p.Copy())
	if keepResult {
		m.Rank++
		return anticomIndex, result
	}

	enlarged := m.Tab.Sub(0, m.Rank+1)
	core.Canonicalize(enlarged, phases)
	if !enlarged.Row(m.Rank).IsIdentity() {
		m.Rank++
	}
	return anticomIndex, result
}

// ProjectMixedDestabilizer implements project!(D, P; keepResult, phases)
// (spec §4.5), the hardest routine in the package: it distinguishes
// anticommutation with a stabilizer row (Case A), anticommutation with a
// logical operator (Case B-found, which grows Rank), and full group
// membership (Case B-not-found).
func ProjectMixedDestabilizer(d *core.MixedDestabilizer, p *core.Pauli, keepResult, phases bool) (anticomIndex int, result core.PhaseResult) {
	n, r := d.N, d.Rank

	anticommutes := -1
	for i := 0; i < r; i++ {
		if core.Comm(p, d.Tab, n+i) == 1 {
			anticommutes = i
			break
		}
	}

	if anticommutes != -1 {
		// Case A.
		AnticommUpdateRows(d.Tab, p, r, n, anticommutes, phases)
		oldStab := d.Tab.Row(n + anticommutes).Copy()
		d.Tab.SetRow(anticommutes, oldStab)
		d.Tab.SetRow(n+anticommutes, p.Copy())
		return anticommutes + 1, core.NotInGroup()
	}

	// Case B: scan logical-X rows [r, n), then logical-Z rows [n+r, 2n).
	anticomlog := -1
	for i := r; i < n; i++ {
		if core.Comm(p, d.Tab, i) == 1 {
			anticomlog = i
			break
		}
	}
	if anticomlog == -1 {
		for i := n + r; i < 2*n; i++ {
			if core.Comm(p, d.Tab, i) == 1 {
				anticomlog = i
				break
			}
		}
	}

	if anticomlog != -1 {
		// Case B-found: p is a new independent generator; rank grows by 1.
		// Rotate the symplectic basis so the promoted pair lands at local
		// slot r (destab-side row r, stab-side row n+r).
		if anticomlog < n {
			core.RowSwap(d.Tab, r+n, anticomlog)
			if n != r+1 && anticomlog != r {
				core.RowSwap(d.Tab, r, anticomlog+n)
			}
		} else {
			core.RowSwap(d.Tab, r, anticomlog-n)
			core.RowSwap(d.Tab, r+n, anticomlog)
		}
		AnticommUpdateRows(d.Tab, p, r+1, n, r, phases)
		d.Rank++
		d.Tab.SetRow(r, d.Tab.Row(n+r).Copy())
		d.Tab.SetRow(n+r, p.Copy())
		return 0, core.NotInGroup()
	}

	// Case B-not-found: p is already in the stabilizer group.
	if !keepResult {
		return 0, core.NotInGroup()
	}
	q := core.Zero(n)
	q.Phase = p.Phase
	for i := 0; i < r; i++ {
		if core.Comm(p, d.Tab, i) == 1 {
			core.MulLeftPauli(d.Tab, n+i, q, true)
		}
	}
	return 0, core.ResultPhase(q.Phase)
}
