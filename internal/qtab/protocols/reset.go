package protocols

import "github.com/latticeq/qtab/internal/qtab/core"

// expandPauli places p's letters at the qubits named by q inside an
// n-qubit identity, copying p's phase. It is the one allocation
// reset_qubits! needs per newstate row; callers in a hot loop should
// hoist a scratch Pauli if this ever shows up in a profile.
func expandPauli(p *core.Pauli, q []int, n int) *core.Pauli {
	out := core.Zero(n)
	out.Phase = p.Phase
	for k, qi := range q {
		switch p.At(k) {
		case 'X':
			out.XView().Set(uint(qi))
		case 'Z':
			out.ZView().Set(uint(qi))
		case 'Y':
			out.XView().Set(uint(qi))
			out.ZView().Set(uint(qi))
		}
	}
	return out
}

// ResetQubitsStabilizer implements reset_qubits!(T, newstate, Q; phases)
// on a bare Stabilizer (spec §4.8): canonicalize T, rref-canonicalize
// restricted to Q, overwrite the rows past the prefix free of Q with
// newstate's rows expanded onto Q, and fill anything left over with
// identity.
//
// Deliberately runs CanonicalizeRREF over the whole tableau rather than
// restricting it to the Z-led rows [xr, zr) Canonicalize reports — see
// the "reset_qubits! rref range" decision in DESIGN.md: restricting to
// [xr, zr) leaves any X-led row with residual X-support on Q untouched,
// which can leave that row anticommuting with the freshly-installed
// newstate row and violates the pairwise-commutativity invariant every
// project!/reset_qubits! result must satisfy.
func ResetQubitsStabilizer(s *core.Stabilizer, newstate *core.Stabilizer, q []int, phases bool) {
	core.Canonicalize(s.Tab, phases)
	rrefI := core.CanonicalizeRREF(s.Tab, q, phases)
	n := s.Tab.NQubits()

	for k := 0; k < newstate.Rank(); k++ {
		s.Tab.SetRow(rrefI+k, expandPauli(newstate.Row(k), q, n))
	}
	for k := rrefI + newstate.Rank(); k < s.Rank(); k++ {
		s.Tab.SetRow(k, core.Zero(n))
	}
}

// ResetQubitsMixedStabilizer implements the MixedStabilizer variant: the
// same rref restricted to the active prefix, then Rank is set to exactly
// cover the written rows.
func ResetQubitsMixedStabilizer(m *core.MixedStabilizer, newstate *core.Stabilizer, q []int, phases bool) {
	active := m.Tab.Sub(0, m.Rank)
	rrefI := core.CanonicalizeRREF(active, q, phases)
	n := m.Tab.NQubits()

	for k := 0; k < newstate.Rank(); k++ {
		m.Tab.SetRow(rrefI+k, expandPauli(newstate.Row(k), q, n))
	}
	m.Rank = rrefI + newstate.Rank()
}

// ResetQubitsMixedDestabilizer implements the MixedDestabilizer variant:
// each newstate row is expanded onto Q and projected, and the outcome of
// that projection (which stabilizer row it landed on, and whether it was
// already in the group) decides how its phase is enforced.
func ResetQubitsMixedDestabilizer(d *core.MixedDestabilizer, newstate *core.Stabilizer, q []int, phases bool) {
	n := d.N
	for k := 0; k < newstate.Rank(); k++ {
		p := newstate.Row(k)
		expanded := expandPauli(p, q, n)
		anticom, result := ProjectMixedDestabilizer(d, expanded, true, phases)

		switch {
		case anticom != 0:
			d.Tab.Row(n + anticom - 1).Phase = p.Phase
		case !result.OK:
			d.Tab.Row(n + d.Rank - 1).Phase = p.Phase
		default:
			if phases && result.Phase != core.PhasePlusOne {
				loc := -1
				for i := 0; i < d.Rank; i++ {
					if core.Comm(expanded, d.Tab, i) == 1 {
						loc = i
						break
					}
				}
				if loc == -1 {
					continue
				}
				for i := loc + 1; i < d.Rank; i++ {
					if core.Comm(expanded, d.Tab, i) == 1 {
						core.MulLeftRow(d.Tab, i, loc, false)
					}
				}
				d.Tab.SetRow(n+loc, expanded)
			}
		}
	}
}
