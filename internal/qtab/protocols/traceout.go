package protocols

import "github.com/latticeq/qtab/internal/qtab/core"

// TraceoutStabilizer implements traceout!(T, Q; phases, rank) for a bare
// Stabilizer (spec §4.7): it canonicalizes the rows restricted to qubits
// q, then overwrites every row past the ones with no support on q with
// the identity, clearing the traced qubits from the state representation.
// It returns the count of rows that stayed live.
func TraceoutStabilizer(s *core.Stabilizer, q []int, phases bool) int {
	i := core.CanonicalizeRREF(s.Tab, q, phases)
	n := s.Tab.NQubits()
	for k := i; k < s.Rank(); k++ {
		s.Tab.SetRow(k, core.Zero(n))
	}
	return i
}

// TraceoutMixedStabilizer implements the MixedStabilizer variant: the
// tail past the surviving rows is discarded implicitly by lowering Rank.
func TraceoutMixedStabilizer(m *core.MixedStabilizer, q []int, phases bool) int {
	i := core.CanonicalizeRREF(m.Tab.Sub(0, m.Rank), q, phases)
	m.Rank = i
	return i
}

// TraceoutMixedDestabilizer implements the MixedDestabilizer variant,
// restricting the canonicalization to the active stabilizer prefix and
// lowering Rank the same way.
func TraceoutMixedDestabilizer(d *core.MixedDestabilizer, q []int, phases bool) int {
	stab := d.Tab.Sub(d.N, d.N+d.Rank)
	i := core.CanonicalizeRREF(stab, q, phases)
	d.Rank = i
	return i
}
