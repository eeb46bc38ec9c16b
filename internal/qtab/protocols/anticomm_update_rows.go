package protocols

import "github.com/latticeq/qtab/internal/qtab/core"

// AnticommUpdateRows implements anticomm_update_rows(T, P, r, n, a; phases)
// (spec §4.6): given a pivot stabilizer row at absolute position n+a,
// eliminates p-anticommuting components from three disjoint row ranges by
// left-multiplying row n+a into each offending row. a is the 0-indexed
// stabilizer-local row (in [0, r)) that anticommutes with p.
//
//   - logical-X block, absolute rows [r, n): phases updated as requested.
//   - stabilizers after the pivot and all logical-Z, absolute rows
//     [n+a+1, 2n): phases updated as requested.
//   - destabilizer block excluding row a, absolute rows [0, r) \ {a}:
//     phases never updated, since destabilizer phases are not physical.
//
// A row receives the update iff its commutator with p is 1.
func AnticommUpdateRows(t *core.Tableau, p *core.Pauli, r, n, a int, phases bool) {
	for i := r; i < n; i++ {
		if core.Comm(p, t, i) == 1 {
			core.MulLeftRow(t, i, n+a, phases)
		}
	}
	for i := n + a + 1; i < 2*n; i++ {
		if core.Comm(p, t, i) == 1 {
			core.MulLeftRow(t, i, n+a, phases)
		}
	}
	for i := 0; i < r; i++ {
		if i == a {
			continue
		}
		if core.Comm(p, t, i) == 1 {
			core.MulLeftRow(t, i, n+a, false)
		}
	}
}
