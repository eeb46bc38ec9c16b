// Package protocols implements the in-scope tableau routines that sit on
// top of internal/qtab/core's Pauli/Tableau primitives: generator
// reduction, the four project! variants, the mixed-destabilizer row-update
// helper, and traceout!/reset_qubits!.
package protocols

import "github.com/latticeq/qtab/internal/qtab/core"

// Generate rewrites p as a product of a subset of s's rows, multiplying
// those rows into p in place. It returns ok=false (p left partially
// reduced, used=nil) if no such product exists — the not-in-group signal.
// When saveIndices is true the row indices used are returned in the order
// they were applied. canonicalize! on s is a documented precondition, not
// enforced here.
func Generate(p *core.Pauli, s *core.Stabilizer, saveIndices bool) (ok bool, used []int) {
	r := s.Rank()
	cursor := 0

	for {
		i, found := p.XView().NextSet(0)
		if !found {
			break
		}
		k := findRowWithBit(s, cursor, r, int(i), false)
		if k == -1 {
			return false, nil
		}
		core.MulLeftPauli(s.Tab, k, p, true)
		if saveIndices {
			used = append(used, k)
		}
		cursor = k + 1
	}

	for {
		i, found := p.ZView().NextSet(0)
		if !found {
			break
		}
		k := findRowWithBit(s, cursor, r, int(i), true)
		if k == -1 {
			return false, nil
		}
		core.MulLeftPauli(s.Tab, k, p, true)
		if saveIndices {
			used = append(used, k)
		}
		cursor = k + 1
	}

	return true, used
}

// findRowWithBit returns the smallest row index in [from, upto) of s whose
// X-part (or Z-part, if zPart) has bit col set, or -1 if none.
func findRowWithBit(s *core.Stabilizer, from, upto, col int, zPart bool) int {
	for row := from; row < upto; row++ {
		r := s.Row(row)
		if zPart {
			if r.ZView().Test(uint(col)) {
				return row
			}
		} else if r.XView().Test(uint(col)) {
			return row
		}
	}
	return -1
}
