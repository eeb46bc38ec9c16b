package core

import "github.com/bits-and-blooms/bitset"

// Tableau is an ordered, mutable sequence of Paulis on a fixed number of
// qubits. Row order carries meaning to the algorithms built on top of it
// (canonical form, destabilizer pairing, logical-operator partitioning);
// Tableau itself is just the storage and the row-indexed accessors.
type Tableau struct {
	n    int
	rows []*Pauli
}

// NewTableau allocates a Tableau of r identity rows on n qubits.
func NewTableau(n, r int) *Tableau {
	rows := make([]*Pauli, r)
	for i := range rows {
		rows[i] = Zero(n)
	}
	return &Tableau{n: n, rows: rows}
}

// NQubits returns the number of qubits each row is defined over.
func (t *Tableau) NQubits() int { return t.n }

// Size returns the number of rows.
func (t *Tableau) Size() int { return len(t.rows) }

// Row returns the i-th row (0-indexed). The returned Pauli is a live
// reference; mutating it mutates the tableau.
func (t *Tableau) Row(i int) *Pauli { return t.rows[i] }

// SetRow replaces the i-th row with row (by reference, no copy).
func (t *Tableau) SetRow(i int, row *Pauli) { t.rows[i] = row }

// Sub returns a Tableau sharing backing storage with rows [lo, hi) of t.
// Mutations through the sub-tableau (row swaps, row overwrites, in-place
// XORs on the shared bitsets) are visible through t and vice versa,
// because both slices alias the same underlying *Pauli pointers.
func (t *Tableau) Sub(lo, hi int) *Tableau {
	return &Tableau{n: t.n, rows: t.rows[lo:hi]}
}

// Clone returns a deep copy: independent rows, independent bitsets.
func (t *Tableau) Clone() *Tableau {
	rows := make([]*Pauli, len(t.rows))
	for i, r := range t.rows {
		rows[i] = r.Copy()
	}
	return &Tableau{n: t.n, rows: rows}
}

// RowSwap exchanges rows i and j, including their phases.
func RowSwap(t *Tableau, i, j int) {
	t.rows[i], t.rows[j] = t.rows[j], t.rows[i]
}

// Comm returns 1 iff p anticommutes with row i of t (the GF(2) symplectic
// inner product of their (x, z) vectors), else 0.
func Comm(p *Pauli, t *Tableau, i int) uint8 {
	return commXZ(p.x, p.z, t.rows[i].x, t.rows[i].z)
}

// CommPauli is the same symplectic inner product between two bare Paulis,
// used where there is no tableau row to index into (logical-operator pair
// checks, property tests).
func CommPauli(a, b *Pauli) uint8 {
	return commXZ(a.x, a.z, b.x, b.z)
}

func commXZ(x1, z1, x2, z2 *bitset.BitSet) uint8 {
	a := x1.IntersectionCardinality(z2)
	b := z1.IntersectionCardinality(x2)
	return uint8((a + b) % 2)
}

// UnsafeBitFindNext returns the lowest-index set bit of b at position >= k,
// or ok=false if none exists. It is a thin wrapper over the backing
// bitset's own word-wise trailing-zeros scan.
func UnsafeBitFindNext(b *bitset.BitSet, k int) (int, bool) {
	idx, ok := b.NextSet(uint(k))
	return int(idx), ok
}

// pauliMulPhaseBits returns, as an integer mod 4, the extra i-power
// accumulated by multiplying single-qubit operators sigma(x1,z1)*sigma(x2,z2)
// beyond the intrinsic i^(newx*newz) already implied by the sigma(x,z)
// convention for the product's own (newx, newz). Derived directly from
// the Pauli algebra: sigma(x,z) = i^(x*z) X^x Z^z, and Z^z1 X^x2 = (-1)^(z1*x2) X^x2 Z^z1.
func pauliMulPhaseBits(x1, z1, x2, z2 bool) int {
	b2i := func(b bool) int {
		if b {
			return 1
		}
		return 0
	}
	ix1, iz1, ix2, iz2 := b2i(x1), b2i(z1), b2i(x2), b2i(z2)
	newx, newz := ix1^ix2, iz1^iz2
	g := ix1*iz1 + ix2*iz2 + 2*iz1*ix2 - newx*newz
	g %= 4
	if g < 0 {
		g += 4
	}
	return g
}

// MulLeftRow implements mul_left!(T, i, j; phases): row i <- row j * row i.
// The X/Z parts are updated by GF(2) XOR; the phase is recomputed from the
// standard Pauli product phase table when phases is true, else left
// untouched (the destabilizer block never wants a physical phase).
func MulLeftRow(t *Tableau, i, j int, phases bool) {
	left, right := t.rows[j], t.rows[i]
	mulLeft(left, right, t.n, phases)
}

// MulLeftPauli implements mul_left!(P, T, i; phases): p <- row i * p.
func MulLeftPauli(t *Tableau, i int, p *Pauli, phases bool) {
	mulLeft(t.rows[i], p, t.n, phases)
}

// mulLeft sets right <- left * right in place.
func mulLeft(left, right *Pauli, n int, phases bool) {
	if phases {
		sum := int(left.Phase) + int(right.Phase)
		for k := 0; k < n; k++ {
			sum += pauliMulPhaseBits(left.x.Test(uint(k)), left.z.Test(uint(k)), right.x.Test(uint(k)), right.z.Test(uint(k)))
		}
		sum %= 4
		if sum < 0 {
			sum += 4
		}
		right.Phase = Phase(sum)
	}
	right.x.InPlaceSymmetricDifference(left.x)
	right.z.InPlaceSymmetricDifference(left.z)
}
