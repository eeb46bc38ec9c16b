package core

// Canonicalize performs symplectic Gaussian elimination on t in place:
// for each qubit column, in order, it pivots on the X part first (across
// all rows, clearing that column from every other row, not just the ones
// below the pivot, so the result is fully reduced rather than merely
// echelon), then repeats the sweep on the Z part using the rows not yet
// claimed by an X pivot. It returns the number of rows claimed by the
// X-pass (xr) and the total claimed after the Z-pass (zr); rows
// [0, xr) are X-led, [xr, zr) are Z-led, and any remaining rows are
// already zero.
//
// This is the external canonicalize! contract restated in the spec: its
// exact internals are not dictated, only that it produces a row-reduced
// echelon form with X-rows preceding Z-rows, which is what generate! and
// project! rely on.
func Canonicalize(t *Tableau, phases bool) (xr, zr int) {
	n, r := t.NQubits(), t.Size()
	i := 0
	for q := 0; q < n; q++ {
		pivot := findPivot(t, i, r, q, false)
		if pivot < 0 {
			continue
		}
		RowSwap(t, pivot, i)
		clearColumn(t, i, r, q, false, phases)
		i++
	}
	xr = i
	for q := 0; q < n; q++ {
		pivot := findPivot(t, i, r, q, true)
		if pivot < 0 {
			continue
		}
		RowSwap(t, pivot, i)
		clearColumn(t, i, r, q, true, phases)
		i++
	}
	zr = i
	return
}

// CanonicalizeRREF restricts elimination to the qubits listed in cols (X
// columns then Z columns, in the order given), but claims pivots from the
// BACK of the row range rather than the front: each column in cols that has
// any support left gets a pivot row swapped down to the current tail, then
// cleared from every other row. Because clearColumn sweeps the full row
// range on every call, by the time all of cols has been processed, every
// row NOT claimed as a pivot has zero support on cols — it depends only on
// the complement of cols — while the claimed pivot rows are pushed into the
// trailing [tail, r) block.
//
// The return value is tail: the number of leading rows that are now
// independent of cols. traceout! zeroes the trailing block; reset_qubits!
// overwrites it with the expanded newstate rows. Both read naturally as
// "rows after the first tail are the ones that touched the restricted
// qubits."
func CanonicalizeRREF(t *Tableau, cols []int, phases bool) int {
	r := t.Size()
	tail := r
	for _, q := range cols {
		pivot := findPivot(t, 0, tail, q, false)
		if pivot < 0 {
			continue
		}
		tail--
		RowSwap(t, pivot, tail)
		clearColumn(t, tail, r, q, false, phases)
	}
	for _, q := range cols {
		pivot := findPivot(t, 0, tail, q, true)
		if pivot < 0 {
			continue
		}
		tail--
		RowSwap(t, pivot, tail)
		clearColumn(t, tail, r, q, true, phases)
	}
	return tail
}

func findPivot(t *Tableau, from, upto, col int, zPart bool) int {
	for k := from; k < upto; k++ {
		bit := t.Row(k).x.Test(uint(col))
		if zPart {
			bit = t.Row(k).z.Test(uint(col))
		}
		if bit {
			return k
		}
	}
	return -1
}

func clearColumn(t *Tableau, pivot, upto, col int, zPart bool, phases bool) {
	for m := 0; m < upto; m++ {
		if m == pivot {
			continue
		}
		bit := t.Row(m).x.Test(uint(col))
		if zPart {
			bit = t.Row(m).z.Test(uint(col))
		}
		if bit {
			MulLeftRow(t, m, pivot, phases)
		}
	}
}
