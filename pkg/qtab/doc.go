// Package qtab provides the core tableau algorithms of a stabilizer-
// formalism quantum simulator: Pauli bit-packing, generator reduction,
// the four project! variants, traceout!, and reset_qubits!.
//
// # Features
//
// - Bit-packed Pauli operators backed by github.com/bits-and-blooms/bitset
// - Symplectic Gaussian elimination (canonicalize!, canonicalize_rref!)
// - O(n^3) Stabilizer and O(n^2) Destabilizer projection
// - Rank-tracking MixedStabilizer and MixedDestabilizer projection
// - traceout! and reset_qubits! built on the same canonicalization
//
// # Quick Start
//
// Building a GHZ stabilizer and projecting a measurement onto it:
//
//	s := qtab.NewStabilizer(4, 4)
//	xxxx, _ := qtab.ParsePauli("XXXX")
//	zzii, _ := qtab.ParsePauli("ZZII")
//	izzi, _ := qtab.ParsePauli("IZZI")
//	iizz, _ := qtab.ParsePauli("IIZZ")
//	s.SetRow(0, xxxx)
//	s.SetRow(1, zzii)
//	s.SetRow(2, izzi)
//	s.SetRow(3, iizz)
//
//	ziii, _ := qtab.ParsePauli("ZIII")
//	anticom, result := s.Project(ziii, true, true)
//	if anticom != 0 {
//		// ziii anticommuted with a stabilizer row; result is not-in-group
//		// and the generators have been updated in place.
//	}
//
// # Architecture
//
// qtab uses a hybrid public/private architecture:
//
// - pkg/qtab/: public API (this package)
// - internal/qtab/core/: Pauli and Tableau primitives, canonicalization
// - internal/qtab/protocols/: generate!, project!, traceout!, reset_qubits!
//
// Implementation details in internal/ can change without breaking the
// public API.
//
// # Error handling
//
// Failures that are a normal outcome (operator not in the stabilizer
// group) are reported through PhaseResult, never as an error. Errors are
// returned as a *TableauError: by Destabilizer.Project on a non-full-rank
// Destabilizer, by the *WithConfig constructors on an invalid Config, and
// by NewDestabilizer/NewMixedDestabilizer when the core constructor fails.
//
// # License
//
// See LICENSE file in the repository root.
package qtab
