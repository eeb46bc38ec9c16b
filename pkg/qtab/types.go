package qtab

import "github.com/latticeq/qtab/internal/qtab/core"

// Phase is a two-bit phase exponent: i^Phase.
type Phase = core.Phase

// Pauli is a bit-packed n-qubit Pauli operator.
type Pauli = core.Pauli

// PhaseResult is an explicit option over a residual Phase; OK is false
// for the not-in-group signal.
type PhaseResult = core.PhaseResult

const (
	PhasePlusOne  = core.PhasePlusOne
	PhasePlusI    = core.PhasePlusI
	PhaseMinusOne = core.PhaseMinusOne
	PhaseMinusI   = core.PhaseMinusI
)

// ZeroPauli constructs the n-qubit identity Pauli with phase 0.
func ZeroPauli(n int) *Pauli { return core.Zero(n) }

// ParsePauli builds a Pauli from a phase token followed by I/X/Y/Z
// letters, e.g. "-1 XZYI".
func ParsePauli(s string) (*Pauli, error) { return core.ParsePauli(s) }
