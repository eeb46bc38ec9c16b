package core

// PhaseResult is an explicit option over a residual Phase: OK is true iff
// the operation determined the operator is in the group, in which case
// Phase holds the residual (0 or 2). OK is false for the not-in-group
// signal. Deliberately not collapsed into a single sentinel integer, so
// that a valid phase of 0 can never be mistaken for failure.
type PhaseResult struct {
	Phase Phase
	OK    bool
}

// NotInGroup is the not-in-group result.
func NotInGroup() PhaseResult { return PhaseResult{OK: false} }

// ResultPhase wraps a successfully-determined residual phase.
func ResultPhase(p Phase) PhaseResult { return PhaseResult{Phase: p, OK: true} }
