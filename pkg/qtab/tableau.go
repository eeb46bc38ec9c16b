package qtab

import (
	"time"

	"github.com/latticeq/qtab/internal/qtab/core"
	"github.com/latticeq/qtab/internal/qtab/metrics"
	"github.com/latticeq/qtab/internal/qtab/protocols"
	"github.com/latticeq/qtab/internal/qtab/utils"
)

// Stabilizer is a tableau of r <= n pairwise-commuting, linearly
// independent rows, exposed over internal/qtab/core and
// internal/qtab/protocols.
type Stabilizer struct {
	inner *core.Stabilizer
	cfg   *utils.Config
}

// NewStabilizer allocates a Stabilizer of r identity rows on n qubits.
func NewStabilizer(n, r int) *Stabilizer {
	return &Stabilizer{inner: core.NewStabilizer(core.NewTableau(n, r))}
}

// NewStabilizerWithConfig validates cfg and allocates a Stabilizer of
// cfg.NQubits identity rows on cfg.NQubits qubits, remembering cfg so
// that Fingerprint digests at cfg.FingerprintSize and Project/Generate/
// Traceout skip their Prometheus instrumentation when cfg.MetricsEnabled
// is false. cfg.TrackPhases is not consulted here — callers read it back
// via Config to pick a default for the phases argument they pass
// explicitly to Project/Canonicalize/Traceout/ResetQubits.
func NewStabilizerWithConfig(cfg *utils.Config) (*Stabilizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &TableauError{Code: ErrInvalidConfig, Message: "NewStabilizerWithConfig", Cause: err}
	}
	return &Stabilizer{inner: core.NewStabilizer(core.NewTableau(cfg.NQubits, cfg.NQubits)), cfg: cfg}, nil
}

// Config returns the configuration this Stabilizer was built with, or
// nil if it was built via NewStabilizer.
func (s *Stabilizer) Config() *utils.Config { return s.cfg }

// Rank returns the number of generator rows.
func (s *Stabilizer) Rank() int { return s.inner.Rank() }

// Row returns generator i (0-indexed); mutating it mutates the stabilizer.
func (s *Stabilizer) Row(i int) *Pauli { return s.inner.Row(i) }

// SetRow replaces generator i.
func (s *Stabilizer) SetRow(i int, p *Pauli) { s.inner.Tab.SetRow(i, p) }

// Canonicalize reduces the stabilizer to symplectic row-echelon form,
// X-rows before Z-rows, in place.
func (s *Stabilizer) Canonicalize(phases bool) (xr, zr int) {
	return core.Canonicalize(s.inner.Tab, phases)
}

// Generate rewrites p as a product of a subset of the stabilizer's rows
// (spec §4.1). ok is false (the not-in-group signal) if no such product
// exists. Precondition: the stabilizer is already canonicalized.
func (s *Stabilizer) Generate(p *Pauli, saveIndices bool) (ok bool, used []int) {
	ok, used = protocols.Generate(p, s.inner, saveIndices)
	if metricsEnabled(s.cfg) {
		if ok {
			metrics.GenerateTotal.WithLabelValues("in_group").Inc()
		} else {
			metrics.GenerateTotal.WithLabelValues("not_in_group").Inc()
		}
	}
	return ok, used
}

// Project implements project!(S, P; keepResult, phases) (spec §4.2).
// When p anticommutes with a generator, that generator is overwritten by
// a copy of p carrying p's own phase; the phase is not randomized, so a
// caller simulating a measurement outcome sets it afterwards.
func (s *Stabilizer) Project(p *Pauli, keepResult, phases bool) (anticomIndex int, result PhaseResult) {
	timer := prometheusTimer("stabilizer", metricsEnabled(s.cfg))
	defer timer()
	anticomIndex, result = protocols.ProjectStabilizer(s.inner, p, keepResult, phases)
	if metricsEnabled(s.cfg) {
		metrics.ProjectTotal.WithLabelValues("stabilizer", metrics.OutcomeLabel(anticomIndex, result.OK)).Inc()
	}
	return anticomIndex, result
}

// Traceout implements traceout!(S, Q; phases) (spec §4.7): it returns the
// number of rows that remain live after clearing the traced qubits.
func (s *Stabilizer) Traceout(q []int, phases bool) int {
	if metricsEnabled(s.cfg) {
		metrics.TraceoutQubits.Add(float64(len(q)))
	}
	return protocols.TraceoutStabilizer(s.inner, q, phases)
}

// ResetQubits implements reset_qubits!(S, newstate, Q; phases) (spec
// §4.8).
func (s *Stabilizer) ResetQubits(newstate *Stabilizer, q []int, phases bool) {
	protocols.ResetQubitsStabilizer(s.inner, newstate.inner, q, phases)
}

// Fingerprint returns a deterministic digest of the stabilizer's rows,
// useful for tests and log lines. Its width is cfg.FingerprintSize if
// this Stabilizer was built with NewStabilizerWithConfig, else 8.
func (s *Stabilizer) Fingerprint() []byte { return core.Fingerprint(s.inner.Tab, fingerprintSize(s.cfg)) }

// Destabilizer pairs a full-rank Stabilizer with n destabilizer rows.
type Destabilizer struct {
	inner *core.Destabilizer
	cfg   *utils.Config
}

// NewDestabilizer builds a Destabilizer from exactly n destabilizer rows
// followed by n stabilizer rows, both supplied as a single 2n-row slice
// in that order.
func NewDestabilizer(n int, rows []*Pauli) (*Destabilizer, error) {
	tab := core.NewTableau(n, 2*n)
	for i, row := range rows {
		tab.SetRow(i, row)
	}
	inner, err := core.NewDestabilizer(tab, n)
	if err != nil {
		return nil, classify("NewDestabilizer", err)
	}
	return &Destabilizer{inner: inner}, nil
}

// NewDestabilizerWithConfig validates cfg, then builds a Destabilizer on
// cfg.NQubits qubits the same way NewDestabilizer does, remembering cfg
// for Fingerprint width and metrics gating.
func NewDestabilizerWithConfig(cfg *utils.Config, rows []*Pauli) (*Destabilizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &TableauError{Code: ErrInvalidConfig, Message: "NewDestabilizerWithConfig", Cause: err}
	}
	d, err := NewDestabilizer(cfg.NQubits, rows)
	if err != nil {
		return nil, err
	}
	d.cfg = cfg
	return d, nil
}

// Config returns the configuration this Destabilizer was built with, or
// nil if it was built via NewDestabilizer.
func (d *Destabilizer) Config() *utils.Config { return d.cfg }

// Rank returns the number of live stabilizer rows; it equals the qubit
// count for a full-rank Destabilizer.
func (d *Destabilizer) Rank() int { return d.inner.Rank }

// Destab returns destabilizer row i (0-indexed).
func (d *Destabilizer) Destab(i int) *Pauli { return d.inner.Destab(i) }

// Stab returns stabilizer row i (0-indexed).
func (d *Destabilizer) Stab(i int) *Pauli { return d.inner.Stab(i) }

// Project implements project!(D, P; keepResult, phases) (spec §4.3). It
// returns a BadDataStructure TableauError if the destabilizer is not
// full rank.
func (d *Destabilizer) Project(p *Pauli, keepResult, phases bool) (anticomIndex int, result PhaseResult, err error) {
	timer := prometheusTimer("destabilizer", metricsEnabled(d.cfg))
	defer timer()
	anticomIndex, result, err = protocols.ProjectDestabilizer(d.inner, p, keepResult, phases)
	if err != nil {
		if metricsEnabled(d.cfg) {
			metrics.ProjectTotal.WithLabelValues("destabilizer", "error").Inc()
		}
		return 0, PhaseResult{}, classify("Destabilizer.Project", err)
	}
	if metricsEnabled(d.cfg) {
		metrics.ProjectTotal.WithLabelValues("destabilizer", metrics.OutcomeLabel(anticomIndex, result.OK)).Inc()
	}
	return anticomIndex, result, nil
}

// Fingerprint returns a deterministic digest of the destabilizer's rows.
func (d *Destabilizer) Fingerprint() []byte { return core.Fingerprint(d.inner.Tab, fingerprintSize(d.cfg)) }

// MixedStabilizer is a Stabilizer tableau with physical capacity n but an
// explicit rank r <= n.
type MixedStabilizer struct {
	inner *core.MixedStabilizer
	cfg   *utils.Config
}

// NewMixedStabilizer allocates a MixedStabilizer with capacity n, using
// rows as the initial rank-many live generators (rows beyond rank are
// scratch identity rows).
func NewMixedStabilizer(n int, rows []*Pauli) *MixedStabilizer {
	tab := core.NewTableau(n, n)
	for i, row := range rows {
		tab.SetRow(i, row)
	}
	return &MixedStabilizer{inner: core.NewMixedStabilizer(tab, len(rows))}
}

// NewMixedStabilizerWithConfig validates cfg, then builds a
// MixedStabilizer with capacity cfg.NQubits the same way
// NewMixedStabilizer does, remembering cfg for Fingerprint width and
// metrics gating.
func NewMixedStabilizerWithConfig(cfg *utils.Config, rows []*Pauli) (*MixedStabilizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &TableauError{Code: ErrInvalidConfig, Message: "NewMixedStabilizerWithConfig", Cause: err}
	}
	m := NewMixedStabilizer(cfg.NQubits, rows)
	m.cfg = cfg
	return m, nil
}

// Config returns the configuration this MixedStabilizer was built with,
// or nil if it was built via NewMixedStabilizer.
func (m *MixedStabilizer) Config() *utils.Config { return m.cfg }

// Rank returns the current rank.
func (m *MixedStabilizer) Rank() int { return m.inner.Rank }

// Row returns row i (0-indexed), live or scratch.
func (m *MixedStabilizer) Row(i int) *Pauli { return m.inner.Tab.Row(i) }

// Project implements project!(M, P; keepResult, phases) (spec §4.4).
func (m *MixedStabilizer) Project(p *Pauli, keepResult, phases bool) (anticomIndex int, result PhaseResult) {
	timer := prometheusTimer("mixed_stabilizer", metricsEnabled(m.cfg))
	defer timer()
	rankBefore := m.inner.Rank
	anticomIndex, result = protocols.ProjectMixedStabilizer(m.inner, p, keepResult, phases)
	if metricsEnabled(m.cfg) {
		if m.inner.Rank > rankBefore {
			metrics.RankGrowth.Inc()
		}
		metrics.ProjectTotal.WithLabelValues("mixed_stabilizer", metrics.OutcomeLabel(anticomIndex, result.OK)).Inc()
	}
	return anticomIndex, result
}

// Traceout implements the MixedStabilizer variant of traceout! (spec
// §4.7): Rank is lowered to the count of rows with no support on q.
func (m *MixedStabilizer) Traceout(q []int, phases bool) int {
	if metricsEnabled(m.cfg) {
		metrics.TraceoutQubits.Add(float64(len(q)))
	}
	return protocols.TraceoutMixedStabilizer(m.inner, q, phases)
}

// ResetQubits implements the MixedStabilizer variant of reset_qubits!
// (spec §4.8).
func (m *MixedStabilizer) ResetQubits(newstate *Stabilizer, q []int, phases bool) {
	protocols.ResetQubitsMixedStabilizer(m.inner, newstate.inner, q, phases)
}

// Fingerprint returns a deterministic digest of the active prefix.
func (m *MixedStabilizer) Fingerprint() []byte {
	return core.Fingerprint(m.inner.ActivePrefix().Tab, fingerprintSize(m.cfg))
}

// MixedDestabilizer is a 2n-row tableau partitioned into destabilizer,
// logical-X, stabilizer, and logical-Z blocks with an explicit rank.
type MixedDestabilizer struct {
	inner *core.MixedDestabilizer
	cfg   *utils.Config
}

// NewMixedDestabilizer builds a MixedDestabilizer from a 2n-row slice
// already laid out in destab/logicalX/stab/logicalZ order, with the
// given initial rank.
func NewMixedDestabilizer(n, rank int, rows []*Pauli) (*MixedDestabilizer, error) {
	tab := core.NewTableau(n, 2*n)
	for i, row := range rows {
		tab.SetRow(i, row)
	}
	inner, err := core.NewMixedDestabilizer(tab, n, rank)
	if err != nil {
		return nil, classify("NewMixedDestabilizer", err)
	}
	return &MixedDestabilizer{inner: inner}, nil
}

// NewMixedDestabilizerWithConfig validates cfg, then builds a
// MixedDestabilizer on cfg.NQubits qubits with the given rank the same
// way NewMixedDestabilizer does, remembering cfg for Fingerprint width
// and metrics gating.
func NewMixedDestabilizerWithConfig(cfg *utils.Config, rank int, rows []*Pauli) (*MixedDestabilizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, &TableauError{Code: ErrInvalidConfig, Message: "NewMixedDestabilizerWithConfig", Cause: err}
	}
	d, err := NewMixedDestabilizer(cfg.NQubits, rank, rows)
	if err != nil {
		return nil, err
	}
	d.cfg = cfg
	return d, nil
}

// Config returns the configuration this MixedDestabilizer was built
// with, or nil if it was built via NewMixedDestabilizer.
func (d *MixedDestabilizer) Config() *utils.Config { return d.cfg }

// Rank returns the current rank.
func (d *MixedDestabilizer) Rank() int { return d.inner.Rank }

// Destab returns destabilizer row i (0-indexed, i in [0, Rank)).
func (d *MixedDestabilizer) Destab(i int) *Pauli { return d.inner.Destab(i) }

// LogicalX returns logical-X row i (0-indexed local index).
func (d *MixedDestabilizer) LogicalX(i int) *Pauli { return d.inner.LogicalX(i) }

// Stab returns stabilizer row i (0-indexed, i in [0, Rank)).
func (d *MixedDestabilizer) Stab(i int) *Pauli { return d.inner.Stab(i) }

// LogicalZ returns logical-Z row i (0-indexed local index).
func (d *MixedDestabilizer) LogicalZ(i int) *Pauli { return d.inner.LogicalZ(i) }

// Project implements project!(D, P; keepResult, phases) (spec §4.5).
func (d *MixedDestabilizer) Project(p *Pauli, keepResult, phases bool) (anticomIndex int, result PhaseResult) {
	timer := prometheusTimer("mixed_destabilizer", metricsEnabled(d.cfg))
	defer timer()
	rankBefore := d.inner.Rank
	anticomIndex, result = protocols.ProjectMixedDestabilizer(d.inner, p, keepResult, phases)
	if metricsEnabled(d.cfg) {
		if d.inner.Rank > rankBefore {
			metrics.RankGrowth.Inc()
		}
		metrics.ProjectTotal.WithLabelValues("mixed_destabilizer", metrics.OutcomeLabel(anticomIndex, result.OK)).Inc()
	}
	return anticomIndex, result
}

// Traceout implements the MixedDestabilizer variant of traceout! (spec
// §4.7).
func (d *MixedDestabilizer) Traceout(q []int, phases bool) int {
	if metricsEnabled(d.cfg) {
		metrics.TraceoutQubits.Add(float64(len(q)))
	}
	return protocols.TraceoutMixedDestabilizer(d.inner, q, phases)
}

// ResetQubits implements the MixedDestabilizer variant of reset_qubits!
// (spec §4.8).
func (d *MixedDestabilizer) ResetQubits(newstate *Stabilizer, q []int, phases bool) {
	protocols.ResetQubitsMixedDestabilizer(d.inner, newstate.inner, q, phases)
}

// Fingerprint returns a deterministic digest of the tableau's rows.
func (d *MixedDestabilizer) Fingerprint() []byte {
	return core.Fingerprint(d.inner.Tab, fingerprintSize(d.cfg))
}

// prometheusTimer starts a wall-clock timer for a project! call and
// returns a func that records its duration under the given kind label
// when called (typically via defer). When enabled is false (cfg.MetricsEnabled
// set to false on the owning tableau), the returned func is a no-op.
func prometheusTimer(kind string, enabled bool) func() {
	if !enabled {
		return func() {}
	}
	start := time.Now()
	return func() {
		metrics.ProjectDuration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
	}
}

// metricsEnabled reports whether Prometheus instrumentation should fire
// for a tableau built with cfg. A nil cfg (the NewStabilizer/
// NewDestabilizer/... constructors that take no Config) always
// instruments, matching this module's pre-Config default behavior.
func metricsEnabled(cfg *utils.Config) bool {
	return cfg == nil || cfg.MetricsEnabled
}

// fingerprintSize returns the blake2b digest width a tableau's
// Fingerprint method should use: cfg.FingerprintSize if cfg is set,
// else the module's historical default of 8 bytes.
func fingerprintSize(cfg *utils.Config) int {
	if cfg != nil {
		return cfg.FingerprintSize
	}
	return 8
}
