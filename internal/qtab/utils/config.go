package utils

import "fmt"

// Config represents the configuration for a tableau session.
type Config struct {
	// NQubits is the number of qubits the tableaux created from this
	// config operate on.
	NQubits int

	// TrackPhases is a default for the phases argument callers pass to
	// Project/Canonicalize/Traceout/ResetQubits. The tableau methods do
	// not read it; the explicit phases argument always decides.
	TrackPhases bool

	// FingerprintSize is the digest length, in bytes, used by
	// core.Fingerprint's blake2b hash.
	FingerprintSize int

	// MetricsEnabled toggles Prometheus instrumentation: project! call
	// counts and latencies, generate! call counts, and the number of
	// qubits traced out by traceout!. reset_qubits! is not instrumented.
	MetricsEnabled bool
}

// DefaultConfig returns a default configuration for a 0-qubit session;
// callers set NQubits before constructing any tableau.
func DefaultConfig() *Config {
	return &Config{
		NQubits:         0,
		TrackPhases:     true,
		FingerprintSize: 8,
		MetricsEnabled:  true,
	}
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.NQubits < 0 {
		return fmt.Errorf("nqubits must be non-negative, got %d", c.NQubits)
	}
	if c.FingerprintSize <= 0 || c.FingerprintSize > 64 {
		return fmt.Errorf("fingerprint size must be in (0, 64], got %d", c.FingerprintSize)
	}
	return nil
}

// WithNQubits sets the qubit count.
func (c *Config) WithNQubits(n int) *Config {
	c.NQubits = n
	return c
}

// WithTrackPhases sets whether phases are tracked.
func (c *Config) WithTrackPhases(track bool) *Config {
	c.TrackPhases = track
	return c
}

// WithFingerprintSize sets the fingerprint digest size in bytes.
func (c *Config) WithFingerprintSize(size int) *Config {
	c.FingerprintSize = size
	return c
}

// WithMetricsEnabled toggles metrics instrumentation.
func (c *Config) WithMetricsEnabled(enabled bool) *Config {
	c.MetricsEnabled = enabled
	return c
}

// Clone creates a copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
