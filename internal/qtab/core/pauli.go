package core

import (
	"fmt"
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Phase is a two-bit phase exponent: a Pauli carrying Phase p denotes
// multiplication by i^p. Only 0 and 2 are valid phases for a stored
// stabilizer generator; 1 and 3 arise transiently during row products.
type Phase uint8

const (
	PhasePlusOne  Phase = 0
	PhasePlusI    Phase = 1
	PhaseMinusOne Phase = 2
	PhaseMinusI   Phase = 3
)

func (p Phase) String() string {
	switch p % 4 {
	case PhasePlusOne:
		return "+1"
	case PhasePlusI:
		return "+i"
	case PhaseMinusOne:
		return "-1"
	default:
		return "-i"
	}
}

// Pauli is a bit-packed n-qubit Pauli operator: i^Phase * bigotimes_k sigma(x_k, z_k),
// with sigma(0,0)=I, sigma(1,0)=X, sigma(0,1)=Z, sigma(1,1)=Y.
type Pauli struct {
	n     int
	x     *bitset.BitSet
	z     *bitset.BitSet
	Phase Phase
}

// Zero constructs the n-qubit identity Pauli with phase 0.
func Zero(n int) *Pauli {
	return &Pauli{n: n, x: bitset.New(uint(n)), z: bitset.New(uint(n))}
}

// NQubits returns the number of qubits the Pauli is defined over.
func (p *Pauli) NQubits() int { return p.n }

// XView returns the mutable X bit-vector. Mutations are visible to the
// Pauli in place; no copy is made.
func (p *Pauli) XView() *bitset.BitSet { return p.x }

// ZView returns the mutable Z bit-vector, mirroring XView.
func (p *Pauli) ZView() *bitset.BitSet { return p.z }

// Copy returns an independent deep copy.
func (p *Pauli) Copy() *Pauli {
	return &Pauli{n: p.n, x: p.x.Clone(), z: p.z.Clone(), Phase: p.Phase}
}

// IsIdentity reports whether every qubit carries sigma(0,0).
func (p *Pauli) IsIdentity() bool {
	return p.x.Count() == 0 && p.z.Count() == 0
}

// Equal reports whether p and o are the bit-for-bit same operator
// (same support, same phase). It does not account for group-theoretic
// equivalence up to a global phase.
func (p *Pauli) Equal(o *Pauli) bool {
	return p.n == o.n && p.Phase == o.Phase && p.x.Equal(o.x) && p.z.Equal(o.z)
}

// At returns the single-qubit Pauli letter at qubit k, ignoring phase.
func (p *Pauli) At(k int) byte {
	x, z := p.x.Test(uint(k)), p.z.Test(uint(k))
	switch {
	case x && z:
		return 'Y'
	case x:
		return 'X'
	case z:
		return 'Z'
	default:
		return 'I'
	}
}

// String renders the Pauli as its phase followed by its letters, e.g. "+1 XZII".
func (p *Pauli) String() string {
	var b strings.Builder
	b.WriteString(p.Phase.String())
	b.WriteByte(' ')
	for k := 0; k < p.n; k++ {
		b.WriteByte(p.At(k))
	}
	return b.String()
}

// ParsePauli builds a Pauli from a phase token ("+1", "-1", "+i", "-i", or
// omitted for "+1") followed by a run of I/X/Y/Z letters ("_" is also
// accepted as identity, e.g. "X__"), e.g. "-1 XZYI".
// It exists so tests and the CLI demo have a readable way to construct
// operators without hand-building bitsets.
func ParsePauli(s string) (*Pauli, error) {
	fields := strings.Fields(s)
	var phaseTok, letters string
	switch len(fields) {
	case 1:
		letters = fields[0]
	case 2:
		phaseTok, letters = fields[0], fields[1]
	default:
		return nil, fmt.Errorf("qtab: invalid pauli literal %q", s)
	}

	phase := PhasePlusOne
	switch phaseTok {
	case "", "+1":
		phase = PhasePlusOne
	case "+i":
		phase = PhasePlusI
	case "-1":
		phase = PhaseMinusOne
	case "-i":
		phase = PhaseMinusI
	default:
		return nil, fmt.Errorf("qtab: invalid pauli phase %q", phaseTok)
	}

	p := Zero(len(letters))
	p.Phase = phase
	for k, c := range letters {
		switch c {
		case 'I', '_':
		case 'X':
			p.x.Set(uint(k))
		case 'Z':
			p.z.Set(uint(k))
		case 'Y':
			p.x.Set(uint(k))
			p.z.Set(uint(k))
		default:
			return nil, fmt.Errorf("qtab: invalid pauli letter %q in %q", c, s)
		}
	}
	return p, nil
}
