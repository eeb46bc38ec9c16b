// Command qtab-tableau is a stdin/stdout JSON driver for the qtab
// tableau engine: it reads one tableau descriptor followed by a
// sequence of instruction lines, applying each instruction to the
// tableau in turn and writing its result to stdout as it goes.
//
// Input is line-delimited JSON on stdin, read with a bounded
// bufio.Scanner in the style of cmd/vybium-vm-prover:
//
//	line 1:   a tableauInput describing the starting tableau
//	line 2..: an instruction, applied in order
//
// Each instruction's result is written to stdout as one JSON object per
// line. Progress and errors go to stderr, prefixed "qtab-tableau:", so
// stdout stays pure result data for scripting.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/latticeq/qtab/pkg/qtab"
)

// maxScanTokenSize bounds a single input line; tableaux large enough to
// need more than this belong in a file, not a pipe.
const maxScanTokenSize = 1 << 20

// tableauInput describes the starting tableau. Kind selects which of
// the four wrapper types to build; Rows are pauli literals parsed with
// qtab.ParsePauli. Rank is only consulted for "mixed_destabilizer".
type tableauInput struct {
	Kind string   `json:"kind"`
	N    int      `json:"n"`
	Rows []string `json:"rows"`
	Rank int      `json:"rank,omitempty"`
}

// instruction is one line of scripted work against the tableau built
// from the preceding tableauInput. Op selects which field below is
// read; the others are ignored.
type instruction struct {
	Op         string   `json:"op"`
	Pauli      string   `json:"pauli,omitempty"`
	KeepResult bool     `json:"keep_result,omitempty"`
	Phases     bool     `json:"phases,omitempty"`
	Qubits     []int    `json:"qubits,omitempty"`
	Newstate   []string `json:"newstate,omitempty"`
}

// tableau is the minimal surface the driver needs out of whichever of
// the four qtab wrapper types tableauInput.Kind selected; Destabilizer
// and MixedDestabilizer expose their rows through Destab/Stab/LogicalX/
// LogicalZ instead of a single Row method, so only Rank is common.
type tableau interface {
	Rank() int
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fatal(err.Error())
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxScanTokenSize)

	if !scanner.Scan() {
		return fmt.Errorf("failed to read tableau descriptor: %w", scanner.Err())
	}
	var desc tableauInput
	if err := json.Unmarshal(scanner.Bytes(), &desc); err != nil {
		return fmt.Errorf("failed to parse tableau descriptor: %w", err)
	}

	tab, apply, err := buildTableau(desc)
	if err != nil {
		return fmt.Errorf("failed to build tableau: %w", err)
	}
	logStderr(fmt.Sprintf("built %s tableau with rank %d on %d qubits", desc.Kind, tab.Rank(), desc.N))

	enc := json.NewEncoder(out)
	n := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			logStderr("interrupted, stopping before next instruction")
			return nil
		}
		n++
		var inst instruction
		if err := json.Unmarshal(scanner.Bytes(), &inst); err != nil {
			return fmt.Errorf("failed to parse instruction %d: %w", n, err)
		}
		result, err := apply(inst)
		if err != nil {
			return fmt.Errorf("instruction %d (%s): %w", n, inst.Op, err)
		}
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to write result for instruction %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed reading instructions: %w", err)
	}
	logStderr(fmt.Sprintf("processed %d instructions", n))
	return nil
}

// buildTableau constructs the wrapper type named by desc.Kind and
// returns a closure that applies a single instruction to it. Keeping
// apply as a closure over the concrete type avoids a type switch on
// every instruction line; the type switch happens once, here.
func buildTableau(desc tableauInput) (tableau, func(instruction) (any, error), error) {
	rows, err := parseRows(desc.Rows)
	if err != nil {
		return nil, nil, err
	}

	switch desc.Kind {
	case "stabilizer":
		s := qtab.NewStabilizer(desc.N, len(rows))
		for i, row := range rows {
			s.SetRow(i, row)
		}
		return s, func(inst instruction) (any, error) { return applyStabilizer(s, inst) }, nil

	case "destabilizer":
		d, err := qtab.NewDestabilizer(desc.N, rows)
		if err != nil {
			return nil, nil, err
		}
		return d, func(inst instruction) (any, error) { return applyDestabilizer(d, inst) }, nil

	case "mixed_stabilizer":
		m := qtab.NewMixedStabilizer(desc.N, rows)
		return m, func(inst instruction) (any, error) { return applyMixedStabilizer(m, inst) }, nil

	case "mixed_destabilizer":
		d, err := qtab.NewMixedDestabilizer(desc.N, desc.Rank, rows)
		if err != nil {
			return nil, nil, err
		}
		return d, func(inst instruction) (any, error) { return applyMixedDestabilizer(d, inst) }, nil

	default:
		return nil, nil, fmt.Errorf("unknown tableau kind %q", desc.Kind)
	}
}

func applyStabilizer(s *qtab.Stabilizer, inst instruction) (any, error) {
	switch inst.Op {
	case "project":
		p, err := qtab.ParsePauli(inst.Pauli)
		if err != nil {
			return nil, err
		}
		anticom, result := s.Project(p, inst.KeepResult, inst.Phases)
		return projectResult(anticom, result, rowStrings(s)), nil
	case "canonicalize":
		xr, zr := s.Canonicalize(inst.Phases)
		return map[string]any{"xr": xr, "zr": zr, "rows": rowStrings(s)}, nil
	case "traceout":
		live := s.Traceout(inst.Qubits, inst.Phases)
		return map[string]any{"live": live, "rows": rowStrings(s)}, nil
	case "reset_qubits":
		newstate, err := newstateStabilizer(inst.Newstate)
		if err != nil {
			return nil, err
		}
		s.ResetQubits(newstate, inst.Qubits, inst.Phases)
		return map[string]any{"rows": rowStrings(s)}, nil
	case "fingerprint":
		return fingerprintResult(s.Fingerprint()), nil
	default:
		return nil, fmt.Errorf("unsupported op for stabilizer: %q", inst.Op)
	}
}

func applyDestabilizer(d *qtab.Destabilizer, inst instruction) (any, error) {
	switch inst.Op {
	case "project":
		p, err := qtab.ParsePauli(inst.Pauli)
		if err != nil {
			return nil, err
		}
		anticom, result, err := d.Project(p, inst.KeepResult, inst.Phases)
		if err != nil {
			return nil, err
		}
		return projectResult(anticom, result, nil), nil
	case "fingerprint":
		return fingerprintResult(d.Fingerprint()), nil
	default:
		return nil, fmt.Errorf("unsupported op for destabilizer: %q", inst.Op)
	}
}

func applyMixedStabilizer(m *qtab.MixedStabilizer, inst instruction) (any, error) {
	switch inst.Op {
	case "project":
		p, err := qtab.ParsePauli(inst.Pauli)
		if err != nil {
			return nil, err
		}
		anticom, result := m.Project(p, inst.KeepResult, inst.Phases)
		return projectResult(anticom, result, nil), nil
	case "traceout":
		live := m.Traceout(inst.Qubits, inst.Phases)
		return map[string]any{"live": live, "rank": m.Rank()}, nil
	case "reset_qubits":
		newstate, err := newstateStabilizer(inst.Newstate)
		if err != nil {
			return nil, err
		}
		m.ResetQubits(newstate, inst.Qubits, inst.Phases)
		return map[string]any{"rank": m.Rank()}, nil
	case "fingerprint":
		return fingerprintResult(m.Fingerprint()), nil
	default:
		return nil, fmt.Errorf("unsupported op for mixed_stabilizer: %q", inst.Op)
	}
}

func applyMixedDestabilizer(d *qtab.MixedDestabilizer, inst instruction) (any, error) {
	switch inst.Op {
	case "project":
		p, err := qtab.ParsePauli(inst.Pauli)
		if err != nil {
			return nil, err
		}
		anticom, result := d.Project(p, inst.KeepResult, inst.Phases)
		return projectResult(anticom, result, nil), nil
	case "traceout":
		live := d.Traceout(inst.Qubits, inst.Phases)
		return map[string]any{"live": live, "rank": d.Rank()}, nil
	case "reset_qubits":
		newstate, err := newstateStabilizer(inst.Newstate)
		if err != nil {
			return nil, err
		}
		d.ResetQubits(newstate, inst.Qubits, inst.Phases)
		return map[string]any{"rank": d.Rank()}, nil
	case "fingerprint":
		return fingerprintResult(d.Fingerprint()), nil
	default:
		return nil, fmt.Errorf("unsupported op for mixed_destabilizer: %q", inst.Op)
	}
}

func newstateStabilizer(literals []string) (*qtab.Stabilizer, error) {
	rows, err := parseRows(literals)
	if err != nil {
		return nil, err
	}
	s := qtab.NewStabilizer(rows[0].NQubits(), len(rows))
	for i, row := range rows {
		s.SetRow(i, row)
	}
	return s, nil
}

func parseRows(literals []string) ([]*qtab.Pauli, error) {
	rows := make([]*qtab.Pauli, len(literals))
	for i, s := range literals {
		p, err := qtab.ParsePauli(s)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		rows[i] = p
	}
	return rows, nil
}

func rowStrings(s *qtab.Stabilizer) []string {
	rows := make([]string, s.Rank())
	for i := range rows {
		rows[i] = s.Row(i).String()
	}
	return rows
}

func projectResult(anticom int, result qtab.PhaseResult, rows []string) map[string]any {
	out := map[string]any{"anticom": anticom, "ok": result.OK}
	if result.OK {
		out["phase"] = result.Phase.String()
	}
	if rows != nil {
		out["rows"] = rows
	}
	return out
}

func fingerprintResult(digest []byte) map[string]any {
	return map[string]any{"fingerprint": fmt.Sprintf("%x", digest)}
}

func logStderr(msg string) {
	fmt.Fprintln(os.Stderr, "qtab-tableau:", msg)
}

func fatal(msg string) {
	logStderr("ERROR: " + msg)
	os.Exit(1)
}
