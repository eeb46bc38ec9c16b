package main

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scriptLines(t *testing.T, values ...any) string {
	t.Helper()
	var b strings.Builder
	for _, v := range values {
		line, err := json.Marshal(v)
		require.NoError(t, err)
		b.Write(line)
		b.WriteByte('\n')
	}
	return b.String()
}

func decodeLines(t *testing.T, out *bytes.Buffer) []map[string]any {
	t.Helper()
	dec := json.NewDecoder(out)
	var results []map[string]any
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		results = append(results, m)
	}
	return results
}

func TestRunStabilizerProjectAndFingerprint(t *testing.T) {
	in := strings.NewReader(scriptLines(t,
		tableauInput{Kind: "stabilizer", N: 2, Rows: []string{"XX", "ZZ"}},
		instruction{Op: "canonicalize", Phases: true},
		instruction{Op: "project", Pauli: "ZI", KeepResult: true, Phases: true},
		instruction{Op: "fingerprint"},
	))
	var out bytes.Buffer

	err := run(context.Background(), in, &out)
	require.NoError(t, err)

	results := decodeLines(t, &out)
	require.Len(t, results, 3)
	assert.Contains(t, results[0], "xr")
	assert.Contains(t, results[1], "anticom")
	assert.NotEmpty(t, results[2]["fingerprint"])
}

func TestRunResetQubits(t *testing.T) {
	in := strings.NewReader(scriptLines(t,
		tableauInput{Kind: "stabilizer", N: 4, Rows: []string{"XXXX", "ZZII", "IZZI", "IIZZ"}},
		instruction{Op: "canonicalize", Phases: true},
		instruction{Op: "reset_qubits", Qubits: []int{0}, Newstate: []string{"Z"}, Phases: true},
	))
	var out bytes.Buffer

	err := run(context.Background(), in, &out)
	require.NoError(t, err)

	results := decodeLines(t, &out)
	require.Len(t, results, 2)
	rows, ok := results[1]["rows"].([]any)
	require.True(t, ok)
	assert.Len(t, rows, 4)
}

func TestRunUnknownKindFails(t *testing.T) {
	in := strings.NewReader(scriptLines(t, tableauInput{Kind: "nonsense", N: 1}))
	var out bytes.Buffer

	err := run(context.Background(), in, &out)
	assert.Error(t, err)
}

func TestRunUnsupportedOpFails(t *testing.T) {
	in := strings.NewReader(scriptLines(t,
		tableauInput{Kind: "stabilizer", N: 1, Rows: []string{"Z"}},
		instruction{Op: "not_a_real_op"},
	))
	var out bytes.Buffer

	err := run(context.Background(), in, &out)
	assert.Error(t, err)
}

func TestRunCancelledContextStopsBeforeNextInstruction(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	in := strings.NewReader(scriptLines(t,
		tableauInput{Kind: "stabilizer", N: 1, Rows: []string{"Z"}},
		instruction{Op: "fingerprint"},
	))
	var out bytes.Buffer

	err := run(ctx, in, &out)
	require.NoError(t, err)
	assert.Empty(t, out.String())
}
