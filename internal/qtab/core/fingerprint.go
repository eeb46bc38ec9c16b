package core

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
	"golang.org/x/crypto/blake2b"
)

// Fingerprint returns a deterministic size-byte digest of a tableau's row
// bits and phases. It is not cryptographically meaningful on its own; its
// job is to give tests and metrics/error-message logging a cheap,
// collision-resistant-enough stand-in for a full tableau dump. size is
// forwarded to blake2b.New unchanged (valid range (0, 64]); callers get
// it from a utils.Config's FingerprintSize, or pass 8 for the default.
func Fingerprint(t *Tableau, size int) []byte {
	h, _ := blake2b.New(size, nil)
	buf := make([]byte, 8)
	for i := 0; i < t.Size(); i++ {
		row := t.Row(i)
		writeSetPositions(h, buf, row.x)
		writeSetPositions(h, buf, row.z)
		h.Write([]byte{byte(row.Phase)})
	}
	return h.Sum(nil)
}

func writeSetPositions(h interface{ Write([]byte) (int, error) }, buf []byte, bs *bitset.BitSet) {
	for i, ok := bs.NextSet(0); ok; i, ok = bs.NextSet(i + 1) {
		binary.LittleEndian.PutUint64(buf, uint64(i))
		h.Write(buf)
	}
}
