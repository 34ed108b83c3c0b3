// Package fingerprint provides the deterministic 64-bit content fingerprint
// used to detect byte-level equality of large values without retaining them.
//
// Requirements:
//   - Must depend only on the raw bytes and the order in which they are folded.
//   - Must be stable across architectures and processes (no map iteration,
//     no per-process hash seeds).
//   - The same combining function is shared by every call site that folds
//     content into a running fingerprint, so identical byte sequences always
//     produce identical fingerprints regardless of where they were folded.
package fingerprint

import (
	"encoding/binary"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Seed is the initial running value for a fingerprint fold.
//
// A fold over zero chunks yields Seed itself; callers render whatever the
// fold produced and must not special-case the empty input.
const Seed uint64 = 0

// CombineFunc folds one chunk of content into a running fingerprint and
// returns the new running value. Implementations must be pure.
type CombineFunc func(running uint64, data []byte) uint64

// Combine is the standard combining function: the running value is encoded
// big-endian and digested together with the chunk, making the fold
// order-sensitive. Chunk boundaries are deliberately significant.
func Combine(running uint64, data []byte) uint64 {
	d := xxhash.New()

	var prev [8]byte
	binary.BigEndian.PutUint64(prev[:], running)
	_, _ = d.Write(prev[:])
	_, _ = d.Write(data)

	return d.Sum64()
}

// Render returns the canonical string form of a fingerprint value.
//
// Decimal rather than hex: consumers treat the fingerprint as an opaque
// token, and the decimal form round-trips through systems that are not
// 0x-prefix aware.
func Render(fp uint64) string {
	return strconv.FormatUint(fp, 10)
}
