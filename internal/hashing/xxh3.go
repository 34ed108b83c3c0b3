package hashing

import (
	"encoding/binary"
	"fmt"

	"github.com/zeebo/xxh3"
)

// XXH3Hasher is the default KeyHasher. It folds every property field,
// length-prefixed, into an xxh3 digest and renders the 64-bit sum as a
// 16-character hex key.
//
// Length prefixes keep the encoding unambiguous: no concatenation of two
// different property sets can produce the same byte stream.
type XXH3Hasher struct{}

// NewXXH3Hasher creates the default cache-key hasher.
func NewXXH3Hasher() *XXH3Hasher {
	return &XXH3Hasher{}
}

// CreateKey hashes the property set into an opaque key. The caller must
// Destroy the result once its fields have been copied out.
func (h *XXH3Hasher) CreateKey(prop Property) *Result {
	d := xxh3.New()

	writeField := func(data []byte) {
		var length [8]byte
		binary.BigEndian.PutUint64(length[:], uint64(len(data)))
		_, _ = d.Write(length[:])
		_, _ = d.Write(data)
	}
	writeUint64 := func(v uint64) {
		var buf [8]byte
		binary.BigEndian.PutUint64(buf[:], v)
		_, _ = d.Write(buf[:])
	}

	writeField([]byte(prop.ConfigPrefix))
	writeField([]byte(prop.ShapesPrefix))
	writeField([]byte(prop.FunctionName))
	writeField([]byte(prop.Module))

	writeUint64(uint64(len(prop.FlattenedDeviceIDs)))
	for _, id := range prop.FlattenedDeviceIDs {
		writeUint64(uint64(uint32(id)))
	}

	writeUint64(uint64(prop.GuaranteedConstantCount))
	writeUint64(prop.FunctionLibraryFingerprint)
	writeUint64(uint64(uint32(prop.NumCoresPerReplica)))
	writeUint64(uint64(uint32(prop.NumReplicas)))

	writeField(prop.MeshIdentity)

	sum := d.Sum64()
	return &Result{
		Key: fmt.Sprintf("%016x", sum),
		DebugString: fmt.Sprintf("%s{%dx%d}#%d",
			prop.FunctionName, prop.NumReplicas, prop.NumCoresPerReplica, sum),
	}
}
