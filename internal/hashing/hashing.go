// Package hashing provides the cache-key hashing primitive behind a narrow
// interface.
//
// The primitive is treated as a black box by the key assembler: it receives
// the full property set of a compilation request and returns an opaque key
// plus a debug string. Results own a transient buffer that must be released
// with Destroy once their fields have been copied out, on every exit path.
package hashing

// Property is the exact field layout the hashing primitive consumes.
//
// Every field that can change compiled output must be present; nothing
// extraneous may be added, since spurious fields turn into spurious cache
// misses downstream.
type Property struct {
	ConfigPrefix string
	ShapesPrefix string
	FunctionName string
	Module       string

	FlattenedDeviceIDs      []int32
	GuaranteedConstantCount int

	FunctionLibraryFingerprint uint64
	NumCoresPerReplica         int32
	NumReplicas                int32

	MeshIdentity []byte
}

// Result is the transient output of a key hash. Key and DebugString must be
// copied out before Destroy is called; after Destroy they are gone.
type Result struct {
	Key         string
	DebugString string

	destroyed bool
}

// Destroy releases the result. Idempotent.
func (r *Result) Destroy() {
	if r == nil || r.destroyed {
		return
	}
	r.Key = ""
	r.DebugString = ""
	r.destroyed = true
}

// Destroyed reports whether Destroy has run.
func (r *Result) Destroyed() bool {
	return r != nil && r.destroyed
}

// KeyHasher turns a property set into an opaque cache key.
//
// Implementations must be pure: identical properties yield bit-for-bit
// identical keys across calls and processes.
type KeyHasher interface {
	CreateKey(prop Property) *Result
}
