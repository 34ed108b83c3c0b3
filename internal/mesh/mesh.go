// Package mesh exposes the identity of the physical device grid targeted by
// a compilation.
//
// The topology subsystem owns the real state; this package only defines the
// accessor the key generator needs: an opaque, serialized identity blob.
// Two meshes with different identities must never share compiled artifacts,
// so the blob participates in the cache key verbatim.
package mesh

// State is the read-side of a device mesh.
type State interface {
	// Data returns the serialized mesh identity. The blob is opaque to the
	// key generator; only byte equality matters.
	Data() []byte
}

// Static is a State backed by a fixed identity blob, for embedding and for
// callers that serialize topology ahead of time.
type Static struct {
	identity []byte
}

// NewStatic wraps the given identity bytes. The slice is aliased, not copied.
func NewStatic(identity []byte) *Static {
	return &Static{identity: identity}
}

// Data returns the identity blob.
func (s *Static) Data() []byte { return s.identity }
