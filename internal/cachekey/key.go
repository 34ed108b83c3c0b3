package cachekey

// CacheKey identifies a compilation request to the cache lookup layer.
//
// Prefix alone defines equality for the non-constant-dependent part of the
// computation. When guaranteed constants are present, the lookup layer must
// additionally combine SessionHandle and the realized constant fingerprint
// before treating two keys as equal.
type CacheKey struct {
	// Prefix is the opaque primary key over every eager input.
	Prefix string

	// DebugString is for diagnostics only and never participates in
	// equality.
	DebugString string

	// HasGuaranteedConst reports whether the computation carries guaranteed
	// constants. When false, SessionHandle is empty and
	// GuaranteedConstFingerprint is nil, not merely blank.
	HasGuaranteedConst bool

	// SessionHandle scopes the constants to the session that supplied them.
	// Set only when HasGuaranteedConst is true.
	SessionHandle string

	// GuaranteedConstFingerprint lazily realizes the content fingerprint of
	// the guaranteed constants. Set only when HasGuaranteedConst is true.
	//
	// The first invocation computes and memoizes the fingerprint; later
	// invocations return the memoized value without touching constant data
	// again. The memo cell is not synchronized: concurrent first invocations
	// may each run the (pure) computation, converging on the same value.
	// Callers needing single-evaluation semantics must serialize access.
	//
	// The provider holds the compile metadata and constant tensors by
	// reference; they must outlive any invocation.
	GuaranteedConstFingerprint func() string
}
