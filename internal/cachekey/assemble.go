package cachekey

import (
	"github.com/sirupsen/logrus"

	"compilecache/internal/fingerprint"
	"compilecache/internal/hashing"
	"compilecache/internal/mesh"
	"compilecache/internal/tensor"
)

// KeyGenerator assembles compilation cache keys.
//
// It is stateless across calls; concurrent use on independent inputs is
// safe. The hashing primitive and the fingerprint combiner are injected so
// the backend can supply its own, and default to the standard ones.
type KeyGenerator struct {
	hasher  hashing.KeyHasher
	combine fingerprint.CombineFunc
	log     *logrus.Entry
}

// NewKeyGenerator creates a generator. A nil hasher selects the default
// xxh3-backed primitive; a nil combine selects the standard content
// combiner.
func NewKeyGenerator(hasher hashing.KeyHasher, combine fingerprint.CombineFunc) *KeyGenerator {
	if hasher == nil {
		hasher = hashing.NewXXH3Hasher()
	}
	if combine == nil {
		combine = fingerprint.Combine
	}
	return &KeyGenerator{
		hasher:  hasher,
		combine: combine,
		log:     logrus.WithField("component", "cachekey"),
	}
}

// CreateCacheKey builds the cache key for one compilation request.
//
// guaranteedConstants and meta are captured by reference when constants are
// present, for the deferred fingerprint provider; the caller must keep them
// alive until the provider has been invoked or the key discarded. meshState
// must be non-nil: a request always targets a concrete device grid.
func (g *KeyGenerator) CreateCacheKey(
	functionName string,
	functionLibraryFingerprint uint64,
	module string,
	guaranteedConstants []*tensor.Tensor,
	dynamicShapes []Shape,
	meta *CompileMetadata,
	meshState mesh.State,
) CacheKey {
	shapesPrefix := ShapePrefix(dynamicShapes)
	configPrefix := ConfigPrefix(meta.Args)
	flattenedDeviceIDs := flattenDeviceIDs(meta.DeviceAssignment)

	g.log.WithFields(logrus.Fields{
		"function":            functionName,
		"library_fingerprint": functionLibraryFingerprint,
		"shapes_prefix":       shapesPrefix,
		"config_prefix":       configPrefix,
	}).Debug("assembling compilation cache key")

	result := g.hasher.CreateKey(hashing.Property{
		ConfigPrefix:               configPrefix,
		ShapesPrefix:               shapesPrefix,
		FunctionName:               functionName,
		Module:                     module,
		FlattenedDeviceIDs:         flattenedDeviceIDs,
		GuaranteedConstantCount:    len(guaranteedConstants),
		FunctionLibraryFingerprint: functionLibraryFingerprint,
		NumCoresPerReplica:         meta.NumCoresPerReplica,
		NumReplicas:                meta.NumReplicas,
		MeshIdentity:               meshState.Data(),
	})
	// The result buffer is transient; release it on every exit path once the
	// fields have been copied out.
	defer result.Destroy()

	key := CacheKey{
		Prefix:      result.Key,
		DebugString: result.DebugString,
	}

	// Guaranteed constants can differ across sessions even when everything
	// else matches. Scope the key by session and attach the deferred content
	// fingerprint rather than reading (possibly large) constants eagerly.
	if len(guaranteedConstants) > 0 {
		key.HasGuaranteedConst = true
		key.SessionHandle = meta.SessionHandle
		key.GuaranteedConstFingerprint = g.constFingerprintProvider(meta, guaranteedConstants)
	}
	return key
}

// CreateCacheKeyFromInputs is the entry point for op-style callers holding
// an InputList. It converges on CreateCacheKey: equivalent contents yield
// identical keys through either entry point.
func (g *KeyGenerator) CreateCacheKeyFromInputs(
	functionName string,
	functionLibraryFingerprint uint64,
	module string,
	guaranteedConstants tensor.InputList,
	dynamicShapes []Shape,
	meta *CompileMetadata,
	meshState mesh.State,
) CacheKey {
	return g.CreateCacheKey(functionName, functionLibraryFingerprint, module,
		guaranteedConstants.Slice(), dynamicShapes, meta, meshState)
}

// constFingerprintProvider builds the deferred, memoize-once provider.
// meta and constants are held by reference until the provider is discarded.
func (g *KeyGenerator) constFingerprintProvider(meta *CompileMetadata, constants []*tensor.Tensor) func() string {
	var memo string
	var done bool
	return func() string {
		if !done {
			memo = g.guaranteedConstFingerprint(meta.GuaranteedConstFingerprint, constants)
			done = true
		}
		return memo
	}
}

// guaranteedConstFingerprint returns the caller-supplied fingerprint when
// one exists; otherwise it folds the raw bytes of each constant, in argument
// order, into a single value and renders it. Only content bytes participate;
// shape and dtype metadata do not.
func (g *KeyGenerator) guaranteedConstFingerprint(override string, constants []*tensor.Tensor) string {
	if override != "" {
		return override
	}
	fp := fingerprint.Seed
	for _, constant := range constants {
		fp = g.combine(fp, constant.RawData())
	}
	return fingerprint.Render(fp)
}
