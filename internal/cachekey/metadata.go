package cachekey

// DeviceAssignment maps logical (replica, core) pairs to physical device
// ids.
type DeviceAssignment struct {
	// ComputationDevices holds one entry per replica; each entry lists the
	// physical device ids that replica runs on, ordered by core.
	ComputationDevices [][]int32
}

// CompileMetadata carries the per-request configuration the key generator
// reads. It is borrowed: when guaranteed constants are present, the deferred
// fingerprint provider keeps a reference to it, and the caller must keep it
// alive until the provider has been invoked or discarded.
type CompileMetadata struct {
	// Args is the per-argument configuration, aligned with the computation's
	// argument list.
	Args []ArgConfig

	// NumReplicas is the number of replicas the computation runs on.
	NumReplicas int32

	// NumCoresPerReplica is the number of compute cores per replica.
	NumCoresPerReplica int32

	// DeviceAssignment is the optional explicit device placement. nil means
	// the runtime assigns devices.
	DeviceAssignment *DeviceAssignment

	// SessionHandle scopes guaranteed constants: constants are only
	// comparable within the session that supplied them.
	SessionHandle string

	// GuaranteedConstFingerprint, when non-empty, is a fingerprint the
	// caller already computed over the guaranteed constants. It overrides
	// content fingerprinting entirely.
	GuaranteedConstFingerprint string
}

// flattenDeviceIDs flattens the nested assignment into a single ordered id
// list, replica-major then core-minor. Returns nil when no assignment is
// present.
func flattenDeviceIDs(da *DeviceAssignment) []int32 {
	if da == nil {
		return nil
	}
	var flattened []int32
	for _, replicaDevices := range da.ComputationDevices {
		flattened = append(flattened, replicaDevices...)
	}
	return flattened
}
