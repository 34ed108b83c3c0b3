package cachekey

import (
	"strconv"
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
)

// ShardingMode is the per-argument sharding policy.
type ShardingMode int

const (
	// ShardingUnspecified means the caller declared no policy. The compiler
	// backend treats this the same as ShardingDisallowed.
	ShardingUnspecified ShardingMode = iota

	// ShardingAllowed lets the compiler shard the argument across cores.
	ShardingAllowed

	// ShardingDisallowed forbids sharding the argument.
	ShardingDisallowed
)

// ArgConfig is the compilation-relevant configuration of one computation
// argument, aligned positionally with the argument list.
//
// Includes: replication flag, sharding policy, layout restriction, element
// type, declared shape.
// Excludes: argument names and any other field that cannot change generated
// code.
type ArgConfig struct {
	// SameDataAcrossReplicas marks the argument as replicated: every replica
	// receives identical data.
	SameDataAcrossReplicas bool

	// Sharding is the tri-state sharding policy.
	Sharding ShardingMode

	// UnrestrictedLayout lets the compiler pick the argument's layout.
	UnrestrictedLayout bool

	// DType is the element type.
	DType dtypes.DType

	// DeclaredShape is the statically declared shape, if any. nil means no
	// shape was declared; a non-nil empty Shape declares a scalar.
	DeclaredShape Shape
}

// ConfigPrefix encodes the ordered argument configs into their canonical
// string form.
//
// Per argument: ":s" if replicated, ":" otherwise; "e" only when sharding is
// exactly ShardingAllowed (ShardingDisallowed and ShardingUnspecified encode
// identically, mirroring the backend's treatment); ":u" when the
// layout is unrestricted; the element type tag; the declared shape when
// present. The marker characters are distinct per field, so no two different
// configurations share a substring.
func ConfigPrefix(args []ArgConfig) string {
	var b strings.Builder
	for _, arg := range args {
		if arg.SameDataAcrossReplicas {
			b.WriteString(":s")
		} else {
			b.WriteString(":")
		}
		if arg.Sharding == ShardingAllowed {
			b.WriteByte('e')
		}
		if arg.UnrestrictedLayout {
			b.WriteString(":u")
		}
		b.WriteString(",type(")
		b.WriteString(dtypeTag(arg.DType))
		b.WriteByte(')')
		if arg.DeclaredShape != nil {
			b.WriteString(",shape(")
			for i, size := range arg.DeclaredShape {
				if i > 0 {
					b.WriteByte(',')
				}
				b.WriteString(strconv.FormatInt(size, 10))
			}
			b.WriteByte(')')
		}
	}
	return b.String()
}

// dtypeTag renders the element type in its canonical lowercase form, e.g.
// dtypes.Float32 -> "float32".
func dtypeTag(dt dtypes.DType) string {
	return strings.ToLower(dt.String())
}
