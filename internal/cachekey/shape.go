package cachekey

import (
	"strconv"
	"strings"
)

// Shape is an ordered list of dimension sizes. A nil or empty Shape is a
// valid rank-0 (scalar) shape.
type Shape []int64

// ShapePrefix encodes an ordered shape sequence into its canonical string
// form: dimension sizes joined by "," within a shape, each shape terminated
// by ";".
//
// The terminator keeps shape boundaries unambiguous and makes a single
// scalar shape (";") distinguishable from an empty sequence (""). Two shape
// sequences encode identically iff they agree on rank and dimension sizes
// in order.
func ShapePrefix(shapes []Shape) string {
	var b strings.Builder
	for _, shape := range shapes {
		for i, size := range shape {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.FormatInt(size, 10))
		}
		b.WriteByte(';')
	}
	return b.String()
}
