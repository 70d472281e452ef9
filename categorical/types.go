// Package categorical declares the data model shared by sniffing and
// encoding: Levels, Box, Series, Codes, and the two caller-supplied
// capability interfaces (NAPolicy, Container).
package categorical

import (
	"fmt"
	"math"
	"reflect"
	"strings"
)

// previewLevels caps how many levels appear verbatim in an UnknownLevel
// message before the list is elided to its first and last half.
const previewLevels = 4

// naCode is the reserved code for missing values.
const naCode = -1

// Levels is a finalized, ordered sequence of distinct hashable values.
// Two Levels are equal only when they hold the same values at the same
// positions.
type Levels []any

// Equal reports positional, value-wise equality. Entries that are not
// hashable never compare equal.
// Complexity: O(len).
func (l Levels) Equal(other Levels) bool {
	if len(l) != len(other) {
		return false
	}
	for i := range l {
		if !hashable(l[i]) || !hashable(other[i]) {
			return false
		}
		if l[i] != other[i] {
			return false
		}
	}
	return true
}

// preview renders the levels for diagnostics, eliding long lists to the
// first and last previewLevels/2 entries.
func (l Levels) preview() string {
	parts := make([]string, 0, previewLevels+1)
	if len(l) <= previewLevels {
		for _, lv := range l {
			parts = append(parts, fmt.Sprintf("%#v", lv))
		}
	} else {
		for _, lv := range l[:previewLevels/2] {
			parts = append(parts, fmt.Sprintf("%#v", lv))
		}
		parts = append(parts, "...")
		for _, lv := range l[len(l)-previewLevels/2:] {
			parts = append(parts, fmt.Sprintf("%#v", lv))
		}
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// cloneLevels copies src so callers and internal state never alias.
func cloneLevels(src Levels) Levels {
	out := make(Levels, len(src))
	copy(out, src)
	return out
}

// Box marks arbitrary data as categorical and optionally carries explicit
// levels and an opaque contrast payload alongside it. Construct boxes with
// C; a Box built by C never nests another Box.
type Box struct {
	// Data is the raw column data being tagged.
	Data any

	// Contrast is an opaque coding-scheme payload, passed through
	// unexamined and interpreted outside this package.
	Contrast any

	// Levels, when non-nil, fixes the level values and their order.
	Levels Levels
}

// Series is a rank-one column of values with optional row labels. When a
// Series is encoded, the labels are carried to the output codes aligned
// element-for-element.
type Series struct {
	// Index holds the row labels; nil means unlabeled. When non-nil its
	// length must match Values.
	Index []any

	// Values holds the column data.
	Values []any
}

// Codes is the result of encoding: one dense zero-based integer per input
// row, with -1 marking missing values.
type Codes struct {
	// Ints holds the codes, aligned with the input rows.
	Ints []int

	// Index holds the input's row labels when it carried any; nil
	// otherwise.
	Index []any
}

// NAPolicy decides which scalar values count as missing. It is supplied
// by the caller; this package never defines missingness itself.
type NAPolicy interface {
	// IsCategoricalNA reports whether v is a missing-value marker.
	IsCategoricalNA(v any) bool
}

// NATypes is a ready-made NAPolicy recognizing the two common missing
// markers. The zero value treats nothing as missing.
type NATypes struct {
	// Nil treats untyped nil as missing.
	Nil bool

	// NaN treats floating-point NaN as missing.
	NaN bool
}

// IsCategoricalNA implements NAPolicy.
func (p NATypes) IsCategoricalNA(v any) bool {
	switch f := v.(type) {
	case nil:
		return p.Nil
	case float64:
		return p.NaN && math.IsNaN(f)
	case float32:
		return p.NaN && math.IsNaN(float64(f))
	default:
		return false
	}
}

// Container is a read-only pre-categorized column: an external type that
// already fixed its level order and encoded its values, missing included.
// Containers are consumed as authoritative, never re-derived.
type Container interface {
	// Levels returns the container's ordered level sequence.
	Levels() Levels

	// Codes returns the container's dense codes, -1 marking missing.
	Codes() []int
}

// ContrastCarrier is optionally implemented by a Container that also
// carries a contrast payload; the sniffer picks it up like a Box's.
type ContrastCarrier interface {
	// Contrast returns the opaque contrast payload.
	Contrast() any
}

// hashable reports whether v can serve as a map key. Arrays are checked
// elementwise: an array type is comparable even when a held interface
// element is not, and such a value would panic on insertion.
func hashable(v any) bool {
	if v == nil {
		return true
	}
	t := reflect.TypeOf(v)
	if !t.Comparable() {
		return false
	}
	if t.Kind() == reflect.Array {
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			if !hashable(rv.Index(i).Interface()) {
				return false
			}
		}
	}
	return true
}
