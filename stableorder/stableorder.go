package stableorder

import (
	"math"
	"reflect"
	"sort"
)

// Class identifies the representation category of a value. Values order by
// Class rank first; the natural per-class order only ever applies between
// values of the same Class.
type Class uint8

const (
	// ClassNil covers the untyped nil value.
	ClassNil Class = iota

	// ClassBool covers bool values; false sorts before true.
	ClassBool

	// ClassNumber covers every integer, unsigned and float kind, compared
	// by numeric value.
	ClassNumber

	// ClassString covers string values, compared lexicographically.
	ClassString

	// ClassTuple covers fixed-size arrays, compared elementwise.
	ClassTuple

	// ClassOpaque covers everything else. Opaque values have no natural
	// order; runs containing them keep their incoming order.
	ClassOpaque
)

// ClassOf derives the Class of v from its representation kind.
// Complexity: O(1).
func ClassOf(v any) Class {
	if v == nil {
		return ClassNil
	}
	switch reflect.TypeOf(v).Kind() {
	case reflect.Bool:
		return ClassBool
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return ClassNumber
	case reflect.String:
		return ClassString
	case reflect.Array:
		return ClassTuple
	default:
		return ClassOpaque
	}
}

// Orderable reports whether v participates in natural ordering. Opaque
// values are not orderable, and a tuple is orderable only when all of its
// elements are.
func Orderable(v any) bool {
	switch ClassOf(v) {
	case ClassOpaque:
		return false
	case ClassTuple:
		rv := reflect.ValueOf(v)
		for i := 0; i < rv.Len(); i++ {
			if !Orderable(rv.Index(i).Interface()) {
				return false
			}
		}
		return true
	default:
		return true
	}
}

// Compare orders a against b, returning -1, 0 or +1 and whether the pair
// is comparable at all. ok is false exactly when an Opaque value is
// involved, directly or inside a tuple; the cmp result is then meaningless.
//
// Values of different classes compare by Class rank, which makes Compare
// total over all non-Opaque values.
func Compare(a, b any) (cmp int, ok bool) {
	ca, cb := ClassOf(a), ClassOf(b)
	if ca == ClassOpaque || cb == ClassOpaque {
		return 0, false
	}
	if ca != cb {
		return sign(int(ca) - int(cb)), true
	}
	switch ca {
	case ClassNil:
		return 0, true
	case ClassBool:
		return compareBool(reflect.ValueOf(a).Bool(), reflect.ValueOf(b).Bool()), true
	case ClassNumber:
		return compareNumber(numberOf(a), numberOf(b)), true
	case ClassString:
		return compareString(reflect.ValueOf(a).String(), reflect.ValueOf(b).String()), true
	default: // ClassTuple
		return compareTuple(reflect.ValueOf(a), reflect.ValueOf(b))
	}
}

// Sort orders values in place, deterministically. The incoming slice order
// is the reproducible tiebreak: callers should pass values in first-seen
// order. Ties (and whole runs containing Opaque values) keep that order.
// Complexity: O(n·log n) time, O(n) memory.
func Sort(values []any) {
	// Stable partition by class rank: runs of one class, ranks ascending,
	// incoming order preserved inside each run.
	sort.SliceStable(values, func(i, j int) bool {
		return ClassOf(values[i]) < ClassOf(values[j])
	})

	// Natural sort inside each same-class run, but only when every value
	// in the run is orderable; otherwise the run keeps first-seen order.
	for lo := 0; lo < len(values); {
		hi := lo + 1
		for hi < len(values) && ClassOf(values[hi]) == ClassOf(values[lo]) {
			hi++
		}
		if runOrderable(values[lo:hi]) {
			run := values[lo:hi]
			sort.SliceStable(run, func(i, j int) bool {
				c, _ := Compare(run[i], run[j])
				return c < 0
			})
		}
		lo = hi
	}
}

// runOrderable reports whether every value in the run has a natural order.
func runOrderable(run []any) bool {
	for _, v := range run {
		if !Orderable(v) {
			return false
		}
	}
	return true
}

func compareBool(a, b bool) int {
	if a == b {
		return 0
	}
	if !a {
		return -1
	}
	return 1
}

func compareString(a, b string) int {
	if a == b {
		return 0
	}
	if a < b {
		return -1
	}
	return 1
}

// numberOf widens any numeric kind to float64. Widening may lose precision
// on extreme 64-bit integers, which is acceptable here: the result is still
// deterministic, and equal keys keep their incoming order under stable sort.
func numberOf(v any) float64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return float64(rv.Uint())
	default:
		return rv.Float()
	}
}

// compareNumber orders by numeric value. NaN sorts after every ordinary
// number and equal to itself, keeping the order total within ClassNumber.
func compareNumber(a, b float64) int {
	aNaN, bNaN := math.IsNaN(a), math.IsNaN(b)
	switch {
	case aNaN && bNaN:
		return 0
	case aNaN:
		return 1
	case bNaN:
		return -1
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareTuple orders arrays elementwise by recursive Compare; on a shared
// prefix the shorter array sorts first.
func compareTuple(a, b reflect.Value) (int, bool) {
	n := a.Len()
	if b.Len() < n {
		n = b.Len()
	}
	for i := 0; i < n; i++ {
		c, ok := Compare(a.Index(i).Interface(), b.Index(i).Interface())
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	return sign(a.Len() - b.Len()), true
}

// sign maps an int difference onto {-1, 0, 1}.
func sign(d int) int {
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	default:
		return 0
	}
}
