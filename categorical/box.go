package categorical

import (
	"reflect"

	"github.com/JanSchulz/patsy/stableorder"
)

// C marks data as categorical, optionally fixing its levels and contrast.
//
// When data is already a *Box it is unwrapped first, and each of the two
// fields is inherited from it independently unless the corresponding
// option overrides it. C is therefore idempotent: re-boxing with no
// options yields an equivalent Box, and overriding one field leaves the
// other unchanged.
//
// Example:
//
//	b := categorical.C(raw, categorical.WithLevels("a2", "a1"))
//	b2 := categorical.C(b, categorical.WithContrast(poly))
//	// b2 keeps b's levels and raw data, with the new contrast.
//
// Complexity: O(len(levels)).
func C(data any, opts ...BoxOption) *Box {
	b := &Box{Data: data}
	if inner, ok := data.(*Box); ok {
		b.Data = inner.Data
		b.Contrast = inner.Contrast
		b.Levels = inner.Levels
	}
	for _, opt := range opts {
		opt(b)
	}

	return b
}

// GuessCategorical reports whether data looks categorical. A Container or
// *Box is always categorical; otherwise the element representation
// decides: homogeneously numeric data is not categorical, everything else
// (booleans, strings, mixed values) is.
//
// This is a default-detection aid only. It is not authoritative once a
// Box or a Container is present, and callers remain free to override it.
// Complexity: O(n) for untyped element storage, O(1) otherwise.
func GuessCategorical(data any) bool {
	switch d := data.(type) {
	case Container, *Box:
		return true
	case Series:
		return guessValues(d.Values)
	case nil:
		return true
	}
	rv := reflect.ValueOf(data)
	if rv.Kind() == reflect.Slice || rv.Kind() == reflect.Array {
		elem := rv.Type().Elem().Kind()
		if elem == reflect.Interface {
			// Untyped storage: homogeneous numeric content still counts
			// as numeric.
			vals := make([]any, rv.Len())
			for i := range vals {
				vals[i] = rv.Index(i).Interface()
			}
			return guessValues(vals)
		}
		return !numericKind(elem)
	}
	// Bare scalar.
	return stableorder.ClassOf(data) != stableorder.ClassNumber
}

// guessValues reports categorical-ness for untyped element storage: false
// only when every element is numeric (NaN included — it is still a float).
func guessValues(vals []any) bool {
	for _, v := range vals {
		if stableorder.ClassOf(v) != stableorder.ClassNumber {
			return true
		}
	}
	return false
}

// numericKind reports whether k is an integer, unsigned or float kind.
func numericKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	default:
		return false
	}
}
