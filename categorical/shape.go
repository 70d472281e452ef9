package categorical

import (
	"fmt"
	"reflect"
)

// asValues normalizes chunk data into a flat value slice plus optional row
// labels. The caller must already have unwrapped any *Box or Container.
//
//   - Series → its values and labels, lengths validated
//   - any slice or array → a flat []any; nested slice storage is rank > 1
//     and rejected with ErrInvalidShape
//   - bare scalar (string included) → a length-one slice
//
// Complexity: O(n).
func asValues(data any) (values, index []any, err error) {
	if s, ok := data.(Series); ok {
		if s.Index != nil && len(s.Index) != len(s.Values) {
			return nil, nil, fmt.Errorf("%w: series has %d labels for %d values",
				ErrInvalidShape, len(s.Index), len(s.Values))
		}
		return s.Values, s.Index, nil
	}
	if data == nil {
		return []any{nil}, nil, nil
	}
	rv := reflect.ValueOf(data)
	switch rv.Kind() {
	case reflect.Slice:
		// Nested slice storage means rank > 1. Arrays stay: a fixed-size
		// array element is a tuple value, not a dimension.
		if rv.Type().Elem().Kind() == reflect.Slice {
			return nil, nil, fmt.Errorf("%w: got nested %s storage", ErrInvalidShape, rv.Type())
		}
		out := make([]any, rv.Len())
		for i := range out {
			out[i] = rv.Index(i).Interface()
		}
		return out, nil, nil
	default:
		// Bare scalars (strings and arrays included) normalize to a
		// length-one sequence, consistent with numeric factor handling.
		return []any{data}, nil, nil
	}
}
