package categorical

import "fmt"

// Encode converts raw column data into dense zero-based integer codes
// against a previously finalized level ordering. Missing values, as
// classified by the NA policy, encode to -1. A nil policy treats nothing
// as missing. Accepts WithOrigin.
//
// Dispatch, decided once per call:
//
//  1. a Container must declare exactly the expected levels, by value and
//     by order; its own NA-aware codes are then reused without rescanning
//  2. a *Box with explicit levels undergoes the same equality check, then
//     unwraps to its raw data
//  3. []bool storage against levels exactly (false, true) casts directly,
//     with no per-element lookup
//  4. anything else is shape-normalized and looked up value by value
//
// Row labels on a Series input are carried to the output Codes aligned
// element-for-element.
//
// Either the whole input encodes or an error is returned with no partial
// result: ErrLevelMismatch for disagreeing level declarations,
// ErrInvalidShape for rank > 1 data, ErrUnhashable for unusable levels or
// values, ErrUnknownLevel for values outside the level set.
//
// Encode holds no state: calls are pure functions of their inputs, safe
// to run over independent chunks in parallel.
// Complexity: O(n + L) time, O(n + L) memory.
func Encode(data any, levels Levels, na NAPolicy, opts ...Option) (Codes, error) {
	cfg := newConfig(opts)
	if na == nil {
		na = NATypes{}
	}

	switch d := data.(type) {
	case Container:
		got := d.Levels()
		if !levels.Equal(got) {
			return Codes{}, wrapOrigin(cfg.origin,
				fmt.Errorf("%w: expected %v, got %v", ErrLevelMismatch, levels, got))
		}
		// The container already encodes missing as -1 under its own NA
		// detection; reuse its codes without rescanning values.
		out := make([]int, len(d.Codes()))
		copy(out, d.Codes())
		return Codes{Ints: out}, nil
	case *Box:
		if d.Levels != nil && !levels.Equal(d.Levels) {
			return Codes{}, wrapOrigin(cfg.origin,
				fmt.Errorf("%w: expected %v, got %v", ErrLevelMismatch, levels, d.Levels))
		}
		data = d.Data
	}

	// The lookup is built before the boolean fast path so that an
	// unhashable level fails regardless of the storage kind.
	lookup := make(map[any]int, len(levels))
	for i, lv := range levels {
		if !hashable(lv) {
			return Codes{}, wrapOrigin(cfg.origin,
				fmt.Errorf("%w: level %#v", ErrUnhashable, lv))
		}
		lookup[lv] = i
	}

	// Homogeneous boolean storage against canonical (false, true) levels:
	// the code of each element is its numeric cast.
	if bs, ok := data.([]bool); ok && len(levels) == 2 && levels[0] == any(false) && levels[1] == any(true) {
		out := make([]int, len(bs))
		for i, b := range bs {
			if b {
				out[i] = 1
			}
		}
		return Codes{Ints: out}, nil
	}

	values, index, err := asValues(data)
	if err != nil {
		return Codes{}, wrapOrigin(cfg.origin, err)
	}
	out := make([]int, len(values))
	for i, v := range values {
		if na.IsCategoricalNA(v) {
			out[i] = naCode
			continue
		}
		if !hashable(v) {
			return Codes{}, wrapOrigin(cfg.origin,
				fmt.Errorf("%w: encountered unhashable value %#v", ErrUnhashable, v))
		}
		code, ok := lookup[v]
		if !ok {
			return Codes{}, wrapOrigin(cfg.origin,
				fmt.Errorf("%w: observation with value %#v (expected: %s)",
					ErrUnknownLevel, v, levels.preview()))
		}
		out[i] = code
	}

	codes := Codes{Ints: out}
	if index != nil {
		codes.Index = make([]any, len(index))
		copy(codes.Index, index)
	}

	return codes, nil
}
