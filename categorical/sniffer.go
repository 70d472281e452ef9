package categorical

import (
	"fmt"

	"github.com/JanSchulz/patsy/stableorder"
)

// levelSet accumulates distinct hashable values in first-seen order. The
// recorded order is the reproducible tiebreak used when the final ordering
// falls back to insertion position.
type levelSet struct {
	index map[any]int // value → first-seen position
	order []any       // values in first-seen order
}

// newLevelSet returns an empty accumulator.
func newLevelSet() *levelSet {
	return &levelSet{index: make(map[any]int)}
}

// add inserts v unless already present. Returns ErrUnhashable when v
// cannot be a set member.
func (s *levelSet) add(v any) error {
	if !hashable(v) {
		return fmt.Errorf("%w: cannot register %#v as a level", ErrUnhashable, v)
	}
	if _, ok := s.index[v]; ok {
		return nil
	}
	s.index[v] = len(s.order)
	s.order = append(s.order, v)

	return nil
}

// isBoolPair reports whether the set holds exactly {false, true}.
func (s *levelSet) isBoolPair() bool {
	if len(s.order) != 2 {
		return false
	}
	_, f := s.index[false]
	_, t := s.index[true]

	return f && t
}

// Sniffer incrementally discovers the level set (and contrast) of one
// categorical column across a sequence of data chunks.
//
// A Sniffer is owned by a single caller for the duration of one discovery
// pass: feed chunks through Sniff until it reports confident-done or the
// chunks run out, then freeze the result with LevelsContrast. Sniffing
// after the freeze is a hard error. Not safe for concurrent use.
type Sniffer struct {
	na     NAPolicy
	origin any

	contrast  any
	levels    Levels // non-nil once declared explicitly or finalized
	seen      *levelSet
	finalized bool
}

// NewSniffer returns a Sniffer accumulating under the given NA policy.
// A nil policy treats nothing as missing. Accepts WithOrigin.
func NewSniffer(na NAPolicy, opts ...Option) *Sniffer {
	if na == nil {
		na = NATypes{}
	}
	cfg := newConfig(opts)

	return &Sniffer{na: na, origin: cfg.origin, seen: newLevelSet()}
}

// Sniff consumes one chunk and reports whether the sniffer is confident
// that every level has been seen, in which case the caller may stop
// feeding chunks. The confident-done guess is authoritative for explicit
// level declarations and boolean storage; for plain value scans it only
// fires on an all-boolean set, and the caller remains free to keep
// feeding chunks regardless.
//
// Dispatch, decided once per call:
//
//  1. a Container fixes the levels from its own authoritative order
//  2. a *Box overwrites the stored contrast (last writer wins) and, with
//     explicit levels, fixes them; otherwise its raw data falls through
//  3. []bool storage registers exactly {false, true} without scanning
//  4. anything else is shape-normalized and scanned value by value,
//     skipping NA values and widening any bool to the full pair
//
// Returns ErrSnifferFinalized after LevelsContrast, ErrInvalidShape for
// rank > 1 chunks, ErrUnhashable for unusable values.
// Complexity: O(n) per chunk.
func (s *Sniffer) Sniff(data any) (bool, error) {
	if s.finalized {
		return false, wrapOrigin(s.origin, ErrSnifferFinalized)
	}

	switch d := data.(type) {
	case Container:
		// The container carries its own NA detection and level order;
		// don't second-guess either.
		if cc, ok := data.(ContrastCarrier); ok {
			s.contrast = cc.Contrast()
		}
		s.levels = cloneLevels(d.Levels())
		return true, nil
	case *Box:
		// A box always exposes its contrast field, so the stored value is
		// overwritten even when the box carries none.
		s.contrast = d.Contrast
		if d.Levels != nil {
			s.levels = cloneLevels(d.Levels)
			return true, nil
		}
		data = d.Data
	}

	// Homogeneous boolean storage: the only possible levels are known
	// without looking at a single element.
	if _, ok := data.([]bool); ok {
		s.seen = newLevelSet()
		_ = s.seen.add(false)
		_ = s.seen.add(true)
		return true, nil
	}

	values, _, err := asValues(data)
	if err != nil {
		return false, wrapOrigin(s.origin, err)
	}
	for _, v := range values {
		if s.na.IsCategoricalNA(v) {
			continue
		}
		if _, isBool := v.(bool); isBool {
			// Even a lone boolean implies the full pair.
			_ = s.seen.add(false)
			_ = s.seen.add(true)
			continue
		}
		if err = s.seen.add(v); err != nil {
			return false, wrapOrigin(s.origin, err)
		}
	}

	// Once only booleans have been seen, assume everything else would be
	// boolean too. Not a safe guess for other value domains, so anything
	// else keeps the sniffer hungry.
	return s.seen.isBoolPair(), nil
}

// LevelsContrast freezes and returns the discovered levels and contrast.
//
// On the first call, levels declared by a short-circuit chunk are used
// as-is; otherwise the accumulated set is ordered deterministically by
// stableorder.Sort, with first-seen position as the tiebreak. The sniffer
// is finalized either way: the result is memoized, subsequent calls return
// the same frozen values, and further Sniff calls fail.
// Complexity: O(L·log L) on first call, O(L) afterwards.
func (s *Sniffer) LevelsContrast() (Levels, any) {
	if s.levels == nil {
		levels := cloneLevels(s.seen.order)
		stableorder.Sort(levels)
		s.levels = levels
	}
	s.finalized = true

	return cloneLevels(s.levels), s.contrast
}
