package categorical_test

import (
	"errors"
	"math"
	"testing"

	"github.com/JanSchulz/patsy/categorical"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sniffAll feeds chunks until the sniffer reports confident-done or the
// chunks run out, then checks the early-stop flag and the frozen result.
func sniffAll(t *testing.T, na categorical.NAPolicy, chunks []any,
	wantDone bool, wantLevels categorical.Levels, wantContrast any) {
	t.Helper()

	s := categorical.NewSniffer(na)
	done := false
	for _, chunk := range chunks {
		var err error
		done, err = s.Sniff(chunk)
		require.NoError(t, err)
		if done {
			break
		}
	}
	assert.Equal(t, wantDone, done, "confident-done flag")

	levels, contrast := s.LevelsContrast()
	assert.Equal(t, wantLevels, levels)
	assert.Equal(t, wantContrast, contrast)
}

// TestSniffer_Container verifies that a pre-categorized container fixes
// the levels from its own authoritative order and finishes immediately.
func TestSniffer_Container(t *testing.T) {
	sniffAll(t, nil,
		[]any{fakeContainer{levels: categorical.Levels{"a", "b"}}},
		true, categorical.Levels{"a", "b"}, nil)

	// Order preservation: the container's order wins, not a sorted one.
	sniffAll(t, nil,
		[]any{fakeContainer{levels: categorical.Levels{"b", "a"}}},
		true, categorical.Levels{"b", "a"}, nil)

	// A container that also exposes a contrast gets it picked up.
	cc := contrastContainer{
		fakeContainer: fakeContainer{levels: categorical.Levels{"a", "b"}},
		contrast:      "CONTRAST",
	}
	sniffAll(t, nil, []any{cc}, true, categorical.Levels{"a", "b"}, "CONTRAST")
}

// TestSniffer_Boxes covers boxed chunks with and without explicit levels.
func TestSniffer_Boxes(t *testing.T) {
	// No explicit levels: both chunks scanned, set sorted at the end.
	sniffAll(t, nil,
		[]any{categorical.C([]any{1, 2}), categorical.C([]any{3, 2})},
		false, categorical.Levels{1, 2, 3}, nil)

	// Order preservation: the first chunk declares explicit levels and
	// alone reports confident-done; the second chunk is never consumed.
	sniffAll(t, nil,
		[]any{
			categorical.C([]int{1, 2}, categorical.WithLevels(1, 2, 3)),
			categorical.C([]int{4, 2}),
		},
		true, categorical.Levels{1, 2, 3}, nil)
	sniffAll(t, nil,
		[]any{
			categorical.C([]int{1, 2}, categorical.WithLevels(3, 2, 1)),
			categorical.C([]int{4, 2}),
		},
		true, categorical.Levels{3, 2, 1}, nil)
}

// TestSniffer_NAHandling verifies that the caller's policy decides which
// values are skipped, and that unrecognized markers stay levels.
func TestSniffer_NAHandling(t *testing.T) {
	sniffAll(t, categorical.NATypes{Nil: true, NaN: true},
		[]any{
			categorical.C([]any{1, math.NaN()}),
			categorical.C([]any{10, nil}),
		},
		false, categorical.Levels{1, 10}, nil)

	// nil can be a level if the policy does not claim it: the default
	// ordering puts the nil class before numbers.
	sniffAll(t, categorical.NATypes{NaN: true},
		[]any{categorical.C([]any{1, math.NaN(), nil})},
		false, categorical.Levels{nil, 1}, nil)
}

// TestSniffer_BoolSpecialCases covers the boolean handling: a lone bool
// widens to the full pair, an all-boolean set reports confident-done, and
// mixed sets keep accumulating.
func TestSniffer_BoolSpecialCases(t *testing.T) {
	sniffAll(t, categorical.NATypes{Nil: true, NaN: true},
		[]any{categorical.C([]any{true, math.NaN(), nil})},
		true, categorical.Levels{false, true}, nil)

	// Booleans mixed into other values: never confident, pair retained.
	sniffAll(t, nil,
		[]any{[]any{10, 20}, []any{false}, []any{30, 40}},
		false, categorical.Levels{false, true, 10, 20, 30, 40}, nil)

	// Homogeneous boolean storage short-circuits without scanning; the
	// trailing chunk is never consumed.
	sniffAll(t, nil,
		[]any{[]bool{true, false}, []any{"foo"}},
		true, categorical.Levels{false, true}, nil)
}

// TestSniffer_Tuples checks tuple values as levels, ordered elementwise.
func TestSniffer_Tuples(t *testing.T) {
	sniffAll(t, categorical.NATypes{Nil: true, NaN: true},
		[]any{categorical.C([]any{
			[2]any{"b", 2}, nil, [2]any{"a", 1}, math.NaN(), [2]any{"c", nil},
		})},
		false,
		categorical.Levels{[2]any{"a", 1}, [2]any{"b", 2}, [2]any{"c", nil}},
		nil)
}

// TestSniffer_Contrast verifies last-writer-wins contrast semantics: a
// box always exposes the field, so a later contrast-less box resets it.
func TestSniffer_Contrast(t *testing.T) {
	sniffAll(t, nil,
		[]any{categorical.C([]any{10, 20}, categorical.WithContrast("FOO"))},
		false, categorical.Levels{10, 20}, "FOO")

	s := categorical.NewSniffer(nil)
	_, err := s.Sniff(categorical.C([]any{10}, categorical.WithContrast("FOO")))
	require.NoError(t, err)
	_, err = s.Sniff(categorical.C([]any{20}))
	require.NoError(t, err)
	_, contrast := s.LevelsContrast()
	assert.Nil(t, contrast, "later box without contrast overwrites")
}

// TestSniffer_PlainAndScalar covers unboxed chunks and the scalar
// normalization of a single bare value.
func TestSniffer_PlainAndScalar(t *testing.T) {
	sniffAll(t, nil, []any{[]int{10, 30}, []int{20}},
		false, categorical.Levels{10, 20, 30}, nil)
	sniffAll(t, nil, []any{[]string{"b", "a"}, []string{"a"}},
		false, categorical.Levels{"a", "b"}, nil)
	sniffAll(t, nil, []any{"b"},
		false, categorical.Levels{"b"}, nil)
}

// TestSniffer_Determinism freezes the same unordered input repeatedly and
// requires an identical tuple each time.
func TestSniffer_Determinism(t *testing.T) {
	chunk := []any{"z", 10, "a", 2.5, true, "m", 7}
	var first categorical.Levels
	for run := 0; run < 20; run++ {
		s := categorical.NewSniffer(nil)
		_, err := s.Sniff(chunk)
		require.NoError(t, err)
		levels, _ := s.LevelsContrast()
		if first == nil {
			first = levels
			continue
		}
		require.Equal(t, first, levels, "run %d diverged", run)
	}
}

// TestSniffer_Errors covers unhashable values, rank > 1 chunks, and the
// hard finalization contract.
func TestSniffer_Errors(t *testing.T) {
	s := categorical.NewSniffer(nil)
	_, err := s.Sniff([]any{map[string]int{}})
	assert.ErrorIs(t, err, categorical.ErrUnhashable)

	s = categorical.NewSniffer(nil)
	_, err = s.Sniff([][]string{{"b"}})
	assert.ErrorIs(t, err, categorical.ErrInvalidShape)

	// Sniffing after LevelsContrast is a hard error, not a silent no-op.
	s = categorical.NewSniffer(nil)
	_, err = s.Sniff([]string{"a"})
	require.NoError(t, err)
	s.LevelsContrast()
	_, err = s.Sniff([]string{"b"})
	assert.ErrorIs(t, err, categorical.ErrSnifferFinalized)
}

// TestSniffer_LevelsContrastMemoized verifies idempotent finalization:
// repeated calls return the same frozen values.
func TestSniffer_LevelsContrastMemoized(t *testing.T) {
	s := categorical.NewSniffer(nil)
	_, err := s.Sniff([]string{"b", "a"})
	require.NoError(t, err)

	levels1, contrast1 := s.LevelsContrast()
	levels2, contrast2 := s.LevelsContrast()
	assert.Equal(t, levels1, levels2)
	assert.Equal(t, contrast1, contrast2)

	// Mutating a returned slice must not corrupt the frozen state.
	levels1[0] = "corrupted"
	levels3, _ := s.LevelsContrast()
	assert.Equal(t, categorical.Levels{"a", "b"}, levels3)
}

// TestSniffer_OriginToken verifies that WithOrigin forwards the caller's
// provenance token on failures, unmodified and alongside the sentinel.
func TestSniffer_OriginToken(t *testing.T) {
	s := categorical.NewSniffer(nil, categorical.WithOrigin("x ~ a + b"))
	_, err := s.Sniff([]any{map[string]int{}})
	require.ErrorIs(t, err, categorical.ErrUnhashable)

	var oe *categorical.OriginError
	require.True(t, errors.As(err, &oe))
	assert.Equal(t, "x ~ a + b", oe.Origin)
}
