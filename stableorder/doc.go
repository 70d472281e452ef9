// Package stableorder imposes a deterministic total order over arbitrary
// hashable values, so that a default categorical level ordering never
// depends on map iteration, platform, or process run.
//
// 🚀 Why does this exist?
//
//	Natural comparison is not total across mixed representations: a level
//	set may contain strings next to numbers next to tuples next to nil,
//	and no pairwise "<" exists between them. Yet the same input must
//	always freeze into the same ordered level tuple.
//
// ✨ How the order is built:
//
//   - every value maps to a representation Class (Nil, Bool, Number,
//     String, Tuple, Opaque) derived from its kind, never its identity
//   - classes order by a fixed rank; values of different classes never
//     interleave
//   - inside one class the natural order applies (false<true, numeric
//     value, lexicographic strings, elementwise tuples) — but only when
//     every pair in the run is comparable
//   - a run containing any Opaque value keeps its incoming order instead,
//     making first-seen position the reproducible tiebreak
//
// The resulting order carries no meaning to end users. Determinism and
// totality are the whole point.
//
// ⚙️ Usage:
//
//	vals := []any{"b", 2, "a", 1}
//	stableorder.Sort(vals) // → [1, 2, "a", "b"]
//
// Performance:
//
//   - Sort: O(n·log n) comparisons, O(n) scratch memory
//   - Compare on tuples recurses elementwise
package stableorder
