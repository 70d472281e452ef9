// Package patsy is the categorical core of a design-matrix construction
// pipeline: level discovery and dense integer encoding for categorical
// columns, streamed chunk by chunk.
//
// 🚀 What does it do?
//
//	Raw column data arrives as a sequence of chunks — plain slices, bare
//	scalars, boolean storage, row-labeled series, pre-categorized
//	containers, or values explicitly tagged with C(). The library:
//	  • discovers the distinct level set incrementally, with an explicit
//	    early-stop signal for streaming sources
//	  • carries an optional opaque contrast payload alongside the data
//	  • freezes a deterministic level ordering once discovery ends
//	  • converts raw values into dense zero-based codes (-1 = missing)
//	    against a previously frozen ordering, with strict diagnostics
//
// ✨ Why choose this library?
//
//   - Deterministic – mixed value domains (numbers, strings, tuples, nil)
//     get a stable, platform-independent default ordering
//   - Strict – level declarations that disagree in value or order fail
//     loudly, never silently
//   - Streaming-friendly – one sequential pass, short-circuit signaling,
//     no requirement to hold a column in memory
//   - Pure Go – no cgo, a single test-only dependency
//
// Everything is organized under two subpackages:
//
//	categorical/ — Box (C), sniffing, integer encoding, NA policy hooks
//	stableorder/ — total-order comparator over heterogeneous values
//
// Missing-data semantics are never decided here: callers inject an
// NAPolicy, and pre-categorized containers keep their own NA marking.
package patsy
