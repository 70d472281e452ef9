// Package categorical discovers the levels of a categorical column and
// converts raw values into dense integer codes, one sequential chunk at a
// time.
//
// 🚀 What is sniffing?
//
//	There is no single standard for how categorical data reaches a
//	design-matrix builder: plain slices, bare scalars, boolean storage,
//	row-labeled series, pre-categorized containers, or values tagged with
//	C(). Missing-data conventions vary just as much. The Sniffer walks a
//	chunk sequence once, accumulating the distinct level set under a
//	caller-supplied NA policy, and signals as soon as it is confident no
//	further chunks can change the outcome.
//
// ✨ Key features:
//
//   - C() tagging: attach explicit levels and an opaque contrast payload
//     to any data, with per-field inheritance on re-boxing
//   - streaming discovery with an early-stop signal (Sniff returns true)
//   - deterministic default level ordering via package stableorder
//   - Encode: raw values → zero-based codes, -1 for missing, with strict
//     order-sensitive validation against declared level sets
//   - boolean storage fast paths that skip per-element scanning
//   - row labels on a Series input are carried to the output unchanged
//
// ⚙️ Usage:
//
//	sniffer := categorical.NewSniffer(categorical.NATypes{Nil: true})
//	for _, chunk := range chunks {
//	    done, err := sniffer.Sniff(chunk)
//	    if err != nil { ... }
//	    if done { break }
//	}
//	levels, contrast := sniffer.LevelsContrast()
//
//	codes, err := categorical.Encode(chunk, levels, naPolicy)
//
// Error handling:
//
//	All failures wrap one of the package sentinels (ErrInvalidShape,
//	ErrUnhashable, ErrLevelMismatch, ErrUnknownLevel, ErrSnifferFinalized)
//	and, when WithOrigin was supplied, an *OriginError carrying the
//	caller's opaque provenance token. The token is never interpreted here.
//
// Performance:
//
//   - Sniff / Encode: O(n) per chunk, O(L) memory for L distinct levels
//   - boolean fast paths: no per-element set or map operations
package categorical
