// Package dynarr is a generic, contiguous, growable sequence container —
// a dynamic array built on an explicit two-phase storage protocol.
//
// 🚀 What is dynarr?
//
//	A small, focused library that separates "owning raw slots" from
//	"holding live values", so capacity can exceed size without ever
//	constructing elements speculatively:
//		• Explicit slot buffer: allocate, construct, destroy, release
//		• Amortized O(1) append via capacity doubling
//		• Value semantics: clone, move, swap, lexicographic compare
//		• Forward & reverse iteration, read-only and mutable
//		• Strong failure atomicity on every reallocating operation
//
// ✨ Why choose dynarr?
//
//   - Predictable memory – exact-fit Reserve/Resize/ShrinkToFit, doubling
//     only on append
//   - Rock-solid failure paths – a failed grow leaves the vector untouched
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – fallible Clone/Default hooks for deep-copy element types
//
// Under the hood, everything is organized under two subpackages:
//
//	slots/  — raw slot buffers: allocation, in-place construct/destroy,
//	          infallible relocation
//	vector/ — the Vector[T] container, its mutators, comparisons and
//	          iteration views
//
// Quick ASCII example:
//
//	    size=3        capacity=6
//	    [ A ][ B ][ C ][ · ][ · ][ · ]
//	      live values    raw slots
//
// Dive into vector/doc.go for the full API surface and the iterator
// invalidation contract.
//
//	go get github.com/katalvlaran/dynarr/vector
package dynarr
