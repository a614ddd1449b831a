// Package vector implements Vector[T], a contiguous, growable sequence
// container with explicit capacity control and strong failure atomicity.
//
// 🚀 What is Vector?
//
//	A dynamic array over a raw slot buffer (see dynarr/slots): the first
//	Len() slots hold live values, the rest of the Cap() slots stay dead
//	until a mutator constructs into them. On top of that protocol it
//	provides:
//	  • Construction: empty, sized, filled, from slice, literal, sequence
//	  • Value semantics: Clone, CopyFrom (strong safety), MoveFrom (O(1))
//	  • Mutators: PushBack / PushBackCopy / EmplaceBack, PopBack, Resize,
//	    Reserve, ShrinkToFit, Clear, Swap
//	  • Comparison: Equal / Compare families, lexicographic order
//	  • Iteration: forward & reverse, read-only & mutable views
//
// ✨ Failure model:
//
//	Go values cannot fail on plain assignment, so the fallible parts of
//	element lifecycle are opt-in hooks: WithClone (copy-construction),
//	WithDefault (default-construction) and WithLimit (allocation bound).
//	Every reallocating operation follows one protocol — build anything
//	fallible in the fresh block first, relocate the live prefix only when
//	nothing can fail, destroy the old block last. A failed operation
//	returns its error with the vector exactly as it was.
//
//	The one documented exception: in-place construction of a trailing
//	element (append or Resize within capacity) that fails simply leaves
//	the element absent; nothing else was touched, so nothing rolls back.
//
// ⚠️ Invalidation contract:
//
//	Data, Ptr, Refs and every iteration view hand out positions into the
//	current block. Any operation that reallocates (growth, Reserve,
//	ShrinkToFit, Resize beyond capacity) or shrinks the live range
//	(PopBack, Clear, Resize down) invalidates them. This is a caller
//	obligation, not enforced at runtime.
//
// ⚙️ Usage:
//
//	v := vector.Of(1, 2, 3)
//	_ = v.PushBack(4)                   // amortized O(1)
//	sorted := vector.Less(v, other)     // lexicographic
//	for i, x := range v.All() { ... }   // forward, read-only
//
// Complexity: element access O(1); append amortized O(1), O(n) when a
// reallocation fires; Reserve/Resize/ShrinkToFit O(n); comparisons O(n).
//
// Vectors carry no internal locking: one writer at a time, concurrent
// readers only while nobody mutates.
package vector
