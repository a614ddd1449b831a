// Package slots provides raw, fixed-capacity slot buffers with an explicit
// two-phase element protocol: acquiring storage and constructing values in
// it are separate operations, as are destroying values and releasing the
// block.
//
// 🚀 What is a slot buffer?
//
//	A Buffer[T] owns a contiguous block of element-sized slots. A slot is
//	either live (holds a constructed T placed by Set) or dead (holds the
//	zero value of T). The buffer never constructs elements on its own:
//	Alloc hands back dead slots, and the caller decides which slots become
//	live and when they die again.
//
// ✨ Key operations:
//   - Alloc        — acquire n dead slots, optionally capped by a limit
//   - Set / Destroy — construct a value into a slot / return it to dead
//   - DestroyRange — bulk destruction, back-to-front
//   - MoveRange    — relocate live values into another buffer; never fails
//   - Release      — drop the block entirely
//
// Destruction is modeled as zeroing: a dead slot holds no references, so
// the garbage collector never keeps an evicted element alive through the
// buffer. Relocation (MoveRange) copies the value and zeroes the source
// slot, which cannot fail — callers may rely on it when building rollback
// protocols on top.
//
// ⚙️ Usage:
//
//	buf, err := slots.Alloc[string](8, 0)
//	if err != nil { ... }
//	buf.Set(0, "hello")   // slot 0 is live
//	buf.Destroy(0)        // slot 0 is dead again
//	buf.Release()         // block is gone
//
// Complexity: Alloc and Release are O(n) in slot count (zeroed block /
// dropped block); Set, Get, Ptr and Destroy are O(1); DestroyRange and
// MoveRange are O(k) in the number of slots touched.
//
// Buffers carry no internal locking; one goroutine owns a buffer at a time.
package slots
