// Package engine implements the blockmine windowed validation engine.
//
// The engine validates a numeric stream against a sliding-window rule:
// each new block must equal the sum of two distinct blocks among the most
// recently accepted W blocks (the validation window). It answers,
// incrementally, whether a stream conforms and reports the first position
// and value that break the rule.
//
// ARCHITECTURE:
//
// Two interchangeable strategies implement the same Engine contract:
//
//   - PairSum: maintains a multiset of all pairwise window sums.
//     O(1) amortized membership check, O(W) update, O(W²) memory.
//   - TwoPointer: maintains a sorted copy of the window.
//     O(W) two-pointer check, O(W) update, O(W) memory.
//
// Both strategies produce bit-identical externally observable behavior:
// the same accept/reject decisions, the same error positions, the same
// window contents after every step. The conformance harness enforces
// this for every scenario it runs.
//
// The bulk and convenience algorithms (TryExtend, TryNew,
// TryCreateAndExtend) are written once against the Engine interface and
// never duplicated per strategy.
//
// CRITICAL PATTERNS:
//
// Atomic steps:
// A successful step mutates window, support index, and counter together;
// a failing step mutates nothing and is idempotent. No partial update is
// ever observable by the caller.
//
// No rollback:
// Bulk extension stops at the first invalid block and keeps every block
// accepted before it. Callers that need all-or-nothing semantics clone
// the engine first and discard the clone on failure.
//
// The engine is synchronous and single-owner: no internal concurrency,
// no I/O, no cancellation. Distinct engine instances share no state and
// may be used from different goroutines.
package engine
