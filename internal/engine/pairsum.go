package engine

import (
	"maps"
	"slices"
)

// PairSum validates blocks against a multiset of all pairwise sums of
// the current window.
//
// The multiset holds window[i]+window[j] for every i < j, duplicates
// counted, so a membership hit is exactly "some two distinct window
// positions sum to this value". Two equal blocks in different positions
// are distinct summands.
//
// Memory scales with O(W²); see TwoPointer for the O(W) alternative.
type PairSum[B Block] struct {
	// window holds the W most recently accepted blocks, oldest first.
	window []B

	// sums is the pair-sum multiset: value -> occurrence count.
	sums map[B]int

	// total counts blocks ever accepted, initial window included.
	total int
}

// NewPairSum builds a PairSum engine over the given initial window.
// The initial blocks are trusted; no validation is performed on them.
//
// Construction enumerates all C(W,2) pairs and runs in O(W²).
func NewPairSum[B Block](initial []B) *PairSum[B] {
	window := slices.Clone(initial)

	// Half the maximum entry count. A worst case with no duplicate sums
	// needs at most one more growth step.
	sums := make(map[B]int, len(window)*len(window)/2)

	for i, first := range window[:max(len(window)-1, 0)] {
		for _, second := range window[i+1:] {
			sums[first+second]++
		}
	}

	return &PairSum[B]{
		window: window,
		sums:   sums,
		total:  len(window),
	}
}

// TryExtendOne implements Engine.
//
// The check is an O(1) amortized multiset lookup. On acceptance the
// multiset is transformed in place: for each surviving window block b,
// one occurrence of old+b is removed and one of block+b inserted, which
// is O(W) and avoids recomputing the pair sums from scratch.
func (e *PairSum[B]) TryExtendOne(block B) error {
	if e.sums[block] == 0 {
		return &InvalidBlockError[B]{Value: block, Position: e.total + 1}
	}

	// Block is validated. It is now correct to evict the oldest block
	// and swap its sums for the new block's sums.
	old := e.window[0]
	copy(e.window, e.window[1:])
	e.window[len(e.window)-1] = block

	for _, b := range e.window[:len(e.window)-1] {
		e.removeSum(old + b)
		e.sums[block+b]++
	}

	e.total++
	return nil
}

// removeSum drops one occurrence of sum from the multiset.
// Exhausted entries are deleted so absence of a key means count zero.
func (e *PairSum[B]) removeSum(sum B) {
	if n := e.sums[sum]; n > 1 {
		e.sums[sum] = n - 1
	} else {
		delete(e.sums, sum)
	}
}

// Window implements Engine.
func (e *PairSum[B]) Window() []B {
	return slices.Clone(e.window)
}

// TotalAccepted implements Engine.
func (e *PairSum[B]) TotalAccepted() int {
	return e.total
}

// Clone implements Engine.
func (e *PairSum[B]) Clone() Engine[B] {
	return &PairSum[B]{
		window: slices.Clone(e.window),
		sums:   maps.Clone(e.sums),
		total:  e.total,
	}
}
