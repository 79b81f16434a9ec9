package engine

import "slices"

// TwoPointer validates blocks with a two-pointer scan over a separately
// sorted copy of the window.
//
// Both the check and the update are O(W), same as PairSum
// asymptotically, but there is no hashing and the support structure is
// O(W) instead of O(W²). Favorable for small to moderate windows or
// when the multiset's quadratic memory is undesirable.
//
// The scan assumes pair sums do not overflow the block type; the sorted
// order it relies on is the natural order of the unwrapped values.
type TwoPointer[B Block] struct {
	// window holds the W most recently accepted blocks, oldest first.
	window []B

	// sorted holds the same blocks in ascending order.
	sorted []B

	// total counts blocks ever accepted, initial window included.
	total int
}

// NewTwoPointer builds a TwoPointer engine over the given initial
// window. The initial blocks are trusted; no validation is performed on
// them. Construction sorts a copy and runs in O(W log W).
func NewTwoPointer[B Block](initial []B) *TwoPointer[B] {
	window := slices.Clone(initial)
	sorted := slices.Clone(initial)
	slices.Sort(sorted)

	return &TwoPointer[B]{
		window: window,
		sorted: sorted,
		total:  len(window),
	}
}

// TryExtendOne implements Engine.
//
// The scan walks a low pointer up and a high pointer down over the
// sorted copy. A sum below the target discards the low block from
// consideration, a sum above discards the high block. The pointers
// meeting means exhaustion: the same slot is never a pair with itself,
// so the block is invalid.
func (e *TwoPointer[B]) TryExtendOne(block B) error {
	lo, hi := 0, len(e.sorted)-1
	found := false
	for lo < hi {
		switch sum := e.sorted[lo] + e.sorted[hi]; {
		case sum < block:
			lo++
		case sum > block:
			hi--
		default:
			found = true
		}
		if found {
			break
		}
	}
	if !found {
		return &InvalidBlockError[B]{Value: block, Position: e.total + 1}
	}

	// Block is validated; advance the FIFO window and mirror the change
	// into the sorted copy.
	old := e.window[0]
	copy(e.window, e.window[1:])
	e.window[len(e.window)-1] = block

	// Removal is positional: with duplicates of old present, any
	// matching slot works because equal values are interchangeable in
	// sorted order.
	at, _ := slices.BinarySearch(e.sorted, old)
	e.sorted = slices.Delete(e.sorted, at, at+1)

	at, _ = slices.BinarySearch(e.sorted, block)
	e.sorted = slices.Insert(e.sorted, at, block)

	e.total++
	return nil
}

// Window implements Engine.
func (e *TwoPointer[B]) Window() []B {
	return slices.Clone(e.window)
}

// TotalAccepted implements Engine.
func (e *TwoPointer[B]) TotalAccepted() int {
	return e.total
}

// Clone implements Engine.
func (e *TwoPointer[B]) Clone() Engine[B] {
	return &TwoPointer[B]{
		window: slices.Clone(e.window),
		sorted: slices.Clone(e.sorted),
		total:  e.total,
	}
}
