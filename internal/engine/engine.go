package engine

import "iter"

// Engine is the behavioral contract shared by the validation strategies.
//
// An engine owns a fixed-size window of accepted blocks. TryExtendOne is
// the single state-transition primitive; everything else (TryExtend,
// TryNew, TryCreateAndExtend) is derived from it once, at package level.
//
// INVARIANTS:
//   - The window holds exactly W blocks at all times after construction.
//   - A successful step evicts the oldest block, appends the new one,
//     updates the support index, and increments the accepted counter.
//   - A failing step changes nothing and returns the same error on every
//     retry against the unchanged engine.
//
// An engine instance has no internal synchronization and is used by one
// owner at a time. Clone, not sharing, is the supported pattern for
// exploring divergent continuations from the same checkpoint.
type Engine[B Block] interface {
	// TryExtendOne validates a single block against the current window.
	// If block equals the sum of two distinct window positions, the
	// window advances and nil is returned. Otherwise an
	// *InvalidBlockError is returned and the engine is untouched.
	TryExtendOne(block B) error

	// Window returns a copy of the current validation window in
	// acceptance order, oldest first.
	Window() []B

	// TotalAccepted returns the number of blocks ever accepted,
	// including the initial window.
	TotalAccepted() int

	// Clone returns an independent deep copy sharing no mutable state
	// with the receiver.
	Clone() Engine[B]
}

// Constructor builds a concrete engine from trusted initial blocks.
// The window size is the length of the slice; the initial blocks are not
// validated against anything (there is no prior history).
type Constructor[B Block] func(initial []B) Engine[B]

// TryExtend feeds blocks to e in order, stopping at the first invalid
// one and returning its error. Blocks accepted before the failure remain
// accepted; there is no rollback. An empty sequence succeeds.
//
// The sequence is consumed lazily: nothing past the failing block is
// pulled.
func TryExtend[B Block](e Engine[B], blocks iter.Seq[B]) error {
	for block := range blocks {
		if err := e.TryExtendOne(block); err != nil {
			return err
		}
	}
	return nil
}

// TryNew builds an engine from exactly the first windowSize elements of
// blocks. Returns an *InitSizeError if fewer are available.
func TryNew[B Block](windowSize int, build Constructor[B], blocks iter.Seq[B]) (Engine[B], error) {
	initial, _, stop := takePrefix(blocks, windowSize)
	stop()

	if len(initial) < windowSize {
		return nil, &InitSizeError{Need: windowSize, Got: len(initial)}
	}
	return build(initial), nil
}

// TryCreateAndExtend consumes blocks as one stream: the first windowSize
// elements initialize the engine (failing with *InitSizeError if too few
// exist), and the remainder is fed through TryExtend. This is the
// one-shot entry point for validating a full input stream.
func TryCreateAndExtend[B Block](windowSize int, build Constructor[B], blocks iter.Seq[B]) error {
	initial, rest, stop := takePrefix(blocks, windowSize)
	defer stop()

	if len(initial) < windowSize {
		return &InitSizeError{Need: windowSize, Got: len(initial)}
	}
	return TryExtend(build(initial), rest)
}
