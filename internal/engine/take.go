package engine

import "iter"

// takePrefix pulls up to n values off the front of seq.
//
// It returns the values taken (fewer than n only if seq ran out), the
// remainder of the sequence, and a stop function releasing the
// underlying iterator. The remainder is single-use and draws from the
// same iterator; callers must call stop when done with it, whether or
// not they consume it (safe to call after the remainder is exhausted).
func takePrefix[V any](seq iter.Seq[V], n int) (taken []V, rest iter.Seq[V], stop func()) {
	next, stop := iter.Pull(seq)

	taken = make([]V, 0, n)
	for len(taken) < n {
		v, ok := next()
		if !ok {
			break
		}
		taken = append(taken, v)
	}

	rest = func(yield func(V) bool) {
		for {
			v, ok := next()
			if !ok || !yield(v) {
				return
			}
		}
	}
	return taken, rest, stop
}
