package engine

import (
	"fmt"
	"math/rand"
	"testing"
)

// benchStream builds a conforming stream: the first window values are
// random, and every later value is the sum of two adjacent blocks that
// are still inside the window when it arrives.
func benchStream(window, total int) []uint64 {
	rng := rand.New(rand.NewSource(42))

	blocks := make([]uint64, total)
	for i := 0; i < window; i++ {
		blocks[i] = uint64(rng.Int31())
	}
	for i := window; i < total; i++ {
		blocks[i] = blocks[i-window] + blocks[i-window+1]
	}
	return blocks
}

func BenchmarkNewPairSum(b *testing.B) {
	for _, window := range []int{25, 50, 100} {
		initial := benchStream(window, window)
		b.Run(fmt.Sprintf("window=%d", window), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPairSum(initial)
			}
		})
	}
}

func BenchmarkNewTwoPointer(b *testing.B) {
	for _, window := range []int{25, 50, 100} {
		initial := benchStream(window, window)
		b.Run(fmt.Sprintf("window=%d", window), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewTwoPointer(initial)
			}
		})
	}
}

func benchmarkExtend(b *testing.B, build Constructor[uint64]) {
	for _, window := range []int{25, 50, 100} {
		blocks := benchStream(window, 1000)
		b.Run(fmt.Sprintf("window=%d", window), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				b.StopTimer()
				e := build(blocks[:window])
				b.StartTimer()

				for _, block := range blocks[window:] {
					if err := e.TryExtendOne(block); err != nil {
						b.Fatal(err)
					}
				}
			}
		})
	}
}

func BenchmarkPairSumExtend(b *testing.B) {
	benchmarkExtend(b, func(initial []uint64) Engine[uint64] { return NewPairSum(initial) })
}

func BenchmarkTwoPointerExtend(b *testing.B) {
	benchmarkExtend(b, func(initial []uint64) Engine[uint64] { return NewTwoPointer(initial) })
}
