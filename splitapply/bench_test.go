// SPDX-License-Identifier: MIT

package splitapply_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/lvfunc/core"
	"github.com/katalvlaran/lvfunc/splitapply"
)

var sinkInts []int

func benchSplit() *splitapply.Split[int, []int] {
	xs := make([]int, 100_000)
	for i := range xs {
		xs[i] = i
	}
	return splitapply.BySequence(xs, func(_ int, v int) int { return v % 256 })
}

func groupSum(_ int, p []int) (int, error) {
	var s int
	for _, v := range p {
		s += v
	}
	return s, nil
}

// BenchmarkDo_Sequential sums 256 groups of a 100k sequence.
func BenchmarkDo_Sequential(b *testing.B) {
	s := benchSplit()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInts, _ = splitapply.Do(context.Background(), s, groupSum, splitapply.AsSequence[int, int]())
	}
}

// BenchmarkDo_Parallel runs the same load on four workers.
func BenchmarkDo_Parallel(b *testing.B) {
	s := benchSplit()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkInts, _ = splitapply.Do(context.Background(), s, groupSum, splitapply.AsSequence[int, int](), core.WithParallel(4))
	}
}

// BenchmarkBySequence measures the split step alone.
func BenchmarkBySequence(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkInts = benchSplit().Index(0)
	}
}
