// SPDX-License-Identifier: MIT
// Package core_test provides benchmarks for the runner and grouping.
package core_test

import (
	"context"
	"math"
	"runtime"
	"testing"

	"github.com/katalvlaran/lvfunc/core"
)

var sinkFloat float64

// work is a small CPU-bound task writing into out[i].
func work(out []float64) core.Task {
	return func(_ context.Context, i int) error {
		v := float64(i)
		for k := 0; k < 64; k++ {
			v = math.Sqrt(v + float64(k))
		}
		out[i] = v
		return nil
	}
}

// BenchmarkRun_Sequential measures the sequential strategy on 10k tasks.
func BenchmarkRun_Sequential(b *testing.B) {
	out := make([]float64, 10_000)
	o := core.Gather(core.WithSequential())
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Run(context.Background(), "bench", len(out), o, work(out))
	}
	sinkFloat = out[len(out)-1]
}

// BenchmarkRun_Parallel measures the worker pool on the same load.
func BenchmarkRun_Parallel(b *testing.B) {
	out := make([]float64, 10_000)
	o := core.Gather(core.WithParallel(runtime.GOMAXPROCS(0)))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = core.Run(context.Background(), "bench", len(out), o, work(out))
	}
	sinkFloat = out[len(out)-1]
}

// BenchmarkGroupBy measures grouping 100k indices into 100 keys.
func BenchmarkGroupBy(b *testing.B) {
	var g *core.Grouping[int]
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g = core.GroupBy(100_000, func(j int) int { return j % 100 })
	}
	sinkFloat = float64(g.Len())
}
