package benchmark

import (
	"fmt"
	"runtime"
	"testing"

	"github.com/yndnr/tokrand-go/pkg/entropy"
	"github.com/yndnr/tokrand-go/pkg/token"
)

// WorkerCounts defines the parallelism levels for concurrent benchmarks.
var WorkerCounts = []int{1, 4, 16, 64}

// TokenAlgorithms is the subset of algorithms compared in token benchmarks.
var TokenAlgorithms = []string{"whirlpool", "sha256", "sha512", "sha3-256", "blake2b-256", "xxh64", "murmur3f", "md5"}

// newSource builds a Source limited to the named providers.
func newSource(b *testing.B, names ...string) *entropy.Source {
	b.Helper()
	providers, err := entropy.SelectProviders(entropy.DefaultProviders(entropy.HostPlatform()), names...)
	if err != nil {
		b.Fatalf("SelectProviders: %v", err)
	}
	return entropy.New(entropy.WithProviders(providers...))
}

// newGenerator builds a Generator over a runtime-only Source.
func newGenerator(b *testing.B, opts ...token.Option) *token.Generator {
	b.Helper()
	return token.NewGenerator(newSource(b, entropy.NameRuntime), opts...)
}

// reportMemory reports memory usage.
func reportMemory(b *testing.B, prefix string) {
	var m runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&m)
	b.ReportMetric(float64(m.Alloc)/(1024*1024), prefix+"_MB")
	b.ReportMetric(float64(m.NumGC), prefix+"_GC")
}

// runWithWorkerCounts runs benchFn once per parallelism level.
func runWithWorkerCounts(b *testing.B, benchFn func(b *testing.B)) {
	for _, workers := range WorkerCounts {
		b.Run(fmt.Sprintf("workers_%d", workers), func(b *testing.B) {
			b.SetParallelism(workers)
			benchFn(b)
		})
	}
}
