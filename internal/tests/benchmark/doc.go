// Package benchmark provides cross-package performance benchmarks for the
// entropy chain and token derivation.
//
// Run benchmarks with:
//
//	go test -bench=. -benchmem ./internal/tests/benchmark/...
//
// Compare providers only:
//
//	go test -bench=BenchmarkProvider -benchmem -benchtime=5s ./internal/tests/benchmark/...
//
// Compare results:
//
//	benchstat old.txt new.txt
package benchmark
