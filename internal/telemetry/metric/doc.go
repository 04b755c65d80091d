// Package metric exposes tokrand counters through a Prometheus registry.
//
// Metrics:
//
//   - tokrand_entropy_generated_total{provider,strength}
//   - tokrand_entropy_provider_skipped_total{provider,code}
//   - tokrand_tokens_generated_total{algorithm}
//
// Registry implements entropy.Observer and token.Observer, so it can be
// plugged straight into a Source and a Generator.
package metric
