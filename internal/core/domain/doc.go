// Package domain defines the error model shared by tokrand packages.
//
// Every failure that crosses a package boundary is a *DomainError carrying
// a stable code of the form TR-<AREA>-<NNNN>:
//
//   - ENTR: entropy provider failures (never surfaced by Source.Generate)
//   - TOKN: token derivation failures
//   - CONF: configuration validation failures
//
// Codes are matched with errors.Is, so a wrapped copy produced by
// WithDetails or WithCause still matches its sentinel.
package domain
