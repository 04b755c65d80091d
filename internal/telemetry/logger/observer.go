package logger

import "github.com/yndnr/tokrand-go/pkg/entropy"

// EntropyObserver logs provider decisions. Weak buffers are logged at warn
// level, everything else at debug.
type EntropyObserver struct {
	log Logger
}

// NewEntropyObserver creates an observer writing to l.
func NewEntropyObserver(l Logger) *EntropyObserver {
	return &EntropyObserver{log: l.With("component", "entropy")}
}

// Served implements entropy.Observer.
func (o *EntropyObserver) Served(provider string, strength entropy.Strength) {
	if strength == entropy.Weak {
		o.log.Warn("weak entropy source used", "provider", provider)
		return
	}
	o.log.Debug("entropy served", "provider", provider, "strength", strength.String())
}

// Skipped implements entropy.Observer.
func (o *EntropyObserver) Skipped(provider string, err error) {
	o.log.Debug("entropy provider skipped", "provider", provider, "error", err)
}
