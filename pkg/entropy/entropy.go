package entropy

import (
	"github.com/yndnr/tokrand-go/internal/core/domain"
)

// Size is the number of bytes in every entropy buffer.
const Size = 64

// Provider names, in default priority order.
const (
	NameRuntime   = "runtime"
	NameGetrandom = "getrandom"
	NameDRBG      = "drbg"
	NameDevice    = "device"
	NameCryptoAPI = "cryptoapi"
	NameFallback  = "fallback"
)

// Strength classifies the quality of a provider's output.
type Strength int

const (
	// Weak output is not fit for cryptographic use.
	Weak Strength = iota
	// Strong output comes from a CSPRNG.
	Strong
)

// String returns "strong" or "weak".
func (s Strength) String() string {
	if s == Strong {
		return "strong"
	}
	return "weak"
}

// Provider is one candidate source of entropy.
//
// TryGenerate returns exactly n bytes or an error; any error means the
// Source moves on to the next provider.
type Provider interface {
	Name() string
	Strength() Strength
	TryGenerate(n int) ([]byte, error)
}

// Result is one entropy buffer and the provider that produced it.
type Result struct {
	Bytes    []byte
	Provider string
	Strength Strength
}

// Strong reports whether the buffer came from a strong provider.
func (r Result) Strong() bool {
	return r.Strength == Strong
}

// Provider errors. They are reported to the Observer and never returned
// by Source.Generate.
var (
	ErrUnknownProvider = domain.ErrUnknownProvider
	ErrUnavailable     = domain.ErrProviderUnavailable
	ErrWeakResult      = domain.ErrWeakEntropy
	ErrShortRead       = domain.ErrShortRead
	ErrNoStrongSource  = domain.ErrNoStrongSource
)
