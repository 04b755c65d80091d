package entropy

import (
	"strings"
	"sync"
)

// Source selects entropy from an ordered provider chain.
// A Source is immutable after construction and safe for concurrent use.
type Source struct {
	platform  Platform
	providers []Provider
	observer  Observer
	last      *FallbackProvider
}

// Option configures a Source.
type Option func(*Source)

// WithPlatform sets the platform used to build the default chain.
func WithPlatform(p Platform) Option {
	return func(s *Source) {
		s.platform = p
	}
}

// WithProviders replaces the default chain. Order is priority.
func WithProviders(providers ...Provider) Option {
	return func(s *Source) {
		s.providers = append(make([]Provider, 0, len(providers)), providers...)
	}
}

// WithObserver sets the observer notified of provider decisions.
func WithObserver(o Observer) Option {
	return func(s *Source) {
		if o != nil {
			s.observer = o
		}
	}
}

// New creates a Source. Without WithProviders it uses DefaultProviders for
// the configured platform.
func New(opts ...Option) *Source {
	s := &Source{
		platform: HostPlatform(),
		observer: nopObserver{},
		last:     NewFallbackProvider(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.providers == nil {
		s.providers = DefaultProviders(s.platform)
	}
	return s
}

// DefaultProviders returns the full chain for a platform, strongest first.
func DefaultProviders(p Platform) []Provider {
	return []Provider{
		NewRuntimeProvider(nil),
		NewGetrandomProvider(p, nil),
		NewDRBGProvider(nil),
		NewDeviceProvider(p, DefaultDevicePath, nil),
		NewCryptoAPIProvider(p, nil),
		NewFallbackProvider(),
	}
}

// SelectProviders picks providers from all by name, in the order of names.
// Names are case-insensitive.
func SelectProviders(all []Provider, names ...string) ([]Provider, error) {
	byName := make(map[string]Provider, len(all))
	for _, p := range all {
		byName[p.Name()] = p
	}

	selected := make([]Provider, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		name = strings.ToLower(strings.TrimSpace(name))
		p, ok := byName[name]
		if !ok {
			return nil, ErrUnknownProvider.WithDetails(name)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		selected = append(selected, p)
	}
	return selected, nil
}

// Providers returns the chain in priority order.
func (s *Source) Providers() []Provider {
	return append([]Provider(nil), s.providers...)
}

// Generate returns Size bytes from the first provider that succeeds.
//
// It never fails: if every configured provider fails, the weak fallback
// generator is used. Result.Strength tells the caller what it got.
func (s *Source) Generate() Result {
	for _, p := range s.providers {
		if r, ok := s.try(p); ok {
			return r
		}
	}

	r := Result{Bytes: s.last.fill(Size), Provider: s.last.Name(), Strength: Weak}
	s.observer.Served(r.Provider, r.Strength)
	return r
}

// GenerateStrong is Generate restricted to strong providers.
// It returns ErrNoStrongSource when none of them succeeds.
func (s *Source) GenerateStrong() (Result, error) {
	for _, p := range s.providers {
		if p.Strength() != Strong {
			continue
		}
		if r, ok := s.try(p); ok {
			return r, nil
		}
	}
	return Result{}, ErrNoStrongSource
}

// Bytes returns the buffer of Generate.
func (s *Source) Bytes() []byte {
	return s.Generate().Bytes
}

func (s *Source) try(p Provider) (Result, bool) {
	buf, err := p.TryGenerate(Size)
	if err == nil && len(buf) != Size {
		err = ErrShortRead.WithDetailsf("%s returned %d of %d bytes", p.Name(), len(buf), Size)
	}
	if err != nil {
		s.observer.Skipped(p.Name(), err)
		return Result{}, false
	}

	r := Result{Bytes: buf, Provider: p.Name(), Strength: p.Strength()}
	s.observer.Served(r.Provider, r.Strength)
	return r, true
}

// ProviderStatus is the outcome of probing one provider.
type ProviderStatus struct {
	Name      string `json:"name" yaml:"name"`
	Strength  string `json:"strength" yaml:"strength"`
	Available bool   `json:"available" yaml:"available"`
	Reason    string `json:"reason,omitempty" yaml:"reason,omitempty"`
}

// Probe runs every provider once, discards the bytes, and reports which
// providers work on this host. It does not notify the observer.
func (s *Source) Probe() []ProviderStatus {
	statuses := make([]ProviderStatus, 0, len(s.providers))
	for _, p := range s.providers {
		st := ProviderStatus{Name: p.Name(), Strength: p.Strength().String()}
		buf, err := p.TryGenerate(Size)
		clear(buf)
		if err == nil && len(buf) != Size {
			err = ErrShortRead
		}
		if err != nil {
			st.Reason = err.Error()
		} else {
			st.Available = true
		}
		statuses = append(statuses, st)
	}
	return statuses
}

var defaultSource = sync.OnceValue(func() *Source { return New() })

// Default returns the process-wide Source built from the host platform.
func Default() *Source {
	return defaultSource()
}

// Generate returns a buffer from the default Source.
func Generate() Result {
	return Default().Generate()
}
