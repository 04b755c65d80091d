package entropy

// GetrandomFunc fills buf from the kernel without blocking and returns the
// number of bytes written.
type GetrandomFunc func(buf []byte) (int, error)

// GetrandomProvider reads from the kernel urandom pool through getrandom(2).
// It never runs on Windows.
type GetrandomProvider struct {
	platform  Platform
	getrandom GetrandomFunc
}

// NewGetrandomProvider creates a getrandom provider. A nil fn selects the
// host implementation, which is nil on kernels without the syscall.
func NewGetrandomProvider(platform Platform, fn GetrandomFunc) *GetrandomProvider {
	if fn == nil {
		fn = hostGetrandom
	}
	return &GetrandomProvider{platform: platform, getrandom: fn}
}

// Name implements Provider.
func (p *GetrandomProvider) Name() string { return NameGetrandom }

// Strength implements Provider.
func (p *GetrandomProvider) Strength() Strength { return Strong }

// TryGenerate implements Provider.
func (p *GetrandomProvider) TryGenerate(n int) ([]byte, error) {
	if p.platform.IsWindows() {
		return nil, ErrUnavailable.WithDetails("not supported on windows")
	}
	if p.getrandom == nil {
		return nil, ErrUnavailable.WithDetails("getrandom not available")
	}

	buf := make([]byte, n)
	got, err := p.getrandom(buf)
	if err != nil {
		clear(buf)
		return nil, ErrUnavailable.WithCause(err)
	}
	if got != n {
		clear(buf)
		return nil, ErrShortRead.WithDetailsf("got %d of %d bytes", got, n)
	}
	return buf, nil
}
