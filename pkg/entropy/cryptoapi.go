package entropy

// CryptoContext is an acquired Windows CryptoAPI provider context.
type CryptoContext interface {
	// Random fills buf with random bytes.
	Random(buf []byte) error
	// Release frees the context.
	Release() error
}

// AcquireFunc acquires a CryptoAPI context.
type AcquireFunc func() (CryptoContext, error)

// CryptoAPIProvider reads from the Windows CryptoAPI (CryptGenRandom), the
// primitive behind the CAPICOM Utilities object. It only runs on Windows
// and is classified weak.
type CryptoAPIProvider struct {
	platform Platform
	acquire  AcquireFunc
}

// NewCryptoAPIProvider creates a CryptoAPI provider. A nil acquire selects
// the host implementation, which is nil outside Windows.
func NewCryptoAPIProvider(platform Platform, acquire AcquireFunc) *CryptoAPIProvider {
	if acquire == nil {
		acquire = hostAcquire
	}
	return &CryptoAPIProvider{platform: platform, acquire: acquire}
}

// Name implements Provider.
func (p *CryptoAPIProvider) Name() string { return NameCryptoAPI }

// Strength implements Provider.
func (p *CryptoAPIProvider) Strength() Strength { return Weak }

// TryGenerate implements Provider. The context is released on every path.
func (p *CryptoAPIProvider) TryGenerate(n int) ([]byte, error) {
	if !p.platform.IsWindows() {
		return nil, ErrUnavailable.WithDetails("windows only")
	}
	if p.acquire == nil {
		return nil, ErrUnavailable.WithDetails("cryptoapi not available")
	}

	ctx, err := p.acquire()
	if err != nil {
		return nil, ErrUnavailable.WithCause(err)
	}
	defer ctx.Release()

	buf := make([]byte, n)
	if err := ctx.Random(buf); err != nil {
		clear(buf)
		return nil, ErrUnavailable.WithCause(err)
	}
	return buf, nil
}
