package entropy

import (
	"crypto/rand"
	"io"
)

// RuntimeProvider reads from the Go runtime CSPRNG.
type RuntimeProvider struct {
	reader io.Reader
}

// NewRuntimeProvider creates a provider reading from r.
// A nil reader means crypto/rand.Reader.
func NewRuntimeProvider(r io.Reader) *RuntimeProvider {
	if r == nil {
		r = rand.Reader
	}
	return &RuntimeProvider{reader: r}
}

// Name implements Provider.
func (p *RuntimeProvider) Name() string { return NameRuntime }

// Strength implements Provider.
func (p *RuntimeProvider) Strength() Strength { return Strong }

// TryGenerate implements Provider.
func (p *RuntimeProvider) TryGenerate(n int) ([]byte, error) {
	return readFull(p.reader, n)
}

// readFull reads exactly n bytes, mapping a short read to ErrShortRead.
func readFull(r io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	got, err := io.ReadFull(r, buf)
	switch {
	case err == nil:
		return buf, nil
	case got > 0:
		clear(buf)
		return nil, ErrShortRead.WithDetailsf("got %d of %d bytes", got, n).WithCause(err)
	default:
		return nil, ErrUnavailable.WithCause(err)
	}
}
