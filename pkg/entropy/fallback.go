package entropy

import (
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/oklog/ulid/v2"
)

// FallbackProvider combines pseudo-random integers with a time-ordered
// ULID. Its output is predictable and always classified weak; it exists so
// that Source.Generate can return something on hosts with no CSPRNG.
type FallbackProvider struct {
	now    func() time.Time
	uint64 func() uint64
}

// NewFallbackProvider creates the weak fallback provider.
func NewFallbackProvider() *FallbackProvider {
	return &FallbackProvider{now: time.Now, uint64: rand.Uint64}
}

// Name implements Provider.
func (p *FallbackProvider) Name() string { return NameFallback }

// Strength implements Provider.
func (p *FallbackProvider) Strength() Strength { return Weak }

// TryGenerate implements Provider. It never fails.
func (p *FallbackProvider) TryGenerate(n int) ([]byte, error) {
	return p.fill(n), nil
}

// fill lays out a ULID followed by pseudo-random words, truncated to n.
func (p *FallbackProvider) fill(n int) []byte {
	buf := make([]byte, 0, n+8)

	id, err := ulid.New(ulid.Timestamp(p.now()), uint64Reader(p.uint64))
	if err == nil {
		buf = append(buf, id[:]...)
	}
	for len(buf) < n {
		buf = binary.BigEndian.AppendUint64(buf, p.uint64())
	}
	return buf[:n]
}

// uint64Reader adapts a uint64 generator to io.Reader.
type uint64Reader func() uint64

func (r uint64Reader) Read(p []byte) (int, error) {
	var word [8]byte
	for i := 0; i < len(p); i += 8 {
		binary.LittleEndian.PutUint64(word[:], r())
		copy(p[i:], word[:])
	}
	return len(p), nil
}
