package entropy

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"io"
	"os"
	"time"

	"golang.org/x/crypto/chacha20"
	"golang.org/x/crypto/hkdf"
)

const (
	drbgSeedSize = 32
	drbgInfo     = "tokrand drbg v1"
)

// DRBGProvider is a userspace ChaCha20 generator, keyed per call through
// HKDF from a seed reader.
//
// When the seed reader fails the generator still runs, keyed from clock
// and process identifiers, but flags its output weak; TryGenerate then
// discards it.
type DRBGProvider struct {
	seed io.Reader
	now  func() time.Time
}

// NewDRBGProvider creates a DRBG seeded from r. A nil reader means
// crypto/rand.Reader.
func NewDRBGProvider(r io.Reader) *DRBGProvider {
	if r == nil {
		r = rand.Reader
	}
	return &DRBGProvider{seed: r, now: time.Now}
}

// Name implements Provider.
func (p *DRBGProvider) Name() string { return NameDRBG }

// Strength implements Provider.
func (p *DRBGProvider) Strength() Strength { return Strong }

// TryGenerate implements Provider.
func (p *DRBGProvider) TryGenerate(n int) ([]byte, error) {
	out, strong, err := p.Generate(n)
	if err != nil {
		return nil, err
	}
	if !strong {
		clear(out)
		return nil, ErrWeakResult.WithDetails("drbg seeded without a strong source")
	}
	return out, nil
}

// Generate returns n bytes of keystream and whether the seed was strong.
func (p *DRBGProvider) Generate(n int) ([]byte, bool, error) {
	seed := make([]byte, drbgSeedSize)
	defer clear(seed)

	strong := true
	if _, err := io.ReadFull(p.seed, seed); err != nil {
		strong = false
		p.weakSeed(seed)
	}

	kdf := hkdf.New(sha256.New, seed, nil, []byte(drbgInfo))
	key := make([]byte, chacha20.KeySize+chacha20.NonceSize)
	defer clear(key)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, false, ErrUnavailable.WithCause(err)
	}

	c, err := chacha20.NewUnauthenticatedCipher(key[:chacha20.KeySize], key[chacha20.KeySize:])
	if err != nil {
		return nil, false, ErrUnavailable.WithCause(err)
	}

	out := make([]byte, n)
	c.XORKeyStream(out, out)
	return out, strong, nil
}

// weakSeed fills seed from the clock and process ids.
func (p *DRBGProvider) weakSeed(seed []byte) {
	clear(seed)
	binary.BigEndian.PutUint64(seed[0:8], uint64(p.now().UnixNano()))
	binary.BigEndian.PutUint32(seed[8:12], uint32(os.Getpid()))
	binary.BigEndian.PutUint32(seed[12:16], uint32(os.Getppid()))
}
