package token

import (
	"encoding/base64"
	"encoding/hex"
	"strings"
	"sync"

	"github.com/yndnr/tokrand-go/internal/core/domain"
	"github.com/yndnr/tokrand-go/pkg/entropy"
)

// DefaultAlgorithm is the hash used when no algorithm is given.
const DefaultAlgorithm = "whirlpool"

// Encoding selects the textual form of a digest.
type Encoding string

const (
	// EncodingHex is lowercase hexadecimal.
	EncodingHex Encoding = "hex"
	// EncodingBase64URL is unpadded URL-safe base64.
	EncodingBase64URL Encoding = "base64url"
)

// ErrUnsupportedEncoding is returned for an unknown Encoding.
var ErrUnsupportedEncoding = domain.ErrUnsupportedEncoding

// ParseEncoding parses an encoding name. Empty means hex.
func ParseEncoding(s string) (Encoding, error) {
	switch e := Encoding(strings.ToLower(strings.TrimSpace(s))); e {
	case "", EncodingHex:
		return EncodingHex, nil
	case EncodingBase64URL:
		return e, nil
	default:
		return "", ErrUnsupportedEncoding.WithDetails(s)
	}
}

func (e Encoding) encode(sum []byte) (string, error) {
	switch e {
	case "", EncodingHex:
		return hex.EncodeToString(sum), nil
	case EncodingBase64URL:
		return base64.RawURLEncoding.EncodeToString(sum), nil
	default:
		return "", ErrUnsupportedEncoding.WithDetails(string(e))
	}
}

// Observer is notified of every token produced.
type Observer interface {
	TokenGenerated(algorithm string)
}

// Generator derives tokens from an entropy Source.
// A Generator is safe for concurrent use.
type Generator struct {
	source   *entropy.Source
	encoding Encoding
	strict   bool
	observer Observer
}

// Option configures a Generator.
type Option func(*Generator)

// WithEncoding sets the digest encoding.
func WithEncoding(e Encoding) Option {
	return func(g *Generator) {
		g.encoding = e
	}
}

// WithStrict makes the Generator refuse weak entropy; RandomToken then
// returns entropy.ErrNoStrongSource when no strong provider works.
func WithStrict(strict bool) Option {
	return func(g *Generator) {
		g.strict = strict
	}
}

// WithObserver sets the token observer.
func WithObserver(o Observer) Option {
	return func(g *Generator) {
		g.observer = o
	}
}

// NewGenerator creates a Generator. A nil source means entropy.Default().
func NewGenerator(source *entropy.Source, opts ...Option) *Generator {
	if source == nil {
		source = entropy.Default()
	}
	g := &Generator{source: source, encoding: EncodingHex}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RandomToken hashes a fresh entropy buffer with algorithm and returns the
// encoded digest. An empty algorithm means DefaultAlgorithm.
//
// The algorithm is resolved before entropy is drawn, so an unsupported
// name costs nothing.
func (g *Generator) RandomToken(algorithm string) (string, error) {
	if algorithm == "" {
		algorithm = DefaultAlgorithm
	}
	newHash, err := lookup(algorithm)
	if err != nil {
		return "", err
	}

	buf, err := g.entropy()
	if err != nil {
		return "", err
	}
	defer clear(buf)

	h := newHash()
	h.Write(buf)
	tok, err := g.encoding.encode(h.Sum(nil))
	if err != nil {
		return "", err
	}

	if g.observer != nil {
		g.observer.TokenGenerated(normalize(algorithm))
	}
	return tok, nil
}

// Generate returns a token using DefaultAlgorithm.
func (g *Generator) Generate() (string, error) {
	return g.RandomToken(DefaultAlgorithm)
}

func (g *Generator) entropy() ([]byte, error) {
	if g.strict {
		r, err := g.source.GenerateStrong()
		if err != nil {
			return nil, err
		}
		return r.Bytes, nil
	}
	return g.source.Generate().Bytes, nil
}

var defaultGenerator = sync.OnceValue(func() *Generator { return NewGenerator(nil) })

// RandomToken derives a hex token from the default entropy Source.
func RandomToken(algorithm string) (string, error) {
	return defaultGenerator().RandomToken(algorithm)
}

// Generate derives a hex whirlpool token from the default entropy Source.
func Generate() (string, error) {
	return defaultGenerator().Generate()
}
