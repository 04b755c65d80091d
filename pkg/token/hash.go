package token

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	"hash"
	"hash/adler32"
	"hash/crc32"
	"hash/fnv"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/jzelinskie/whirlpool"
	"github.com/spaolacci/murmur3"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/blake2s"
	"golang.org/x/crypto/md4"
	"golang.org/x/crypto/ripemd160"
	"golang.org/x/crypto/sha3"

	"github.com/yndnr/tokrand-go/internal/core/domain"
)

// ErrUnsupportedAlgorithm is returned for a hash name that is not registered.
var ErrUnsupportedAlgorithm = domain.ErrUnsupportedAlgorithm

// algorithms maps a lowercase name to its hash constructor.
var algorithms = map[string]func() hash.Hash{
	"md4":         md4.New,
	"md5":         md5.New,
	"sha1":        sha1.New,
	"sha224":      sha256.New224,
	"sha256":      sha256.New,
	"sha384":      sha512.New384,
	"sha512/224":  sha512.New512_224,
	"sha512/256":  sha512.New512_256,
	"sha512":      sha512.New,
	"sha3-224":    sha3.New224,
	"sha3-256":    sha3.New256,
	"sha3-384":    sha3.New384,
	"sha3-512":    sha3.New512,
	"ripemd160":   ripemd160.New,
	"whirlpool":   whirlpool.New,
	"blake2b-256": mustKeyless(blake2b.New256),
	"blake2b-512": mustKeyless(blake2b.New512),
	"blake2s-256": mustKeyless(blake2s.New256),
	"murmur3a":    func() hash.Hash { return murmur3.New32() },
	"murmur3f":    func() hash.Hash { return murmur3.New128() },
	"xxh64":       func() hash.Hash { return xxhash.New() },
	"fnv132":      func() hash.Hash { return fnv.New32() },
	"fnv1a32":     func() hash.Hash { return fnv.New32a() },
	"fnv164":      func() hash.Hash { return fnv.New64() },
	"fnv1a64":     func() hash.Hash { return fnv.New64a() },
	"crc32b":      func() hash.Hash { return crc32.NewIEEE() },
	"adler32":     func() hash.Hash { return adler32.New() },
}

// mustKeyless adapts a keyed constructor; a nil key never errors.
func mustKeyless(newKeyed func(key []byte) (hash.Hash, error)) func() hash.Hash {
	return func() hash.Hash {
		h, err := newKeyed(nil)
		if err != nil {
			panic(err)
		}
		return h
	}
}

// Algorithms returns the supported algorithm names, sorted.
func Algorithms() []string {
	names := make([]string, 0, len(algorithms))
	for name := range algorithms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Supported reports whether algorithm names a registered hash.
func Supported(algorithm string) bool {
	_, err := lookup(algorithm)
	return err == nil
}

// DigestSize returns the digest length in bytes for algorithm.
func DigestSize(algorithm string) (int, error) {
	newHash, err := lookup(algorithm)
	if err != nil {
		return 0, err
	}
	return newHash().Size(), nil
}

func lookup(algorithm string) (func() hash.Hash, error) {
	name := normalize(algorithm)
	newHash, ok := algorithms[name]
	if !ok {
		return nil, ErrUnsupportedAlgorithm.WithDetails(algorithm)
	}
	return newHash, nil
}

func normalize(algorithm string) string {
	return strings.ToLower(strings.TrimSpace(algorithm))
}

// New returns a fresh hash.Hash for algorithm, for callers that stream
// their input.
func New(algorithm string) (hash.Hash, error) {
	newHash, err := lookup(algorithm)
	if err != nil {
		return nil, err
	}
	return newHash(), nil
}

// Sum computes the raw digest of data.
func Sum(algorithm string, data []byte) ([]byte, error) {
	h, err := New(algorithm)
	if err != nil {
		return nil, err
	}
	h.Write(data)
	return h.Sum(nil), nil
}

// HashBytes computes the digest of data, hex encoded.
func HashBytes(algorithm string, data []byte) (string, error) {
	sum, err := Sum(algorithm, data)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(sum), nil
}
