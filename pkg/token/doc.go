// Package token derives opaque tokens from entropy buffers.
//
// A token is the digest of one fresh 64-byte entropy buffer under a named
// hash algorithm, encoded as lowercase hex (default) or unpadded base64url.
// It is suitable as a session identifier or anti-forgery token.
//
// Digest lengths (hex characters):
//
//   - whirlpool (default): 128
//   - sha512, sha3-512, blake2b-512: 128
//   - sha256, sha3-256, blake2b-256, blake2s-256: 64
//   - md5, murmur3f: 32
//   - xxh64, fnv164, fnv1a64: 16
//   - murmur3a, crc32b, adler32, fnv132, fnv1a32: 8
//
// Algorithm names follow the PHP hash_algos() spelling and are matched
// case-insensitively. Algorithms() lists them all.
//
// Tokens are not passwords: a token used as a long-lived credential should
// be stored hashed, not in plain text.
package token
