// Package main provides the entry point for tokrand.
//
// tokrand prints random bytes from the strongest entropy provider on the
// host and derives hash-based tokens from them:
//
//   - Raw entropy buffers (hex or base64url)
//   - Tokens under any registered hash algorithm, whirlpool by default
//   - Provider probing and algorithm listing
//   - Configuration inspection
//
// Usage:
//
//	tokrand token
//	tokrand token -a sha256 --count 100 --rate 10
//	tokrand --output json providers
//	tokrand --strict entropy -n 4
package main
