// Package entropy produces fixed-size random buffers from the strongest
// source available on the host.
//
// A Source walks an ordered list of providers and returns the first
// buffer a provider produces. The default chain, strongest first:
//
//  1. runtime:   Go runtime CSPRNG (crypto/rand)
//  2. getrandom: kernel getrandom(2), non-blocking (non-Windows)
//  3. drbg:      ChaCha20 DRBG; discarded when its seed was weak
//  4. device:    /dev/urandom, subject to the path policy (non-Windows)
//  5. cryptoapi: CryptGenRandom (Windows only, weak)
//  6. fallback:  math/rand + ULID (weak)
//
// Source.Generate never fails. Callers that must not accept a weak buffer
// check Result.Strength or call Source.GenerateStrong.
//
// Platform facts (operating system, path policy) and every primitive a
// provider touches are injected, so each branch of the chain can be
// exercised on any host.
package entropy
