// Package seeded provides reproducible pseudo-random generators for the
// sampling and shuffling operations of package collections.
//
// A generator built from the same seed always yields the same sequence, on
// every platform. Unseeded callers get a generator keyed from crypto/rand.
package seeded

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/chacha20"
)

// Source is a [rand.Source] backed by a ChaCha20 keystream. The key is the
// BLAKE2b-256 digest of the seed, the nonce is zero.
//
// A Source is not safe for concurrent use.
type Source struct {
	cipher *chacha20.Cipher
	buf    [8]byte
}

var _ rand.Source = (*Source)(nil)

// NewSource returns a Source for seed.
func NewSource(seed uint64) *Source {
	var raw [8]byte
	binary.LittleEndian.PutUint64(raw[:], seed)
	key := blake2b.Sum256(raw[:])

	var nonce [chacha20.NonceSize]byte
	c, err := chacha20.NewUnauthenticatedCipher(key[:], nonce[:])
	if err != nil {
		// Only reachable with malformed key or nonce sizes.
		panic("seeded: " + err.Error())
	}
	return &Source{cipher: c}
}

// Uint64 returns the next 64 bits of keystream.
func (s *Source) Uint64() uint64 {
	clear(s.buf[:])
	s.cipher.XORKeyStream(s.buf[:], s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// New returns a generator for seed.
func New(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Entropy returns a seed read from crypto/rand.
func Entropy() uint64 {
	var raw [8]byte
	_, _ = crand.Read(raw[:])
	return binary.LittleEndian.Uint64(raw[:])
}

// From returns a generator for seeds[0], or an entropy-seeded generator
// when no seed is given. Extra seeds are ignored.
func From(seeds ...uint64) *rand.Rand {
	if len(seeds) > 0 {
		return New(seeds[0])
	}
	return New(Entropy())
}
