// Package rc4 contains the RC4 key scheduling and keystream generation
// algorithms together with simple descriptive statistics over the output.
package rc4

import (
	"fmt"

	"cipher-backend/crypto"
)

const StateSize = 256

// Cipher is one keystream session: a 256-byte permutation and the two PRGA
// indices. It is single-use; the permutation is mutated by every Generate.
type Cipher struct {
	s    [StateSize]byte
	i, j uint8
}

// KeySchedule runs the KSA over key and returns a fresh session.
func KeySchedule(key []byte) (*Cipher, error) {
	if len(key) == 0 {
		return nil, fmt.Errorf("%w: rc4 key must be at least one byte", crypto.ErrInvalidKeyLength)
	}

	c := &Cipher{}
	for i := 0; i < StateSize; i++ {
		c.s[i] = byte(i)
	}

	var j uint8
	for i := 0; i < StateSize; i++ {
		j += c.s[i] + key[i%len(key)]
		c.s[i], c.s[j] = c.s[j], c.s[i]
	}

	return c, nil
}

// KeyFromString maps each character of key to its code point modulo 256.
func KeyFromString(key string) []byte {
	out := make([]byte, 0, len(key))
	for _, r := range key {
		out = append(out, byte(r))
	}
	return out
}

// Generate emits the next n keystream bytes, continuing from wherever the
// previous call stopped.
func (c *Cipher) Generate(n int) []byte {
	out := make([]byte, n)
	for k := range out {
		c.i++
		c.j += c.s[c.i]
		c.s[c.i], c.s[c.j] = c.s[c.j], c.s[c.i]
		out[k] = c.s[c.s[c.i]+c.s[c.j]]
	}
	return out
}

// State returns a copy of the current permutation.
func (c *Cipher) State() [StateSize]byte {
	return c.s
}

// Keystream schedules key and returns the first n keystream bytes.
func Keystream(key []byte, n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("keystream length cannot be negative: %d", n)
	}
	c, err := KeySchedule(key)
	if err != nil {
		return nil, err
	}
	return c.Generate(n), nil
}
