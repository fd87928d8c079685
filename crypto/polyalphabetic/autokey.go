package polyalphabetic

import (
	"strings"

	"cipher-backend/crypto"
)

// Autokey uses the keyword followed by the message's own letters as its
// keystream, so the key never repeats.
type Autokey struct {
	primer []int
}

func NewAutokey(key string) (*Autokey, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return nil, err
	}
	return &Autokey{primer: shifts}, nil
}

func (a *Autokey) Encrypt(plaintext string) string {
	keystream := make([]int, len(a.primer), len(a.primer)+len(plaintext))
	copy(keystream, a.primer)
	for _, r := range plaintext {
		if idx, _, ok := crypto.LetterIndex(r); ok {
			keystream = append(keystream, idx)
		}
	}

	var b strings.Builder
	b.Grow(len(plaintext))

	ki := 0
	for _, r := range plaintext {
		idx, upper, ok := crypto.LetterIndex(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(crypto.LetterAt(idx+keystream[ki], upper))
		ki++
	}

	return b.String()
}

// Decrypt recovers the plaintext strictly left to right: keystream position
// i is the (i-len(key))th recovered plaintext letter.
func (a *Autokey) Decrypt(ciphertext string) string {
	keystream := make([]int, len(a.primer), len(a.primer)+len(ciphertext))
	copy(keystream, a.primer)

	var b strings.Builder
	b.Grow(len(ciphertext))

	ki := 0
	for _, r := range ciphertext {
		idx, upper, ok := crypto.LetterIndex(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		p := crypto.Mod(idx-keystream[ki], crypto.LatinSize)
		b.WriteRune(crypto.LetterAt(p, upper))
		keystream = append(keystream, p)
		ki++
	}

	return b.String()
}

func AutokeyEncrypt(plaintext, key string) (string, error) {
	a, err := NewAutokey(key)
	if err != nil {
		return "", err
	}
	return a.Encrypt(plaintext), nil
}

func AutokeyDecrypt(ciphertext, key string) (string, error) {
	a, err := NewAutokey(key)
	if err != nil {
		return "", err
	}
	return a.Decrypt(ciphertext), nil
}
