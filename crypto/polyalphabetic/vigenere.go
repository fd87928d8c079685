package polyalphabetic

import (
	"strings"

	"cipher-backend/crypto"
)

// Vigenere cycles a keyword over the letters of the message. Only letters
// consume key positions; everything else is copied through.
type Vigenere struct {
	shifts []int
}

func NewVigenere(key string) (*Vigenere, error) {
	shifts, err := keyShifts(key)
	if err != nil {
		return nil, err
	}
	return &Vigenere{shifts: shifts}, nil
}

func (v *Vigenere) Encrypt(plaintext string) string {
	return v.apply(plaintext, 1)
}

func (v *Vigenere) Decrypt(ciphertext string) string {
	return v.apply(ciphertext, -1)
}

func (v *Vigenere) apply(text string, sign int) string {
	var b strings.Builder
	b.Grow(len(text))

	ki := 0
	for _, r := range text {
		idx, upper, ok := crypto.LetterIndex(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		k := v.shifts[ki%len(v.shifts)]
		b.WriteRune(crypto.LetterAt(idx+sign*k, upper))
		ki++
	}

	return b.String()
}

func VigenereEncrypt(plaintext, key string) (string, error) {
	v, err := NewVigenere(key)
	if err != nil {
		return "", err
	}
	return v.Encrypt(plaintext), nil
}

func VigenereDecrypt(ciphertext, key string) (string, error) {
	v, err := NewVigenere(key)
	if err != nil {
		return "", err
	}
	return v.Decrypt(ciphertext), nil
}
