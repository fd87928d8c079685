// Package classical implements the additive (shift) and multiplicative
// substitution ciphers over the 26-letter Latin alphabet.
package classical

import (
	"cipher-backend/crypto"
)

// Candidate is one brute-force decryption attempt.
type Candidate struct {
	Key       int    `json:"key"`
	Plaintext string `json:"plaintext"`
}

func AdditiveEncrypt(plaintext string, key int) string {
	k := crypto.Mod(key, crypto.LatinSize)
	return crypto.MapLetters(plaintext, func(i int) int { return i + k })
}

func AdditiveDecrypt(ciphertext string, key int) string {
	return AdditiveEncrypt(ciphertext, -key)
}

// AdditiveBruteforce decrypts ciphertext under every shift, in key order.
func AdditiveBruteforce(ciphertext string) []Candidate {
	results := make([]Candidate, 0, crypto.LatinSize)
	for k := 0; k < crypto.LatinSize; k++ {
		results = append(results, Candidate{Key: k, Plaintext: AdditiveDecrypt(ciphertext, k)})
	}
	return results
}

// MultiplicativeEncrypt multiplies every letter index by key mod 26. A key
// without an inverse still encrypts, but the result cannot be decrypted.
func MultiplicativeEncrypt(plaintext string, key int) string {
	a := crypto.Mod(key, crypto.LatinSize)
	return crypto.MapLetters(plaintext, func(i int) int { return i * a })
}

func MultiplicativeDecrypt(ciphertext string, key int) (string, error) {
	inv, err := ModInverse(key, crypto.LatinSize)
	if err != nil {
		return "", err
	}
	return crypto.MapLetters(ciphertext, func(i int) int { return i * inv }), nil
}

// MultiplicativeBruteforce decrypts ciphertext under every invertible key in
// ascending order. Non-invertible keys are skipped.
func MultiplicativeBruteforce(ciphertext string) []Candidate {
	results := make([]Candidate, 0, 12)
	for a := 1; a < crypto.LatinSize; a++ {
		pt, err := MultiplicativeDecrypt(ciphertext, a)
		if err != nil {
			continue
		}
		results = append(results, Candidate{Key: a, Plaintext: pt})
	}
	return results
}
