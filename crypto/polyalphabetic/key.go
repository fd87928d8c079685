// Package polyalphabetic contains the Vigenère and autokey stream ciphers
package polyalphabetic

import (
	"fmt"

	"cipher-backend/crypto"
)

// SanitizeKey drops every non-letter from key and lower-cases the rest.
func SanitizeKey(key string) (string, error) {
	out := make([]rune, 0, len(key))
	for _, r := range key {
		if idx, _, ok := crypto.LetterIndex(r); ok {
			out = append(out, crypto.LetterAt(idx, false))
		}
	}
	if len(out) == 0 {
		return "", fmt.Errorf("%w: %q contains no letters", crypto.ErrEmptyKey, key)
	}
	return string(out), nil
}

// keyShifts converts a key into its per-position shift amounts.
func keyShifts(key string) ([]int, error) {
	clean, err := SanitizeKey(key)
	if err != nil {
		return nil, err
	}
	shifts := make([]int, 0, len(clean))
	for _, r := range clean {
		idx, _, _ := crypto.LetterIndex(r)
		shifts = append(shifts, idx)
	}
	return shifts, nil
}
