// Package deskey derives the sixteen DES round subkeys from a 64-bit key.
// Bit strings are carried as text of '0' and '1', most significant bit first.
package deskey

import (
	"fmt"
	"strings"

	"cipher-backend/crypto"
)

const (
	KeyHexDigits = 16
	SubkeyBits   = 48
	Rounds       = 16
)

// Schedule holds the tables driving subkey derivation.
type Schedule struct {
	PC1    []int
	PC2    []int
	Shifts []int
}

var Standard = &Schedule{PC1: PC1, PC2: PC2, Shifts: Shifts}

// GenerateSubkeys derives the standard DES subkeys K1..K16 from a 16 digit
// hexadecimal key.
func GenerateSubkeys(hexKey string) ([]string, error) {
	return Standard.Subkeys(hexKey)
}

// Subkeys runs PC-1, then for every round rotates both halves by that round's
// shift and applies PC-2. Rotations accumulate across rounds.
func (s *Schedule) Subkeys(hexKey string) ([]string, error) {
	if len(hexKey) != KeyHexDigits {
		return nil, fmt.Errorf("%w: expected %d hexadecimal characters, got %d", crypto.ErrInvalidKeyLength, KeyHexDigits, len(hexKey))
	}

	keyBits, err := HexToBits(hexKey)
	if err != nil {
		return nil, err
	}

	cd, err := Permute(keyBits, s.PC1)
	if err != nil {
		return nil, fmt.Errorf("pc-1: %w", err)
	}

	half := len(cd) / 2
	c, d := cd[:half], cd[half:]

	subkeys := make([]string, 0, len(s.Shifts))
	for round, n := range s.Shifts {
		c = RotateLeft(c, n)
		d = RotateLeft(d, n)

		k, err := Permute(c+d, s.PC2)
		if err != nil {
			return nil, fmt.Errorf("pc-2 round %d: %w", round+1, err)
		}
		subkeys = append(subkeys, k)
	}

	return subkeys, nil
}

// HexToBits expands each hex digit into four bits.
func HexToBits(hex string) (string, error) {
	var b strings.Builder
	b.Grow(len(hex) * 4)
	for i, r := range hex {
		v, ok := hexValue(r)
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", crypto.ErrMalformedHexDigit, r, i)
		}
		fmt.Fprintf(&b, "%04b", v)
	}
	return b.String(), nil
}

func hexValue(r rune) (int, bool) {
	switch {
	case r >= '0' && r <= '9':
		return int(r - '0'), true
	case r >= 'a' && r <= 'f':
		return int(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return int(r-'A') + 10, true
	}
	return 0, false
}

// Permute builds a new bit string whose i-th bit is bits[table[i]-1].
func Permute(bits string, table []int) (string, error) {
	out := make([]byte, len(table))
	for i, pos := range table {
		if pos < 1 || pos > len(bits) {
			return "", fmt.Errorf("table[%d]=%d out of range for %d bits", i, pos, len(bits))
		}
		out[i] = bits[pos-1]
	}
	return string(out), nil
}

// RotateLeft cyclically rotates bits left by n positions.
func RotateLeft(bits string, n int) string {
	if len(bits) == 0 {
		return bits
	}
	n = crypto.Mod(n, len(bits))
	return bits[n:] + bits[:n]
}
