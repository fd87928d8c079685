package matrix

import (
	"fmt"
	"strings"
	"unicode"

	"cipher-backend/crypto"
)

// ADFGVX replaces every symbol with the labels of its row and column in a
// keyed square. There is no transposition stage.
type ADFGVX struct {
	Alphabet *crypto.Alphabet
	Labels   *crypto.Alphabet
}

var StandardADFGVX = &ADFGVX{
	Alphabet: crypto.MustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"),
	Labels:   crypto.MustAlphabet("ADFGVX"),
}

func ADFGVXEncrypt(plaintext, key string) (string, error) {
	return StandardADFGVX.Encrypt(plaintext, key)
}

func ADFGVXDecrypt(ciphertext, key string) (string, error) {
	return StandardADFGVX.Decrypt(ciphertext, key)
}

func (c *ADFGVX) KeyGrid(key string) (*Grid, error) {
	k := c.Alphabet.Filter(strings.ToUpper(key))
	if len(k) == 0 {
		return nil, fmt.Errorf("%w: %q contains no alphanumeric symbols", crypto.ErrEmptyKey, key)
	}
	n := c.Labels.Len()
	return NewGrid(k, c.Alphabet, n, n)
}

func (c *ADFGVX) Encrypt(plaintext, key string) (string, error) {
	g, err := c.KeyGrid(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, r := range c.Alphabet.Filter(strings.ToUpper(plaintext)) {
		pos, _ := g.Locate(r)
		b.WriteRune(c.Labels.Symbol(pos.Row))
		b.WriteRune(c.Labels.Symbol(pos.Col))
	}
	return b.String(), nil
}

// Decrypt maps each label pair back to its cell. Whitespace is ignored;
// any other non-label symbol or an odd label count is rejected.
func (c *ADFGVX) Decrypt(ciphertext, key string) (string, error) {
	g, err := c.KeyGrid(key)
	if err != nil {
		return "", err
	}

	idx := make([]int, 0, len(ciphertext))
	for _, r := range strings.ToUpper(ciphertext) {
		if unicode.IsSpace(r) {
			continue
		}
		i, ok := c.Labels.Index(r)
		if !ok {
			return "", fmt.Errorf("%w: %q is not one of %s", crypto.ErrInvalidCiphertext, r, c.Labels)
		}
		idx = append(idx, i)
	}
	if len(idx)%2 != 0 {
		return "", fmt.Errorf("%w: adfgvx ciphertext has odd length %d", crypto.ErrInvalidCiphertext, len(idx))
	}

	var b strings.Builder
	for i := 0; i < len(idx); i += 2 {
		b.WriteRune(g.At(idx[i], idx[i+1]))
	}
	return b.String(), nil
}
