package matrix

import (
	"fmt"
	"strings"

	"cipher-backend/crypto"
)

// Playfair describes a Playfair variant: its square alphabet, dimensions,
// letter merges applied before lookup, and the filler letters used to split
// doubled letters and pad odd-length text.
type Playfair struct {
	Alphabet *crypto.Alphabet
	Width    int
	Height   int
	Merge    map[rune]rune
	Filler   rune
	// AltFiller replaces Filler when the letter being split or padded is
	// itself the filler, so no digraph ever holds two equal letters.
	AltFiller rune
}

// StandardPlayfair is the classic 5x5 square with I and J merged.
var StandardPlayfair = &Playfair{
	Alphabet:  crypto.MustAlphabet("ABCDEFGHIKLMNOPQRSTUVWXYZ"),
	Width:     5,
	Height:    5,
	Merge:     map[rune]rune{'J': 'I'},
	Filler:    'X',
	AltFiller: 'Q',
}

func PlayfairEncrypt(plaintext, key string) (string, error) {
	return StandardPlayfair.Encrypt(plaintext, key)
}

func PlayfairDecrypt(ciphertext, key string) (string, error) {
	return StandardPlayfair.Decrypt(ciphertext, key)
}

// normalize upper-cases text, applies the merges and drops every symbol
// outside the alphabet.
func (p *Playfair) normalize(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range strings.ToUpper(text) {
		if m, ok := p.Merge[r]; ok {
			r = m
		}
		if p.Alphabet.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

func (p *Playfair) KeyGrid(key string) (*Grid, error) {
	k := p.normalize(key)
	if len(k) == 0 {
		return nil, fmt.Errorf("%w: %q contains no playfair letters", crypto.ErrEmptyKey, key)
	}
	return NewGrid(k, p.Alphabet, p.Width, p.Height)
}

func (p *Playfair) filler(r rune) rune {
	if r == p.Filler {
		return p.AltFiller
	}
	return p.Filler
}

// Digraphs splits prepared text into letter pairs. A doubled letter is
// split with a filler and the second letter starts the next pair; a trailing
// single letter is padded.
func (p *Playfair) Digraphs(text string) [][2]rune {
	letters := p.normalize(text)
	pairs := make([][2]rune, 0, len(letters)/2+1)

	for i := 0; i < len(letters); {
		a := letters[i]
		if i+1 < len(letters) && letters[i+1] != a {
			pairs = append(pairs, [2]rune{a, letters[i+1]})
			i += 2
			continue
		}
		pairs = append(pairs, [2]rune{a, p.filler(a)})
		i++
	}
	return pairs
}

func (p *Playfair) Encrypt(plaintext, key string) (string, error) {
	g, err := p.KeyGrid(key)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	for _, d := range p.Digraphs(plaintext) {
		x, y := g.substitute(d[0], d[1], 1)
		b.WriteRune(x)
		b.WriteRune(y)
	}
	return b.String(), nil
}

// Decrypt reverses Encrypt. Fillers inserted during encryption are left in
// place since they cannot be told apart from real letters.
func (p *Playfair) Decrypt(ciphertext, key string) (string, error) {
	g, err := p.KeyGrid(key)
	if err != nil {
		return "", err
	}

	letters := p.normalize(ciphertext)
	if len(letters)%2 != 0 {
		return "", fmt.Errorf("%w: playfair ciphertext has odd length %d", crypto.ErrInvalidCiphertext, len(letters))
	}

	var b strings.Builder
	for i := 0; i < len(letters); i += 2 {
		x, y := g.substitute(letters[i], letters[i+1], -1)
		b.WriteRune(x)
		b.WriteRune(y)
	}
	return b.String(), nil
}

// substitute applies the Playfair rules to one digraph. step is +1 to
// encrypt and -1 to decrypt.
func (g *Grid) substitute(a, b rune, step int) (rune, rune) {
	ca, _ := g.Locate(a)
	cb, _ := g.Locate(b)

	switch {
	case ca.Row == cb.Row:
		return g.At(ca.Row, ca.Col+step), g.At(cb.Row, cb.Col+step)
	case ca.Col == cb.Col:
		return g.At(ca.Row+step, ca.Col), g.At(cb.Row+step, cb.Col)
	default:
		return g.At(ca.Row, cb.Col), g.At(cb.Row, ca.Col)
	}
}
