// Package crypto contains the alphabet model and error kinds shared by the cipher packages
package crypto

import (
	"fmt"
	"strings"
)

// LatinSize is the modulus used by the classical Latin-alphabet ciphers.
const LatinSize = 26

var (
	Lower = MustAlphabet("abcdefghijklmnopqrstuvwxyz")
	Upper = MustAlphabet("ABCDEFGHIJKLMNOPQRSTUVWXYZ")
)

// Alphabet is an ordered, duplicate-free set of symbols. A symbol's position
// is its numeric value for cipher arithmetic.
type Alphabet struct {
	symbols []rune
	index   map[rune]int
}

func NewAlphabet(symbols string) (*Alphabet, error) {
	a := &Alphabet{index: make(map[rune]int)}
	for _, r := range symbols {
		if _, dup := a.index[r]; dup {
			return nil, fmt.Errorf("duplicate symbol %q in alphabet %q", r, symbols)
		}
		a.index[r] = len(a.symbols)
		a.symbols = append(a.symbols, r)
	}
	if len(a.symbols) == 0 {
		return nil, fmt.Errorf("alphabet cannot be empty")
	}
	return a, nil
}

// MustAlphabet is NewAlphabet for package-level tables; it panics on error.
func MustAlphabet(symbols string) *Alphabet {
	a, err := NewAlphabet(symbols)
	if err != nil {
		panic(err)
	}
	return a
}

func (a *Alphabet) Len() int {
	return len(a.symbols)
}

func (a *Alphabet) Index(r rune) (int, bool) {
	i, ok := a.index[r]
	return i, ok
}

func (a *Alphabet) Contains(r rune) bool {
	_, ok := a.index[r]
	return ok
}

// Symbol returns the symbol at i, wrapping i into the alphabet range.
func (a *Alphabet) Symbol(i int) rune {
	return a.symbols[Mod(i, len(a.symbols))]
}

func (a *Alphabet) Symbols() []rune {
	out := make([]rune, len(a.symbols))
	copy(out, a.symbols)
	return out
}

func (a *Alphabet) String() string {
	return string(a.symbols)
}

// Filter keeps only the runes of text that belong to the alphabet.
func (a *Alphabet) Filter(text string) []rune {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		if a.Contains(r) {
			out = append(out, r)
		}
	}
	return out
}

// Mod is the non-negative remainder of x modulo m.
func Mod(x, m int) int {
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// LetterIndex returns the position of an ASCII Latin letter and whether it
// is upper-case. ok is false for every other rune.
func LetterIndex(r rune) (idx int, upper bool, ok bool) {
	if i, found := Lower.Index(r); found {
		return i, false, true
	}
	if i, found := Upper.Index(r); found {
		return i, true, true
	}
	return 0, false, false
}

// LetterAt returns the letter at idx mod 26 in the requested case.
func LetterAt(idx int, upper bool) rune {
	if upper {
		return Upper.Symbol(idx)
	}
	return Lower.Symbol(idx)
}

// IsLetter reports whether r is an ASCII Latin letter.
func IsLetter(r rune) bool {
	_, _, ok := LetterIndex(r)
	return ok
}

// MapLetters rewrites every Latin letter of text through fn, keeping its
// case. Any other rune is copied unchanged.
func MapLetters(text string, fn func(idx int) int) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		idx, upper, ok := LetterIndex(r)
		if !ok {
			b.WriteRune(r)
			continue
		}
		b.WriteRune(LetterAt(fn(idx), upper))
	}
	return b.String()
}
