package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAlphabetRejectsDuplicates(t *testing.T) {
	_, err := NewAlphabet("ABCA")
	require.Error(t, err)

	_, err = NewAlphabet("")
	require.Error(t, err)
}

func TestAlphabetIndexAndSymbol(t *testing.T) {
	a, err := NewAlphabet("XYZ")
	require.NoError(t, err)

	i, ok := a.Index('Y')
	require.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = a.Index('A')
	assert.False(t, ok)

	assert.Equal(t, 'X', a.Symbol(3))
	assert.Equal(t, 'Z', a.Symbol(-1))
	assert.Equal(t, 3, a.Len())
	assert.Equal(t, "XYZ", a.String())
}

func TestMod(t *testing.T) {
	assert.Equal(t, 0, Mod(26, 26))
	assert.Equal(t, 25, Mod(-1, 26))
	assert.Equal(t, 3, Mod(-23, 26))
	assert.Equal(t, 4, Mod(30, 26))
}

func TestLetterIndex(t *testing.T) {
	idx, upper, ok := LetterIndex('c')
	require.True(t, ok)
	assert.Equal(t, 2, idx)
	assert.False(t, upper)

	idx, upper, ok = LetterIndex('Z')
	require.True(t, ok)
	assert.Equal(t, 25, idx)
	assert.True(t, upper)

	for _, r := range []rune{'1', ' ', '!', 'é'} {
		_, _, ok = LetterIndex(r)
		assert.False(t, ok, "rune %q", r)
	}
}

func TestMapLettersPreservesCaseAndPunctuation(t *testing.T) {
	out := MapLetters("Hello, World! 42", func(i int) int { return i + 1 })
	assert.Equal(t, "Ifmmp, Xpsme! 42", out)
}

func TestFilter(t *testing.T) {
	assert.Equal(t, []rune("HELLOWORLD"), Upper.Filter("HELLO, WORLD!"))
}
