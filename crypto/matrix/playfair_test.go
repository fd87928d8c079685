package matrix

import (
	"testing"

	"cipher-backend/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayfairMonarchyGrid(t *testing.T) {
	g, err := StandardPlayfair.KeyGrid("MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"MONAR",
		"CHYBD",
		"EFGIK",
		"LPQST",
		"UVWXZ",
	}, g.Rows())
}

func TestPlayfairDigraphs(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{"BALLOON", []string{"BA", "LX", "LO", "ON"}},
		{"hide the gold", []string{"HI", "DE", "TH", "EG", "OL", "DX"}},
		{"Jazz", []string{"IA", "ZX", "ZX"}},
		{"XX", []string{"XQ", "XQ"}},
		{"", []string{}},
	}

	for _, tt := range tests {
		got := make([]string, 0)
		for _, d := range StandardPlayfair.Digraphs(tt.text) {
			assert.NotEqual(t, d[0], d[1])
			got = append(got, string(d[:]))
		}
		assert.Equal(t, tt.want, got, "text %q", tt.text)
	}
}

func TestPlayfairBalloon(t *testing.T) {
	c, err := PlayfairEncrypt("BALLOON", "MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, "IBSUPMNA", c)

	p, err := PlayfairDecrypt(c, "MONARCHY")
	require.NoError(t, err)
	assert.Equal(t, "BALXLOON", p)
}

func TestPlayfairRoundTripAfterNormalization(t *testing.T) {
	texts := []string{
		"Hide the gold in the tree stump!",
		"jump over xx zz",
		"a",
		"Meet me at 10pm, by the bridge.",
	}

	for _, text := range texts {
		var prepared []rune
		for _, d := range StandardPlayfair.Digraphs(text) {
			prepared = append(prepared, d[0], d[1])
		}

		c, err := PlayfairEncrypt(text, "playfair example")
		require.NoError(t, err)
		assert.Len(t, c, len(prepared))

		p, err := PlayfairDecrypt(c, "playfair example")
		require.NoError(t, err)
		assert.Equal(t, string(prepared), p)
	}
}

func TestPlayfairErrors(t *testing.T) {
	_, err := PlayfairEncrypt("hello", "1234")
	require.ErrorIs(t, err, crypto.ErrEmptyKey)

	_, err = PlayfairDecrypt("ABC", "MONARCHY")
	require.ErrorIs(t, err, crypto.ErrInvalidCiphertext)
}
