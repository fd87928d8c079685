package rc4

import (
	"testing"

	"cipher-backend/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKnownKeystreams(t *testing.T) {
	cases := []struct {
		key            string
		expectedStream []byte
	}{{
		"Key",
		[]byte{0xEB, 0x9F, 0x77, 0x81, 0xB7, 0x34, 0xCA, 0x72, 0xA7, 0x19},
	}, {
		"Wiki",
		[]byte{0x60, 0x44, 0xDB, 0x6D, 0x41, 0xB7},
	}, {
		"Secret",
		[]byte{0x04, 0xD4, 0x6B, 0x05, 0x3C, 0xA8, 0x7B, 0x59},
	}}

	for _, c := range cases {
		ks, err := Keystream(KeyFromString(c.key), len(c.expectedStream))
		require.NoError(t, err)
		require.Equal(t, c.expectedStream, ks, "key %q", c.key)
	}
}

func TestKeystreamDeterministic(t *testing.T) {
	first, err := Keystream(KeyFromString("SECURITY"), 16)
	require.NoError(t, err)
	require.Len(t, first, 16)

	for i := 0; i < 5; i++ {
		again, err := Keystream(KeyFromString("SECURITY"), 16)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestGenerateContinuesSession(t *testing.T) {
	whole, err := Keystream([]byte("Key"), 10)
	require.NoError(t, err)

	c, err := KeySchedule([]byte("Key"))
	require.NoError(t, err)
	parts := append(c.Generate(4), c.Generate(6)...)
	assert.Equal(t, whole, parts)
}

func assertPermutation(t *testing.T, s [StateSize]byte) {
	t.Helper()
	var seen [StateSize]bool
	for _, v := range s {
		require.False(t, seen[v], "value %d repeated", v)
		seen[v] = true
	}
}

func TestStateStaysPermutation(t *testing.T) {
	c, err := KeySchedule([]byte{0xFF, 0x00, 0x7F})
	require.NoError(t, err)
	assertPermutation(t, c.State())

	for i := 0; i < 10; i++ {
		c.Generate(100)
		assertPermutation(t, c.State())
	}
}

func TestEmptyKey(t *testing.T) {
	_, err := KeySchedule(nil)
	require.ErrorIs(t, err, crypto.ErrInvalidKeyLength)

	_, err = Keystream([]byte{}, 4)
	require.ErrorIs(t, err, crypto.ErrInvalidKeyLength)

	_, err = Keystream([]byte("k"), -1)
	require.Error(t, err)
}

func TestKeyFromString(t *testing.T) {
	assert.Equal(t, []byte("abc"), KeyFromString("abc"))
	// U+0141 truncates to 0x41.
	assert.Equal(t, []byte{0x41}, KeyFromString("Ł"))
}
