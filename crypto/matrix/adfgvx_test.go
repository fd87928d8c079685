package matrix

import (
	"strings"
	"testing"

	"cipher-backend/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestADFGVXSecurityGrid(t *testing.T) {
	g, err := StandardADFGVX.KeyGrid("SECURITY")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"SECURI",
		"TYABDF",
		"GHJKLM",
		"NOPQVW",
		"XZ0123",
		"456789",
	}, g.Rows())
}

func TestADFGVXEncrypt(t *testing.T) {
	c, err := ADFGVXEncrypt("ATTACK2025", "SECURITY")
	require.NoError(t, err)
	assert.Equal(t, "DFDADADFAFFGVVVFVVXD", c)
	assert.Len(t, c, 20)
	assert.Empty(t, strings.Trim(c, "ADFGVX"))
}

func TestADFGVXRoundTrip(t *testing.T) {
	c, err := ADFGVXEncrypt("Attack at 2025-10-19!", "security")
	require.NoError(t, err)

	p, err := ADFGVXDecrypt(c, "security")
	require.NoError(t, err)
	assert.Equal(t, "ATTACKAT20251019", p)

	p, err = ADFGVXDecrypt("df da da df", "SECURITY")
	require.NoError(t, err)
	assert.Equal(t, "ATTA", p)
}

func TestADFGVXErrors(t *testing.T) {
	_, err := ADFGVXEncrypt("hello", "--")
	require.ErrorIs(t, err, crypto.ErrEmptyKey)

	_, err = ADFGVXDecrypt("ADF", "SECURITY")
	require.ErrorIs(t, err, crypto.ErrInvalidCiphertext)

	_, err = ADFGVXDecrypt("ADFB", "SECURITY")
	require.ErrorIs(t, err, crypto.ErrInvalidCiphertext)
}
