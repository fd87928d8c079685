package main

import (
	"bytes"
	"strings"
	"testing"

	"cipher-backend/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestAdditiveCommand(t *testing.T) {
	out, err := run(t, "additive", "-t", "abc", "-k", "3")
	require.NoError(t, err)
	assert.Equal(t, "def\n", out)

	out, err = run(t, "additive", "-t", "def", "-k", "3", "-d")
	require.NoError(t, err)
	assert.Equal(t, "abc\n", out)

	out, err = run(t, "additive", "-t", "def", "-b")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 26)
	assert.Equal(t, " 3 abc", lines[3])
}

func TestMultiplicativeCommandRejectsNonInvertibleKey(t *testing.T) {
	_, err := run(t, "multiplicative", "-t", "abc", "-k", "2", "-d")
	require.ErrorIs(t, err, crypto.ErrNonInvertibleKey)

	_, err = run(t, "multiplicative", "-t", "abc")
	require.Error(t, err)
}

func TestNumericKeyRange(t *testing.T) {
	_, err := run(t, "additive", "-t", "abc", "-k", "26")
	require.ErrorIs(t, err, crypto.ErrInvalidKey)

	_, err = run(t, "multiplicative", "-t", "abc", "-k", "0")
	require.ErrorIs(t, err, crypto.ErrInvalidKey)
}

func TestKeywordCommands(t *testing.T) {
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"vigenere", "-t", "attack at dawn", "-k", "LEMON"}, "lxfopv ef rnhr\n"},
		{[]string{"autokey", "-t", "QNXEPVYTWTWP", "-k", "QUEENLY", "-d"}, "ATTACKATDAWN\n"},
		{[]string{"playfair", "-t", "BALLOON", "-k", "MONARCHY"}, "IBSUPMNA\n"},
		{[]string{"adfgvx", "-t", "ATTACK2025", "-k", "SECURITY"}, "DFDADADFAFFGVVVFVVXD\n"},
	}

	for _, tc := range cases {
		out, err := run(t, tc.args...)
		require.NoError(t, err, tc.args)
		assert.Equal(t, tc.want, out, tc.args)
	}
}

func TestRC4Command(t *testing.T) {
	out, err := run(t, "rc4", "-k", "Key", "-n", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "keystream:    [235 159]")
	assert.Contains(t, out, "binary:       1110101110011111")
}

func TestDESCommand(t *testing.T) {
	out, err := run(t, "des", "-k", "133457799BBCDFF1")
	require.NoError(t, err)
	assert.Contains(t, out, "Round 01: 000110110000001011101111111111000111000001110010")
	assert.Equal(t, 16, strings.Count(out, "Round "))

	_, err = run(t, "des", "-k", "123")
	require.ErrorIs(t, err, crypto.ErrInvalidKeyLength)
}
