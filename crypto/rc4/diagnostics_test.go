package rc4

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToBits(t *testing.T) {
	assert.Equal(t, "", ToBits(nil))
	assert.Equal(t, "00000001", ToBits([]byte{1}))
	assert.Equal(t, "1010101111111111", ToBits([]byte{0xAB, 0xFF}))
}

func TestBinaryDerivative(t *testing.T) {
	assert.Equal(t, "", BinaryDerivative(""))
	assert.Equal(t, "", BinaryDerivative("1"))
	assert.Equal(t, "1111", BinaryDerivative("01010"))
	assert.Equal(t, "0101", BinaryDerivative("00110"))
}

func TestChangePointCount(t *testing.T) {
	assert.Equal(t, 0, ChangePointCount(""))
	assert.Equal(t, 0, ChangePointCount("1111"))
	assert.Equal(t, 4, ChangePointCount("01010"))
	assert.Equal(t, 2, ChangePointCount("00110"))
}

func TestAnalyze(t *testing.T) {
	d := Analyze([]byte{0xF0})
	assert.Equal(t, "11110000", d.Bits)
	assert.Equal(t, "0001000", d.Derivative)
	assert.Equal(t, 1, d.ChangePoints)
	assert.Equal(t, 4, d.Ones)
	assert.Equal(t, OnesCount(d.Derivative), d.ChangePoints)
}
