package rc4

import "strings"

// ToBits renders data MSB first as a string of '0' and '1'.
func ToBits(data []byte) string {
	var b strings.Builder
	b.Grow(len(data) * 8)
	for _, v := range data {
		for i := 7; i >= 0; i-- {
			b.WriteByte('0' + (v>>i)&1)
		}
	}
	return b.String()
}

// BinaryDerivative XORs every pair of adjacent bits. The result is one bit
// shorter than the input.
func BinaryDerivative(bits string) string {
	if len(bits) < 2 {
		return ""
	}
	var b strings.Builder
	b.Grow(len(bits) - 1)
	for i := 0; i+1 < len(bits); i++ {
		if bits[i] != bits[i+1] {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

// ChangePointCount counts the transitions between adjacent bits.
func ChangePointCount(bits string) int {
	n := 0
	for i := 0; i+1 < len(bits); i++ {
		if bits[i] != bits[i+1] {
			n++
		}
	}
	return n
}

func OnesCount(bits string) int {
	return strings.Count(bits, "1")
}

// Diagnostics bundles the descriptive statistics for one keystream. None of
// them is a pass/fail test.
type Diagnostics struct {
	Bits         string
	Derivative   string
	ChangePoints int
	Ones         int
}

func Analyze(keystream []byte) Diagnostics {
	bits := ToBits(keystream)
	return Diagnostics{
		Bits:         bits,
		Derivative:   BinaryDerivative(bits),
		ChangePoints: ChangePointCount(bits),
		Ones:         OnesCount(bits),
	}
}
