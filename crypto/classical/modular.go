package classical

import (
	"fmt"

	"cipher-backend/crypto"
)

// egcd returns g = gcd(a, b) together with x, y such that a*x + b*y = g.
func egcd(a, b int) (g, x, y int) {
	if b == 0 {
		return a, 1, 0
	}
	g, x1, y1 := egcd(b, a%b)
	return g, y1, x1 - (a/b)*y1
}

// ModInverse returns the inverse of a modulo m, or ErrNonInvertibleKey when
// gcd(a, m) != 1.
func ModInverse(a, m int) (int, error) {
	a = crypto.Mod(a, m)
	g, x, _ := egcd(a, m)
	if g != 1 {
		return 0, fmt.Errorf("%w: a=%d shares a factor with %d", crypto.ErrNonInvertibleKey, a, m)
	}
	return crypto.Mod(x, m), nil
}

// Invertible reports whether a has an inverse modulo m.
func Invertible(a, m int) bool {
	_, err := ModInverse(a, m)
	return err == nil
}
