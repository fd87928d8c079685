package crypto

import "errors"

var (
	ErrEmptyKey          = errors.New("key has no usable symbols")
	ErrInvalidKey        = errors.New("key is out of range")
	ErrNonInvertibleKey  = errors.New("key is not invertible")
	ErrInvalidKeyLength  = errors.New("invalid key length")
	ErrMalformedHexDigit = errors.New("malformed hexadecimal digit")
	ErrInvalidCiphertext = errors.New("malformed ciphertext")
)
