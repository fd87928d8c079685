// Package models contains the request and response bodies of the cipher API
package models

// EncryptRequest carries a plaintext and a keyword key
type EncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       string `json:"key" binding:"required"`
}

// DecryptRequest carries a ciphertext and a keyword key
type DecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Key        string `json:"key" binding:"required"`
}

// AdditiveEncryptRequest uses a shift in 0..25
type AdditiveEncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       *int   `json:"key" binding:"required,min=0,max=25"`
}

type AdditiveDecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Key        *int   `json:"key" binding:"required,min=0,max=25"`
}

// MultiplicativeEncryptRequest uses a multiplier in 1..25
type MultiplicativeEncryptRequest struct {
	Plaintext string `json:"plaintext"`
	Key       *int   `json:"key" binding:"required,min=1,max=25"`
}

type MultiplicativeDecryptRequest struct {
	Ciphertext string `json:"ciphertext"`
	Key        *int   `json:"key" binding:"required,min=1,max=25"`
}

type BruteforceRequest struct {
	Ciphertext string `json:"ciphertext"`
}

type RC4Request struct {
	Key    string `json:"key" binding:"required"`
	Length int    `json:"length" binding:"required,min=1"`
}

type DESRequest struct {
	HexKey string `json:"hex_key" binding:"required"`
}

// EncryptResponse echoes the inputs next to the ciphertext
type EncryptResponse struct {
	Plaintext  string `json:"plaintext"`
	Key        any    `json:"key"`
	Ciphertext string `json:"ciphertext"`
}

type DecryptResponse struct {
	Ciphertext string `json:"ciphertext"`
	Key        any    `json:"key"`
	Plaintext  string `json:"plaintext"`
}

type BruteforceCandidate struct {
	Key       int    `json:"key"`
	Plaintext string `json:"plaintext"`
}

type BruteforceResponse struct {
	Ciphertext string                `json:"ciphertext"`
	Results    []BruteforceCandidate `json:"results"`
}

// ADFGVXEncryptResponse also returns the keyed 6x6 square, one string per row
type ADFGVXEncryptResponse struct {
	EncryptResponse
	KeyMatrix []string `json:"key_matrix"`
}

type RC4Response struct {
	Key              string `json:"key"`
	Length           int    `json:"length"`
	KeystreamBytes   []int  `json:"keystream_bytes"`
	KeystreamBinary  string `json:"keystream_binary"`
	BinaryDerivative string `json:"binary_derivative"`
	ChangePointCount int    `json:"change_point_count"`
	OnesCount        int    `json:"ones_count"`
}

type Subkey struct {
	Round  int    `json:"round"`
	Subkey string `json:"subkey"`
}

type DESResponse struct {
	HexKey  string   `json:"hex_key"`
	Subkeys []Subkey `json:"subkeys"`
}

// ErrorResponse is returned for every failed request
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Message string `json:"message"`
}
