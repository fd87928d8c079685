// Package handlers exposes every cipher operation as a JSON endpoint
package handlers

import (
	"fmt"
	"log/slog"
	"net/http"

	"cipher-backend/crypto/classical"
	"cipher-backend/crypto/deskey"
	"cipher-backend/crypto/matrix"
	"cipher-backend/crypto/polyalphabetic"
	"cipher-backend/crypto/rc4"
	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

const Version = "1.0.0"

// keywordCipher is any encrypt or decrypt function keyed by a string.
type keywordCipher func(text, key string) (string, error)

type CipherHandler struct {
	logger             *slog.Logger
	maxKeystreamLength int
}

func NewCipherHandler(logger *slog.Logger, maxKeystreamLength int) *CipherHandler {
	return &CipherHandler{
		logger:             logger,
		maxKeystreamLength: maxKeystreamLength,
	}
}

func (h *CipherHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Cipher API is running",
		"version": Version,
	})
}

// Catalog lists the available ciphers and their operations.
func (h *CipherHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Cipher API",
		"version": Version,
		"available_ciphers": gin.H{
			"classical": gin.H{
				"additive":       []string{"encrypt", "decrypt", "bruteforce"},
				"multiplicative": []string{"encrypt", "decrypt", "bruteforce"},
			},
			"playfair": []string{"encrypt", "decrypt"},
			"polyalphabetic": gin.H{
				"vigenere": []string{"encrypt", "decrypt"},
				"autokey":  []string{"encrypt", "decrypt"},
			},
			"adfgvx": []string{"encrypt", "decrypt"},
			"rc4":    []string{"keystream"},
			"des":    []string{"subkeys"},
		},
	})
}

func (h *CipherHandler) AdditiveEncrypt(c *gin.Context) {
	var req models.AdditiveEncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EncryptResponse{
		Plaintext:  req.Plaintext,
		Key:        *req.Key,
		Ciphertext: classical.AdditiveEncrypt(req.Plaintext, *req.Key),
	})
}

func (h *CipherHandler) AdditiveDecrypt(c *gin.Context) {
	var req models.AdditiveDecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DecryptResponse{
		Ciphertext: req.Ciphertext,
		Key:        *req.Key,
		Plaintext:  classical.AdditiveDecrypt(req.Ciphertext, *req.Key),
	})
}

func (h *CipherHandler) AdditiveBruteforce(c *gin.Context) {
	h.bruteforce(c, classical.AdditiveBruteforce)
}

func (h *CipherHandler) MultiplicativeEncrypt(c *gin.Context) {
	var req models.MultiplicativeEncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EncryptResponse{
		Plaintext:  req.Plaintext,
		Key:        *req.Key,
		Ciphertext: classical.MultiplicativeEncrypt(req.Plaintext, *req.Key),
	})
}

func (h *CipherHandler) MultiplicativeDecrypt(c *gin.Context) {
	var req models.MultiplicativeDecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	plaintext, err := classical.MultiplicativeDecrypt(req.Ciphertext, *req.Key)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DecryptResponse{
		Ciphertext: req.Ciphertext,
		Key:        *req.Key,
		Plaintext:  plaintext,
	})
}

func (h *CipherHandler) MultiplicativeBruteforce(c *gin.Context) {
	h.bruteforce(c, classical.MultiplicativeBruteforce)
}

func (h *CipherHandler) bruteforce(c *gin.Context, search func(string) []classical.Candidate) {
	var req models.BruteforceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	candidates := search(req.Ciphertext)
	results := make([]models.BruteforceCandidate, 0, len(candidates))
	for _, cand := range candidates {
		results = append(results, models.BruteforceCandidate{Key: cand.Key, Plaintext: cand.Plaintext})
	}

	c.JSON(http.StatusOK, models.BruteforceResponse{
		Ciphertext: req.Ciphertext,
		Results:    results,
	})
}

func (h *CipherHandler) PlayfairEncrypt(c *gin.Context) {
	h.encrypt(c, matrix.PlayfairEncrypt)
}

func (h *CipherHandler) PlayfairDecrypt(c *gin.Context) {
	h.decrypt(c, matrix.PlayfairDecrypt)
}

func (h *CipherHandler) VigenereEncrypt(c *gin.Context) {
	h.encrypt(c, polyalphabetic.VigenereEncrypt)
}

func (h *CipherHandler) VigenereDecrypt(c *gin.Context) {
	h.decrypt(c, polyalphabetic.VigenereDecrypt)
}

func (h *CipherHandler) AutokeyEncrypt(c *gin.Context) {
	h.encrypt(c, polyalphabetic.AutokeyEncrypt)
}

func (h *CipherHandler) AutokeyDecrypt(c *gin.Context) {
	h.decrypt(c, polyalphabetic.AutokeyDecrypt)
}

func (h *CipherHandler) encrypt(c *gin.Context, fn keywordCipher) {
	var req models.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	ciphertext, err := fn(req.Plaintext, req.Key)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.EncryptResponse{
		Plaintext:  req.Plaintext,
		Key:        req.Key,
		Ciphertext: ciphertext,
	})
}

func (h *CipherHandler) decrypt(c *gin.Context, fn keywordCipher) {
	var req models.DecryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	plaintext, err := fn(req.Ciphertext, req.Key)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.DecryptResponse{
		Ciphertext: req.Ciphertext,
		Key:        req.Key,
		Plaintext:  plaintext,
	})
}

func (h *CipherHandler) ADFGVXEncrypt(c *gin.Context) {
	var req models.EncryptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	grid, err := matrix.StandardADFGVX.KeyGrid(req.Key)
	if err != nil {
		h.respondError(c, err)
		return
	}

	ciphertext, err := matrix.ADFGVXEncrypt(req.Plaintext, req.Key)
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.ADFGVXEncryptResponse{
		EncryptResponse: models.EncryptResponse{
			Plaintext:  req.Plaintext,
			Key:        req.Key,
			Ciphertext: ciphertext,
		},
		KeyMatrix: grid.Rows(),
	})
}

func (h *CipherHandler) ADFGVXDecrypt(c *gin.Context) {
	h.decrypt(c, matrix.ADFGVXDecrypt)
}

func (h *CipherHandler) RC4Keystream(c *gin.Context) {
	var req models.RC4Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	if req.Length > h.maxKeystreamLength {
		respondBindError(c, fmt.Errorf("length must be between 1 and %d", h.maxKeystreamLength))
		return
	}

	keystream, err := rc4.Keystream(rc4.KeyFromString(req.Key), req.Length)
	if err != nil {
		h.respondError(c, err)
		return
	}

	stats := rc4.Analyze(keystream)
	values := make([]int, len(keystream))
	for i, b := range keystream {
		values[i] = int(b)
	}

	c.JSON(http.StatusOK, models.RC4Response{
		Key:              req.Key,
		Length:           req.Length,
		KeystreamBytes:   values,
		KeystreamBinary:  stats.Bits,
		BinaryDerivative: stats.Derivative,
		ChangePointCount: stats.ChangePoints,
		OnesCount:        stats.Ones,
	})
}

func (h *CipherHandler) DESSubkeys(c *gin.Context) {
	var req models.DESRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	subkeys, err := deskey.GenerateSubkeys(req.HexKey)
	if err != nil {
		h.respondError(c, err)
		return
	}

	rounds := make([]models.Subkey, 0, len(subkeys))
	for i, k := range subkeys {
		rounds = append(rounds, models.Subkey{Round: i + 1, Subkey: k})
	}

	c.JSON(http.StatusOK, models.DESResponse{
		HexKey:  req.HexKey,
		Subkeys: rounds,
	})
}
