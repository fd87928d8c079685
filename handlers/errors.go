package handlers

import (
	"errors"
	"net/http"

	"cipher-backend/crypto"
	"cipher-backend/models"

	"github.com/gin-gonic/gin"
)

const codeInvalidRequest = "invalid_request"

var errorCodes = []struct {
	err  error
	code string
}{
	{crypto.ErrEmptyKey, "empty_key"},
	{crypto.ErrInvalidKey, "invalid_key"},
	{crypto.ErrNonInvertibleKey, "non_invertible_key"},
	{crypto.ErrInvalidKeyLength, "invalid_key_length"},
	{crypto.ErrMalformedHexDigit, "malformed_hex_digit"},
	{crypto.ErrInvalidCiphertext, "invalid_ciphertext"},
}

// errorCode maps a core error onto its API code. ok is false for errors
// that are not input-validation failures.
func errorCode(err error) (string, bool) {
	for _, e := range errorCodes {
		if errors.Is(err, e.err) {
			return e.code, true
		}
	}
	return "", false
}

// respondError writes the failure response for err and logs anything that
// is not a client error.
func (h *CipherHandler) respondError(c *gin.Context, err error) {
	if code, ok := errorCode(err); ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Success: false,
			Error:   code,
			Message: err.Error(),
		})
		return
	}

	h.logger.Error("cipher operation failed",
		"path", c.FullPath(),
		"request_id", c.GetString(requestIDKey),
		"error", err)
	c.JSON(http.StatusInternalServerError, models.ErrorResponse{
		Success: false,
		Error:   "internal_error",
		Message: err.Error(),
	})
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, models.ErrorResponse{
		Success: false,
		Error:   codeInvalidRequest,
		Message: err.Error(),
	})
}
