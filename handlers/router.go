package handlers

import (
	"log/slog"

	"cipher-backend/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires middleware and every API route onto a fresh engine.
func NewRouter(cfg *config.Config, logger *slog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if len(cfg.Server.AllowOrigins) == 1 && cfg.Server.AllowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.Server.AllowOrigins
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Accept", requestIDHeader}
	corsConfig.ExposeHeaders = []string{requestIDHeader}
	router.Use(cors.New(corsConfig))

	h := NewCipherHandler(logger, cfg.Limits.MaxKeystreamLength)

	api := router.Group("/api/v1")
	{
		api.GET("/", h.Catalog)
		api.GET("/health", h.HealthCheck)

		classical := api.Group("/classical")
		{
			classical.POST("/additive/encrypt", h.AdditiveEncrypt)
			classical.POST("/additive/decrypt", h.AdditiveDecrypt)
			classical.POST("/additive/bruteforce", h.AdditiveBruteforce)
			classical.POST("/multiplicative/encrypt", h.MultiplicativeEncrypt)
			classical.POST("/multiplicative/decrypt", h.MultiplicativeDecrypt)
			classical.POST("/multiplicative/bruteforce", h.MultiplicativeBruteforce)
		}

		playfair := api.Group("/playfair")
		{
			playfair.POST("/encrypt", h.PlayfairEncrypt)
			playfair.POST("/decrypt", h.PlayfairDecrypt)
		}

		poly := api.Group("/polyalphabetic")
		{
			poly.POST("/vigenere/encrypt", h.VigenereEncrypt)
			poly.POST("/vigenere/decrypt", h.VigenereDecrypt)
			poly.POST("/autokey/encrypt", h.AutokeyEncrypt)
			poly.POST("/autokey/decrypt", h.AutokeyDecrypt)
		}

		adfgvx := api.Group("/adfgvx")
		{
			adfgvx.POST("/encrypt", h.ADFGVXEncrypt)
			adfgvx.POST("/decrypt", h.ADFGVXDecrypt)
		}

		api.POST("/rc4/keystream", h.RC4Keystream)
		api.POST("/des/subkeys", h.DESSubkeys)
	}

	return router
}
