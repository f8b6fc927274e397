package middleware

import (
	"log/slog"
	"slices"

	"travel-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     withHeader(cfg.AllowHeaders, requestIDHeader),
		ExposeHeaders:    withHeader(cfg.ExposeHeaders, requestIDHeader),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	slog.Info("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins)
	return cors.New(corsCfg)
}

func withHeader(headers []string, h string) []string {
	if slices.Contains(headers, h) {
		return headers
	}
	return append(slices.Clone(headers), h)
}
