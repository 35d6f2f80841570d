package middleware

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// DefaultCORSOrigins are the local origins of the web app during development.
var DefaultCORSOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}

// CORS allows the web app origins to call the API with the session cookie.
func CORS(origins []string) gin.HandlerFunc {
	if len(origins) == 0 {
		origins = DefaultCORSOrigins
	}
	return cors.New(cors.Config{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowHeaders: []string{
			"Origin", "Content-Type", "Content-Length", "Accept", "Accept-Encoding",
			"Accept-Language", "Authorization", "Cache-Control", "X-Requested-With",
			IdempotencyKeyHeader, RequestIDHeader,
		},
		ExposeHeaders:    []string{RequestIDHeader, "Content-Disposition", "X-Label-Warnings"},
		AllowCredentials: true,
		MaxAge:           24 * time.Hour,
	})
}
