package http

import (
	"strings"

	"github.com/gin-gonic/gin"
)

const fallbackBaseURL = "http://localhost:3000"

// BaseURLResolver derives the public URL that QR codes point at.
//
// Priority: the configured base URL, then the platform host (VERCEL_URL),
// then the Host header of the request, then localhost. Localhost only ends
// up in QR codes during development.
type BaseURLResolver struct {
	BaseURL   string
	VercelURL string
}

// Resolve returns the base URL without a trailing slash.
func (r BaseURLResolver) Resolve(c *gin.Context) string {
	if r.BaseURL != "" {
		return strings.TrimRight(r.BaseURL, "/")
	}
	if r.VercelURL != "" {
		return "https://" + strings.TrimRight(r.VercelURL, "/")
	}
	if c != nil && c.Request != nil {
		if host := c.Request.Host; host != "" {
			return requestScheme(c, host) + "://" + host
		}
	}
	return fallbackBaseURL
}

func requestScheme(c *gin.Context, host string) string {
	if proto := c.GetHeader("X-Forwarded-Proto"); proto == "http" || proto == "https" {
		return proto
	}
	if strings.HasPrefix(host, "localhost") || strings.HasPrefix(host, "127.") {
		return "http"
	}
	return "https"
}
