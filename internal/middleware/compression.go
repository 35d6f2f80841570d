package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// Compression gzips responses for clients that accept it. PNG labels and
// their zip bundles are already compressed and /metrics negotiates its own
// encoding.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression,
		gzip.WithExcludedExtensions([]string{".png", ".zip"}),
		gzip.WithExcludedPaths([]string{"/metrics"}),
		gzip.WithExcludedPathsRegexs([]string{`^/api/v1/exports/png$`}),
	)
}
