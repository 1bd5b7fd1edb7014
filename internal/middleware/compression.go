package middleware

import (
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
)

// MetricsPath is served by promhttp, which negotiates its own gzip encoding.
const MetricsPath = "/metrics"

// Compression gzips responses for clients that send Accept-Encoding: gzip.
// The metrics endpoint is left alone so its body is not compressed twice.
func Compression() gin.HandlerFunc {
	return gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{MetricsPath}))
}
