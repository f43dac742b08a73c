package restapi

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// CompressionConfig holds configuration options for response compression
type CompressionConfig struct {
	// MinSize is the minimum response size in bytes to compress
	MinSize int
	// Level is the gzip compression level 1-9
	Level int
	// ContentTypes lists the compressible media types. Empty means gzhttp's defaults.
	ContentTypes []string
}

// DefaultCompressionConfig compresses JSON and HTML bodies of 1KB and up at level 6.
// A booking confirmation for a handful of passengers usually stays below that.
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		MinSize:      1024,
		Level:        6,
		ContentTypes: []string{"application/json", "text/html"},
	}
}

// newWrapper builds the gzhttp wrapper for c. gzhttp's option type is
// unexported, so each option set is passed to NewWrapper directly.
func (c CompressionConfig) newWrapper() (func(http.Handler) http.HandlerFunc, error) {
	if len(c.ContentTypes) > 0 {
		return gzhttp.NewWrapper(
			gzhttp.MinSize(c.MinSize),
			gzhttp.CompressionLevel(c.Level),
			gzhttp.ContentTypes(c.ContentTypes),
		)
	}
	return gzhttp.NewWrapper(
		gzhttp.MinSize(c.MinSize),
		gzhttp.CompressionLevel(c.Level),
	)
}

// NewCompressionMiddleware creates a compression middleware with the given
// configuration. An invalid configuration falls back to gzhttp's defaults.
func NewCompressionMiddleware(config CompressionConfig) func(http.Handler) http.Handler {
	wrapper, err := config.newWrapper()
	if err != nil {
		return func(next http.Handler) http.Handler { return gzhttp.GzipHandler(next) }
	}
	return func(next http.Handler) http.Handler { return wrapper(next) }
}

// CompressionMiddleware applies gzip compression with default settings
func CompressionMiddleware(next http.Handler) http.Handler {
	return NewCompressionMiddleware(DefaultCompressionConfig())(next)
}
