package middleware

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gin-gonic/gin"
)

// CompressionConfig holds configuration for response compression
type CompressionConfig struct {
	Level            int      `yaml:"level"`
	ExcludedPrefixes []string `yaml:"excluded_prefixes"`
}

// DefaultCompressionConfig returns the default compression configuration
func DefaultCompressionConfig() CompressionConfig {
	return CompressionConfig{
		Level:            gzip.DefaultCompression,
		ExcludedPrefixes: []string{"/health"},
	}
}

// CompressionMiddleware gzips responses for clients that accept it
type CompressionMiddleware struct {
	config CompressionConfig
	stats  *CompressionStats
	pool   sync.Pool
}

// NewCompressionMiddleware creates a new compression middleware. An invalid
// level falls back to the gzip default.
func NewCompressionMiddleware(config CompressionConfig) *CompressionMiddleware {
	if config.Level < gzip.HuffmanOnly || config.Level > gzip.BestCompression {
		config.Level = gzip.DefaultCompression
	}

	cm := &CompressionMiddleware{
		config: config,
		stats:  &CompressionStats{},
	}
	cm.pool.New = func() interface{} {
		gz, _ := gzip.NewWriterLevel(io.Discard, cm.config.Level)
		return gz
	}
	return cm
}

// Handler returns the gin middleware
func (cm *CompressionMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		atomic.AddInt64(&cm.stats.TotalRequests, 1)

		if !cm.shouldCompress(c.Request) {
			c.Next()
			return
		}

		gz := cm.pool.Get().(*gzip.Writer)
		defer cm.pool.Put(gz)

		original := c.Writer
		gz.Reset(original)

		c.Header("Content-Encoding", "gzip")
		c.Header("Vary", "Accept-Encoding")

		writer := &gzipResponseWriter{ResponseWriter: original, gz: gz}
		c.Writer = writer

		defer func() {
			if writer.size == 0 {
				// no body: drop the encoding rather than emit an empty gzip stream
				if !original.Written() {
					original.Header().Del("Content-Encoding")
				}
				gz.Reset(io.Discard)
			}
			gz.Close()
			c.Writer = original

			if writer.size > 0 {
				atomic.AddInt64(&cm.stats.CompressedRequests, 1)
				atomic.AddInt64(&cm.stats.BytesIn, int64(writer.size))
				atomic.AddInt64(&cm.stats.BytesOut, int64(original.Size()))
			}
		}()

		c.Next()
	}
}

func (cm *CompressionMiddleware) shouldCompress(r *http.Request) bool {
	if r.Method == http.MethodHead {
		return false
	}
	if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
		return false
	}
	if strings.Contains(r.Header.Get("Connection"), "Upgrade") {
		return false
	}
	for _, prefix := range cm.config.ExcludedPrefixes {
		if strings.HasPrefix(r.URL.Path, prefix) {
			return false
		}
	}
	return true
}

// Stats returns current compression statistics
func (cm *CompressionMiddleware) Stats() map[string]interface{} {
	return cm.stats.GetStats()
}

// gzipResponseWriter routes body writes through the gzip writer
type gzipResponseWriter struct {
	gin.ResponseWriter
	gz   *gzip.Writer
	size int
}

func (w *gzipResponseWriter) WriteHeader(code int) {
	w.Header().Del("Content-Length")
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	w.Header().Del("Content-Length")
	n, err := w.gz.Write(data)
	w.size += n
	return n, err
}

func (w *gzipResponseWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *gzipResponseWriter) Flush() {
	_ = w.gz.Flush()
	w.ResponseWriter.Flush()
}

// CompressionStats tracks compression statistics
type CompressionStats struct {
	TotalRequests      int64
	CompressedRequests int64
	BytesIn            int64
	BytesOut           int64
}

// GetStats returns current compression statistics
func (cs *CompressionStats) GetStats() map[string]interface{} {
	in := atomic.LoadInt64(&cs.BytesIn)
	out := atomic.LoadInt64(&cs.BytesOut)

	ratio := float64(0)
	if in > 0 {
		ratio = float64(out) / float64(in)
	}

	return map[string]interface{}{
		"total_requests":      atomic.LoadInt64(&cs.TotalRequests),
		"compressed_requests": atomic.LoadInt64(&cs.CompressedRequests),
		"bytes_in":            in,
		"bytes_out":           out,
		"compression_ratio":   ratio,
	}
}
