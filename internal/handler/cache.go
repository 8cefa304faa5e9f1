package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// The cache holds full rendered responses for a day; the pipeline flushes it
// after each run, so entries rarely live that long.
const cacheTTL = 24 * time.Hour

// ResponseCache stores rendered responses keyed by request URI.
// Get returns (nil, nil) on a miss.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

type cachedResponse struct {
	ContentType string `json:"content_type"`
	Body        []byte `json:"body"`
}

// CacheResponse serves GET responses from cache when present and stores
// successful responses on the way out. Cache errors degrade to uncached
// serving.
func CacheResponse(cache ResponseCache) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cache == nil || c.Request.Method != http.MethodGet {
			c.Next()
			return
		}

		key := c.Request.RequestURI
		ctx := c.Request.Context()

		if raw, err := cache.Get(ctx, key); err != nil {
			slog.Warn("cache read failed", "key", key, "error", err)
		} else if raw != nil {
			var cached cachedResponse
			if err := json.Unmarshal(raw, &cached); err == nil {
				c.Data(http.StatusOK, cached.ContentType, cached.Body)
				c.Abort()
				return
			}
			slog.Warn("discarding malformed cache entry", "key", key)
		}

		w := &bufferingWriter{ResponseWriter: c.Writer, buf: &bytes.Buffer{}}
		c.Writer = w
		c.Next()

		if w.Status() != http.StatusOK {
			return
		}

		raw, err := json.Marshal(cachedResponse{
			ContentType: w.Header().Get("Content-Type"),
			Body:        w.buf.Bytes(),
		})
		if err != nil {
			return
		}
		if err := cache.Set(ctx, key, raw, cacheTTL); err != nil {
			slog.Warn("cache write failed", "key", key, "error", err)
		}
	}
}

type bufferingWriter struct {
	gin.ResponseWriter
	buf *bytes.Buffer
}

func (w *bufferingWriter) Write(b []byte) (int, error) {
	w.buf.Write(b)
	return w.ResponseWriter.Write(b)
}

func (w *bufferingWriter) WriteString(s string) (int, error) {
	w.buf.WriteString(s)
	return w.ResponseWriter.WriteString(s)
}
