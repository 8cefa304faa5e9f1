package extract

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-playground/assert/v2"
)

const articleHTML = `<!DOCTYPE html>
<html>
<head>
<title>Concurrency patterns</title>
<meta property="og:image" content="http://example.com/cover.png">
</head>
<body>
<article>
<p>Channels orchestrate and mutexes serialize. A channel carries both the data
and the right to act on it, so handing a value to another goroutine also hands
over responsibility for it, which keeps ownership obvious at every point in
the program.</p>
<p>The bounded worker pool is the workhorse of batch jobs. A buffered channel
used as a semaphore caps the number of goroutines doing real work at once,
while a wait group holds the barrier until the last worker drains out and the
stage can report its counts.</p>
<p>Cancellation flows downward through contexts. Every blocking call accepts
one, and when the parent gives up, each request in flight unwinds promptly
instead of leaking a goroutine that nobody will ever hear from again.</p>
</article>
</body>
</html>`

func newArticleServer() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(articleHTML))
	}))
}

func TestExtract_ReturnsTextAndImage(t *testing.T) {
	server := newArticleServer()
	defer server.Close()

	e := NewReadabilityExtractor(5 * time.Second)
	text, image, err := e.Extract(context.Background(), server.URL)

	assert.Equal(t, nil, err)
	assert.Equal(t, true, strings.Contains(text, "Channels orchestrate and mutexes serialize."))
	assert.Equal(t, text, strings.TrimSpace(text))
	assert.Equal(t, "http://example.com/cover.png", image)
}

func TestExtract_CanceledContext(t *testing.T) {
	server := newArticleServer()
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := NewReadabilityExtractor(5 * time.Second)
	_, _, err := e.Extract(ctx, server.URL)

	assert.NotEqual(t, nil, err)
}

func TestExtract_BadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	e := NewReadabilityExtractor(5 * time.Second)
	_, _, err := e.Extract(context.Background(), server.URL)

	assert.NotEqual(t, nil, err)
}
