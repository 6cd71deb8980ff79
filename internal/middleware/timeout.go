package middleware

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/pizzeria-service/internal/domain/dto"
	"github.com/guttosm/pizzeria-service/internal/i18n"
	"github.com/guttosm/pizzeria-service/internal/logger"
)

// TimeoutConfig configures Timeout.
type TimeoutConfig struct {
	// Timeout bounds how long a handler may take before the client gets a 504.
	Timeout time.Duration
	// Skip exempts requests, such as long lived streams, from the deadline.
	Skip func(*gin.Context) bool
}

// DefaultTimeoutConfig returns a 15s deadline that skips websocket upgrades.
func DefaultTimeoutConfig() TimeoutConfig {
	return TimeoutConfig{
		Timeout: 15 * time.Second,
		Skip:    IsWebSocketUpgrade,
	}
}

// IsWebSocketUpgrade reports whether the request asks to switch to a websocket.
func IsWebSocketUpgrade(c *gin.Context) bool {
	return strings.EqualFold(c.GetHeader("Upgrade"), "websocket")
}

// SkipPaths exempts the given route patterns (gin's FullPath) and websocket
// upgrades.
func SkipPaths(paths ...string) func(*gin.Context) bool {
	set := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		set[p] = struct{}{}
	}
	return func(c *gin.Context) bool {
		if IsWebSocketUpgrade(c) {
			return true
		}
		_, ok := set[c.FullPath()]
		return ok
	}
}

// Timeout runs the rest of the chain with a deadline on the request context.
// The chain writes into a buffer; when the deadline passes first the client
// gets a localized 504 and whatever the handler writes afterwards is dropped.
// Timeout always waits for the chain to return before the context is released.
func Timeout(cfg TimeoutConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Timeout <= 0 || (cfg.Skip != nil && cfg.Skip(c)) {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), cfg.Timeout)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		original := c.Writer
		tw := newTimeoutWriter(original)
		c.Writer = tw

		done := make(chan struct{})
		var panicked any
		go func() {
			defer func() {
				panicked = recover()
				close(done)
			}()
			c.Next()
		}()

		select {
		case <-done:
		case <-ctx.Done():
		}
		timedOut := errors.Is(ctx.Err(), context.DeadlineExceeded) && tw.expire()
		<-done

		c.Writer = original
		if panicked != nil {
			panic(panicked)
		}
		if !timedOut {
			tw.flush()
			return
		}

		requestID := GetRequestID(c)
		log := logger.ForRequest(requestID, GetSessionID(c))
		log.Warn().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Dur("timeout", cfg.Timeout).
			Msg("Request timed out")

		message := i18n.GetTranslator().Translate(i18n.ErrKeyTimeout, i18n.GetLocale(c))
		c.AbortWithStatusJSON(http.StatusGatewayTimeout,
			dto.NewError(dto.ErrCodeTimeout, message).WithRequestID(requestID))
	}
}

// timeoutWriter buffers a response until the chain returns. Headers live in
// their own map so the chain never touches the real writer.
type timeoutWriter struct {
	gin.ResponseWriter

	mu      sync.Mutex
	header  http.Header
	body    bytes.Buffer
	status  int
	written bool
	expired bool
}

func newTimeoutWriter(w gin.ResponseWriter) *timeoutWriter {
	return &timeoutWriter{
		ResponseWriter: w,
		header:         w.Header().Clone(),
		status:         http.StatusOK,
	}
}

func (w *timeoutWriter) Header() http.Header {
	return w.header
}

func (w *timeoutWriter) WriteHeader(code int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired || w.written {
		return
	}
	w.status = code
}

func (w *timeoutWriter) WriteHeaderNow() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.written = true
}

func (w *timeoutWriter) Write(b []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.expired {
		return 0, http.ErrHandlerTimeout
	}
	w.written = true
	return w.body.Write(b)
}

func (w *timeoutWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

func (w *timeoutWriter) Status() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.status
}

func (w *timeoutWriter) Size() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.written {
		return -1
	}
	return w.body.Len()
}

func (w *timeoutWriter) Written() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.written
}

// Flush is a no-op; the buffer is sent once the chain returns.
func (w *timeoutWriter) Flush() {}

// expire stops accepting writes and reports whether the chain had not yet
// produced a response.
func (w *timeoutWriter) expire() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.written {
		return false
	}
	w.expired = true
	return true
}

// flush copies the buffered response to the real writer.
func (w *timeoutWriter) flush() {
	dst := w.ResponseWriter.Header()
	for k := range dst {
		if _, ok := w.header[k]; !ok {
			dst.Del(k)
		}
	}
	for k, v := range w.header {
		dst[k] = v
	}
	w.ResponseWriter.WriteHeader(w.status)
	if w.written {
		w.ResponseWriter.WriteHeaderNow()
	}
	if w.body.Len() > 0 {
		_, _ = w.ResponseWriter.Write(w.body.Bytes())
	}
}

// TimeoutWithDuration is DefaultTimeoutConfig with another deadline.
func TimeoutWithDuration(timeout time.Duration) gin.HandlerFunc {
	cfg := DefaultTimeoutConfig()
	cfg.Timeout = timeout
	return Timeout(cfg)
}
