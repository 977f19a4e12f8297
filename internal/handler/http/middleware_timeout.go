package http

import (
	"bytes"
	"context"
	"errors"
	"maps"
	"net/http"
	"sync"
	"time"
)

const timeoutMessage = "request timeout"

// withTimeout aborts requests that have not completed within timeout. The
// request context is cancelled and the client receives 408 with
// timeoutMessage; anything the handler wrote so far is discarded.
// A non-positive timeout disables the limit.
func withTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if timeout <= 0 {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			r = r.WithContext(ctx)

			tw := &timeoutWriter{h: make(http.Header)}
			done := make(chan struct{})
			panicChan := make(chan any, 1)

			go func() {
				defer func() {
					if p := recover(); p != nil {
						panicChan <- p
					}
				}()
				next.ServeHTTP(tw, r)
				close(done)
			}()

			select {
			case p := <-panicChan:
				// re-raised on the serving goroutine so Recoverer sees it
				panic(p)
			case <-done:
				tw.mu.Lock()
				defer tw.mu.Unlock()

				maps.Copy(w.Header(), tw.h)
				if !tw.wroteHeader {
					tw.code = http.StatusOK
				}
				w.WriteHeader(tw.code)
				_, _ = w.Write(tw.buf.Bytes())
			case <-ctx.Done():
				tw.mu.Lock()
				defer tw.mu.Unlock()

				tw.err = ctx.Err()
				if errors.Is(tw.err, context.DeadlineExceeded) {
					tw.err = http.ErrHandlerTimeout
					w.Header().Set("Content-Type", "text/plain; charset=utf-8")
					w.WriteHeader(http.StatusRequestTimeout)
					_, _ = w.Write([]byte(timeoutMessage))
				}
			}
		})
	}
}

// timeoutWriter buffers the response of a handler running under withTimeout.
// After the deadline every write fails with http.ErrHandlerTimeout.
type timeoutWriter struct {
	h   http.Header
	buf bytes.Buffer

	mu          sync.Mutex
	err         error
	wroteHeader bool
	code        int
}

func (tw *timeoutWriter) Header() http.Header { return tw.h }

func (tw *timeoutWriter) Write(p []byte) (int, error) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	if tw.err != nil {
		return 0, tw.err
	}
	if !tw.wroteHeader {
		tw.writeHeaderLocked(http.StatusOK)
	}

	return tw.buf.Write(p)
}

func (tw *timeoutWriter) WriteHeader(code int) {
	tw.mu.Lock()
	defer tw.mu.Unlock()

	tw.writeHeaderLocked(code)
}

func (tw *timeoutWriter) writeHeaderLocked(code int) {
	if tw.err != nil || tw.wroteHeader {
		return
	}

	tw.wroteHeader = true
	tw.code = code
}
