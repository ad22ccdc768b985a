// middleware/logging.go
package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"airport-booking/concourse/internal/common"
	"airport-booking/concourse/internal/logging"
)

type respLogger struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (l *respLogger) WriteHeader(code int) {
	l.status = code
	l.ResponseWriter.WriteHeader(code)
}

func (l *respLogger) Write(b []byte) (int, error) {
	n, err := l.ResponseWriter.Write(b)
	l.bytes += n
	return n, err
}

// Logging traces requests at debug level and turns handler panics into a 500 envelope.
// Bodies are never logged; they carry passwords and tokens.
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logging.FromContext(r.Context())
		log.Debugw("→ request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)

		lw := &respLogger{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()

		defer func() {
			if rec := recover(); rec != nil {
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Errorw("Handler panicked",
					"method", r.Method,
					"path", r.URL.Path,
					"panic", fmt.Sprint(rec),
					"stack", string(debug.Stack()),
				)
				common.RespondAppError(lw, r, start, fmt.Errorf("panic: %v", rec))
				return
			}
			log.Debugw("← response",
				"status", lw.status,
				"bytes", lw.bytes,
				"duration", time.Since(start).String(),
			)
		}()

		next.ServeHTTP(lw, r)
	})
}
