package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// requestLogger emits one structured line per request. Severity follows the
// response status: 5xx logs at error, 4xx at warn, everything else at info.
func requestLogger(logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				status := ww.Status()
				if status == 0 {
					status = http.StatusOK
				}

				var e *zerolog.Event
				switch {
				case status >= 500:
					e = logger.Error()
				case status >= 400:
					e = logger.Warn()
				default:
					e = logger.Info()
				}
				if id := middleware.GetReqID(r.Context()); id != "" {
					e = e.Str("request_id", id)
				}
				e.
					Dur("latency", time.Since(start)).
					Int("status", status).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Int("bytes", ww.BytesWritten()).
					Str("ip", r.RemoteAddr).
					Msg("API")
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
