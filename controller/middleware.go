package controller

import (
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/jobform/handler"
	"github.com/dmitrymomot/jobform/pkg/logger"
)

// RequestLogger logs one line per request with the method, path, status
// and duration. 5xx responses log at error, 4xx at warn, the rest at info.
// Requests to skipPaths are not logged.
func RequestLogger(log *slog.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	log = log.With(logger.Component("http.request"))

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if slices.Contains(skipPaths, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}

			level := slog.LevelInfo
			switch {
			case status >= http.StatusInternalServerError:
				level = slog.LevelError
			case status >= http.StatusBadRequest:
				level = slog.LevelWarn
			}

			log.LogAttrs(r.Context(), level, "request completed",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", status),
				slog.Int("bytes", ww.BytesWritten()),
				logger.Duration(time.Since(start)),
			)
		})
	}
}

// RateLimited answers a request denied by a rate limiter through the error
// handler, so each client gets the rejection in its own format.
func RateLimited(errorHandler handler.ErrorHandler[handler.Context]) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if errorHandler == nil {
			http.Error(w, handler.ErrTooManyRequests.Key, handler.ErrTooManyRequests.Code)
			return
		}
		errorHandler(handler.NewContext(w, r), handler.ErrTooManyRequests)
	})
}
