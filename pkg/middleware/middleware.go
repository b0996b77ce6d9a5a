package middleware

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// SetChain wraps a handler with the given middlewares; the first
// middleware in the list is the outermost.
func SetChain(handler http.Handler, middlewares ...func(http.Handler) http.Handler) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

// SetRouteChain wraps a route handler func with per-route middlewares;
// the first middleware in the list is the outermost.
func SetRouteChain(handler http.HandlerFunc, middlewares ...func(http.HandlerFunc) http.HandlerFunc) http.HandlerFunc {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}

	return handler
}

type HTTPRequestLogger struct {
	logger             *logrus.Logger
	debug              bool
	errorThresholdCode int
}

func NewHTTPRequestLogger(logger *logrus.Logger, debug bool, errorThresholdCode int) *HTTPRequestLogger {
	return &HTTPRequestLogger{
		logger:             logger,
		debug:              debug,
		errorThresholdCode: errorThresholdCode,
	}
}

type statusRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (r *statusRecorder) WriteHeader(statusCode int) {
	r.statusCode = statusCode
	r.ResponseWriter.WriteHeader(statusCode)
}

func (l *HTTPRequestLogger) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rec := &statusRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(rec, r)

		entry := l.logger.WithContext(r.Context()).WithFields(logrus.Fields{
			"method":     r.Method,
			"path":       r.URL.Path,
			"statusCode": rec.statusCode,
			"elapsed":    time.Since(start).String(),
		})

		switch {
		case rec.statusCode >= l.errorThresholdCode:
			entry.Error("http request")
		case l.debug:
			entry.Info("http request")
		}
	})
}
