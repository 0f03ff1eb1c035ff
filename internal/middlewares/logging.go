package middlewares

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type requestIDKey struct{}

// GetRequestID returns the request ID stored by LoggingMiddleware, if any.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// LoggingMiddleware returns a middleware that logs requests and responses using the provided SugaredLogger.
// It also generates a unique request ID for each HTTP request.
func LoggingMiddleware(log *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqID := uuid.New().String()

			start := time.Now()

			rw := &responseWriter{
				ResponseWriter: w,
				statusCode:     http.StatusOK,
			}

			r = r.WithContext(context.WithValue(r.Context(), requestIDKey{}, reqID))
			w.Header().Set("X-Request-ID", reqID)

			next.ServeHTTP(rw, r)

			log.Infow("request",
				"request_id", reqID,
				"method", r.Method,
				"uri", r.RequestURI,
				"duration", time.Since(start),
			)

			log.Infow("response",
				"request_id", reqID,
				"status", rw.statusCode,
				"response_size", strconv.Itoa(rw.size)+"B",
			)
		})
	}
}

type responseWriter struct {
	http.ResponseWriter
	statusCode int
	size       int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	size, err := rw.ResponseWriter.Write(b)
	rw.size += size
	return size, err
}

// Flush lets streaming responses (MCP over SSE) pass through the wrapper.
func (rw *responseWriter) Flush() {
	if f, ok := rw.ResponseWriter.(http.Flusher); ok {
		f.Flush()
	}
}
