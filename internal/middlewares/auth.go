package middlewares

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-bank-agent/internal/logger"
)

// Tokener extracts and checks API client tokens. *jwt.JWT satisfies it.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	Validate(ctx context.Context, tokenString string) error
}

// AuthMiddleware lets a request through only when it carries a valid
// bearer token. Rejected requests get 401 with a JSON error body.
func AuthMiddleware(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if err := authenticate(tokener, r); err != nil {
				logger.Log.Warnw("request rejected",
					"request_id", GetRequestID(r.Context()),
					"method", r.Method,
					"uri", r.RequestURI,
					"error", err,
				)
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized"}` + "\n"))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func authenticate(tokener Tokener, r *http.Request) error {
	token, err := tokener.GetTokenFromRequest(r.Context(), r)
	if err != nil {
		return err
	}
	return tokener.Validate(r.Context(), token)
}
