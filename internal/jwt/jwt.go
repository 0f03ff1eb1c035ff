package jwt

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims identifies the API client a token was issued to.
type Claims struct {
	jwt.RegisteredClaims
	ClientID string `json:"client_id"`
}

// JWT issues and validates API tokens for tool clients.
type JWT struct {
	SecretKey string        // Secret key for signing tokens
	Exp       time.Duration // Token expiration duration
}

// New creates a new JWT instance
func New(secretKey string, expiration time.Duration) *JWT {
	return &JWT{
		SecretKey: secretKey,
		Exp:       expiration,
	}
}

// Generate creates a token for the given client
func (j *JWT) Generate(ctx context.Context, clientID string) (string, error) {
	if clientID == "" {
		return "", errors.New("client id is empty")
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   clientID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.Exp)),
		},
		ClientID: clientID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(j.SecretKey))
}

// GetClaims parses and validates the token string and returns its claims
func (j *JWT) GetClaims(ctx context.Context, tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(j.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.ClientID == "" {
		return nil, errors.New("client_id not found in token")
	}
	return claims, nil
}

// Validate reports whether the token string is a valid, unexpired token
func (j *JWT) Validate(ctx context.Context, tokenString string) error {
	_, err := j.GetClaims(ctx, tokenString)
	return err
}

// GetTokenFromRequest extracts the token string from the Authorization header
func (j *JWT) GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("authorization header missing")
	}

	parts := strings.Fields(authHeader)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", errors.New("invalid authorization header format")
	}

	return parts[1], nil
}
