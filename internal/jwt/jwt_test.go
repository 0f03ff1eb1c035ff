package jwt

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_GenerateAndValidate(t *testing.T) {
	j := New("test-secret", time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "langgraph-agent")
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	assert.NoError(t, j.Validate(ctx, token))

	claims, err := j.GetClaims(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, "langgraph-agent", claims.ClientID)
	assert.Equal(t, "langgraph-agent", claims.Subject)
}

func TestJWT_EmptyClient(t *testing.T) {
	_, err := New("test-secret", time.Minute).Generate(context.Background(), "")
	assert.Error(t, err)
}

func TestJWT_ExpiredToken(t *testing.T) {
	j := New("test-secret", -time.Minute)
	ctx := context.Background()

	token, err := j.Generate(ctx, "agent")
	require.NoError(t, err)

	assert.Error(t, j.Validate(ctx, token))
}

func TestJWT_WrongSecret(t *testing.T) {
	ctx := context.Background()

	token, err := New("secret-a", time.Minute).Generate(ctx, "agent")
	require.NoError(t, err)

	assert.Error(t, New("secret-b", time.Minute).Validate(ctx, token))
	assert.Error(t, New("secret-a", time.Minute).Validate(ctx, "not-a-token"))
}

func TestJWT_GetTokenFromRequest(t *testing.T) {
	j := New("test-secret", time.Minute)

	tests := []struct {
		name      string
		header    string
		wantToken string
		wantErr   bool
	}{
		{name: "valid", header: "Bearer abc.def.ghi", wantToken: "abc.def.ghi"},
		{name: "lowercase_scheme", header: "bearer abc", wantToken: "abc"},
		{name: "missing", header: "", wantErr: true},
		{name: "wrong_scheme", header: "Basic abc", wantErr: true},
		{name: "extra_parts", header: "Bearer a b", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/", nil)
			if tt.header != "" {
				r.Header.Set("Authorization", tt.header)
			}

			token, err := j.GetTokenFromRequest(context.Background(), r)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}
