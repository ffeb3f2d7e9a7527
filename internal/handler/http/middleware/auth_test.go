package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protected(ja *jwtauth.JWTAuth) http.Handler {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return jwtauth.Verifier(ja)(AuthRequired(ja)(next))
}

func encode(t *testing.T, ja *jwtauth.JWTAuth, claims map[string]interface{}) string {
	t.Helper()
	_, token, err := ja.Encode(claims)
	require.NoError(t, err)
	return token
}

func TestAuthRequiredAcceptsAccessToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token := encode(t, ja, map[string]interface{}{
		"sub":  "2001",
		"role": "ADMIN",
		"type": "access",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(ja).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestAuthRequiredRejectsMissingToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	protected(ja).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthRequiredRejectsNonAccessToken(t *testing.T) {
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token := encode(t, ja, map[string]interface{}{
		"sub":  "2001",
		"type": "refresh",
		"exp":  time.Now().Add(time.Hour).Unix(),
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	protected(ja).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
