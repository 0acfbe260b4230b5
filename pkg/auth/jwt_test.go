package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/getzep/csmentor/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			Secret: "test-secret",
		},
	}
}

func TestGenerateJWT(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWT(cfg, time.Hour)
	require.NoError(t, err)

	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(cfg.Auth.Secret), nil
	})
	require.NoError(t, err)
	assert.True(t, parsedToken.Valid)
	assert.Equal(t, Issuer, claims["iss"])
	assert.Contains(t, claims, "iat")
	assert.Contains(t, claims, "exp")

	t.Run("no expiry", func(t *testing.T) {
		token, err := GenerateJWT(cfg, 0)
		require.NoError(t, err)

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(cfg.Auth.Secret), nil
		})
		require.NoError(t, err)
		assert.NotContains(t, claims, "exp")
	})

	t.Run("missing secret", func(t *testing.T) {
		_, err := GenerateJWT(&config.Config{}, 0)
		assert.ErrorIs(t, err, ErrMissingSecret)

		_, err = JWTVerifier(&config.Config{})
		assert.ErrorIs(t, err, ErrMissingSecret)
	})
}

func TestJWTVerifier(t *testing.T) {
	cfg := testConfig()
	verifier, err := JWTVerifier(cfg)
	require.NoError(t, err)

	router := chi.NewRouter()
	router.Use(verifier)
	router.Use(Authenticator)
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	bearer := func(t *testing.T, token string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
		res := httptest.NewRecorder()
		router.ServeHTTP(res, req)
		return res
	}

	t.Run("generated token", func(t *testing.T) {
		token, err := GenerateJWT(cfg, time.Minute)
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, bearer(t, token).Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		other, err := GenerateJWT(&config.Config{Auth: config.AuthConfig{Secret: "other"}}, 0)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, bearer(t, other).Code)
	})

	t.Run("expired token", func(t *testing.T) {
		tokenAuth, err := NewTokenAuth(cfg)
		require.NoError(t, err)
		claims := map[string]interface{}{"iss": Issuer}
		jwtauth.SetExpiry(claims, time.Now().Add(-time.Minute))
		_, expired, err := tokenAuth.Encode(claims)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, bearer(t, expired).Code)
	})

	t.Run("missing token", func(t *testing.T) {
		res := bearer(t, "")
		assert.Equal(t, http.StatusUnauthorized, res.Code)
		assert.Contains(t, res.Body.String(), `"detail"`)
		assert.Equal(t, "application/json", res.Header().Get("Content-Type"))
	})

	t.Run("invalid token", func(t *testing.T) {
		assert.Equal(t, http.StatusUnauthorized, bearer(t, "invalid-token").Code)
	})
}
