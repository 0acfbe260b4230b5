package auth

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"

	"github.com/getzep/csmentor/config"
	"github.com/getzep/csmentor/pkg/server/handlertools"
)

const (
	JwtAlg = "HS256"
	Issuer = "csmentor"
)

var (
	ErrMissingSecret = errors.New(
		"auth secret not set, ensure CSMENTOR_AUTH_SECRET is set in your environment",
	)
	ErrUnauthorized = errors.New("unauthorized")
)

// NewTokenAuth builds the HS256 signer/verifier for the configured secret.
func NewTokenAuth(cfg *config.Config) (*jwtauth.JWTAuth, error) {
	if cfg == nil || cfg.Auth.Secret == "" {
		return nil, ErrMissingSecret
	}
	return jwtauth.New(JwtAlg, []byte(cfg.Auth.Secret), nil), nil
}

// GenerateJWT issues a bearer token for /ask and /intents/search. A ttl of
// zero issues a token that never expires.
func GenerateJWT(cfg *config.Config, ttl time.Duration) (string, error) {
	tokenAuth, err := NewTokenAuth(cfg)
	if err != nil {
		return "", err
	}

	claims := map[string]interface{}{"iss": Issuer}
	jwtauth.SetIssuedNow(claims)
	if ttl > 0 {
		jwtauth.SetExpiryIn(claims, ttl)
	}

	_, tokenString, err := tokenAuth.Encode(claims)
	if err != nil {
		return "", fmt.Errorf("error generating auth token: %w", err)
	}
	return tokenString, nil
}

// JWTVerifier finds and verifies bearer tokens. Pair it with Authenticator.
func JWTVerifier(cfg *config.Config) (func(http.Handler) http.Handler, error) {
	tokenAuth, err := NewTokenAuth(cfg)
	if err != nil {
		return nil, err
	}
	return jwtauth.Verifier(tokenAuth), nil
}

// Authenticator rejects requests whose token was missing or failed
// verification, with the same JSON error body as the rest of the API.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, _, err := jwtauth.FromContext(r.Context())
		if err != nil || token == nil {
			if err == nil {
				err = jwtauth.ErrNoTokenFound
			}
			handlertools.RenderError(
				w,
				fmt.Errorf("%w: %w", ErrUnauthorized, err),
				http.StatusUnauthorized,
			)
			return
		}
		next.ServeHTTP(w, r)
	})
}
