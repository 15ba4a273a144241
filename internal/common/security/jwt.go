package security

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/golang-jwt/jwt/v5"

	"notehub/internal/common"
)

// TokenService issues and verifies HS256 bearer tokens. It is stateless
// beyond the signing key handed to it at construction.
type TokenService struct {
	auth *jwtauth.JWTAuth
	exp  time.Duration
}

func NewTokenService(key []byte, exp time.Duration) *TokenService {
	return &TokenService{
		auth: jwtauth.New("HS256", key, nil),
		exp:  exp,
	}
}

// Issue signs a token carrying the user's id and an absolute expiry.
func (s *TokenService) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":  userID,
		"exp": now.Add(s.exp).Unix(),
		"iat": now.Unix(),
	}
	_, tokenString, err := s.auth.Encode(claims)
	return tokenString, err
}

// Verify validates the signature and expiry of tokenString and returns the
// user id it carries. Expired tokens report common.ErrTokenExpired; every
// other failure (bad signature, malformed payload, missing id claim) reports
// common.ErrTokenInvalid.
func (s *TokenService) Verify(tokenString string) (string, error) {
	token, err := jwtauth.VerifyToken(s.auth, tokenString)
	if err != nil {
		if errors.Is(err, jwtauth.ErrExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrTokenInvalid
	}

	raw, ok := token.Get("id")
	if !ok {
		return "", common.ErrTokenInvalid
	}
	id, ok := raw.(string)
	if !ok || id == "" {
		return "", common.ErrTokenInvalid
	}
	return id, nil
}

// Verifier returns the middleware that extracts and verifies the bearer
// token from "Authorization: Bearer <token>" and stores the result in the
// request context for the Authenticator.
func (s *TokenService) Verifier() func(http.Handler) http.Handler {
	return jwtauth.Verifier(s.auth)
}

// UserIDFromClaims extracts the user id from verified token claims.
func UserIDFromClaims(claims jwt.MapClaims) (string, error) {
	id, ok := claims["id"].(string)
	if !ok || id == "" {
		return "", errors.New("id claim is missing or not a string")
	}
	return id, nil
}
