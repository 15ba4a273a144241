package middleware

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"notehub/internal/common"
	"notehub/internal/common/security"
	"notehub/internal/domain/model"
	"notehub/internal/domain/repository"
)

type contextKey string

const userCtxKey contextKey = "currentUser"

// Authenticator gates protected routes. It reads the verification result the
// jwtauth Verifier left in the request context, rejects missing and
// invalid/expired tokens with 401, and resolves the id claim to a live user
// row. The resolved user is placed in the context so every downstream data
// access is scoped to it, never to client-supplied identifiers.
func Authenticator(users repository.UserRepository) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil || token == nil {
				if errors.Is(err, jwtauth.ErrNoTokenFound) {
					common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
				} else {
					common.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				}
				return
			}

			userID, err := security.UserIDFromClaims(claims)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			// The id must still resolve to an existing user; a token for a
			// vanished account is as good as no token.
			user, err := users.FindByID(r.Context(), userID)
			if err != nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), userCtxKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext returns the user resolved by Authenticator.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userCtxKey).(*model.User)
	return user, ok
}
