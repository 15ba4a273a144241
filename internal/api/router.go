package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"

	"notehub/internal/api/handler"
	"notehub/internal/api/middleware"
	"notehub/internal/app/service"
	"notehub/internal/common/security"
	"notehub/internal/domain/repository"
)

func NewRouter(
	tokens *security.TokenService,
	userRepo repository.UserRepository,
	authService *service.AuthService,
	noteService *service.NoteService,
) http.Handler {
	r := chi.NewRouter()

	// Base Middlewares
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Timeout(60 * time.Second))

	// Verifies the bearer token from "Authorization: Bearer <token>" and
	// stores the result in the request context. Rejection happens later in
	// middleware.Authenticator, so public routes stay reachable.
	r.Use(tokens.Verifier())

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Auth routes (public)
	authHandler := handler.NewAuthHandler(authService)
	r.Group(func(public chi.Router) {
		authHandler.RegisterRoutes(public)
	})

	// Note routes (authenticated)
	noteHandler := handler.NewNoteHandler(noteService)
	r.Route("/notes", func(notes chi.Router) {
		notes.Use(middleware.Authenticator(userRepo))
		noteHandler.RegisterRoutes(notes)
	})

	return r
}
