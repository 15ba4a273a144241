package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"notehub/internal/app/service"
	"notehub/internal/common"
)

var validate = validator.New()

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) RegisterRoutes(r chi.Router) {
	r.Post("/register", h.register)
	r.Post("/login", h.login)
}

func (h *AuthHandler) register(w http.ResponseWriter, r *http.Request) {
	var req service.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Username and password required!")
		return
	}

	if err := h.authService.Register(r.Context(), req); err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), registerErrorMessage(err))
		return
	}
	common.RespondWithMessage(w, http.StatusCreated, "User registered successfully!")
}

func (h *AuthHandler) login(w http.ResponseWriter, r *http.Request) {
	var req service.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}
	if err := validate.Struct(req); err != nil {
		common.RespondWithError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	resp, err := h.authService.Login(r.Context(), req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "Invalid credentials")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}

func registerErrorMessage(err error) string {
	switch {
	case errors.Is(err, common.ErrConflict):
		return "Username already exists!"
	case errors.Is(err, common.ErrValidation):
		return "Username and password required!"
	default:
		return "Registration failed"
	}
}
