package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"notehub/internal/api/middleware"
	"notehub/internal/app/service"
	"notehub/internal/common"
)

type NoteHandler struct {
	noteService *service.NoteService
}

func NewNoteHandler(noteService *service.NoteService) *NoteHandler {
	return &NoteHandler{noteService: noteService}
}

func (h *NoteHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.listNotes)
	r.Post("/", h.createNote)
}

func (h *NoteHandler) listNotes(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	category := r.URL.Query().Get("category")
	search := r.URL.Query().Get("search")

	notes, err := h.noteService.List(r.Context(), user, category, search)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "Failed to list notes")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, notes)
}

func (h *NoteHandler) createNote(w http.ResponseWriter, r *http.Request) {
	user, ok := middleware.UserFromContext(r.Context())
	if !ok {
		common.RespondWithError(w, http.StatusUnauthorized, "Missing user context")
		return
	}

	var req service.CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	resp, err := h.noteService.Create(r.Context(), user, req)
	if err != nil {
		common.RespondWithError(w, common.HTTPStatusFromError(err), "Failed to create note")
		return
	}
	common.RespondWithJSON(w, http.StatusOK, resp)
}
