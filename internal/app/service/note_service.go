package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"notehub/internal/app/summary"
	"notehub/internal/domain/model"
	"notehub/internal/domain/repository"
)

type NoteService struct {
	noteRepo   repository.NoteRepository
	summarizer summary.Summarizer
}

func NewNoteService(noteRepo repository.NoteRepository, summarizer summary.Summarizer) *NoteService {
	return &NoteService{noteRepo: noteRepo, summarizer: summarizer}
}

type CreateNoteRequest struct {
	Title    string `json:"title"`
	Content  string `json:"content"`
	Category string `json:"category"`
	Pinned   bool   `json:"pinned"`
}

type CreateNoteResponse struct {
	Message string  `json:"message"`
	Summary *string `json:"summary"`
}

// Create persists a note for owner. The summarizer runs synchronously first;
// its failure never fails the creation, it only degrades the stored summary.
func (s *NoteService) Create(ctx context.Context, owner *model.User, req CreateNoteRequest) (*CreateNoteResponse, error) {
	category := req.Category
	if category == "" {
		category = model.DefaultCategory
	}

	noteSummary := s.summarizer.Summarize(ctx, req.Content)

	note := &model.Note{
		ID:       uuid.NewString(),
		Title:    req.Title,
		Content:  req.Content,
		Category: category,
		Pinned:   req.Pinned,
		Summary:  noteSummary,
		UserID:   owner.ID,
	}

	if err := s.noteRepo.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("failed to create note: %w", err)
	}
	return &CreateNoteResponse{Message: "Note created successfully!", Summary: noteSummary}, nil
}

// List returns owner's notes, restricted to category when supplied. The
// repository delivers them pinned-first then most-recent-first; the search
// filter runs afterwards over that ordered set so survivors keep their
// relative order.
func (s *NoteService) List(ctx context.Context, owner *model.User, category, search string) ([]model.Note, error) {
	notes, err := s.noteRepo.ListByOwner(ctx, owner.ID, category)
	if err != nil {
		return nil, fmt.Errorf("failed to list notes: %w", err)
	}

	if search == "" {
		return notes, nil
	}

	needle := strings.ToLower(search)
	filtered := []model.Note{}
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			filtered = append(filtered, n)
		}
	}
	return filtered, nil
}
