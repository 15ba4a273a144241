package repository

import (
	"context"
	"database/sql"
	"fmt"

	"notehub/internal/domain/model"
)

type NoteRepository interface {
	Create(ctx context.Context, note *model.Note) error
	// ListByOwner returns ownerID's notes, optionally restricted to an exact
	// category match, ordered pinned-first then most-recent-first with
	// insertion order breaking ties.
	ListByOwner(ctx context.Context, ownerID, category string) ([]model.Note, error)
}

type pgNoteRepository struct {
	db *sql.DB
}

func NewPgNoteRepository(db *sql.DB) NoteRepository {
	return &pgNoteRepository{db: db}
}

func (r *pgNoteRepository) Create(ctx context.Context, note *model.Note) error {
	query := `INSERT INTO notes (id, title, content, category, pinned, summary, user_id)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING seq, created_at`
	err := r.db.QueryRowContext(ctx, query,
		note.ID, note.Title, note.Content, note.Category, note.Pinned, note.Summary, note.UserID,
	).Scan(&note.Seq, &note.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgNoteRepository.Create: %w", err)
	}
	return nil
}

func (r *pgNoteRepository) ListByOwner(ctx context.Context, ownerID, category string) ([]model.Note, error) {
	query := `SELECT id, title, content, category, pinned, summary, seq, created_at, user_id
	          FROM notes WHERE user_id = $1`
	args := []interface{}{ownerID}
	if category != "" {
		query += ` AND category = $2`
		args = append(args, category)
	}
	query += ` ORDER BY pinned DESC, created_at DESC, seq ASC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("pgNoteRepository.ListByOwner: %w", err)
	}
	defer rows.Close()

	notes := []model.Note{}
	for rows.Next() {
		var n model.Note
		if err := rows.Scan(
			&n.ID, &n.Title, &n.Content, &n.Category, &n.Pinned, &n.Summary, &n.Seq, &n.CreatedAt, &n.UserID,
		); err != nil {
			return nil, fmt.Errorf("pgNoteRepository.ListByOwner: scan: %w", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgNoteRepository.ListByOwner: rows: %w", err)
	}
	return notes, nil
}
