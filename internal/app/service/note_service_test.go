package service

import (
	"context"
	"sort"
	"testing"
	"time"

	"notehub/internal/app/summary"
	"notehub/internal/domain/model"
)

// fakeNoteRepo is an in-memory NoteRepository reproducing the storage-side
// ordering: pinned first, most recent first, insertion order breaking ties.
type fakeNoteRepo struct {
	notes   []model.Note
	nextSeq int64
}

func (r *fakeNoteRepo) Create(ctx context.Context, note *model.Note) error {
	r.nextSeq++
	note.Seq = r.nextSeq
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	r.notes = append(r.notes, *note)
	return nil
}

func (r *fakeNoteRepo) ListByOwner(ctx context.Context, ownerID, category string) ([]model.Note, error) {
	out := []model.Note{}
	for _, n := range r.notes {
		if n.UserID != ownerID {
			continue
		}
		if category != "" && n.Category != category {
			continue
		}
		out = append(out, n)
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Pinned != out[j].Pinned {
			return out[i].Pinned
		}
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].Seq < out[j].Seq
	})
	return out, nil
}

// staticSummarizer returns the same pointer for any non-empty text.
type staticSummarizer struct {
	result *string
}

func (s *staticSummarizer) Summarize(ctx context.Context, text string) *string {
	if text == "" {
		return nil
	}
	return s.result
}

func strPtr(s string) *string { return &s }

var owner = &model.User{ID: "u-1", Username: "alice"}

func TestCreate_Defaults(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, &staticSummarizer{result: strPtr("ok")})

	_, err := svc.Create(context.Background(), owner, CreateNoteRequest{Title: "T", Content: "c"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	n := repo.notes[0]
	if n.Category != model.DefaultCategory {
		t.Errorf("expected category %q, got %q", model.DefaultCategory, n.Category)
	}
	if n.Pinned {
		t.Error("expected pinned to default to false")
	}
	if n.UserID != owner.ID {
		t.Errorf("note not scoped to owner: %q", n.UserID)
	}
}

func TestCreate_EmptyContentHasNoSummary(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, &staticSummarizer{result: strPtr("should not appear")})

	resp, err := svc.Create(context.Background(), owner, CreateNoteRequest{Title: "T"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if resp.Summary != nil {
		t.Errorf("expected nil summary, got %q", *resp.Summary)
	}
	if repo.notes[0].Summary != nil {
		t.Error("expected nil summary persisted")
	}
}

func TestCreate_CollaboratorFailureStillPersists(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	fallback := summary.Fallback
	svc := NewNoteService(repo, &staticSummarizer{result: &fallback})

	resp, err := svc.Create(context.Background(), owner, CreateNoteRequest{Title: "T", Content: "body"})
	if err != nil {
		t.Fatalf("create must not fail on collaborator failure: %v", err)
	}
	if resp.Summary == nil || *resp.Summary != summary.Fallback {
		t.Fatalf("expected placeholder summary, got %v", resp.Summary)
	}
	if len(repo.notes) != 1 {
		t.Fatalf("expected the note to be persisted")
	}
}

func TestList_PinnedFirstThenNewest(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, &staticSummarizer{})

	base := time.Now()
	seed := []model.Note{
		{ID: "A", Title: "A", Pinned: false, CreatedAt: base.Add(1 * time.Minute), UserID: owner.ID},
		{ID: "B", Title: "B", Pinned: true, CreatedAt: base.Add(2 * time.Minute), UserID: owner.ID},
		{ID: "C", Title: "C", Pinned: false, CreatedAt: base.Add(3 * time.Minute), UserID: owner.ID},
	}
	for i := range seed {
		if err := repo.Create(context.Background(), &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	notes, err := svc.List(context.Background(), owner, "", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}

	got := []string{}
	for _, n := range notes {
		got = append(got, n.ID)
	}
	want := []string{"B", "C", "A"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected order %v, got %v", want, got)
		}
	}
}

func TestList_SearchIsCaseInsensitiveAndOrderPreserving(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, &staticSummarizer{})

	base := time.Now()
	seed := []model.Note{
		{ID: "1", Title: "shopping", Content: "buy FOOd", CreatedAt: base.Add(1 * time.Minute), UserID: owner.ID},
		{ID: "2", Title: "misc", Content: "nothing here", CreatedAt: base.Add(2 * time.Minute), UserID: owner.ID},
		{ID: "3", Title: "Football", Content: "fixtures", Pinned: true, CreatedAt: base.Add(3 * time.Minute), UserID: owner.ID},
	}
	for i := range seed {
		if err := repo.Create(context.Background(), &seed[i]); err != nil {
			t.Fatal(err)
		}
	}

	notes, err := svc.List(context.Background(), owner, "", "foo")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(notes))
	}
	// Pinned "Football" ordered ahead of "shopping" before filtering; the
	// filter must not reorder survivors.
	if notes[0].ID != "3" || notes[1].ID != "1" {
		t.Fatalf("filter changed relative order: got [%s %s]", notes[0].ID, notes[1].ID)
	}
}

func TestList_EmptySearchReturnsEverything(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, &staticSummarizer{result: strPtr("s")})

	for _, content := range []string{"one", "two"} {
		if _, err := svc.Create(context.Background(), owner, CreateNoteRequest{Content: content}); err != nil {
			t.Fatal(err)
		}
	}

	notes, err := svc.List(context.Background(), owner, "", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("expected 2 notes, got %d", len(notes))
	}
}

func TestList_ScopedToOwner(t *testing.T) {
	t.Parallel()

	repo := &fakeNoteRepo{}
	svc := NewNoteService(repo, &staticSummarizer{})

	other := &model.User{ID: "u-2", Username: "mallory"}
	mine := model.Note{ID: "mine", UserID: owner.ID, CreatedAt: time.Now()}
	theirs := model.Note{ID: "theirs", UserID: other.ID, CreatedAt: time.Now()}
	for _, n := range []*model.Note{&mine, &theirs} {
		if err := repo.Create(context.Background(), n); err != nil {
			t.Fatal(err)
		}
	}

	notes, err := svc.List(context.Background(), owner, "", "")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(notes) != 1 || notes[0].ID != "mine" {
		t.Fatalf("listing leaked foreign notes: %+v", notes)
	}
}
