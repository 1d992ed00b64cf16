package resumes

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestMemoryRepoListNewestFirst(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	base := time.Now().UTC()

	for i, id := range []string{"a", "b", "c"} {
		res := Resume{ID: id, FirstName: "F", LastName: "L", Email: "e@x.com", Objective: "o", CreatedAt: base.Add(time.Duration(i) * time.Second)}
		if err := repo.Create(ctx, res); err != nil {
			t.Fatalf("Create %s: %v", id, err)
		}
	}

	out, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(out) != 3 || out[0].ID != "c" || out[1].ID != "b" || out[2].ID != "a" {
		t.Fatalf("expected newest first, got %v", []string{out[0].ID, out[1].ID, out[2].ID})
	}
}

func TestMemoryRepoSectionsDoNotAlias(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	raw := json.RawMessage(`[{"degree":"BSc"}]`)
	res := Resume{ID: "a", FirstName: "F", LastName: "L", Email: "e@x.com", Objective: "o", Education: raw, CreatedAt: time.Now()}
	if err := repo.Create(ctx, res); err != nil {
		t.Fatalf("Create: %v", err)
	}

	// Mutating the caller's buffer must not affect the stored record.
	raw[2] = 'X'

	stored, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if string(stored.Education) != `[{"degree":"BSc"}]` {
		t.Fatalf("stored education mutated: %s", stored.Education)
	}
}

func TestMemoryRepoUpdatePreservesPDFAndCreatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	createdAt := time.Now().UTC().Add(-time.Hour)

	if err := repo.Create(ctx, Resume{ID: "a", FirstName: "F", LastName: "L", Email: "e@x.com", Objective: "o", CreatedAt: createdAt}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SetPDFFilename(ctx, "a", "resume_x.pdf"); err != nil {
		t.Fatalf("SetPDFFilename: %v", err)
	}

	if err := repo.Update(ctx, Resume{ID: "a", FirstName: "G", LastName: "L", Email: "e@x.com", Objective: "new"}); err != nil {
		t.Fatalf("Update: %v", err)
	}

	stored, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if stored.FirstName != "G" || stored.Objective != "new" {
		t.Fatalf("update not applied: %+v", stored)
	}
	if stored.PDFFilename != "resume_x.pdf" {
		t.Fatalf("pdf filename lost on update: %q", stored.PDFFilename)
	}
	if !stored.CreatedAt.Equal(createdAt) {
		t.Fatalf("createdAt changed on update")
	}
}

func TestMemoryRepoSetPDFFilenameBumpsUpdatedAt(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()
	stale := time.Now().UTC().Add(-time.Hour)

	if err := repo.Create(ctx, Resume{ID: "a", FirstName: "F", LastName: "L", Email: "e@x.com", Objective: "o", CreatedAt: stale, UpdatedAt: stale}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.SetPDFFilename(ctx, "a", "resume_x.pdf"); err != nil {
		t.Fatalf("SetPDFFilename: %v", err)
	}

	stored, err := repo.GetByID(ctx, "a")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if !stored.UpdatedAt.After(stale) {
		t.Fatalf("expected updatedAt to advance past %v, got %v", stale, stored.UpdatedAt)
	}
}

func TestMemoryRepoNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	if _, err := repo.GetByID(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("GetByID: expected ErrNotFound, got %v", err)
	}
	if err := repo.Update(ctx, Resume{ID: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Update: expected ErrNotFound, got %v", err)
	}
	if err := repo.SetPDFFilename(ctx, "x", "f.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("SetPDFFilename: expected ErrNotFound, got %v", err)
	}
	if err := repo.Delete(ctx, "x"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete: expected ErrNotFound, got %v", err)
	}
}
