package files

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"
)

func TestSaveOpenRoundTrip(t *testing.T) {
	store := New(t.TempDir())
	ctx := context.Background()

	path, err := store.Save(ctx, "resume_a.pdf", []byte("%PDF-1.4 data"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if path != filepath.Join(store.Dir(), "resume_a.pdf") {
		t.Fatalf("unexpected path %q", path)
	}
	if !store.Exists("resume_a.pdf") {
		t.Fatal("expected file to exist after Save")
	}

	rc, err := store.Open(ctx, "resume_a.pdf")
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(data) != "%PDF-1.4 data" {
		t.Fatalf("read back %q", data)
	}
}

func TestSaveCreatesBaseDir(t *testing.T) {
	base := filepath.Join(t.TempDir(), "public", "generated")
	store := New(base)

	if _, err := store.Save(context.Background(), "resume_b.pdf", []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, "resume_b.pdf")); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestRemoveIsIdempotent(t *testing.T) {
	store := New(t.TempDir())

	if _, err := store.Save(context.Background(), "resume_c.pdf", []byte("x")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Remove("resume_c.pdf"); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	if store.Exists("resume_c.pdf") {
		t.Fatal("expected file removed")
	}
	// Removing again is not an error.
	if err := store.Remove("resume_c.pdf"); err != nil {
		t.Fatalf("second Remove: %v", err)
	}
}

func TestPathRejectsTraversal(t *testing.T) {
	store := New(t.TempDir())

	for _, name := range []string{"../etc/passwd", "..", "a/b.pdf", "/abs.pdf", "."} {
		if _, err := store.Path(name); err == nil {
			t.Fatalf("expected Path(%q) to fail", name)
		}
	}
	if _, err := store.Path("resume_ok.pdf"); err != nil {
		t.Fatalf("Path: %v", err)
	}
}

func TestCanceledContextRefused(t *testing.T) {
	store := New(t.TempDir())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.Save(ctx, "resume_d.pdf", []byte("x")); err == nil {
		t.Fatal("expected Save to honor a canceled context")
	}
	if _, err := store.Open(ctx, "resume_d.pdf"); err == nil {
		t.Fatal("expected Open to honor a canceled context")
	}
}
