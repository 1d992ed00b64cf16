package resumes

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"
)

// MemoryRepo is an in-memory implementation of Repo, used when no database is
// configured (dev fallback) and by handler tests.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume
	seq  map[string]int64
	next int64
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
		seq:  make(map[string]int64),
	}
}

// Create stores a new resume.
func (r *MemoryRepo) Create(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.next++
	r.seq[res.ID] = r.next
	r.data[res.ID] = cloneResume(res)
	return nil
}

// List returns all resumes, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Resume, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Resume, 0, len(r.data))
	for id := range r.data {
		out = append(out, cloneResume(r.data[id]))
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return r.seq[out[i].ID] > r.seq[out[j].ID]
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

// GetByID returns a resume by id.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[id]
	if !ok {
		return Resume{}, ErrNotFound
	}
	return cloneResume(res), nil
}

// Update replaces all fields of an existing resume except pdf_filename and created_at.
func (r *MemoryRepo) Update(ctx context.Context, res Resume) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.data[res.ID]
	if !ok {
		return ErrNotFound
	}
	res.PDFFilename = existing.PDFFilename
	res.CreatedAt = existing.CreatedAt
	r.data[res.ID] = cloneResume(res)
	return nil
}

// SetPDFFilename records the latest generated PDF for a resume.
func (r *MemoryRepo) SetPDFFilename(ctx context.Context, id, fileName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	res, ok := r.data[id]
	if !ok {
		return ErrNotFound
	}
	res.PDFFilename = fileName
	res.UpdatedAt = time.Now().UTC()
	r.data[id] = res
	return nil
}

// Delete removes a resume.
func (r *MemoryRepo) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return ErrNotFound
	}
	delete(r.data, id)
	delete(r.seq, id)
	return nil
}

// cloneResume copies the record including its raw section payloads so callers
// cannot alias stored bytes.
func cloneResume(res Resume) Resume {
	out := res
	out.DesiredRoles = append([]string(nil), res.DesiredRoles...)
	out.Education = cloneRaw(res.Education)
	out.Skills = cloneRaw(res.Skills)
	out.Experience = cloneRaw(res.Experience)
	out.Projects = cloneRaw(res.Projects)
	out.ExtraCurricular = cloneRaw(res.ExtraCurricular)
	out.Leadership = cloneRaw(res.Leadership)
	return out
}

func cloneRaw(raw json.RawMessage) json.RawMessage {
	if raw == nil {
		return nil
	}
	return append(json.RawMessage(nil), raw...)
}

var _ Repo = (*MemoryRepo)(nil)
