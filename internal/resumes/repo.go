package resumes

import "context"

// Repo defines persistence operations for resumes.
type Repo interface {
	Create(ctx context.Context, r Resume) error
	List(ctx context.Context) ([]Resume, error)
	GetByID(ctx context.Context, id string) (Resume, error)
	Update(ctx context.Context, r Resume) error
	SetPDFFilename(ctx context.Context, id, fileName string) error
	Delete(ctx context.Context, id string) error
}
