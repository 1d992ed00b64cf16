package resumes

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/shared/telemetry"
)

// Renderer produces a PDF for a resume and returns the generated filename.
type Renderer interface {
	Render(ctx context.Context, r Resume) (string, error)
}

// Notifier emails a generated PDF to its owner. Failures reduce to false.
type Notifier interface {
	Send(ctx context.Context, email, firstName, lastName, fileName string) bool
}

// FileStore locates generated PDF files on disk.
type FileStore interface {
	Exists(fileName string) bool
	Remove(fileName string) error
	Path(fileName string) (string, error)
}

// Service orchestrates persistence, rendering and notification. Rendering and
// email are best-effort on create and update; only store failures abort a
// request.
type Service struct {
	Repo     Repo
	Renderer Renderer
	Notifier Notifier
	Files    FileStore
}

// CreateResult reports the stored record and the notification outcome.
type CreateResult struct {
	Resume    Resume
	EmailSent bool
}

// Create validates required personal fields, renders the PDF (best effort),
// stores the record and emails the PDF when one was produced.
func (s *Service) Create(ctx context.Context, in ResumeInput) (CreateResult, error) {
	if err := in.Validate(); err != nil {
		return CreateResult{}, err
	}

	r := in.toResume(uuid.NewString(), time.Now().UTC())

	// Render before the store write; a failure just leaves pdf_filename unset.
	if s.Renderer != nil {
		fileName, err := s.Renderer.Render(ctx, r)
		if err != nil {
			telemetry.Warn("render.failed", map[string]any{"resume_id": r.ID, "error": err.Error()})
		} else {
			r.PDFFilename = fileName
		}
	}

	if err := s.Repo.Create(ctx, r); err != nil {
		return CreateResult{}, fmt.Errorf("create resume: %w", err)
	}

	emailSent := false
	if r.PDFFilename != "" && s.Notifier != nil {
		emailSent = s.Notifier.Send(ctx, r.Email, r.FirstName, r.LastName, r.PDFFilename)
	}

	return CreateResult{Resume: r, EmailSent: emailSent}, nil
}

// List returns all resumes, newest first.
func (s *Service) List(ctx context.Context) ([]Resume, error) {
	return s.Repo.List(ctx)
}

// requireID rejects values that cannot be a stored primary key before they
// reach the database; the id column is typed uuid, and a malformed id is
// indistinguishable from an unknown one to the caller.
func requireID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrNotFound
	}
	return nil
}

// Get returns a resume by id.
func (s *Service) Get(ctx context.Context, id string) (Resume, error) {
	if err := requireID(id); err != nil {
		return Resume{}, err
	}
	return s.Repo.GetByID(ctx, id)
}

// Download resolves the PDF file for a resume, generating one on demand when
// none is recorded. It returns the on-disk path and the download name.
func (s *Service) Download(ctx context.Context, id string) (path, downloadName string, err error) {
	if err := requireID(id); err != nil {
		return "", "", err
	}
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return "", "", err
	}

	if r.PDFFilename == "" {
		if s.Renderer == nil {
			return "", "", fmt.Errorf("no renderer configured")
		}
		fileName, err := s.Renderer.Render(ctx, r)
		if err != nil {
			return "", "", fmt.Errorf("render on demand: %w", err)
		}
		if err := s.Repo.SetPDFFilename(ctx, id, fileName); err != nil {
			return "", "", fmt.Errorf("record pdf filename: %w", err)
		}
		r.PDFFilename = fileName
	}

	// A recorded filename whose file vanished is reported, not repaired.
	if !s.Files.Exists(r.PDFFilename) {
		return "", "", ErrFileMissing
	}
	path, err = s.Files.Path(r.PDFFilename)
	if err != nil {
		return "", "", err
	}
	return path, r.FirstName + "_" + r.LastName + "_Resume.pdf", nil
}

// Resend emails the recorded PDF. Unlike Download it never generates one.
func (s *Service) Resend(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.PDFFilename == "" {
		return ErrPDFNotGenerated
	}
	if s.Notifier == nil || !s.Notifier.Send(ctx, r.Email, r.FirstName, r.LastName, r.PDFFilename) {
		return ErrEmailFailed
	}
	return nil
}

// UpdateResult reports the replaced record and the filename of the PDF
// produced by the unconditional re-render, empty when rendering failed.
type UpdateResult struct {
	Resume      Resume
	PDFFilename string
}

// Update replaces all fields of an existing resume, then re-renders the PDF
// and re-sends the email. Render and email failures degrade the result
// instead of failing the update.
func (s *Service) Update(ctx context.Context, id string, in ResumeInput) (UpdateResult, error) {
	if err := requireID(id); err != nil {
		return UpdateResult{}, err
	}
	existing, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return UpdateResult{}, err
	}

	r := in.toResume(id, existing.CreatedAt)
	r.PDFFilename = existing.PDFFilename
	if err := s.Repo.Update(ctx, r); err != nil {
		return UpdateResult{}, fmt.Errorf("update resume: %w", err)
	}

	result := UpdateResult{Resume: r}
	if s.Renderer != nil {
		fileName, err := s.Renderer.Render(ctx, r)
		if err != nil {
			telemetry.Warn("render.failed", map[string]any{"resume_id": id, "error": err.Error()})
			return result, nil
		}
		if err := s.Repo.SetPDFFilename(ctx, id, fileName); err != nil {
			telemetry.Warn("pdf_filename.update_failed", map[string]any{"resume_id": id, "error": err.Error()})
			return result, nil
		}
		result.PDFFilename = fileName
		result.Resume.PDFFilename = fileName

		if s.Notifier != nil {
			sent := s.Notifier.Send(ctx, r.Email, r.FirstName, r.LastName, fileName)
			telemetry.Info("mail.resend_after_update", map[string]any{"resume_id": id, "sent": sent})
		}
	}
	return result, nil
}

// Delete removes the stored PDF if present, then the record.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := requireID(id); err != nil {
		return err
	}
	r, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if r.PDFFilename != "" && s.Files != nil {
		if err := s.Files.Remove(r.PDFFilename); err != nil {
			telemetry.Warn("pdf.remove_failed", map[string]any{"resume_id": id, "error": err.Error()})
		}
	}
	return s.Repo.Delete(ctx, id)
}
