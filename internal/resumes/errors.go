package resumes

import "errors"

var (
	// ErrNotFound indicates an unknown resume id.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrPDFNotGenerated indicates no PDF filename is recorded for the resume.
	ErrPDFNotGenerated = errors.New("pdf not generated")

	// ErrFileMissing indicates a recorded PDF filename with no file on disk.
	ErrFileMissing = errors.New("pdf file missing")

	// ErrEmailFailed indicates the notifier reported a delivery failure.
	ErrEmailFailed = errors.New("email delivery failed")
)
