package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func newMockRepo(t *testing.T) (*PGRepo, sqlmock.Sqlmock) {
	t.Helper()
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = mockDB.Close() })
	return &PGRepo{DB: mockDB}, mock
}

func resumeColumnNames() []string {
	return []string{
		"id", "first_name", "last_name", "email", "phone", "location", "portfolio_url", "linkedin_url",
		"objective", "years_experience", "desired_roles",
		"education_json", "skills_json", "experience_json", "projects_json", "extra_curricular_json", "leadership_json",
		"pdf_filename", "created_at", "updated_at",
	}
}

func TestPGRepoCreateJoinsDesiredRoles(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	res := Resume{
		ID:           "resume-1",
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "ada@x.com",
		Objective:    "Engineer",
		DesiredRoles: []string{"Backend", "Infra"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	mock.ExpectExec("INSERT INTO resumes").
		WithArgs(
			res.ID,
			res.FirstName,
			res.LastName,
			res.Email,
			sql.NullString{}, // phone
			sql.NullString{}, // location
			sql.NullString{}, // portfolio_url
			sql.NullString{}, // linkedin_url
			res.Objective,
			sql.NullString{}, // years_experience
			sql.NullString{String: "Backend, Infra", Valid: true},
			[]byte("[]"),
			[]byte("{}"),
			[]byte("[]"),
			[]byte("[]"),
			[]byte("{}"),
			[]byte("{}"),
			sql.NullString{}, // pdf_filename
			now,
			now,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), res); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDSplitsDesiredRoles(t *testing.T) {
	repo, mock := newMockRepo(t)

	now := time.Now().UTC()
	rows := sqlmock.NewRows(resumeColumnNames()).AddRow(
		"resume-1", "Ada", "Lovelace", "ada@x.com", nil, nil, nil, nil,
		"Engineer", nil, "Backend, Infra",
		[]byte(`[{"degree":"BSc"}]`), []byte(`{"technical":["Go"]}`), []byte("[]"), []byte("[]"), []byte("{}"), []byte("{}"),
		"resume_abc.pdf", now, now,
	)
	mock.ExpectQuery("SELECT (.+) FROM resumes").WithArgs("resume-1").WillReturnRows(rows)

	res, err := repo.GetByID(context.Background(), "resume-1")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(res.DesiredRoles) != 2 || res.DesiredRoles[0] != "Backend" || res.DesiredRoles[1] != "Infra" {
		t.Fatalf("expected split roles, got %v", res.DesiredRoles)
	}
	if string(res.Education) != `[{"degree":"BSc"}]` {
		t.Fatalf("education not returned verbatim: %s", res.Education)
	}
	if res.PDFFilename != "resume_abc.pdf" {
		t.Fatalf("unexpected pdf filename %q", res.PDFFilename)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByIDNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT (.+) FROM resumes").WithArgs("missing").WillReturnError(sql.ErrNoRows)

	if _, err := repo.GetByID(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoUpdateNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE resumes SET").WillReturnResult(sqlmock.NewResult(0, 0))

	res := Resume{ID: "missing", FirstName: "Ada", LastName: "Lovelace", Email: "ada@x.com", Objective: "Engineer"}
	res.Education = json.RawMessage("[]")
	if err := repo.Update(context.Background(), res); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoSetPDFFilenameTouchesUpdatedAt(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec(`UPDATE resumes SET pdf_filename = \$2, updated_at = now\(\)`).
		WithArgs("resume-1", sql.NullString{String: "resume_x.pdf", Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SetPDFFilename(context.Background(), "resume-1", "resume_x.pdf"); err != nil {
		t.Fatalf("SetPDFFilename: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoSetPDFFilenameNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("UPDATE resumes SET pdf_filename").
		WithArgs("missing", sql.NullString{String: "resume_x.pdf", Valid: true}).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.SetPDFFilename(context.Background(), "missing", "resume_x.pdf"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestPGRepoDeleteNotFound(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectExec("DELETE FROM resumes").WithArgs("missing").WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Delete(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
