package resumes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
)

// PGRepo implements Repo using Postgres.
type PGRepo struct {
	DB *sql.DB
}

const resumeColumns = `id, first_name, last_name, email, phone, location, portfolio_url, linkedin_url,
objective, years_experience, desired_roles,
education_json, skills_json, experience_json, projects_json, extra_curricular_json, leadership_json,
pdf_filename, created_at, updated_at`

// Create inserts a new resume.
func (r *PGRepo) Create(ctx context.Context, res Resume) error {
	const query = `
INSERT INTO resumes (
    id, first_name, last_name, email, phone, location, portfolio_url, linkedin_url,
    objective, years_experience, desired_roles,
    education_json, skills_json, experience_json, projects_json, extra_curricular_json, leadership_json,
    pdf_filename, created_at, updated_at
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20)`

	res.normalizeSections()
	_, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.FirstName,
		res.LastName,
		res.Email,
		nullIfEmpty(res.Phone),
		nullIfEmpty(res.Location),
		nullIfEmpty(res.PortfolioURL),
		nullIfEmpty(res.LinkedinURL),
		res.Objective,
		nullIfEmpty(res.YearsExperience),
		nullIfEmpty(JoinRoles(res.DesiredRoles)),
		[]byte(res.Education),
		[]byte(res.Skills),
		[]byte(res.Experience),
		[]byte(res.Projects),
		[]byte(res.ExtraCurricular),
		[]byte(res.Leadership),
		nullIfEmpty(res.PDFFilename),
		res.CreatedAt,
		res.UpdatedAt,
	)
	return err
}

// List returns all resumes ordered newest-first.
func (r *PGRepo) List(ctx context.Context) ([]Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
ORDER BY created_at DESC`

	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Resume
	for rows.Next() {
		res, err := scanResume(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetByID returns a resume by id.
func (r *PGRepo) GetByID(ctx context.Context, id string) (Resume, error) {
	const query = `
SELECT ` + resumeColumns + `
FROM resumes
WHERE id = $1
LIMIT 1`

	res, err := scanResume(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Resume{}, ErrNotFound
		}
		return Resume{}, err
	}
	return res, nil
}

// Update replaces all fields of an existing resume except pdf_filename and created_at.
func (r *PGRepo) Update(ctx context.Context, res Resume) error {
	const query = `
UPDATE resumes SET
    first_name = $2,
    last_name = $3,
    email = $4,
    phone = $5,
    location = $6,
    portfolio_url = $7,
    linkedin_url = $8,
    objective = $9,
    years_experience = $10,
    desired_roles = $11,
    education_json = $12,
    skills_json = $13,
    experience_json = $14,
    projects_json = $15,
    extra_curricular_json = $16,
    leadership_json = $17,
    updated_at = $18
WHERE id = $1`

	res.normalizeSections()
	result, err := r.DB.ExecContext(ctx, query,
		res.ID,
		res.FirstName,
		res.LastName,
		res.Email,
		nullIfEmpty(res.Phone),
		nullIfEmpty(res.Location),
		nullIfEmpty(res.PortfolioURL),
		nullIfEmpty(res.LinkedinURL),
		res.Objective,
		nullIfEmpty(res.YearsExperience),
		nullIfEmpty(JoinRoles(res.DesiredRoles)),
		[]byte(res.Education),
		[]byte(res.Skills),
		[]byte(res.Experience),
		[]byte(res.Projects),
		[]byte(res.ExtraCurricular),
		[]byte(res.Leadership),
		res.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return requireRow(result)
}

// SetPDFFilename records the latest generated PDF for a resume.
func (r *PGRepo) SetPDFFilename(ctx context.Context, id, fileName string) error {
	const query = `
UPDATE resumes SET pdf_filename = $2, updated_at = now()
WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, nullIfEmpty(fileName))
	if err != nil {
		return err
	}
	return requireRow(result)
}

// Delete removes a resume row.
func (r *PGRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM resumes WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRow(result)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResume(row rowScanner) (Resume, error) {
	var res Resume
	var phone, location, portfolio, linkedin sql.NullString
	var yearsExperience, desiredRoles, pdfFilename sql.NullString
	var education, skills, experience, projects, extraCurricular, leadership []byte

	err := row.Scan(
		&res.ID,
		&res.FirstName,
		&res.LastName,
		&res.Email,
		&phone,
		&location,
		&portfolio,
		&linkedin,
		&res.Objective,
		&yearsExperience,
		&desiredRoles,
		&education,
		&skills,
		&experience,
		&projects,
		&extraCurricular,
		&leadership,
		&pdfFilename,
		&res.CreatedAt,
		&res.UpdatedAt,
	)
	if err != nil {
		return Resume{}, err
	}

	res.Phone = phone.String
	res.Location = location.String
	res.PortfolioURL = portfolio.String
	res.LinkedinURL = linkedin.String
	res.YearsExperience = yearsExperience.String
	res.DesiredRoles = SplitRoles(desiredRoles.String)
	res.Education = json.RawMessage(education)
	res.Skills = json.RawMessage(skills)
	res.Experience = json.RawMessage(experience)
	res.Projects = json.RawMessage(projects)
	res.ExtraCurricular = json.RawMessage(extraCurricular)
	res.Leadership = json.RawMessage(leadership)
	res.PDFFilename = pdfFilename.String
	res.normalizeSections()
	return res, nil
}

func nullIfEmpty(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

var _ Repo = (*PGRepo)(nil)
