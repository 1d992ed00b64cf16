package resumes

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// PersonalDetails carries the identity fields of a submission.
type PersonalDetails struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Location  string `json:"location,omitempty"`
	Portfolio string `json:"portfolio,omitempty"`
	Linkedin  string `json:"linkedin,omitempty"`
}

// Objective carries the career objective of a submission.
type Objective struct {
	Summary         string   `json:"summary"`
	YearsExperience string   `json:"yearsExperience,omitempty"`
	DesiredRoles    []string `json:"desiredRoles,omitempty"`
}

// ResumeInput is the request body for create and update. Section payloads are
// accepted as raw JSON so whatever shape comes in goes out unchanged.
type ResumeInput struct {
	PersonalDetails PersonalDetails `json:"personalDetails"`
	Objective       Objective       `json:"objective"`
	Education       json.RawMessage `json:"education,omitempty"`
	Skills          json.RawMessage `json:"skills,omitempty"`
	Experience      json.RawMessage `json:"experience,omitempty"`
	Projects        json.RawMessage `json:"projects,omitempty"`
	ExtraCurricular json.RawMessage `json:"extraCurricular,omitempty"`
	Leadership      json.RawMessage `json:"leadership,omitempty"`
}

// Validate checks the fields required on create.
func (in ResumeInput) Validate() error {
	var missing []string
	if strings.TrimSpace(in.PersonalDetails.FirstName) == "" {
		missing = append(missing, "personalDetails.firstName")
	}
	if strings.TrimSpace(in.PersonalDetails.LastName) == "" {
		missing = append(missing, "personalDetails.lastName")
	}
	if strings.TrimSpace(in.PersonalDetails.Email) == "" {
		missing = append(missing, "personalDetails.email")
	}
	if strings.TrimSpace(in.Objective.Summary) == "" {
		missing = append(missing, "objective.summary")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrInvalidInput, strings.Join(missing, ", "))
	}
	return nil
}

// toResume builds a record from the input; id and createdAt come from the caller.
func (in ResumeInput) toResume(id string, createdAt time.Time) Resume {
	r := Resume{
		ID:              id,
		FirstName:       in.PersonalDetails.FirstName,
		LastName:        in.PersonalDetails.LastName,
		Email:           in.PersonalDetails.Email,
		Phone:           in.PersonalDetails.Phone,
		Location:        in.PersonalDetails.Location,
		PortfolioURL:    in.PersonalDetails.Portfolio,
		LinkedinURL:     in.PersonalDetails.Linkedin,
		Objective:       in.Objective.Summary,
		YearsExperience: in.Objective.YearsExperience,
		DesiredRoles:    in.Objective.DesiredRoles,
		Education:       in.Education,
		Skills:          in.Skills,
		Experience:      in.Experience,
		Projects:        in.Projects,
		ExtraCurricular: in.ExtraCurricular,
		Leadership:      in.Leadership,
		CreatedAt:       createdAt,
		UpdatedAt:       time.Now().UTC(),
	}
	r.normalizeSections()
	return r
}

// ResumeResponse is the outward-facing representation of a resume.
type ResumeResponse struct {
	ID              string          `json:"id"`
	FirstName       string          `json:"firstName"`
	LastName        string          `json:"lastName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone,omitempty"`
	Location        string          `json:"location,omitempty"`
	PortfolioURL    string          `json:"portfolioUrl,omitempty"`
	LinkedinURL     string          `json:"linkedinUrl,omitempty"`
	Objective       string          `json:"objective"`
	YearsExperience string          `json:"yearsExperience,omitempty"`
	DesiredRoles    []string        `json:"desiredRoles"`
	Education       json.RawMessage `json:"education"`
	Skills          json.RawMessage `json:"skills"`
	Experience      json.RawMessage `json:"experience"`
	Projects        json.RawMessage `json:"projects"`
	ExtraCurricular json.RawMessage `json:"extraCurricular"`
	Leadership      json.RawMessage `json:"leadership"`
	PDFURL          *string         `json:"pdfUrl"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
}

func toResponse(r Resume) ResumeResponse {
	roles := r.DesiredRoles
	if roles == nil {
		roles = []string{}
	}
	return ResumeResponse{
		ID:              r.ID,
		FirstName:       r.FirstName,
		LastName:        r.LastName,
		Email:           r.Email,
		Phone:           r.Phone,
		Location:        r.Location,
		PortfolioURL:    r.PortfolioURL,
		LinkedinURL:     r.LinkedinURL,
		Objective:       r.Objective,
		YearsExperience: r.YearsExperience,
		DesiredRoles:    roles,
		Education:       r.Education,
		Skills:          r.Skills,
		Experience:      r.Experience,
		Projects:        r.Projects,
		ExtraCurricular: r.ExtraCurricular,
		Leadership:      r.Leadership,
		PDFURL:          PDFURL(r.PDFFilename),
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// PDFURL derives the public download path for a stored filename; nil when no
// PDF has been generated yet.
func PDFURL(fileName string) *string {
	if fileName == "" {
		return nil
	}
	url := "/generated/" + fileName
	return &url
}
