package resumes

import (
	"encoding/json"
	"strings"
	"time"
)

// rolesSeparator joins desiredRoles into the single denormalized column and
// splits it back on read. Roles containing the separator will not round-trip.
const rolesSeparator = ", "

// Resume is the persisted record. The section fields (Education, Skills,
// Experience, Projects, ExtraCurricular, Leadership) are stored opaquely and
// returned verbatim; no schema is enforced on their contents.
type Resume struct {
	ID              string
	FirstName       string
	LastName        string
	Email           string
	Phone           string
	Location        string
	PortfolioURL    string
	LinkedinURL     string
	Objective       string
	YearsExperience string
	DesiredRoles    []string
	Education       json.RawMessage
	Skills          json.RawMessage
	Experience      json.RawMessage
	Projects        json.RawMessage
	ExtraCurricular json.RawMessage
	Leadership      json.RawMessage
	PDFFilename     string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FullName synthesizes the display name used for downloads and email.
func (r Resume) FullName() string {
	return r.FirstName + " " + r.LastName
}

// JoinRoles flattens a roles list into the stored column value.
func JoinRoles(roles []string) string {
	return strings.Join(roles, rolesSeparator)
}

// SplitRoles restores a roles list from the stored column value.
func SplitRoles(raw string) []string {
	if raw == "" {
		return nil
	}
	return strings.Split(raw, rolesSeparator)
}

func emptyArray() json.RawMessage  { return json.RawMessage("[]") }
func emptyObject() json.RawMessage { return json.RawMessage("{}") }

// normalizeSections fills absent section payloads with their sentinel empty
// values so the record never carries true nulls.
func (r *Resume) normalizeSections() {
	if len(r.Education) == 0 {
		r.Education = emptyArray()
	}
	if len(r.Skills) == 0 {
		r.Skills = emptyObject()
	}
	if len(r.Experience) == 0 {
		r.Experience = emptyArray()
	}
	if len(r.Projects) == 0 {
		r.Projects = emptyArray()
	}
	if len(r.ExtraCurricular) == 0 {
		r.ExtraCurricular = emptyObject()
	}
	if len(r.Leadership) == 0 {
		r.Leadership = emptyObject()
	}
}
