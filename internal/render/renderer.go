package render

import (
	"bytes"
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"resume-builder/internal/resumes"
	"resume-builder/internal/shared/storage/files"
	"resume-builder/internal/shared/telemetry"
)

//go:embed templates/resume.html
var templateFS embed.FS

// PDFRenderer fills the HTML resume template and prints it to PDF with
// headless Chrome. Each call produces a fresh uniquely named file.
type PDFRenderer struct {
	files      *files.Store
	chromePath string
	tpl        *template.Template
}

// printHTML is swappable so template logic can be tested without a browser.
var printHTML = printWithChrome

// New parses the embedded template and returns a renderer writing into store.
func New(store *files.Store, chromePath string) (*PDFRenderer, error) {
	tpl, err := template.New("resume.html").Funcs(helpers()).ParseFS(templateFS, "templates/resume.html")
	if err != nil {
		return nil, fmt.Errorf("parse resume template: %w", err)
	}
	return &PDFRenderer{files: store, chromePath: chromePath, tpl: tpl}, nil
}

// Render produces a new PDF for the resume and returns its filename.
func (r *PDFRenderer) Render(ctx context.Context, res resumes.Resume) (string, error) {
	html, err := r.fill(res)
	if err != nil {
		return "", err
	}

	pdf, err := printHTML(ctx, html, r.chromePath)
	if err != nil {
		return "", fmt.Errorf("print to pdf: %w", err)
	}

	fileName := "resume_" + uuid.NewString() + ".pdf"
	if _, err := r.files.Save(ctx, fileName, pdf); err != nil {
		return "", fmt.Errorf("save pdf: %w", err)
	}

	telemetry.Info("render.complete", map[string]any{"resume_id": res.ID, "file": fileName, "bytes": len(pdf)})
	return fileName, nil
}

func (r *PDFRenderer) fill(res resumes.Resume) (string, error) {
	var buf bytes.Buffer
	if err := r.tpl.Execute(&buf, templateData(res)); err != nil {
		return "", fmt.Errorf("execute resume template: %w", err)
	}
	return buf.String(), nil
}

// templateData flattens the record into the shape the template consumes,
// decoding the opaque section payloads into generic values.
func templateData(res resumes.Resume) map[string]any {
	roles := make([]any, 0, len(res.DesiredRoles))
	for _, role := range res.DesiredRoles {
		roles = append(roles, role)
	}
	return map[string]any{
		"PersonalDetails": map[string]any{
			"FullName":  res.FullName(),
			"FirstName": res.FirstName,
			"LastName":  res.LastName,
			"Email":     res.Email,
			"Phone":     res.Phone,
			"Location":  res.Location,
			"Portfolio": res.PortfolioURL,
			"Linkedin":  res.LinkedinURL,
		},
		"Objective": map[string]any{
			"Summary":         res.Objective,
			"YearsExperience": res.YearsExperience,
			"DesiredRoles":    roles,
		},
		"Education":       decodeSection(res.Education),
		"Skills":          decodeSection(res.Skills),
		"Experience":      decodeSection(res.Experience),
		"Projects":        decodeSection(res.Projects),
		"ExtraCurricular": decodeSection(res.ExtraCurricular),
		"Leadership":      decodeSection(res.Leadership),
	}
}

func decodeSection(raw json.RawMessage) any {
	if len(raw) == 0 {
		return nil
	}
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil
	}
	return v
}

func helpers() template.FuncMap {
	return template.FuncMap{
		"formatDate": formatDate,
		"join":       joinList,
		"hasContent": hasContent,
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01",
	"01/2006",
	"1/2006",
	"January 2006",
	"Jan 2006",
	"2006",
}

// formatDate renders any parseable date as "Month Year"; anything else, such
// as "Present", passes through verbatim.
func formatDate(value any) string {
	s := strings.TrimSpace(stringify(value))
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("January 2006")
		}
	}
	return s
}

func joinList(value any, sep string) string {
	if sep == "" {
		sep = ", "
	}
	switch list := value.(type) {
	case nil:
		return ""
	case []string:
		return strings.Join(list, sep)
	case []any:
		parts := make([]string, 0, len(list))
		for _, item := range list {
			parts = append(parts, stringify(item))
		}
		return strings.Join(parts, sep)
	default:
		return stringify(value)
	}
}

// hasContent reports whether a section value should render: a non-empty
// string, list or object. Everything else is omitted.
func hasContent(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return strings.TrimSpace(v) != ""
	case []any:
		return len(v) > 0
	case []string:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return false
	}
}

func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
