// Package posting implements the job posting form: field validation, the
// completion indicator, the live preview and submission.
package posting

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/justsurfingit/hireable/internal/models"
)

const (
	FieldTitle       = "title"
	FieldCompany     = "company"
	FieldLocation    = "location"
	FieldType        = "type"
	FieldDescription = "description"
	FieldSkills      = "skills"

	MinDescriptionLength = 50
	PreviewLength        = 100

	// PostedJustNow marks a freshly submitted job.
	PostedJustNow = "Just now"
)

// Locations offered by the posting form's location selector.
var Locations = []string{
	"Remote",
	"San Francisco, CA",
	"New York, NY",
	"Seattle, WA",
	"Austin, TX",
	"Los Angeles, CA",
	"Chicago, IL",
	"Boston, MA",
	"Denver, CO",
	"Miami, FL",
}

// Draft is the in-progress content of the posting form.
type Draft struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
}

// NewDraft returns a blank form.
func NewDraft() Draft {
	return Draft{Type: string(models.FullTime)}
}

func (d Draft) jobType() models.JobType {
	if d.Type == "" {
		return models.FullTime
	}
	return models.JobType(d.Type)
}

// Errors maps a field name to its message. An empty map means the draft can
// be submitted.
type Errors map[string]string

// Validate runs every field rule independently.
func Validate(d Draft) Errors {
	errs := Errors{}

	if isBlank(d.Title) {
		errs[FieldTitle] = "Job title is required"
	}
	if isBlank(d.Company) {
		errs[FieldCompany] = "Company name is required"
	}
	if isBlank(d.Location) {
		errs[FieldLocation] = "Location is required"
	}
	if !d.jobType().Valid() {
		errs[FieldType] = "Job type is invalid"
	}

	desc := strings.TrimSpace(d.Description)
	switch {
	case desc == "":
		errs[FieldDescription] = "Job description is required"
	case utf8.RuneCountInString(desc) < MinDescriptionLength:
		errs[FieldDescription] = "Job description must be at least 50 characters"
	}

	if isBlank(d.Skills) {
		errs[FieldSkills] = "Required skills are needed"
	}
	return errs
}

// Progress is the share of the five required fields that are filled in, as
// a percentage.
func Progress(d Draft) int {
	required := []string{d.Title, d.Company, d.Location, d.Description, d.Skills}
	filled := 0
	for _, v := range required {
		if !isBlank(v) {
			filled++
		}
	}
	return filled * 100 / len(required)
}

// Preview mirrors the draft the way the posted job will look.
type Preview struct {
	Title             string   `json:"title"`
	Company           string   `json:"company"`
	Location          string   `json:"location"`
	Type              string   `json:"type"`
	Salary            string   `json:"salary,omitempty"`
	Skills            []string `json:"skills"`
	Description       string   `json:"description"`
	DescriptionLength int      `json:"description_length"`
}

func NewPreview(d Draft) Preview {
	return Preview{
		Title:             d.Title,
		Company:           d.Company,
		Location:          d.Location,
		Type:              string(d.jobType()),
		Salary:            d.Salary,
		Skills:            SplitSkills(d.Skills),
		Description:       truncate(d.Description, PreviewLength),
		DescriptionLength: utf8.RuneCountInString(d.Description),
	}
}

// SplitSkills turns the comma separated skills field into tags, trimming
// each segment and keeping order. Preview and submission both use it so
// they never disagree.
func SplitSkills(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// Normalize converts a valid draft into the record handed to the sink.
func Normalize(d Draft, id string, now time.Time) models.JobPosting {
	return models.JobPosting{
		ID:          id,
		CreatedAt:   now,
		Title:       d.Title,
		Company:     d.Company,
		Location:    d.Location,
		Type:        d.jobType(),
		Salary:      d.Salary,
		Skills:      SplitSkills(d.Skills),
		Description: d.Description,
		Posted:      PostedJustNow,
	}
}

func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n]) + "..."
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
