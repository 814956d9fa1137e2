package dtos

import (
	"github.com/justsurfingit/hireable/internal/models"
	"github.com/justsurfingit/hireable/internal/posting"
)

type JobSearchRequest struct {
	Query    string `form:"q"`
	Type     string `form:"type"`
	Location string `form:"location"`
	Sort     string `form:"sort"`
}

type JobExtractionRequest struct {
	RawHTML string `json:"raw_html" binding:"required"`
	URL     string `json:"url"`
}

// JobDraftRequest is the posting form as the client currently holds it.
type JobDraftRequest struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Type        string `json:"type"`
	Salary      string `json:"salary"`
	Skills      string `json:"skills"`
	Description string `json:"description"`
}

func (r JobDraftRequest) Draft() posting.Draft {
	return posting.Draft{
		Title:       r.Title,
		Company:     r.Company,
		Location:    r.Location,
		Type:        r.Type,
		Salary:      r.Salary,
		Skills:      r.Skills,
		Description: r.Description,
	}
}

// DraftState is everything derived from a draft: the field errors, the
// completion percentage and the preview.
type DraftState struct {
	Draft    posting.Draft   `json:"draft"`
	Errors   posting.Errors  `json:"errors"`
	Valid    bool            `json:"valid"`
	Progress int             `json:"progress"`
	Preview  posting.Preview `json:"preview"`
}

func NewDraftState(d posting.Draft) DraftState {
	errs := posting.Validate(d)
	return DraftState{
		Draft:    d,
		Errors:   errs,
		Valid:    len(errs) == 0,
		Progress: posting.Progress(d),
		Preview:  posting.NewPreview(d),
	}
}

type JobFormOptions struct {
	Types     []models.JobType `json:"types"`
	Locations []string         `json:"locations"`
	Draft     DraftState       `json:"initial"`
}

type JobPostResponse struct {
	Job    models.JobPosting `json:"job"`
	Notice Notice            `json:"notice"`
	// Reset is the blank form shown after a successful post.
	Reset posting.Draft `json:"reset"`
}

type ApplyResponse struct {
	Job    models.Job `json:"job"`
	Notice Notice     `json:"notice"`
}
