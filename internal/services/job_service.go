package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/justsurfingit/hireable/internal/catalog"
	"github.com/justsurfingit/hireable/internal/models"
	"github.com/justsurfingit/hireable/internal/query"
)

var ErrJobNotFound = errors.New("job not found")

// EventSink records activity on catalog jobs.
type EventSink interface {
	SaveJobEvent(ctx context.Context, e models.JobEvent) error
}

type JobService struct {
	Catalog *catalog.Catalog
	Events  EventSink
	Logger  *zap.Logger
}

func NewJobService(c *catalog.Catalog, events EventSink, log *zap.Logger) *JobService {
	return &JobService{
		Catalog: c,
		Events:  events,
		Logger:  log.With(zap.String("component", "jobs")),
	}
}

type SearchResult struct {
	Jobs       []models.Job      `json:"jobs"`
	Count      int               `json:"count"`
	Total      int               `json:"total"`
	Summary    string            `json:"summary"`
	Query      string            `json:"query"`
	Filters    query.Filters     `json:"filters"`
	EmptyState *query.EmptyState `json:"empty_state,omitempty"`
}

// Search recomputes the result list from scratch on every call.
func (s *JobService) Search(term string, filters query.Filters) SearchResult {
	jobs := query.FilterAndSort(s.Catalog.Jobs(), term, filters)
	return SearchResult{
		Jobs:       jobs,
		Count:      len(jobs),
		Total:      s.Catalog.Len(),
		Summary:    query.Summarize(len(jobs), s.Catalog.Len()),
		Query:      term,
		Filters:    filters,
		EmptyState: query.NoResults(len(jobs)),
	}
}

func (s *JobService) Get(id string) (models.Job, error) {
	job, ok := s.Catalog.Job(id)
	if !ok {
		return models.Job{}, fmt.Errorf("%w: %s", ErrJobNotFound, id)
	}
	return job, nil
}

// Apply records an application to a catalog job.
func (s *JobService) Apply(ctx context.Context, id string) (models.Job, error) {
	job, err := s.Get(id)
	if err != nil {
		return models.Job{}, err
	}

	event := models.JobEvent{
		JobID:     job.ID,
		EventType: models.EventApplied,
		Details:   fmt.Sprintf("Application submitted for %s at %s", job.Title, job.Company),
	}
	if err := s.Events.SaveJobEvent(ctx, event); err != nil {
		return models.Job{}, fmt.Errorf("record application: %w", err)
	}

	s.Logger.Info("application submitted", zap.String("job_id", job.ID), zap.String("company", job.Company))
	return job, nil
}

// ApplyMessage is the notice shown after applying to job.
func ApplyMessage(job models.Job) string {
	return fmt.Sprintf("Application submitted for %s at %s!", job.Title, job.Company)
}
