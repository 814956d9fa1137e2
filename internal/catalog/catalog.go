// Package catalog holds the read-only set of jobs and trusted companies the
// board serves. It is loaded once at startup and never modified.
package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/justsurfingit/hireable/internal/models"
)

var ErrDuplicateJobID = errors.New("duplicate job id")

// Source supplies the catalog contents. Jobs must be returned newest first.
type Source interface {
	Jobs(ctx context.Context) ([]models.Job, error)
	Companies(ctx context.Context) ([]models.Company, error)
}

type Catalog struct {
	jobs      []models.Job
	companies []models.Company
	byID      map[string]int
}

// Load reads src once and builds the catalog.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	jobs, err := src.Jobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("load jobs: %w", err)
	}
	companies, err := src.Companies(ctx)
	if err != nil {
		return nil, fmt.Errorf("load companies: %w", err)
	}
	return New(jobs, companies)
}

// New builds a catalog from in-memory records. The inputs are copied.
func New(jobs []models.Job, companies []models.Company) (*Catalog, error) {
	c := &Catalog{
		jobs:      cloneJobs(jobs),
		companies: append([]models.Company(nil), companies...),
		byID:      make(map[string]int, len(jobs)),
	}
	for i, j := range c.jobs {
		if _, dup := c.byID[j.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateJobID, j.ID)
		}
		c.byID[j.ID] = i
	}
	return c, nil
}

// Jobs returns a copy of every job in source order.
func (c *Catalog) Jobs() []models.Job {
	return cloneJobs(c.jobs)
}

func (c *Catalog) Companies() []models.Company {
	return append([]models.Company(nil), c.companies...)
}

func (c *Catalog) Job(id string) (models.Job, bool) {
	i, ok := c.byID[id]
	if !ok {
		return models.Job{}, false
	}
	return cloneJob(c.jobs[i]), true
}

func (c *Catalog) Len() int {
	return len(c.jobs)
}

func cloneJobs(in []models.Job) []models.Job {
	out := make([]models.Job, len(in))
	for i, j := range in {
		out[i] = cloneJob(j)
	}
	return out
}

func cloneJob(j models.Job) models.Job {
	if j.Skills != nil {
		j.Skills = append(j.Skills[:0:0], j.Skills...)
	}
	return j
}
