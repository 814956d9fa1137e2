package catalog

import (
	"context"
	"embed"
	"fmt"

	"github.com/goccy/go-json"

	"github.com/justsurfingit/hireable/internal/models"
)

//go:embed data/*.json
var bundled embed.FS

// EmbeddedSource serves the job and company lists bundled into the binary.
type EmbeddedSource struct{}

func (EmbeddedSource) Jobs(_ context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := decodeBundled("data/jobs.json", &jobs); err != nil {
		return nil, err
	}
	return jobs, nil
}

func (EmbeddedSource) Companies(_ context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := decodeBundled("data/companies.json", &companies); err != nil {
		return nil, err
	}
	return companies, nil
}

func decodeBundled(name string, v interface{}) error {
	raw, err := bundled.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}
