package catalog

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justsurfingit/hireable/internal/models"
)

// DatabaseSource reads the catalog from postgres. Rows are returned in
// insertion order, which the seeder keeps equal to the bundled (newest
// first) order.
type DatabaseSource struct {
	DB     *gorm.DB
	Logger *zap.Logger
}

func NewDatabaseSource(db *gorm.DB, log *zap.Logger) *DatabaseSource {
	return &DatabaseSource{DB: db, Logger: log.With(zap.String("component", "catalog"))}
}

func (s *DatabaseSource) Jobs(ctx context.Context) ([]models.Job, error) {
	var jobs []models.Job
	if err := s.DB.WithContext(ctx).Order("seq ASC").Find(&jobs).Error; err != nil {
		return nil, fmt.Errorf("query jobs: %w", err)
	}
	return jobs, nil
}

func (s *DatabaseSource) Companies(ctx context.Context) ([]models.Company, error) {
	var companies []models.Company
	if err := s.DB.WithContext(ctx).Order("id ASC").Find(&companies).Error; err != nil {
		return nil, fmt.Errorf("query companies: %w", err)
	}
	return companies, nil
}

// Seed copies the bundled catalog into empty tables. Tables that already
// hold rows are left alone.
func (s *DatabaseSource) Seed(ctx context.Context) error {
	db := s.DB.WithContext(ctx)
	bundled := EmbeddedSource{}

	var count int64
	if err := db.Model(&models.Job{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count jobs: %w", err)
	}
	if count == 0 {
		jobs, err := bundled.Jobs(ctx)
		if err != nil {
			return err
		}
		// One row at a time so seq follows the bundled order.
		for i := range jobs {
			if err := db.Create(&jobs[i]).Error; err != nil {
				return fmt.Errorf("seed job %s: %w", jobs[i].ID, err)
			}
		}
		s.Logger.Info("seeded jobs", zap.Int("count", len(jobs)))
	}

	if err := db.Model(&models.Company{}).Count(&count).Error; err != nil {
		return fmt.Errorf("count companies: %w", err)
	}
	if count == 0 {
		companies, err := bundled.Companies(ctx)
		if err != nil {
			return err
		}
		if err := db.Create(&companies).Error; err != nil {
			return fmt.Errorf("seed companies: %w", err)
		}
		s.Logger.Info("seeded companies", zap.Int("count", len(companies)))
	}
	return nil
}
