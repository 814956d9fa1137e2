package services

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/justsurfingit/hireable/internal/contact"
	"github.com/justsurfingit/hireable/internal/models"
)

// LogSink only logs what it receives. It stands in for a real submission
// backend.
type LogSink struct {
	Logger *zap.Logger
}

func NewLogSink(log *zap.Logger) *LogSink {
	return &LogSink{Logger: log.With(zap.String("component", "sink"))}
}

func (s *LogSink) SaveJobPosting(_ context.Context, p models.JobPosting) error {
	s.Logger.Info("job posted",
		zap.String("id", p.ID),
		zap.String("title", p.Title),
		zap.String("company", p.Company),
		zap.String("location", p.Location),
		zap.String("type", string(p.Type)),
		zap.String("salary", p.Salary),
		zap.Strings("skills", p.Skills),
		zap.String("posted", p.Posted),
	)
	return nil
}

func (s *LogSink) SaveContactMessage(_ context.Context, m models.ContactMessage) error {
	s.Logger.Info("contact form submitted",
		zap.String("name", m.Name),
		zap.String("email", m.Email),
		zap.String("subject", m.Subject),
		zap.Int("message_length", len(m.Message)),
	)
	return nil
}

func (s *LogSink) SaveJobEvent(_ context.Context, e models.JobEvent) error {
	s.Logger.Info("job event", zap.String("job_id", e.JobID), zap.String("type", e.EventType), zap.String("details", e.Details))
	return nil
}

// DBSink stores submissions in postgres.
type DBSink struct {
	DB *gorm.DB
}

func NewDBSink(db *gorm.DB) *DBSink {
	return &DBSink{DB: db}
}

func (s *DBSink) SaveJobPosting(ctx context.Context, p models.JobPosting) error {
	if err := s.DB.WithContext(ctx).Create(&p).Error; err != nil {
		return fmt.Errorf("insert job posting: %w", err)
	}
	return nil
}

func (s *DBSink) SaveContactMessage(ctx context.Context, m models.ContactMessage) error {
	if err := s.DB.WithContext(ctx).Create(&m).Error; err != nil {
		return fmt.Errorf("insert contact message: %w", err)
	}
	return nil
}

func (s *DBSink) SaveJobEvent(ctx context.Context, e models.JobEvent) error {
	if err := s.DB.WithContext(ctx).Create(&e).Error; err != nil {
		return fmt.Errorf("insert job event: %w", err)
	}
	return nil
}

// ContactFanout hands each contact message to every sink in order. A failing
// sink does not stop the others; their errors are joined.
type ContactFanout []contact.Sink

func (f ContactFanout) SaveContactMessage(ctx context.Context, m models.ContactMessage) error {
	var errs []error
	for _, s := range f {
		if err := s.SaveContactMessage(ctx, m); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
