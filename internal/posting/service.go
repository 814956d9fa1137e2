package posting

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/justsurfingit/hireable/internal/latency"
	"github.com/justsurfingit/hireable/internal/models"
)

const (
	MsgFixErrors = "Please fix the errors in the form"
	MsgFailed    = "Something went wrong. Please try again."
)

var ErrSubmitFailed = errors.New("job submission failed")

// ValidationError carries the field errors of a refused submission.
type ValidationError struct {
	Fields Errors
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid job posting: " + strings.Join(names, ", ")
}

// Sink receives accepted postings.
type Sink interface {
	SaveJobPosting(ctx context.Context, p models.JobPosting) error
}

type Service struct {
	sink   Sink
	delay  time.Duration
	logger *zap.Logger

	newID func() string
	now   func() time.Time
}

func NewService(sink Sink, delay time.Duration, log *zap.Logger) *Service {
	return &Service{
		sink:   sink,
		delay:  delay,
		logger: log.With(zap.String("component", "posting")),
		newID:  func() string { return uuid.NewString() },
		now:    time.Now,
	}
}

// Submit validates d and, when it is clean, hands the normalized posting to
// the sink after the simulated round trip. Validation failures return a
// *ValidationError and never reach the sink.
func (s *Service) Submit(ctx context.Context, d Draft) (models.JobPosting, error) {
	if errs := Validate(d); len(errs) > 0 {
		return models.JobPosting{}, &ValidationError{Fields: errs}
	}

	if err := latency.Simulate(ctx, s.delay); err != nil {
		return models.JobPosting{}, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	p := Normalize(d, s.newID(), s.now())
	if err := s.sink.SaveJobPosting(ctx, p); err != nil {
		s.logger.Error("save job posting", zap.String("id", p.ID), zap.Error(err))
		return models.JobPosting{}, fmt.Errorf("%w: %v", ErrSubmitFailed, err)
	}

	s.logger.Info("job posted",
		zap.String("id", p.ID),
		zap.String("title", p.Title),
		zap.String("company", p.Company),
	)
	return p, nil
}

// SuccessMessage is the notice shown after p was posted.
func SuccessMessage(p models.JobPosting) string {
	return fmt.Sprintf(`Job "%s" at %s posted successfully!`, p.Title, p.Company)
}
