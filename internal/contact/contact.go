// Package contact handles contact form submissions.
package contact

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/justsurfingit/hireable/internal/latency"
	"github.com/justsurfingit/hireable/internal/models"
)

const (
	MsgSent   = "Thank you for your message! We'll get back to you soon."
	MsgFailed = "Something went wrong. Please try again."
)

var (
	ErrIncomplete = errors.New("all contact fields are required")
	ErrSendFailed = errors.New("contact submission failed")
)

type Draft struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Missing lists the blank fields of d in form order.
func Missing(d Draft) []string {
	var missing []string
	for _, f := range []struct{ name, value string }{
		{"name", d.Name},
		{"email", d.Email},
		{"subject", d.Subject},
		{"message", d.Message},
	} {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	return missing
}

// Sink delivers contact messages.
type Sink interface {
	SaveContactMessage(ctx context.Context, m models.ContactMessage) error
}

type Service struct {
	sink   Sink
	delay  time.Duration
	logger *zap.Logger
	now    func() time.Time
}

func NewService(sink Sink, delay time.Duration, log *zap.Logger) *Service {
	return &Service{
		sink:   sink,
		delay:  delay,
		logger: log.With(zap.String("component", "contact")),
		now:    time.Now,
	}
}

// Submit waits out the simulated round trip and hands the message to the
// sink. Failures are not retried; the caller resubmits.
func (s *Service) Submit(ctx context.Context, d Draft) error {
	if missing := Missing(d); len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", ErrIncomplete, strings.Join(missing, ", "))
	}

	if err := latency.Simulate(ctx, s.delay); err != nil {
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	msg := models.ContactMessage{
		CreatedAt: s.now(),
		Name:      d.Name,
		Email:     d.Email,
		Subject:   d.Subject,
		Message:   d.Message,
	}
	if err := s.sink.SaveContactMessage(ctx, msg); err != nil {
		s.logger.Error("deliver contact message", zap.String("email", d.Email), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrSendFailed, err)
	}

	s.logger.Info("contact message received", zap.String("email", d.Email), zap.String("subject", d.Subject))
	return nil
}
