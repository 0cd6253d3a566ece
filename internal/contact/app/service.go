package app

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

// Inquiry is a contact-form submission.
type Inquiry struct {
	Name    string
	Email   string
	Subject string
	Message string
}

// ValidationError names the offending field so the form can surface
// it inline; it never crosses the boundary as a crash.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// Sender is the external contact-collection collaborator.
type Sender interface {
	Send(ctx context.Context, id string, inq Inquiry) error
}

// Local part, @, and a dotted domain.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type Service struct {
	sender Sender
	log    *slog.Logger
}

func NewService(sender Sender, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{sender: sender, log: log}
}

func Validate(inq Inquiry) error {
	required := []struct {
		field, value string
	}{
		{"name", inq.Name},
		{"email", inq.Email},
		{"subject", inq.Subject},
		{"message", inq.Message},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Reason: "required"}
		}
	}

	if !emailPattern.MatchString(inq.Email) {
		return &ValidationError{Field: "email", Reason: "must be a valid email address"}
	}
	return nil
}

// Submit validates and hands the inquiry to the collaborator. The
// returned id lets the caller reference the submission.
func (s *Service) Submit(ctx context.Context, inq Inquiry) (string, error) {
	if err := Validate(inq); err != nil {
		return "", err
	}

	id := uuid.NewString()
	if err := s.sender.Send(ctx, id, inq); err != nil {
		return "", fmt.Errorf("submit inquiry: %w", err)
	}

	s.log.Info("inquiry submitted", slog.String("id", id), slog.String("subject", inq.Subject))
	return id, nil
}
