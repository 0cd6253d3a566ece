// Package logsink records inquiries to the structured log, standing in
// for a real contact-collection backend.
package logsink

import (
	"context"
	"log/slog"

	"github.com/ateliershop/storefront/internal/contact/app"
)

type Sender struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Sender {
	if log == nil {
		log = slog.Default()
	}
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, id string, inq app.Inquiry) error {
	s.log.Info("contact inquiry",
		slog.String("id", id),
		slog.String("name", inq.Name),
		slog.String("email", inq.Email),
		slog.String("subject", inq.Subject),
	)
	return nil
}
