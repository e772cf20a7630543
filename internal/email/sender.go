package email

import (
	"context"
	"errors"

	"vocational-api/internal/domain"
)

// Sender define la interfaz para enviar el resumen de resultados por correo.
type Sender interface {
	SendResults(ctx context.Context, toEmail, assessmentID, dominantProfile string, scores domain.ProfileVector) error
}

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendResults(_ context.Context, _, _, _ string, _ domain.ProfileVector) error {
	if s.reason == "" {
		return errors.New("email sender disabled")
	}
	return errors.New(s.reason)
}
