package repository

import (
	"context"

	"tourism-service/internal/domain/entity"
)

// MailSender hands composed emails to a mail transport
type MailSender interface {
	// Send delivers email and returns the transport's message id
	Send(ctx context.Context, email *entity.Email) (string, error)
}
