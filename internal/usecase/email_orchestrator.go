package usecase

import (
	"context"
	"sync"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"
)

// EmailOrchestrator dispatches notification emails after the triggering
// record is persisted. Delivery is best effort and at most once: failures
// are logged and recorded, never retried, and never reach the HTTP caller.
type EmailOrchestrator struct {
	sender    repository.MailSender
	emailRepo repository.EmailRepository
	metrics   *metrics.Metrics
	logger    logger.Logger
	timeout   time.Duration
	now       func() time.Time

	wg sync.WaitGroup
}

// NewEmailOrchestrator creates a new email orchestrator
func NewEmailOrchestrator(
	sender repository.MailSender,
	emailRepo repository.EmailRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
	timeout time.Duration,
) *EmailOrchestrator {
	return &EmailOrchestrator{
		sender:    sender,
		emailRepo: emailRepo,
		metrics:   metrics,
		logger:    logger,
		timeout:   timeout,
		now:       time.Now,
	}
}

// Dispatch sends emails in the background and returns immediately.
// The work is detached from any request context.
func (o *EmailOrchestrator) Dispatch(relatedID string, emails []*entity.Email) {
	if len(emails) == 0 {
		return
	}

	o.wg.Add(1)
	go func() {
		defer o.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				o.logger.Error("Email dispatch panicked", "relatedID", relatedID, "panic", r)
			}
		}()

		ctx, cancel := context.WithTimeout(context.Background(), o.timeout)
		defer cancel()

		for _, email := range emails {
			o.send(ctx, relatedID, email)
		}
	}()
}

func (o *EmailOrchestrator) send(ctx context.Context, relatedID string, email *entity.Email) {
	record := &entity.EmailLog{
		Kind:      email.Kind,
		To:        email.To,
		Subject:   email.Subject,
		RelatedID: relatedID,
		Status:    entity.StatusSent,
	}

	messageID, err := o.sender.Send(ctx, email)
	record.SentAt = o.now()
	if err != nil {
		o.metrics.NotificationFailures.Inc()
		o.logger.Error("Failed to send email",
			"kind", email.Kind,
			"to", email.To,
			"relatedID", relatedID,
			"error", err)

		record.Status = entity.StatusFailed
		record.ErrorDetail = err.Error()
	} else {
		o.metrics.NotificationsSent.Inc()
		record.MessageID = messageID
		o.logger.Info("Email sent",
			"kind", email.Kind,
			"relatedID", relatedID,
			"messageID", messageID)
	}

	if err := o.emailRepo.Save(ctx, record); err != nil {
		o.logger.Warn("Failed to record email log", "relatedID", relatedID, "error", err)
	}
}

// Wait blocks until every dispatched batch has finished
func (o *EmailOrchestrator) Wait() {
	o.wg.Wait()
}
