package usecase

import (
	"context"
	"fmt"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"
)

const contactKind = "Contact message"

// ContactService manages contact form messages
type ContactService struct {
	contacts     repository.ContactRepository
	composer     ContactComposer
	orchestrator *EmailOrchestrator
	auditor      *Auditor
	validator    *Validator
	metrics      *metrics.Metrics
	logger       logger.Logger
	now          func() time.Time
}

// NewContactService creates a contact service
func NewContactService(
	contacts repository.ContactRepository,
	composer ContactComposer,
	orchestrator *EmailOrchestrator,
	auditor *Auditor,
	validator *Validator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *ContactService {
	return &ContactService{
		contacts:     contacts,
		composer:     composer,
		orchestrator: orchestrator,
		auditor:      auditor,
		validator:    validator,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit stores a contact message and queues its notification emails
func (s *ContactService) Submit(ctx context.Context, in ContactInput) (*entity.Contact, error) {
	in.normalize()
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	now := s.now()
	contact := &entity.Contact{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Message:   in.Message,
		Status:    entity.ContactNew,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.contacts.Create(ctx, contact); err != nil {
		return nil, fmt.Errorf("failed to save contact: %w", err)
	}

	s.metrics.Submissions.WithLabelValues("contact").Inc()
	s.logger.Info("Contact message received", "contactID", contact.ID.Hex())

	emails, err := s.composer.ContactEmails(contact)
	if err != nil {
		s.logger.Error("Failed to compose contact emails", "contactID", contact.ID.Hex(), "error", err)
		return contact, nil
	}
	s.orchestrator.Dispatch(contact.ID.Hex(), emails)

	return contact, nil
}

// List returns contact messages newest first, optionally filtered by status
func (s *ContactService) List(ctx context.Context, status string, page repository.Page) (*PageResult[entity.Contact], error) {
	if status != "" {
		if err := checkStatus(status, entity.ContactStatuses, entity.IsValidContactStatus); err != nil {
			return nil, err
		}
	}

	contacts, total, err := s.contacts.List(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	return newPage(contacts, total, page), nil
}

// Get returns one contact message
func (s *ContactService) Get(ctx context.Context, id string) (*entity.Contact, error) {
	contact, err := s.contacts.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, contactKind)
	}
	return contact, nil
}

// UpdateStatus moves a contact message to status
func (s *ContactService) UpdateStatus(ctx context.Context, actor Actor, id, status string) (*entity.Contact, error) {
	if err := checkStatus(status, entity.ContactStatuses, entity.IsValidContactStatus); err != nil {
		return nil, err
	}

	contact, err := s.contacts.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return nil, notFound(err, contactKind)
	}

	s.auditor.Record(ctx, actor, entity.AuditStatusChange, "Contact", id, status)
	return contact, nil
}

// Delete removes a contact message
func (s *ContactService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := s.contacts.Delete(ctx, id); err != nil {
		return notFound(err, contactKind)
	}

	s.auditor.Record(ctx, actor, entity.AuditDelete, "Contact", id, "")
	return nil
}
