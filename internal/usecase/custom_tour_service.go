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

const customTourKind = "Custom tour request"

// startDateLayouts are the accepted startDate formats, tried in order
var startDateLayouts = []string{"2006-01-02", time.RFC3339}

// CustomTourService manages custom tour requests
type CustomTourService struct {
	requests     repository.CustomTourRepository
	composer     CustomTourComposer
	orchestrator *EmailOrchestrator
	auditor      *Auditor
	validator    *Validator
	metrics      *metrics.Metrics
	logger       logger.Logger
	now          func() time.Time
}

// NewCustomTourService creates a custom tour request service
func NewCustomTourService(
	requests repository.CustomTourRepository,
	composer CustomTourComposer,
	orchestrator *EmailOrchestrator,
	auditor *Auditor,
	validator *Validator,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *CustomTourService {
	return &CustomTourService{
		requests:     requests,
		composer:     composer,
		orchestrator: orchestrator,
		auditor:      auditor,
		validator:    validator,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Submit stores a custom tour request and queues its notification emails
func (s *CustomTourService) Submit(ctx context.Context, in CustomTourInput) (*entity.CustomizeTourRequest, error) {
	in.normalize()
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	startDate, ok := parseStartDate(in.StartDate)
	if !ok {
		return nil, invalid("startDate", "Please provide a valid start date")
	}

	now := s.now()
	req := &entity.CustomizeTourRequest{
		StartDate:         startDate,
		Duration:          int(in.Duration),
		NumberOfTravelers: int(in.NumberOfTravelers),
		AccommodationType: in.AccommodationType,
		Destinations:      in.Destinations,
		BudgetRange:       in.BudgetRange,
		Comments:          in.Comments,
		Name:              in.Name,
		Email:             in.Email,
		Phone:             in.Phone,
		CountryCode:       in.CountryCode,
		Status:            entity.RequestNew,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := s.requests.Create(ctx, req); err != nil {
		return nil, fmt.Errorf("failed to save custom tour request: %w", err)
	}

	s.metrics.Submissions.WithLabelValues("custom_tour").Inc()
	s.logger.Info("Custom tour request received", "requestID", req.ID.Hex())

	emails, err := s.composer.CustomTourEmails(req)
	if err != nil {
		s.logger.Error("Failed to compose custom tour emails", "requestID", req.ID.Hex(), "error", err)
		return req, nil
	}
	s.orchestrator.Dispatch(req.ID.Hex(), emails)

	return req, nil
}

// List returns requests newest first, optionally filtered by status
func (s *CustomTourService) List(ctx context.Context, status string, page repository.Page) (*PageResult[entity.CustomizeTourRequest], error) {
	if status != "" {
		if err := checkStatus(status, entity.RequestStatuses, entity.IsValidRequestStatus); err != nil {
			return nil, err
		}
	}

	reqs, total, err := s.requests.List(ctx, status, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom tour requests: %w", err)
	}
	return newPage(reqs, total, page), nil
}

// Get returns one request
func (s *CustomTourService) Get(ctx context.Context, id string) (*entity.CustomizeTourRequest, error) {
	req, err := s.requests.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, customTourKind)
	}
	return req, nil
}

// UpdateStatus moves a request to status
func (s *CustomTourService) UpdateStatus(ctx context.Context, actor Actor, id, status string) (*entity.CustomizeTourRequest, error) {
	if err := checkStatus(status, entity.RequestStatuses, entity.IsValidRequestStatus); err != nil {
		return nil, err
	}

	req, err := s.requests.UpdateStatus(ctx, id, status, s.now())
	if err != nil {
		return nil, notFound(err, customTourKind)
	}

	s.auditor.Record(ctx, actor, entity.AuditStatusChange, "CustomizeTourRequest", id, status)
	return req, nil
}

// Delete removes a request
func (s *CustomTourService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := s.requests.Delete(ctx, id); err != nil {
		return notFound(err, customTourKind)
	}

	s.auditor.Record(ctx, actor, entity.AuditDelete, "CustomizeTourRequest", id, "")
	return nil
}

func parseStartDate(s string) (time.Time, bool) {
	for _, layout := range startDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), true
		}
	}
	return time.Time{}, false
}
