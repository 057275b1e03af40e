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

const reviewKind = "Review"

// ReviewService manages customer reviews
type ReviewService struct {
	reviews   repository.ReviewRepository
	auditor   *Auditor
	validator *Validator
	metrics   *metrics.Metrics
	logger    logger.Logger
	now       func() time.Time
}

// NewReviewService creates a review service
func NewReviewService(reviews repository.ReviewRepository, auditor *Auditor, validator *Validator, metrics *metrics.Metrics, logger logger.Logger) *ReviewService {
	return &ReviewService{
		reviews:   reviews,
		auditor:   auditor,
		validator: validator,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit stores a review in the pending state
func (s *ReviewService) Submit(ctx context.Context, in ReviewInput) (*entity.Review, error) {
	in.normalize()
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	now := s.now()
	review := &entity.Review{
		Name:        in.Name,
		Email:       in.Email,
		Rating:      int(in.Rating),
		Description: in.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	review.SetStatus(entity.ReviewPending)

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("failed to save review: %w", err)
	}

	s.metrics.Submissions.WithLabelValues("review").Inc()
	s.logger.Info("Review submitted", "reviewID", review.ID.Hex(), "rating", review.Rating)

	return review, nil
}

// ListApproved returns approved reviews newest first
func (s *ReviewService) ListApproved(ctx context.Context, page repository.Page) (*PageResult[entity.Review], error) {
	approved := true
	reviews, total, err := s.reviews.List(ctx, repository.ReviewFilter{Approved: &approved}, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return newPage(reviews, total, page), nil
}

// List returns reviews of any status newest first
func (s *ReviewService) List(ctx context.Context, status string, page repository.Page) (*PageResult[entity.Review], error) {
	if status != "" {
		if err := checkStatus(status, entity.ReviewStatuses, entity.IsValidReviewStatus); err != nil {
			return nil, err
		}
	}

	reviews, total, err := s.reviews.List(ctx, repository.ReviewFilter{Status: status}, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return newPage(reviews, total, page), nil
}

// UpdateStatus moves a review to status; isApproved follows in lockstep
func (s *ReviewService) UpdateStatus(ctx context.Context, actor Actor, id, status string) (*entity.Review, error) {
	if err := checkStatus(status, entity.ReviewStatuses, entity.IsValidReviewStatus); err != nil {
		return nil, err
	}

	review, err := s.reviews.UpdateStatus(ctx, id, status, status == entity.ReviewApproved, s.now())
	if err != nil {
		return nil, notFound(err, reviewKind)
	}

	s.auditor.Record(ctx, actor, entity.AuditStatusChange, reviewKind, id, status)
	return review, nil
}

// Delete removes a review
func (s *ReviewService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := s.reviews.Delete(ctx, id); err != nil {
		return notFound(err, reviewKind)
	}

	s.auditor.Record(ctx, actor, entity.AuditDelete, reviewKind, id, "")
	return nil
}
