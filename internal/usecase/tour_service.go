package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/utils"
)

const tourKind = "Tour"

// GroupedTours is the public tour listing
type GroupedTours struct {
	Tours      []*entity.Tour            `json:"tours"`
	ByCategory map[string][]*entity.Tour `json:"toursByCategory"`
	Total      int                       `json:"total"`
}

// TourService manages tours
type TourService struct {
	tours     repository.TourRepository
	auditor   *Auditor
	validator *Validator
	logger    logger.Logger
	now       func() time.Time
}

// NewTourService creates a tour service
func NewTourService(tours repository.TourRepository, auditor *Auditor, validator *Validator, logger logger.Logger) *TourService {
	return &TourService{
		tours:     tours,
		auditor:   auditor,
		validator: validator,
		logger:    logger,
		now:       time.Now,
	}
}

// ListPublic returns every active tour in creation order, also grouped by category
func (s *TourService) ListPublic(ctx context.Context) (*GroupedTours, error) {
	tours, _, err := s.tours.List(ctx, repository.TourFilter{Status: entity.TourActive}, repository.All)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}

	grouped := &GroupedTours{
		Tours:      tours,
		ByCategory: make(map[string][]*entity.Tour, len(entity.TourCategories)),
		Total:      len(tours),
	}
	for _, c := range entity.TourCategories {
		grouped.ByCategory[c] = []*entity.Tour{}
	}
	for _, t := range tours {
		grouped.ByCategory[t.Category] = append(grouped.ByCategory[t.Category], t)
	}

	return grouped, nil
}

// List returns tours of any status for the back office
func (s *TourService) List(ctx context.Context, filter repository.TourFilter, page repository.Page) (*PageResult[entity.Tour], error) {
	if filter.Status != "" && !entity.IsValidTourStatus(filter.Status) {
		return nil, invalid("status", statusMessage(entity.TourStatuses))
	}
	if filter.Category != "" && !entity.IsValidCategory(filter.Category) {
		return nil, invalid("category", "Invalid category")
	}

	tours, total, err := s.tours.List(ctx, filter, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return newPage(tours, total, page), nil
}

// GetBySlug returns an active tour by slug
func (s *TourService) GetBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	tour, err := s.tours.FindBySlug(ctx, slug)
	if err != nil {
		return nil, notFound(err, tourKind)
	}
	if !tour.IsPublic() {
		return nil, &NotFoundError{Kind: tourKind}
	}
	return tour, nil
}

// Get returns an active tour, resolving key as a slug first and an id second
func (s *TourService) Get(ctx context.Context, key string) (*entity.Tour, error) {
	tour, err := s.tours.FindBySlug(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		tour, err = s.tours.FindByID(ctx, key)
	}
	if err != nil {
		return nil, notFound(err, tourKind)
	}
	if !tour.IsPublic() {
		return nil, &NotFoundError{Kind: tourKind}
	}
	return tour, nil
}

// GetByID returns a tour of any status
func (s *TourService) GetByID(ctx context.Context, id string) (*entity.Tour, error) {
	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, tourKind)
	}
	return tour, nil
}

// Create validates input and stores a new tour
func (s *TourService) Create(ctx context.Context, actor Actor, in TourInput) (*entity.Tour, error) {
	in.normalize()
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	slugSource := in.Slug
	if slugSource == "" {
		slugSource = in.Name
	}
	slug := utils.Slugify(slugSource)
	if slug == "" {
		return nil, invalid("slug", "slug must contain at least one letter or digit")
	}

	if err := s.ensureSlugFree(ctx, slug, ""); err != nil {
		return nil, err
	}

	now := s.now()
	tour := &entity.Tour{
		Name:          in.Name,
		Slug:          slug,
		Description:   in.Description,
		Overview:      in.Overview,
		Category:      in.Category,
		Price:         floatPtr(in.Price),
		OriginalPrice: floatPtr(in.OriginalPrice),
		Duration:      in.Duration,
		MaxGuests:     int(in.MaxGuests),
		MinAge:        int(in.MinAge),
		Rating:        entity.DefaultTourRating,
		Highlights:    nonNil(in.Highlights),
		Included:      nonNil(in.Included),
		NotIncluded:   nonNil(in.NotIncluded),
		Itinerary:     toItinerary(in.Itinerary),
		Images:        nonNil(in.Images),
		Destinations:  nonNil(in.Destinations),
		Status:        in.Status,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if in.Rating != nil {
		tour.Rating = float64(*in.Rating)
	}
	if in.Reviews != nil {
		tour.Reviews = int(*in.Reviews)
	}
	if tour.Status == "" {
		tour.Status = entity.DefaultTourStatus
	}

	if err := s.tours.Create(ctx, tour); err != nil {
		return nil, slugConflict(err)
	}

	s.logger.Info("Tour created", "tourID", tour.ID.Hex(), "slug", tour.Slug)
	s.auditor.Record(ctx, actor, entity.AuditCreate, tourKind, tour.ID.Hex(), tour.Slug)

	return tour, nil
}

// Update applies a partial update. A new name regenerates the slug unless
// a slug is supplied explicitly.
func (s *TourService) Update(ctx context.Context, actor Actor, id string, in TourUpdate) (*entity.Tour, error) {
	in.normalize()
	if err := s.validator.Struct(&in); err != nil {
		return nil, err
	}

	tour, err := s.tours.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, tourKind)
	}

	newSlug := tour.Slug
	switch {
	case in.Slug != nil && *in.Slug != "":
		newSlug = utils.Slugify(*in.Slug)
	case in.Name != nil && *in.Name != tour.Name:
		newSlug = utils.Slugify(*in.Name)
	}
	if newSlug == "" {
		return nil, invalid("slug", "slug must contain at least one letter or digit")
	}
	if newSlug != tour.Slug {
		if err := s.ensureSlugFree(ctx, newSlug, tour.ID.Hex()); err != nil {
			return nil, err
		}
		tour.Slug = newSlug
	}

	applyTourUpdate(tour, &in)
	tour.UpdatedAt = s.now()

	if err := s.tours.Update(ctx, tour); err != nil {
		return nil, notFound(slugConflict(err), tourKind)
	}

	s.logger.Info("Tour updated", "tourID", id, "slug", tour.Slug)
	s.auditor.Record(ctx, actor, entity.AuditUpdate, tourKind, id, tour.Slug)

	return tour, nil
}

// Delete removes a tour
func (s *TourService) Delete(ctx context.Context, actor Actor, id string) error {
	if err := s.tours.Delete(ctx, id); err != nil {
		return notFound(err, tourKind)
	}

	s.logger.Info("Tour deleted", "tourID", id)
	s.auditor.Record(ctx, actor, entity.AuditDelete, tourKind, id, "")

	return nil
}

// ensureSlugFree fails with a ConflictError when another tour owns slug
func (s *TourService) ensureSlugFree(ctx context.Context, slug, selfID string) error {
	existing, err := s.tours.FindBySlug(ctx, slug)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return nil
	case err != nil:
		return fmt.Errorf("failed to check slug: %w", err)
	case existing.ID.Hex() == selfID:
		return nil
	default:
		return &ConflictError{Message: fmt.Sprintf("A tour with slug %q already exists", slug)}
	}
}

// slugConflict maps a unique index violation raced past ensureSlugFree
func slugConflict(err error) error {
	if errors.Is(err, repository.ErrDuplicate) {
		return &ConflictError{Message: "A tour with this slug already exists"}
	}
	return err
}

func applyTourUpdate(t *entity.Tour, in *TourUpdate) {
	if in.Name != nil {
		t.Name = *in.Name
	}
	if in.Description != nil {
		t.Description = *in.Description
	}
	if in.Overview != nil {
		t.Overview = *in.Overview
	}
	if in.Category != nil {
		t.Category = *in.Category
	}
	if in.Price != nil {
		t.Price = floatPtr(in.Price)
	}
	if in.OriginalPrice != nil {
		t.OriginalPrice = floatPtr(in.OriginalPrice)
	}
	if in.Duration != nil {
		t.Duration = *in.Duration
	}
	if in.MaxGuests != nil {
		t.MaxGuests = int(*in.MaxGuests)
	}
	if in.MinAge != nil {
		t.MinAge = int(*in.MinAge)
	}
	if in.Rating != nil {
		t.Rating = float64(*in.Rating)
	}
	if in.Reviews != nil {
		t.Reviews = int(*in.Reviews)
	}
	if in.Highlights != nil {
		t.Highlights = nonNil(*in.Highlights)
	}
	if in.Included != nil {
		t.Included = nonNil(*in.Included)
	}
	if in.NotIncluded != nil {
		t.NotIncluded = nonNil(*in.NotIncluded)
	}
	if in.Itinerary != nil {
		t.Itinerary = toItinerary(*in.Itinerary)
	}
	if in.Images != nil {
		t.Images = nonNil(*in.Images)
	}
	if in.Destinations != nil {
		t.Destinations = nonNil(*in.Destinations)
	}
	if in.Status != nil {
		t.Status = *in.Status
	}
}
