package usecase

import (
	"context"
	"fmt"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
)

// recentActivityLimit caps the audit entries shown on the dashboard
const recentActivityLimit = 20

// DashboardStats are the aggregate counters of the back office
type DashboardStats struct {
	TotalTours       int `json:"totalTours"`
	ActiveTours      int `json:"activeTours"`
	TotalContacts    int `json:"totalContacts"`
	NewContacts      int `json:"newContacts"`
	TotalCustomTours int `json:"totalCustomTours"`
	NewCustomTours   int `json:"newCustomTours"`
	TotalReviews     int `json:"totalReviews"`
	PendingReviews   int `json:"pendingReviews"`
}

// Dashboard is the back office overview
type Dashboard struct {
	Stats          DashboardStats                 `json:"stats"`
	Tours          []*entity.Tour                 `json:"tours"`
	Contacts       []*entity.Contact              `json:"contacts"`
	CustomTours    []*entity.CustomizeTourRequest `json:"customTours"`
	Reviews        []*entity.Review               `json:"reviews"`
	RecentActivity []*entity.AuditEntry           `json:"recentActivity"`
}

// DashboardService aggregates every collection for the back office
type DashboardService struct {
	tours    repository.TourRepository
	contacts repository.ContactRepository
	requests repository.CustomTourRepository
	reviews  repository.ReviewRepository
	auditor  *Auditor
}

// NewDashboardService creates a dashboard service
func NewDashboardService(
	tours repository.TourRepository,
	contacts repository.ContactRepository,
	requests repository.CustomTourRepository,
	reviews repository.ReviewRepository,
	auditor *Auditor,
) *DashboardService {
	return &DashboardService{
		tours:    tours,
		contacts: contacts,
		requests: requests,
		reviews:  reviews,
		auditor:  auditor,
	}
}

// Overview returns counts plus the full lists of every collection
func (s *DashboardService) Overview(ctx context.Context) (*Dashboard, error) {
	tours, _, err := s.tours.List(ctx, repository.TourFilter{}, repository.All)
	if err != nil {
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	contacts, _, err := s.contacts.List(ctx, "", repository.All)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	requests, _, err := s.requests.List(ctx, "", repository.All)
	if err != nil {
		return nil, fmt.Errorf("failed to list custom tour requests: %w", err)
	}
	reviews, _, err := s.reviews.List(ctx, repository.ReviewFilter{}, repository.All)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	d := &Dashboard{
		Tours:          tours,
		Contacts:       contacts,
		CustomTours:    requests,
		Reviews:        reviews,
		RecentActivity: s.auditor.Recent(ctx, recentActivityLimit),
	}

	d.Stats.TotalTours = len(tours)
	for _, t := range tours {
		if t.Status == entity.TourActive {
			d.Stats.ActiveTours++
		}
	}
	d.Stats.TotalContacts = len(contacts)
	for _, c := range contacts {
		if c.Status == entity.ContactNew {
			d.Stats.NewContacts++
		}
	}
	d.Stats.TotalCustomTours = len(requests)
	for _, r := range requests {
		if r.Status == entity.RequestNew {
			d.Stats.NewCustomTours++
		}
	}
	d.Stats.TotalReviews = len(reviews)
	for _, r := range reviews {
		if r.Status == entity.ReviewPending {
			d.Stats.PendingReviews++
		}
	}

	return d, nil
}
