// Package testutils provides in-memory repositories and fakes for tests.
package testutils

import (
	"bytes"
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type record interface {
	entity.Tour | entity.Contact | entity.CustomizeTourRequest | entity.Review | entity.Admin
}

// store is a mutex-guarded document list keyed by ObjectID
type store[T record] struct {
	mu    sync.Mutex
	docs  []*T
	id    func(*T) *primitive.ObjectID
	stamp func(*T) time.Time
}

func (s *store[T]) insert(doc *T) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id := s.id(doc); id.IsZero() {
		*id = primitive.NewObjectID()
	}
	cp := *doc
	s.docs = append(s.docs, &cp)
}

func (s *store[T]) find(match func(*T) bool) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if match(d) {
			cp := *d
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *store[T]) byID(id string) func(*T) bool {
	return func(d *T) bool { return s.id(d).Hex() == id }
}

func (s *store[T]) update(id string, fn func(*T)) (*T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, d := range s.docs {
		if s.id(d).Hex() == id {
			fn(d)
			cp := *d
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *store[T]) delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, d := range s.docs {
		if s.id(d).Hex() == id {
			s.docs = append(s.docs[:i], s.docs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *store[T]) list(match func(*T) bool, newestFirst bool, page repository.Page) ([]*T, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []*T
	for _, d := range s.docs {
		if match(d) {
			cp := *d
			out = append(out, &cp)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if newestFirst {
			a, b = b, a
		}
		ta, tb := s.stamp(a), s.stamp(b)
		if !ta.Equal(tb) {
			return ta.Before(tb)
		}
		return bytes.Compare(s.id(a)[:], s.id(b)[:]) < 0
	})

	total := int64(len(out))
	if page.Limit > 0 {
		start := page.Offset()
		if start > len(out) {
			start = len(out)
		}
		end := start + page.Limit
		if end > len(out) {
			end = len(out)
		}
		out = out[start:end]
	}
	if out == nil {
		out = []*T{}
	}
	return out, total
}

func (s *store[T]) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.docs)
}

// TourRepository is an in-memory repository.TourRepository
type TourRepository struct {
	s store[entity.Tour]
}

// NewTourRepository creates an empty tour repository
func NewTourRepository() *TourRepository {
	return &TourRepository{s: store[entity.Tour]{
		id:    func(t *entity.Tour) *primitive.ObjectID { return &t.ID },
		stamp: func(t *entity.Tour) time.Time { return t.CreatedAt },
	}}
}

func (r *TourRepository) Create(_ context.Context, tour *entity.Tour) error {
	if _, err := r.s.find(func(t *entity.Tour) bool { return t.Slug == tour.Slug }); err == nil {
		return repository.ErrDuplicate
	}
	r.s.insert(tour)
	return nil
}

func (r *TourRepository) FindByID(_ context.Context, id string) (*entity.Tour, error) {
	return r.s.find(r.s.byID(id))
}

func (r *TourRepository) FindBySlug(_ context.Context, slug string) (*entity.Tour, error) {
	return r.s.find(func(t *entity.Tour) bool { return t.Slug == slug })
}

func (r *TourRepository) List(_ context.Context, f repository.TourFilter, page repository.Page) ([]*entity.Tour, int64, error) {
	items, total := r.s.list(func(t *entity.Tour) bool {
		return (f.Status == "" || t.Status == f.Status) && (f.Category == "" || t.Category == f.Category)
	}, false, page)
	return items, total, nil
}

func (r *TourRepository) Update(_ context.Context, tour *entity.Tour) error {
	if other, err := r.s.find(func(t *entity.Tour) bool { return t.Slug == tour.Slug && t.ID != tour.ID }); err == nil && other != nil {
		return repository.ErrDuplicate
	}
	_, err := r.s.update(tour.ID.Hex(), func(t *entity.Tour) { *t = *tour })
	return err
}

func (r *TourRepository) Delete(_ context.Context, id string) error {
	return r.s.delete(id)
}

// Len returns the number of stored tours
func (r *TourRepository) Len() int { return r.s.len() }

// ContactRepository is an in-memory repository.ContactRepository
type ContactRepository struct {
	s store[entity.Contact]
}

// NewContactRepository creates an empty contact repository
func NewContactRepository() *ContactRepository {
	return &ContactRepository{s: store[entity.Contact]{
		id:    func(c *entity.Contact) *primitive.ObjectID { return &c.ID },
		stamp: func(c *entity.Contact) time.Time { return c.CreatedAt },
	}}
}

func (r *ContactRepository) Create(_ context.Context, c *entity.Contact) error {
	r.s.insert(c)
	return nil
}

func (r *ContactRepository) FindByID(_ context.Context, id string) (*entity.Contact, error) {
	return r.s.find(r.s.byID(id))
}

func (r *ContactRepository) List(_ context.Context, status string, page repository.Page) ([]*entity.Contact, int64, error) {
	items, total := r.s.list(func(c *entity.Contact) bool { return status == "" || c.Status == status }, true, page)
	return items, total, nil
}

func (r *ContactRepository) UpdateStatus(_ context.Context, id, status string, at time.Time) (*entity.Contact, error) {
	return r.s.update(id, func(c *entity.Contact) { c.Status, c.UpdatedAt = status, at })
}

func (r *ContactRepository) Delete(_ context.Context, id string) error {
	return r.s.delete(id)
}

// Len returns the number of stored contact messages
func (r *ContactRepository) Len() int { return r.s.len() }

// CustomTourRepository is an in-memory repository.CustomTourRepository
type CustomTourRepository struct {
	s store[entity.CustomizeTourRequest]
}

// NewCustomTourRepository creates an empty custom tour request repository
func NewCustomTourRepository() *CustomTourRepository {
	return &CustomTourRepository{s: store[entity.CustomizeTourRequest]{
		id:    func(c *entity.CustomizeTourRequest) *primitive.ObjectID { return &c.ID },
		stamp: func(c *entity.CustomizeTourRequest) time.Time { return c.CreatedAt },
	}}
}

func (r *CustomTourRepository) Create(_ context.Context, c *entity.CustomizeTourRequest) error {
	r.s.insert(c)
	return nil
}

func (r *CustomTourRepository) FindByID(_ context.Context, id string) (*entity.CustomizeTourRequest, error) {
	return r.s.find(r.s.byID(id))
}

func (r *CustomTourRepository) List(_ context.Context, status string, page repository.Page) ([]*entity.CustomizeTourRequest, int64, error) {
	items, total := r.s.list(func(c *entity.CustomizeTourRequest) bool { return status == "" || c.Status == status }, true, page)
	return items, total, nil
}

func (r *CustomTourRepository) UpdateStatus(_ context.Context, id, status string, at time.Time) (*entity.CustomizeTourRequest, error) {
	return r.s.update(id, func(c *entity.CustomizeTourRequest) { c.Status, c.UpdatedAt = status, at })
}

func (r *CustomTourRepository) Delete(_ context.Context, id string) error {
	return r.s.delete(id)
}

// Len returns the number of stored requests
func (r *CustomTourRepository) Len() int { return r.s.len() }

// ReviewRepository is an in-memory repository.ReviewRepository
type ReviewRepository struct {
	s store[entity.Review]
}

// NewReviewRepository creates an empty review repository
func NewReviewRepository() *ReviewRepository {
	return &ReviewRepository{s: store[entity.Review]{
		id:    func(r *entity.Review) *primitive.ObjectID { return &r.ID },
		stamp: func(r *entity.Review) time.Time { return r.CreatedAt },
	}}
}

func (r *ReviewRepository) Create(_ context.Context, rv *entity.Review) error {
	r.s.insert(rv)
	return nil
}

func (r *ReviewRepository) FindByID(_ context.Context, id string) (*entity.Review, error) {
	return r.s.find(r.s.byID(id))
}

func (r *ReviewRepository) List(_ context.Context, f repository.ReviewFilter, page repository.Page) ([]*entity.Review, int64, error) {
	items, total := r.s.list(func(rv *entity.Review) bool {
		return (f.Status == "" || rv.Status == f.Status) && (f.Approved == nil || rv.IsApproved == *f.Approved)
	}, true, page)
	return items, total, nil
}

func (r *ReviewRepository) UpdateStatus(_ context.Context, id, status string, approved bool, at time.Time) (*entity.Review, error) {
	return r.s.update(id, func(rv *entity.Review) { rv.Status, rv.IsApproved, rv.UpdatedAt = status, approved, at })
}

func (r *ReviewRepository) Delete(_ context.Context, id string) error {
	return r.s.delete(id)
}

// Len returns the number of stored reviews
func (r *ReviewRepository) Len() int { return r.s.len() }

// AdminRepository is an in-memory repository.AdminRepository
type AdminRepository struct {
	s store[entity.Admin]
}

// NewAdminRepository creates an empty admin repository
func NewAdminRepository() *AdminRepository {
	return &AdminRepository{s: store[entity.Admin]{
		id:    func(a *entity.Admin) *primitive.ObjectID { return &a.ID },
		stamp: func(a *entity.Admin) time.Time { return a.CreatedAt },
	}}
}

func (r *AdminRepository) Create(_ context.Context, a *entity.Admin) error {
	if _, err := r.s.find(func(x *entity.Admin) bool { return x.Username == a.Username || x.Email == a.Email }); err == nil {
		return repository.ErrDuplicate
	}
	r.s.insert(a)
	return nil
}

func (r *AdminRepository) FindByID(_ context.Context, id string) (*entity.Admin, error) {
	return r.s.find(r.s.byID(id))
}

func (r *AdminRepository) FindActiveByUsername(_ context.Context, username string) (*entity.Admin, error) {
	return r.s.find(func(a *entity.Admin) bool { return a.Username == username && a.IsActive })
}

func (r *AdminRepository) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	_, err := r.s.find(func(a *entity.Admin) bool { return a.Username == username || a.Email == email })
	return err == nil, nil
}

func (r *AdminRepository) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	_, err := r.s.update(id, func(a *entity.Admin) { a.LastLogin = &at })
	return err
}

func (r *AdminRepository) Len() int { return r.s.len() }

// SetActive flips the isActive flag of an admin
func (r *AdminRepository) SetActive(id string, active bool) {
	r.s.update(id, func(a *entity.Admin) { a.IsActive = active })
}

// ErrAuditDown is returned by a failing AuditRepository
var ErrAuditDown = errors.New("audit store unavailable")

// AuditRepository is an in-memory repository.AuditRepository.
// Set Fail to make every call return ErrAuditDown.
type AuditRepository struct {
	Fail bool

	mu      sync.Mutex
	entries []*entity.AuditEntry
}

func (r *AuditRepository) Record(_ context.Context, e *entity.AuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return ErrAuditDown
	}
	cp := *e
	r.entries = append(r.entries, &cp)
	return nil
}

func (r *AuditRepository) Recent(_ context.Context, limit int) ([]*entity.AuditEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.Fail {
		return nil, ErrAuditDown
	}

	out := []*entity.AuditEntry{}
	for i := len(r.entries) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.entries[i])
	}
	return out, nil
}

// Entries returns every recorded entry, oldest first
func (r *AuditRepository) Entries() []*entity.AuditEntry {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*entity.AuditEntry(nil), r.entries...)
}

// EmailRepository is an in-memory repository.EmailRepository
type EmailRepository struct {
	mu   sync.Mutex
	logs []*entity.EmailLog
}

func (r *EmailRepository) Save(_ context.Context, l *entity.EmailLog) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.ID.IsZero() {
		l.ID = primitive.NewObjectID()
	}
	cp := *l
	r.logs = append(r.logs, &cp)
	return nil
}

func (r *EmailRepository) FindByRelatedID(_ context.Context, relatedID string) ([]*entity.EmailLog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []*entity.EmailLog{}
	for _, l := range r.logs {
		if l.RelatedID == relatedID {
			out = append(out, l)
		}
	}
	return out, nil
}
