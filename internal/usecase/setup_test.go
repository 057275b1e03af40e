package usecase

import (
	"testing"
	"time"

	"tourism-service/internal/testutils"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"
	"tourism-service/templates"

	"github.com/prometheus/client_golang/prometheus"
)

type testEnv struct {
	tours    *testutils.TourRepository
	contacts *testutils.ContactRepository
	requests *testutils.CustomTourRepository
	reviews  *testutils.ReviewRepository
	admins   *testutils.AdminRepository
	audit    *testutils.AuditRepository
	emails   *testutils.EmailRepository
	mail     *testutils.MailSender
	metrics  *metrics.Metrics
	registry *prometheus.Registry

	orchestrator *EmailOrchestrator
	tourSvc      *TourService
	contactSvc   *ContactService
	requestSvc   *CustomTourService
	reviewSvc    *ReviewService
	authSvc      *AuthService
	dashboardSvc *DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNop()
	registry := prometheus.NewRegistry()
	env := &testEnv{
		tours:    testutils.NewTourRepository(),
		contacts: testutils.NewContactRepository(),
		requests: testutils.NewCustomTourRepository(),
		reviews:  testutils.NewReviewRepository(),
		admins:   testutils.NewAdminRepository(),
		audit:    &testutils.AuditRepository{},
		emails:   &testutils.EmailRepository{},
		mail:     &testutils.MailSender{},
		metrics:  metrics.NewMetrics("test", registry),
		registry: registry,
	}

	validator := NewValidator()
	auditor := NewAuditor(env.audit, log)
	composer := templates.NewComposer("admin@example.com", "Test Tours")

	env.orchestrator = NewEmailOrchestrator(env.mail, env.emails, env.metrics, log, 5*time.Second)
	env.tourSvc = NewTourService(env.tours, auditor, validator, log)
	env.contactSvc = NewContactService(env.contacts, composer, env.orchestrator, auditor, validator, env.metrics, log)
	env.requestSvc = NewCustomTourService(env.requests, composer, env.orchestrator, auditor, validator, env.metrics, log)
	env.reviewSvc = NewReviewService(env.reviews, auditor, validator, env.metrics, log)
	env.authSvc = NewAuthService(env.admins, auditor, validator, log, "test-secret", time.Hour)
	env.dashboardSvc = NewDashboardService(env.tours, env.contacts, env.requests, env.reviews, auditor)

	return env
}

var testActor = Actor{AdminID: "admin-1", IP: "127.0.0.1"}

func validTourInput(name string) TourInput {
	return TourInput{
		Name:        name,
		Description: "Delhi, Agra and Jaipur in one week",
		Category:    "Golden Triangle",
		Duration:    "6 Days / 5 Nights",
		MaxGuests:   12,
		Highlights:  []string{"Taj Mahal at sunrise"},
	}
}

func fieldErrors(t *testing.T, err error) map[string]string {
	t.Helper()

	verr, ok := err.(*ValidationError)
	if !ok {
		t.Fatalf("error = %v (%T), want *ValidationError", err, err)
	}
	out := make(map[string]string, len(verr.Errors))
	for _, fe := range verr.Errors {
		out[fe.Field] = fe.Message
	}
	return out
}
