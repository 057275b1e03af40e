package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/interface/handler"
	"tourism-service/internal/testutils"
	"tourism-service/internal/usecase"
	"tourism-service/pkg/logger"
	"tourism-service/pkg/metrics"
	"tourism-service/templates"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

type testApp struct {
	engine       *gin.Engine
	tours        *testutils.TourRepository
	contacts     *testutils.ContactRepository
	requests     *testutils.CustomTourRepository
	reviews      *testutils.ReviewRepository
	admins       *testutils.AdminRepository
	mail         *testutils.MailSender
	orchestrator *usecase.EmailOrchestrator
	auth         *usecase.AuthService
	registry     *prometheus.Registry
}

// buildTestApp wires the real router, services and JWT handling over in-memory storage
func buildTestApp(t *testing.T, production bool) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	log := logger.NewNop()
	registry := prometheus.NewRegistry()
	m := metrics.NewMetrics("test", registry)

	app := &testApp{
		tours:    testutils.NewTourRepository(),
		contacts: testutils.NewContactRepository(),
		requests: testutils.NewCustomTourRepository(),
		reviews:  testutils.NewReviewRepository(),
		admins:   testutils.NewAdminRepository(),
		mail:     &testutils.MailSender{},
		registry: registry,
	}
	requests, admins := app.requests, app.admins

	validator := usecase.NewValidator()
	auditor := usecase.NewAuditor(&testutils.AuditRepository{}, log)
	composer := templates.NewComposer("admin@example.com", "Test Tours")
	app.orchestrator = usecase.NewEmailOrchestrator(app.mail, &testutils.EmailRepository{}, m, log, 5*time.Second)
	app.auth = usecase.NewAuthService(admins, auditor, validator, log, "test-secret", time.Hour)

	tourSvc := usecase.NewTourService(app.tours, auditor, validator, log)
	contactSvc := usecase.NewContactService(app.contacts, composer, app.orchestrator, auditor, validator, m, log)
	requestSvc := usecase.NewCustomTourService(requests, composer, app.orchestrator, auditor, validator, m, log)
	reviewSvc := usecase.NewReviewService(app.reviews, auditor, validator, m, log)
	dashboardSvc := usecase.NewDashboardService(app.tours, app.contacts, requests, app.reviews, auditor)

	responder := handler.NewResponder(production, log)
	r := NewRouter(Options{
		Version:     "test",
		CORSOrigins: []string{"http://localhost:5173"},
		Gatherer:    registry,
		Metrics:     m,
		Logger:      log,
		Responder:   responder,
	}, handler.NewAuthMiddleware(app.auth, responder).Protect())
	r.Register(handler.NewTourHandler(tourSvc, responder))
	r.Register(handler.NewContactHandler(contactSvc, responder))
	r.Register(handler.NewCustomTourHandler(requestSvc, responder))
	r.Register(handler.NewReviewHandler(reviewSvc, responder))
	r.Register(handler.NewAdminHandler(app.auth, dashboardSvc, responder))
	app.engine = r.Engine()

	if _, err := app.auth.CreateAdmin(context.Background(), usecase.Actor{}, usecase.AdminInput{
		Username: "root",
		Email:    "root@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("seed admin: %v", err)
	}

	t.Cleanup(app.orchestrator.Wait)
	return app
}

type envelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Error   string               `json:"error"`
	Errors  []usecase.FieldError `json:"errors"`
}

func (a *testApp) do(t *testing.T, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		raw, err := json.Marshal(b)
		if err != nil {
			t.Fatal(err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	a.engine.ServeHTTP(resp, req)

	var env envelope
	if strings.HasPrefix(resp.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(resp.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode %s %s: %v\n%s", method, path, err, resp.Body.String())
		}
	}
	return resp, env
}

func (a *testApp) login(t *testing.T) string {
	t.Helper()

	resp, env := a.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"username": "root", "password": "correct-horse"})
	if resp.Code != http.StatusOK {
		t.Fatalf("login status = %d: %s", resp.Code, resp.Body.String())
	}
	var result struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &result); err != nil || result.Token == "" {
		t.Fatalf("login data = %s", env.Data)
	}
	return result.Token
}

func TestContactSubmission(t *testing.T) {
	app := buildTestApp(t, false)

	resp, env := app.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Alice",
		"email":   "a@x.com",
		"message": "I would like pricing info",
	})
	if resp.Code != http.StatusCreated || !env.Success {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}

	var contact entity.Contact
	if err := json.Unmarshal(env.Data, &contact); err != nil {
		t.Fatal(err)
	}
	if contact.Status != "new" {
		t.Errorf("data.status = %q, want new", contact.Status)
	}

	app.orchestrator.Wait()
	if len(app.mail.Sent()) != 2 {
		t.Errorf("sent %d emails, want 2", len(app.mail.Sent()))
	}
}

func TestContactSubmissionTooShort(t *testing.T) {
	app := buildTestApp(t, false)

	resp, env := app.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Bob",
		"email":   "b@x.com",
		"message": "hi",
	})
	if resp.Code != http.StatusBadRequest || env.Success {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}

	found := false
	for _, fe := range env.Errors {
		if fe.Field == "message" && strings.Contains(fe.Message, "at least 10") {
			found = true
		}
	}
	if !found {
		t.Errorf("errors = %+v, want a message length violation", env.Errors)
	}
	if app.contacts.Len() != 0 {
		t.Error("rejected contact was persisted")
	}
}

func TestSubmissionSurvivesMailOutage(t *testing.T) {
	app := buildTestApp(t, false)
	app.mail.Fail = true

	resp, _ := app.do(t, http.MethodPost, "/api/customize-tour", "", gin.H{
		"startDate":         "2026-12-01",
		"duration":          "10",
		"numberOfTravelers": 2,
		"accommodationType": "Comfort",
		"destinations":      []string{"Agra"},
		"budgetRange":       "$2000-$3000",
		"name":              "Carol",
		"email":             "carol@example.com",
		"phone":             "5551234",
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}
}

func TestLoginWrongPassword(t *testing.T) {
	app := buildTestApp(t, false)

	resp, env := app.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"username": "root", "password": "wrong"})
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", resp.Code)
	}
	if env.Message != "Invalid credentials" {
		t.Errorf("message = %q, want Invalid credentials", env.Message)
	}

	_, unknown := app.do(t, http.MethodPost, "/api/admin/login", "", gin.H{"username": "ghost", "password": "wrong"})
	if unknown.Message != env.Message {
		t.Errorf("unknown user message %q differs from wrong password message %q", unknown.Message, env.Message)
	}
}

func TestReviewApproval(t *testing.T) {
	app := buildTestApp(t, false)
	token := app.login(t)

	resp, env := app.do(t, http.MethodPost, "/api/reviews", "", gin.H{"name": "Dan", "rating": 5, "description": "Wonderful"})
	if resp.Code != http.StatusCreated {
		t.Fatalf("submit status = %d body = %s", resp.Code, resp.Body.String())
	}
	var review entity.Review
	json.Unmarshal(env.Data, &review)
	if review.IsApproved || review.Status != "pending" {
		t.Fatalf("new review = %+v", review)
	}

	resp, env = app.do(t, http.MethodPatch, "/api/reviews/"+review.ID.Hex()+"/status", token, gin.H{"status": "approved"})
	if resp.Code != http.StatusOK {
		t.Fatalf("approve status = %d body = %s", resp.Code, resp.Body.String())
	}
	json.Unmarshal(env.Data, &review)
	if !review.IsApproved {
		t.Error("data.isApproved = false after approval")
	}

	_, env = app.do(t, http.MethodGet, "/api/reviews/approved", "", nil)
	var page struct {
		Items []entity.Review `json:"items"`
	}
	json.Unmarshal(env.Data, &page)
	if len(page.Items) != 1 {
		t.Errorf("approved reviews = %d, want 1", len(page.Items))
	}
}

func TestHugePageNumber(t *testing.T) {
	app := buildTestApp(t, false)
	token := app.login(t)

	paths := []string{
		"/api/reviews/approved",
		"/api/reviews",
		"/api/contact",
		"/api/customize-tour",
		"/api/admin/tours",
	}
	for _, path := range paths {
		resp, env := app.do(t, http.MethodGet, path+"?page=9223372036854775807&limit=100", token, nil)
		if resp.Code != http.StatusOK || !env.Success {
			t.Errorf("GET %s: status = %d body = %s", path, resp.Code, resp.Body.String())
			continue
		}
		var page struct {
			Items []json.RawMessage `json:"items"`
		}
		if err := json.Unmarshal(env.Data, &page); err != nil {
			t.Errorf("GET %s: data = %s", path, env.Data)
		}
		if len(page.Items) != 0 {
			t.Errorf("GET %s: %d items past the last page", path, len(page.Items))
		}
	}
}

func TestUnknownSlug(t *testing.T) {
	app := buildTestApp(t, false)

	resp, env := app.do(t, http.MethodGet, "/api/tours/slug/nonexistent-slug", "", nil)
	if resp.Code != http.StatusNotFound || env.Success {
		t.Errorf("status = %d success = %v, want 404 false", resp.Code, env.Success)
	}
}

// created decodes the data of a 201 response into dst
func (a *testApp) created(t *testing.T, method, path, token string, body, dst interface{}) {
	t.Helper()

	resp, env := a.do(t, method, path, token, body)
	if resp.Code != http.StatusCreated {
		t.Fatalf("%s %s status = %d body = %s", method, path, resp.Code, resp.Body.String())
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatal(err)
	}
}

func TestAdminRoutesRequireToken(t *testing.T) {
	app := buildTestApp(t, false)
	ctx := context.Background()
	token := app.login(t)
	tampered := token[:len(token)-2] + "xx"

	tourBody := gin.H{
		"name":        "Golden Triangle Classic",
		"description": "Delhi, Agra and Jaipur",
		"category":    "Golden Triangle",
		"duration":    "6 Days",
		"maxGuests":   12,
	}

	var (
		tour    entity.Tour
		contact entity.Contact
		request entity.CustomizeTourRequest
		review  entity.Review
	)
	app.created(t, http.MethodPost, "/api/tours", token, tourBody, &tour)
	app.created(t, http.MethodPost, "/api/contact", "", gin.H{
		"name":    "Alice",
		"email":   "a@x.com",
		"message": "I would like pricing info",
	}, &contact)
	app.created(t, http.MethodPost, "/api/customize-tour", "", gin.H{
		"startDate":         "2026-12-01",
		"duration":          "10",
		"numberOfTravelers": 2,
		"accommodationType": "Comfort",
		"destinations":      []string{"Agra"},
		"budgetRange":       "$2000-$3000",
		"name":              "Carol",
		"email":             "carol@example.com",
		"phone":             "5551234",
	}, &request)
	app.created(t, http.MethodPost, "/api/reviews", "", gin.H{"name": "Dan", "rating": 5, "description": "Wonderful"}, &review)
	app.orchestrator.Wait()

	routes := []struct {
		method, path string
		body         interface{}
	}{
		{http.MethodPost, "/api/tours", tourBody},
		{http.MethodPut, "/api/tours/" + tour.ID.Hex(), gin.H{"name": "Renamed"}},
		{http.MethodDelete, "/api/tours/" + tour.ID.Hex(), nil},
		{http.MethodGet, "/api/admin/tours", nil},
		{http.MethodGet, "/api/contact", nil},
		{http.MethodGet, "/api/contact/" + contact.ID.Hex(), nil},
		{http.MethodPatch, "/api/contact/" + contact.ID.Hex() + "/status", gin.H{"status": "read"}},
		{http.MethodDelete, "/api/contact/" + contact.ID.Hex(), nil},
		{http.MethodGet, "/api/customize-tour", nil},
		{http.MethodGet, "/api/customize-tour/" + request.ID.Hex(), nil},
		{http.MethodPatch, "/api/customize-tour/" + request.ID.Hex() + "/status", gin.H{"status": "quoted"}},
		{http.MethodDelete, "/api/customize-tour/" + request.ID.Hex(), nil},
		{http.MethodGet, "/api/reviews", nil},
		{http.MethodPatch, "/api/reviews/" + review.ID.Hex() + "/status", gin.H{"status": "approved"}},
		{http.MethodDelete, "/api/reviews/" + review.ID.Hex(), nil},
		{http.MethodGet, "/api/admin/dashboard", nil},
		{http.MethodGet, "/api/admin/me", nil},
		{http.MethodPost, "/api/admin/admins", gin.H{"username": "intruder", "email": "i@x.com", "password": "long-enough-pw"}},
	}
	for _, r := range routes {
		for _, tok := range []string{"", tampered} {
			resp, env := app.do(t, r.method, r.path, tok, r.body)
			if resp.Code != http.StatusUnauthorized || env.Success {
				t.Errorf("%s %s token=%v: status = %d, want 401", r.method, r.path, tok != "", resp.Code)
			}
		}
	}

	if app.tours.Len() != 1 || app.contacts.Len() != 1 || app.requests.Len() != 1 || app.reviews.Len() != 1 || app.admins.Len() != 1 {
		t.Fatalf("record counts changed: tours=%d contacts=%d requests=%d reviews=%d admins=%d",
			app.tours.Len(), app.contacts.Len(), app.requests.Len(), app.reviews.Len(), app.admins.Len())
	}
	if got, _ := app.tours.FindByID(ctx, tour.ID.Hex()); got.Name != tour.Name {
		t.Errorf("tour name = %q, want %q", got.Name, tour.Name)
	}
	if got, _ := app.contacts.FindByID(ctx, contact.ID.Hex()); got.Status != entity.ContactNew {
		t.Errorf("contact status = %q, want new", got.Status)
	}
	if got, _ := app.requests.FindByID(ctx, request.ID.Hex()); got.Status != entity.RequestNew {
		t.Errorf("request status = %q, want new", got.Status)
	}
	if got, _ := app.reviews.FindByID(ctx, review.ID.Hex()); got.IsApproved || got.Status != entity.ReviewPending {
		t.Errorf("review = %s approved=%v, want pending", got.Status, got.IsApproved)
	}

	_, env := app.do(t, http.MethodGet, "/api/admin/me", "", nil)
	if env.Message != usecase.ErrNoToken.Message {
		t.Errorf("missing token message = %q", env.Message)
	}
}

func TestTourRoundTripAndIdempotentReads(t *testing.T) {
	app := buildTestApp(t, false)
	token := app.login(t)

	resp, env := app.do(t, http.MethodPost, "/api/tours", token, gin.H{
		"name":          "Rajasthan Royal Heritage",
		"description":   "Forts and palaces",
		"category":      "Rajasthan Tours",
		"price":         "1299.5",
		"duration":      "10 Days",
		"maxGuests":     "8",
		"minAge":        5,
		"highlights":    []string{"Amber Fort", "Lake Pichola"},
		"destinations":  []string{"Jaipur", "Udaipur"},
		"itinerary":     []gin.H{{"day": 1, "title": "Arrive in Jaipur"}},
		"notIncluded":   []string{"Flights"},
		"originalPrice": 1499,
	})
	if resp.Code != http.StatusCreated {
		t.Fatalf("create status = %d body = %s", resp.Code, resp.Body.String())
	}

	var created entity.Tour
	if err := json.Unmarshal(env.Data, &created); err != nil {
		t.Fatal(err)
	}
	if created.Slug != "rajasthan-royal-heritage" {
		t.Fatalf("slug = %q", created.Slug)
	}

	_, first := app.do(t, http.MethodGet, "/api/tours/slug/"+created.Slug, "", nil)
	_, second := app.do(t, http.MethodGet, "/api/tours/slug/"+created.Slug, "", nil)
	if !bytes.Equal(first.Data, second.Data) {
		t.Errorf("repeated reads differ:\n%s\n%s", first.Data, second.Data)
	}

	var fetched entity.Tour
	if err := json.Unmarshal(first.Data, &fetched); err != nil {
		t.Fatal(err)
	}
	if fetched.ID != created.ID || fetched.Name != "Rajasthan Royal Heritage" || fetched.Category != "Rajasthan Tours" {
		t.Errorf("fetched = %+v", fetched)
	}
	if fetched.Price == nil || *fetched.Price != 1299.5 || fetched.MaxGuests != 8 || fetched.MinAge != 5 {
		t.Errorf("numeric fields = price %v maxGuests %d minAge %d", fetched.Price, fetched.MaxGuests, fetched.MinAge)
	}
	if len(fetched.Itinerary) != 1 || fetched.Itinerary[0].Title != "Arrive in Jaipur" {
		t.Errorf("itinerary = %+v", fetched.Itinerary)
	}
	if !fetched.CreatedAt.Equal(created.CreatedAt) {
		t.Errorf("createdAt changed: %v vs %v", fetched.CreatedAt, created.CreatedAt)
	}

	_, list1 := app.do(t, http.MethodGet, "/api/tours", "", nil)
	_, list2 := app.do(t, http.MethodGet, "/api/tours", "", nil)
	if !bytes.Equal(list1.Data, list2.Data) {
		t.Error("repeated list reads differ")
	}

	resp, _ = app.do(t, http.MethodGet, "/api/tours/"+created.ID.Hex(), "", nil)
	if resp.Code != http.StatusOK {
		t.Errorf("get by id status = %d", resp.Code)
	}
}

func TestTourCreateBadType(t *testing.T) {
	app := buildTestApp(t, false)
	token := app.login(t)

	resp, env := app.do(t, http.MethodPost, "/api/tours", token, `{"name":"X","maxGuests":"lots"}`)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("status = %d body = %s", resp.Code, resp.Body.String())
	}
	if len(env.Errors) != 1 || env.Errors[0].Field != "maxGuests" {
		t.Errorf("errors = %+v, want one maxGuests error", env.Errors)
	}

	resp, _ = app.do(t, http.MethodPost, "/api/tours", token, `{"name":`)
	if resp.Code != http.StatusBadRequest {
		t.Errorf("malformed body status = %d, want 400", resp.Code)
	}
}

func TestHealthMetricsAndRequestID(t *testing.T) {
	app := buildTestApp(t, false)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(handler.RequestIDHeader, "req-123")
	resp := httptest.NewRecorder()
	app.engine.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Errorf("health status = %d", resp.Code)
	}
	if got := resp.Header().Get(handler.RequestIDHeader); got != "req-123" {
		t.Errorf("X-Request-ID = %q, want req-123", got)
	}

	resp = httptest.NewRecorder()
	app.engine.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if !strings.Contains(resp.Body.String(), "test_http_requests_total") {
		t.Error("metrics output is missing the request counter")
	}

	if got := testutils.CounterValue(t, app.registry, "test_http_requests_total"); got < 1 {
		t.Errorf("requests counted = %v", got)
	}
}

type panicRoutes struct{}

func (panicRoutes) RegisterRoutes(api *gin.RouterGroup, _ gin.HandlerFunc) {
	api.GET("/boom", func(*gin.Context) { panic("boom") })
}

func TestPanicAnswersWithEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	registry := prometheus.NewRegistry()

	for _, production := range []bool{false, true} {
		r := NewRouter(Options{
			Version:   "test",
			Metrics:   metrics.NewMetrics("panic", prometheus.NewRegistry()),
			Logger:    log,
			Responder: handler.NewResponder(production, log),
			Gatherer:  registry,
		}, func(c *gin.Context) { c.Next() })
		r.Register(panicRoutes{})
		app := &testApp{engine: r.Engine()}

		resp, env := app.do(t, http.MethodGet, "/api/boom", "", nil)
		if resp.Code != http.StatusInternalServerError {
			t.Fatalf("production=%v: status = %d, want 500", production, resp.Code)
		}
		if env.Success || env.Message != "Something went wrong" {
			t.Errorf("production=%v: envelope = %+v body = %s", production, env, resp.Body.String())
		}
		if production && env.Error != "" {
			t.Errorf("production error detail leaked: %q", env.Error)
		}
		if !production && !strings.Contains(env.Error, "boom") {
			t.Errorf("error = %q, want the panic value", env.Error)
		}
	}
}

func TestUnknownRoute(t *testing.T) {
	app := buildTestApp(t, false)

	resp, env := app.do(t, http.MethodGet, "/api/nowhere", "", nil)
	if resp.Code != http.StatusNotFound || env.Success {
		t.Errorf("status = %d, want 404", resp.Code)
	}
}
