package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/domain/repository"
	"tourism-service/internal/testutils"
	"tourism-service/pkg/logger"
)

func TestContactSubmit(t *testing.T) {
	env := newTestEnv(t)

	contact, err := env.contactSvc.Submit(context.Background(), ContactInput{
		Name:    " Alice ",
		Email:   "A@X.com",
		Message: "I would like pricing info",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	env.orchestrator.Wait()

	if contact.Status != entity.ContactNew {
		t.Errorf("Status = %q, want new", contact.Status)
	}
	if contact.Name != "Alice" || contact.Email != "a@x.com" {
		t.Errorf("input was not normalized: %+v", contact)
	}

	sent := env.mail.Sent()
	if len(sent) != 2 {
		t.Fatalf("sent %d emails, want 2", len(sent))
	}
	kinds := map[string]string{}
	for _, e := range sent {
		kinds[e.Kind] = e.To
	}
	if kinds[entity.KindContactAdmin] != "admin@example.com" || kinds[entity.KindContactCustomer] != "a@x.com" {
		t.Errorf("recipients = %v", kinds)
	}

	logs, _ := env.emails.FindByRelatedID(context.Background(), contact.ID.Hex())
	if len(logs) != 2 || logs[0].Status != entity.StatusSent {
		t.Errorf("email logs = %+v, want two SENT", logs)
	}
}

func TestContactSubmitShortMessage(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.contactSvc.Submit(context.Background(), ContactInput{
		Name:    "Bob",
		Email:   "b@x.com",
		Message: "hi",
	})
	msg, ok := fieldErrors(t, err)["message"]
	if !ok || !strings.Contains(msg, "at least 10") {
		t.Errorf("message error = %q, want a length violation", msg)
	}
	if env.contacts.Len() != 0 {
		t.Error("invalid contact was persisted")
	}
	env.orchestrator.Wait()
	if len(env.mail.Sent()) != 0 {
		t.Error("emails were sent for a rejected submission")
	}
}

func TestContactSubmitSurvivesMailFailure(t *testing.T) {
	env := newTestEnv(t)
	env.mail.Fail = true

	contact, err := env.contactSvc.Submit(context.Background(), ContactInput{
		Name:    "Alice",
		Email:   "a@x.com",
		Message: "Please call me back tomorrow",
	})
	if err != nil {
		t.Fatalf("Submit() error = %v, mail failures must not reach the caller", err)
	}
	env.orchestrator.Wait()

	if env.contacts.Len() != 1 {
		t.Error("contact was not persisted")
	}

	logs, _ := env.emails.FindByRelatedID(context.Background(), contact.ID.Hex())
	if len(logs) != 2 {
		t.Fatalf("email logs = %d, want 2", len(logs))
	}
	for _, l := range logs {
		if l.Status != entity.StatusFailed || l.ErrorDetail == "" {
			t.Errorf("log = %+v, want FAILED with detail", l)
		}
	}

	if got := testutils.CounterValue(t, env.registry, "test_notification_failures_total"); got != 2 {
		t.Errorf("notification failures = %v, want 2", got)
	}
}

func TestContactStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	contact, err := env.contactSvc.Submit(ctx, ContactInput{Name: "Alice", Email: "a@x.com", Message: "I would like pricing info"})
	if err != nil {
		t.Fatal(err)
	}
	env.orchestrator.Wait()

	updated, err := env.contactSvc.UpdateStatus(ctx, testActor, contact.ID.Hex(), entity.ContactReplied)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != entity.ContactReplied {
		t.Errorf("Status = %q, want replied", updated.Status)
	}

	_, err = env.contactSvc.UpdateStatus(ctx, testActor, contact.ID.Hex(), "archived")
	if msg := fieldErrors(t, err)["status"]; !strings.HasPrefix(msg, "Invalid status. Must be one of:") {
		t.Errorf("status error = %q", msg)
	}

	var nf *NotFoundError
	if _, err := env.contactSvc.UpdateStatus(ctx, testActor, "000000000000000000000000", entity.ContactRead); !errors.As(err, &nf) {
		t.Errorf("UpdateStatus(missing) error = %v, want *NotFoundError", err)
	}

	page, err := env.contactSvc.List(ctx, entity.ContactReplied, repository.Page{Page: 1, Limit: 10})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if page.Pagination.Total != 1 || page.Pagination.Pages != 1 {
		t.Errorf("pagination = %+v", page.Pagination)
	}
}

func validCustomTourInput() CustomTourInput {
	return CustomTourInput{
		StartDate:         "2026-12-01",
		Duration:          10,
		NumberOfTravelers: 2,
		AccommodationType: entity.AccommodationLuxury,
		Destinations:      []string{"Jaipur", "Udaipur"},
		BudgetRange:       "$3000-$5000",
		Name:              "Carol",
		Email:             "carol@example.com",
		Phone:             "5551234",
	}
}

func TestCustomTourSubmit(t *testing.T) {
	env := newTestEnv(t)

	req, err := env.requestSvc.Submit(context.Background(), validCustomTourInput())
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	env.orchestrator.Wait()

	if req.CountryCode != entity.DefaultCountryCode {
		t.Errorf("CountryCode = %q, want default", req.CountryCode)
	}
	if req.Status != entity.RequestNew {
		t.Errorf("Status = %q, want new", req.Status)
	}
	if want := time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC); !req.StartDate.Equal(want) {
		t.Errorf("StartDate = %v, want %v", req.StartDate, want)
	}
	if len(env.mail.Sent()) != 2 {
		t.Errorf("sent %d emails, want 2", len(env.mail.Sent()))
	}
}

func TestCustomTourSubmitValidation(t *testing.T) {
	env := newTestEnv(t)

	in := validCustomTourInput()
	in.Destinations = nil
	in.AccommodationType = "Hostel"
	in.NumberOfTravelers = 0

	_, err := env.requestSvc.Submit(context.Background(), in)
	fields := fieldErrors(t, err)
	for _, f := range []string{"destinations", "accommodationType", "numberOfTravelers"} {
		if _, ok := fields[f]; !ok {
			t.Errorf("missing field error for %q in %v", f, fields)
		}
	}

	in = validCustomTourInput()
	in.StartDate = "next tuesday"
	_, err = env.requestSvc.Submit(context.Background(), in)
	if _, ok := fieldErrors(t, err)["startDate"]; !ok {
		t.Errorf("want a startDate error, got %v", err)
	}
	if env.requests.Len() != 0 {
		t.Error("invalid request was persisted")
	}
}

func TestReviewModeration(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	review, err := env.reviewSvc.Submit(ctx, ReviewInput{Name: "Dan", Rating: 5, Description: "Wonderful trip"})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if review.Status != entity.ReviewPending || review.IsApproved {
		t.Errorf("new review = %+v, want pending and unapproved", review)
	}

	page, _ := env.reviewSvc.ListApproved(ctx, repository.Page{Page: 1, Limit: 10})
	if len(page.Items) != 0 {
		t.Error("pending review is publicly visible")
	}

	approved, err := env.reviewSvc.UpdateStatus(ctx, testActor, review.ID.Hex(), entity.ReviewApproved)
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if !approved.IsApproved {
		t.Error("approved review has isApproved=false")
	}

	page, _ = env.reviewSvc.ListApproved(ctx, repository.Page{Page: 1, Limit: 10})
	if len(page.Items) != 1 {
		t.Errorf("approved reviews = %d, want 1", len(page.Items))
	}

	rejected, err := env.reviewSvc.UpdateStatus(ctx, testActor, review.ID.Hex(), entity.ReviewRejected)
	if err != nil {
		t.Fatal(err)
	}
	if rejected.IsApproved {
		t.Error("rejected review still approved")
	}
}

func TestReviewSubmitRating(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.reviewSvc.Submit(context.Background(), ReviewInput{Name: "Eve", Rating: 6, Description: "Too good"})
	if _, ok := fieldErrors(t, err)["rating"]; !ok {
		t.Errorf("want a rating error, got %v", err)
	}
}

type panicSender struct{}

func (panicSender) Send(context.Context, *entity.Email) (string, error) {
	panic("transport exploded")
}

func TestOrchestratorRecoversPanics(t *testing.T) {
	env := newTestEnv(t)
	o := NewEmailOrchestrator(panicSender{}, env.emails, env.metrics, logger.NewNop(), time.Second)

	o.Dispatch("rel-1", []*entity.Email{{Kind: entity.KindContactAdmin, To: "a@example.com"}})
	o.Wait()
}

var _ repository.MailSender = panicSender{}
