// Package client is a Go client for the tourism REST API.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"tourism-service/internal/domain/entity"
	"tourism-service/internal/usecase"
)

// APIError is a non-2xx answer from the API
type APIError struct {
	StatusCode int
	Message    string
	Detail     string
	Errors     []usecase.FieldError
}

func (e *APIError) Error() string {
	msg := fmt.Sprintf("api error (status code = %d): %s", e.StatusCode, e.Message)
	for _, fe := range e.Errors {
		msg += fmt.Sprintf("\n  %s: %s", fe.Field, fe.Message)
	}
	return msg
}

type envelope struct {
	Success bool                 `json:"success"`
	Message string               `json:"message"`
	Data    json.RawMessage      `json:"data"`
	Error   string               `json:"error"`
	Errors  []usecase.FieldError `json:"errors"`
}

// Client talks to one API root
type Client struct {
	httpclient *http.Client
	api        string
}

// NewClient creates a client for apiRoot, e.g. "https://example.com/api".
// A nil httpclient means http.DefaultClient.
func NewClient(apiRoot string, httpclient *http.Client) *Client {
	if httpclient == nil {
		httpclient = http.DefaultClient
	}
	return &Client{
		httpclient: httpclient,
		api:        strings.TrimSuffix(apiRoot, "/"),
	}
}

// build URL with path
func (c *Client) apipath(path ...string) string {
	parts := []string{c.api}
	for _, p := range path {
		parts = append(parts, strings.Trim(p, "/"))
	}
	return strings.Join(parts, "/")
}

// call sends body as JSON and decodes the envelope's data into out.
// A 401 on an authenticated call logs the session out.
func call[T any](ctx context.Context, c *Client, s *Session, method, u string, body interface{}, out *T) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if s != nil {
		if err := s.authorize(req); err != nil {
			return err
		}
	}

	resp, err := c.httpclient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("unexpected response: %w (status code = %d)", err, resp.StatusCode)
	}

	if resp.StatusCode >= 300 || !env.Success {
		if resp.StatusCode == http.StatusUnauthorized && s != nil {
			s.Logout()
		}
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    env.Message,
			Detail:     env.Error,
			Errors:     env.Errors,
		}
	}

	if out == nil || len(env.Data) == 0 {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}

func listQuery(status string, page, limit int) string {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	if page > 0 {
		q.Set("page", strconv.Itoa(page))
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// Login exchanges credentials for a token and stores it in s
func (c *Client) Login(ctx context.Context, s *Session, username, password string) (*usecase.LoginResult, error) {
	var result usecase.LoginResult
	in := usecase.LoginInput{Username: username, Password: password}
	if err := call(ctx, c, nil, http.MethodPost, c.apipath("admin", "login"), in, &result); err != nil {
		return nil, err
	}
	if err := s.store.Set(result.Token); err != nil {
		return nil, err
	}
	return &result, nil
}

// Me returns the admin owning the session
func (c *Client) Me(ctx context.Context, s *Session) (*entity.Admin, error) {
	var admin entity.Admin
	if err := call(ctx, c, s, http.MethodGet, c.apipath("admin", "me"), nil, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

func (c *Client) Dashboard(ctx context.Context, s *Session) (*usecase.Dashboard, error) {
	var d usecase.Dashboard
	if err := call(ctx, c, s, http.MethodGet, c.apipath("admin", "dashboard"), nil, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (c *Client) CreateAdmin(ctx context.Context, s *Session, in usecase.AdminInput) (*entity.Admin, error) {
	var admin entity.Admin
	if err := call(ctx, c, s, http.MethodPost, c.apipath("admin", "admins"), in, &admin); err != nil {
		return nil, err
	}
	return &admin, nil
}

// ListTours returns active tours grouped by category
func (c *Client) ListTours(ctx context.Context) (*usecase.GroupedTours, error) {
	var grouped usecase.GroupedTours
	if err := call(ctx, c, nil, http.MethodGet, c.apipath("tours"), nil, &grouped); err != nil {
		return nil, err
	}
	return &grouped, nil
}

func (c *Client) GetTourBySlug(ctx context.Context, slug string) (*entity.Tour, error) {
	var tour entity.Tour
	if err := call(ctx, c, nil, http.MethodGet, c.apipath("tours", "slug", url.PathEscape(slug)), nil, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (c *Client) CreateTour(ctx context.Context, s *Session, in usecase.TourInput) (*entity.Tour, error) {
	var tour entity.Tour
	if err := call(ctx, c, s, http.MethodPost, c.apipath("tours"), in, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (c *Client) UpdateTour(ctx context.Context, s *Session, id string, in usecase.TourUpdate) (*entity.Tour, error) {
	var tour entity.Tour
	if err := call(ctx, c, s, http.MethodPut, c.apipath("tours", id), in, &tour); err != nil {
		return nil, err
	}
	return &tour, nil
}

func (c *Client) DeleteTour(ctx context.Context, s *Session, id string) error {
	return call[struct{}](ctx, c, s, http.MethodDelete, c.apipath("tours", id), nil, nil)
}

func (c *Client) SubmitContact(ctx context.Context, in usecase.ContactInput) (*entity.Contact, error) {
	var contact entity.Contact
	if err := call(ctx, c, nil, http.MethodPost, c.apipath("contact"), in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) ListContacts(ctx context.Context, s *Session, status string, page, limit int) (*usecase.PageResult[entity.Contact], error) {
	var result usecase.PageResult[entity.Contact]
	if err := call(ctx, c, s, http.MethodGet, c.apipath("contact")+listQuery(status, page, limit), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateContactStatus(ctx context.Context, s *Session, id, status string) (*entity.Contact, error) {
	var contact entity.Contact
	in := usecase.StatusInput{Status: status}
	if err := call(ctx, c, s, http.MethodPatch, c.apipath("contact", id, "status"), in, &contact); err != nil {
		return nil, err
	}
	return &contact, nil
}

func (c *Client) SubmitCustomTour(ctx context.Context, in usecase.CustomTourInput) (*entity.CustomizeTourRequest, error) {
	var req entity.CustomizeTourRequest
	if err := call(ctx, c, nil, http.MethodPost, c.apipath("customize-tour"), in, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *Client) ListCustomTours(ctx context.Context, s *Session, status string, page, limit int) (*usecase.PageResult[entity.CustomizeTourRequest], error) {
	var result usecase.PageResult[entity.CustomizeTourRequest]
	if err := call(ctx, c, s, http.MethodGet, c.apipath("customize-tour")+listQuery(status, page, limit), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateCustomTourStatus(ctx context.Context, s *Session, id, status string) (*entity.CustomizeTourRequest, error) {
	var req entity.CustomizeTourRequest
	in := usecase.StatusInput{Status: status}
	if err := call(ctx, c, s, http.MethodPatch, c.apipath("customize-tour", id, "status"), in, &req); err != nil {
		return nil, err
	}
	return &req, nil
}

func (c *Client) SubmitReview(ctx context.Context, in usecase.ReviewInput) (*entity.Review, error) {
	var review entity.Review
	if err := call(ctx, c, nil, http.MethodPost, c.apipath("reviews"), in, &review); err != nil {
		return nil, err
	}
	return &review, nil
}

func (c *Client) ListApprovedReviews(ctx context.Context, page, limit int) (*usecase.PageResult[entity.Review], error) {
	var result usecase.PageResult[entity.Review]
	if err := call(ctx, c, nil, http.MethodGet, c.apipath("reviews", "approved")+listQuery("", page, limit), nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) UpdateReviewStatus(ctx context.Context, s *Session, id, status string) (*entity.Review, error) {
	var review entity.Review
	in := usecase.StatusInput{Status: status}
	if err := call(ctx, c, s, http.MethodPatch, c.apipath("reviews", id, "status"), in, &review); err != nil {
		return nil, err
	}
	return &review, nil
}
