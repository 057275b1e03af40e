package client

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"tourism-service/internal/usecase"
)

const testToken = "signed.jwt.token"

// fakeAPI answers a handful of routes the way the server does
func fakeAPI(t *testing.T) *httptest.Server {
	t.Helper()

	write := func(w http.ResponseWriter, status int, body interface{}) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		json.NewEncoder(w).Encode(body)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var in usecase.LoginInput
		json.NewDecoder(r.Body).Decode(&in)
		if in.Password != "correct-horse" {
			write(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Invalid credentials"})
			return
		}
		write(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"token": testToken,
				"admin": map[string]interface{}{"username": in.Username, "role": "admin"},
			},
		})
	})
	mux.HandleFunc("GET /api/admin/me", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+testToken {
			write(w, http.StatusUnauthorized, map[string]interface{}{"success": false, "message": "Token is not valid"})
			return
		}
		write(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    map[string]interface{}{"username": "root", "role": "admin", "isActive": true},
		})
	})
	mux.HandleFunc("POST /api/contact", func(w http.ResponseWriter, r *http.Request) {
		write(w, http.StatusBadRequest, map[string]interface{}{
			"success": false,
			"message": "Validation failed",
			"errors":  []map[string]string{{"field": "message", "message": "message must be at least 10 characters"}},
		})
	})
	mux.HandleFunc("GET /api/contact", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("status") != "new" || r.URL.Query().Get("page") != "2" {
			t.Errorf("query = %s", r.URL.RawQuery)
		}
		write(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data": map[string]interface{}{
				"items":      []interface{}{},
				"pagination": map[string]int{"page": 2, "limit": 10, "total": 11, "pages": 2},
			},
		})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestLoginStoresToken(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL+"/api/", nil)
	s := NewSession(NewMemoryStore())
	ctx := context.Background()

	result, err := c.Login(ctx, s, "root", "correct-horse")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}
	if result.Token != testToken || !s.LoggedIn() {
		t.Fatalf("session not populated: token=%q", result.Token)
	}

	admin, err := c.Me(ctx, s)
	if err != nil {
		t.Fatalf("Me() error = %v", err)
	}
	if admin.Username != "root" {
		t.Errorf("Username = %q", admin.Username)
	}
}

func TestLoginFailureLeavesSessionEmpty(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL+"/api", nil)
	s := NewSession(nil)

	_, err := c.Login(context.Background(), s, "root", "wrong")
	var apiErr *APIError
	if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "Invalid credentials" {
		t.Fatalf("Login() error = %v", err)
	}
	if s.LoggedIn() {
		t.Error("session holds a token after a failed login")
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL+"/api", nil)
	store := NewMemoryStore()
	store.Set("stale-token")
	s := NewSession(store)

	if _, err := c.Me(context.Background(), s); err == nil {
		t.Fatal("Me() with a stale token succeeded")
	}
	if s.LoggedIn() {
		t.Error("stale token was kept after a 401")
	}
}

func TestValidationErrorsSurface(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL+"/api", nil)

	_, err := c.SubmitContact(context.Background(), usecase.ContactInput{Name: "Bob", Email: "b@x.com", Message: "hi"})
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("SubmitContact() error = %v, want *APIError", err)
	}
	if len(apiErr.Errors) != 1 || apiErr.Errors[0].Field != "message" {
		t.Errorf("Errors = %+v", apiErr.Errors)
	}
}

func TestListQuery(t *testing.T) {
	srv := fakeAPI(t)
	c := NewClient(srv.URL+"/api", nil)
	s := NewSession(nil)
	if _, err := c.Login(context.Background(), s, "root", "correct-horse"); err != nil {
		t.Fatal(err)
	}

	page, err := c.ListContacts(context.Background(), s, "new", 2, 10)
	if err != nil {
		t.Fatalf("ListContacts() error = %v", err)
	}
	if page.Pagination.Total != 11 || page.Pagination.Pages != 2 {
		t.Errorf("Pagination = %+v", page.Pagination)
	}
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "token")
	store := NewFileStore(path)

	if token, err := store.Get(); err != nil || token != "" {
		t.Fatalf("Get() on missing file = %q, %v", token, err)
	}
	if err := store.Set("abc"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	// a second store over the same file sees the token
	if token, _ := NewFileStore(path).Get(); token != "abc" {
		t.Errorf("Get() = %q, want abc", token)
	}

	if err := store.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear() error = %v", err)
	}
	if token, _ := store.Get(); token != "" {
		t.Errorf("Get() after Clear = %q", token)
	}
}
