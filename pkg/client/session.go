package client

import "net/http"

// Session carries the admin credentials of one API consumer. It is passed
// explicitly to every call that needs authentication.
type Session struct {
	store TokenStore
}

// NewSession creates a session backed by store. A nil store means memory.
func NewSession(store TokenStore) *Session {
	if store == nil {
		store = NewMemoryStore()
	}
	return &Session{store: store}
}

// Token returns the current bearer token, or "" when logged out
func (s *Session) Token() (string, error) {
	return s.store.Get()
}

// LoggedIn reports whether a token is held
func (s *Session) LoggedIn() bool {
	token, err := s.store.Get()
	return err == nil && token != ""
}

// Logout forgets the token
func (s *Session) Logout() error {
	return s.store.Clear()
}

func (s *Session) authorize(req *http.Request) error {
	token, err := s.store.Get()
	if err != nil {
		return err
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return nil
}
