package storefront

import "sync"

// Session is the admin login state of this client. It is not persisted.
type Session struct {
	LoggedIn bool
	Admin    *AdminRef
}

// SessionStore owns the Session
type SessionStore struct {
	mu      sync.Mutex
	session Session
}

// NewSessionStore creates a logged-out store
func NewSessionStore() *SessionStore {
	return &SessionStore{}
}

// Get returns a copy of the session
func (s *SessionStore) Get() Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := s.session
	if out.Admin != nil {
		admin := *out.Admin
		out.Admin = &admin
	}
	return out
}

// LogIn marks admin as logged in
func (s *SessionStore) LogIn(admin AdminRef) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{LoggedIn: true, Admin: &admin}
}

// LogOut resets the session
func (s *SessionStore) LogOut() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.session = Session{}
}

// IsLoggedIn reports whether an admin is logged in
func (s *SessionStore) IsLoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.LoggedIn
}
