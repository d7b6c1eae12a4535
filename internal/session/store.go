// Package session owns the authenticated identity and the persisted
// bearer credential. A single store instance is initialized at
// process start; commands gate on it, the API client reads the token
// through it, and a 401 anywhere resets it.
package session

import (
	"fmt"
	"sync"
)

// Event describes a session state change delivered to subscribers.
type Event int

const (
	// EventLogin fires after credentials are persisted on a
	// successful login.
	EventLogin Event = iota
	// EventLogout fires when the user explicitly signs out.
	EventLogout
	// EventExpired fires when the server rejected the credential and
	// the session was forcibly reset.
	EventExpired
)

// Authenticator exchanges credentials for a bearer token and display
// name. Implemented by the API client.
type Authenticator interface {
	Login(username, password string) (token, adminName string, err error)
}

// Store holds the session state. The zero value is not usable; call
// NewStore, then Initialize exactly once before gating on it.
type Store struct {
	mu          sync.Mutex
	loading     bool
	initialized bool
	token       string
	identity    string
	serverURL   string
	subs        []func(Event)
}

// NewStore creates a store in the loading state.
func NewStore() *Store {
	return &Store{loading: true}
}

// Initialize reads the persisted credential. Identity is set only
// when both the token and the display name survived; the store always
// leaves the loading state, even on a read error. Subsequent calls
// are no-ops.
func (s *Store) Initialize() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}
	s.initialized = true
	defer func() { s.loading = false }()

	creds, err := loadCredentials()
	if err != nil {
		return fmt.Errorf("initializing session: %w", err)
	}
	s.serverURL = creds.ServerURL
	if creds.AccessToken != "" && creds.AdminName != "" {
		s.token = creds.AccessToken
		s.identity = creds.AdminName
	}
	return nil
}

// Subscribe registers a callback for session events. Callbacks run
// outside the store lock.
func (s *Store) Subscribe(fn func(Event)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Loading reports whether Initialize has completed. Gating decisions
// are not trustworthy while this is true.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Identity returns the authenticated display name, if any.
func (s *Store) Identity() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity, s.identity != ""
}

// Token returns the current bearer credential. Satisfies the API
// client's TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// ServerURL returns the persisted server URL, if any.
func (s *Store) ServerURL() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.serverURL
}

// SetServerURL persists a new server URL alongside the current
// credential.
func (s *Store) SetServerURL(serverURL string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.serverURL = serverURL
	return saveCredentials(Credentials{
		ServerURL:   s.serverURL,
		AccessToken: s.token,
		AdminName:   s.identity,
	})
}

// Login authenticates against the server and, on success, persists
// the credential and sets the identity. On failure the store is left
// untouched and the error surfaces to the caller.
func (s *Store) Login(auth Authenticator, username, password string) (string, error) {
	token, adminName, err := auth.Login(username, password)
	if err != nil {
		return "", err
	}

	s.mu.Lock()
	if err := saveCredentials(Credentials{
		ServerURL:   s.serverURL,
		AccessToken: token,
		AdminName:   adminName,
	}); err != nil {
		s.mu.Unlock()
		return "", err
	}
	s.token = token
	s.identity = adminName
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, EventLogin)
	return adminName, nil
}

// Logout clears the persisted credential and the identity. Idempotent:
// logging out twice neither errors nor re-notifies.
func (s *Store) Logout() error {
	return s.clear(EventLogout)
}

// Invalidate is the 401 path: same reset as Logout, announced as an
// expiry. At most one EventExpired goes out until the next login.
func (s *Store) Invalidate() {
	// Persistence errors are swallowed here: the in-memory session is
	// already gone and the caller is mid-failure anyway.
	_ = s.clear(EventExpired)
}

func (s *Store) clear(event Event) error {
	s.mu.Lock()
	if s.token == "" && s.identity == "" {
		s.mu.Unlock()
		return nil
	}
	s.token = ""
	s.identity = ""
	err := saveCredentials(Credentials{ServerURL: s.serverURL})
	subs := s.snapshotSubs()
	s.mu.Unlock()

	notify(subs, event)
	return err
}

func (s *Store) snapshotSubs() []func(Event) {
	return append([]func(Event){}, s.subs...)
}

func notify(subs []func(Event), event Event) {
	for _, fn := range subs {
		fn(event)
	}
}
