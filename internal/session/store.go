// Package session persists the single bearer token the client holds
// between runs. The token lives in a small JSON file under the user's
// matchday directory; there is no expiry tracking, an invalid token is
// only discovered when the backend rejects a request.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/matchdaycli/matchday/internal/errors"
)

// State is the observable connection state derived from the stored token.
type State int

const (
	// StateDisconnected means no token is stored.
	StateDisconnected State = iota
	// StateConnected means a token is stored.
	StateConnected
)

// String returns the string representation of the state
func (s State) String() string {
	if s == StateConnected {
		return "connected"
	}
	return "disconnected"
}

// Listener observes session state changes. The store never touches the UI
// itself; whoever paints a status indicator registers a listener.
type Listener func(State)

// sessionFile is the on-disk shape.
type sessionFile struct {
	Token   string    `json:"token"`
	SavedAt time.Time `json:"saved_at"`
}

// Store persists a single bearer token across process restarts.
//
// Safe for concurrent use within one process. Concurrent processes sharing
// the same file can race; accepted, same as browser tabs sharing storage.
type Store struct {
	mu       sync.Mutex
	path     string
	listener Listener
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the standard session file location
// (~/.matchday/session.json).
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeSessionRead, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".matchday", "session.json"), nil
}

// OnChange registers the state-change listener. Only one listener is
// supported; registering replaces the previous one.
func (s *Store) OnChange(fn Listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listener = fn
}

// Set persists a non-empty token, or erases the stored token when empty.
// The listener observes the resulting state either way.
func (s *Store) Set(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if token == "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			return errors.Wrap(errors.ErrCodeSessionWrite, "cannot remove session file", err)
		}
		s.notify(StateDisconnected)
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "cannot create session directory", err)
	}
	data, err := json.Marshal(sessionFile{Token: token, SavedAt: time.Now().UTC()})
	if err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "cannot encode session", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeSessionWrite, "cannot write session file", err)
	}
	s.notify(StateConnected)
	return nil
}

// Token returns the persisted token, or "" when none is stored. A corrupt
// or unreadable session file reads as logged out rather than failing the
// caller.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	var f sessionFile
	if err := json.Unmarshal(data, &f); err != nil {
		return ""
	}
	return f.Token
}

// Active reports whether a token is currently stored.
func (s *Store) Active() bool {
	return s.Token() != ""
}

// State returns the current connection state.
func (s *Store) State() State {
	if s.Active() {
		return StateConnected
	}
	return StateDisconnected
}

func (s *Store) notify(state State) {
	if s.listener != nil {
		s.listener(state)
	}
}
