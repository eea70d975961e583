package session

import (
	"context"
	"sync"
	"time"

	"github.com/useleadnest/leadnest-cli/internal/log"
	"github.com/useleadnest/leadnest-cli/internal/token"
)

// Authenticator exchanges credentials for a session token. Satisfied
// by the api package's auth service; defined here so the session layer
// does not depend on the transport.
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, error)
	Register(ctx context.Context, email, password string) (string, error)
}

// Manager holds the in-process session state and keeps it consistent
// with the Store.
//
// State transitions are atomic: observers never see a stored token
// without the matching in-memory identity or vice versa. All methods
// are safe for concurrent use.
type Manager struct {
	mu       sync.RWMutex
	store    Store
	auth     Authenticator
	notifier Notifier
	logger   *log.Logger
	now      func() time.Time

	loading  bool
	token    string
	identity *token.Identity
}

// Option configures a Manager.
type Option func(*Manager)

// WithNotifier sets the notifier for session lifecycle events.
func WithNotifier(n Notifier) Option {
	return func(m *Manager) { m.notifier = n }
}

// WithLogger sets the logger.
func WithLogger(l *log.Logger) Option {
	return func(m *Manager) { m.logger = l }
}

// WithClock overrides the time source, for tests.
func WithClock(now func() time.Time) Option {
	return func(m *Manager) { m.now = now }
}

// NewManager creates a Manager in the loading state. Call Init to
// restore any persisted session before using it.
func NewManager(store Store, auth Authenticator, opts ...Option) *Manager {
	m := &Manager{
		store:    store,
		auth:     auth,
		notifier: NopNotifier{},
		logger:   log.DefaultLogger(),
		now:      time.Now,
		loading:  true,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Init restores the session from the store. A stored token that is
// expired or undecodable is discarded and the session starts
// anonymous; restoration problems are logged, never fatal.
//
// After Init returns, Loading reports false regardless of outcome.
func (m *Manager) Init(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	defer func() { m.loading = false }()

	raw, err := m.store.Read()
	if err != nil {
		m.logger.WithError(err).Warn("failed to read stored session, starting anonymous")
		return
	}
	if raw == "" {
		return
	}

	identity, err := token.Decode(raw)
	if err != nil {
		m.logger.WithError(err).Warn("stored session token is undecodable, discarding")
		m.clearLocked()
		return
	}

	if !token.LiveAt(raw, m.now()) {
		m.logger.With("subject", identity.Subject).Debug("stored session token has expired, discarding")
		m.clearLocked()
		m.notifier.Notify(KindError, "Session expired. Please log in again.")
		return
	}

	m.token = raw
	m.identity = identity
	m.logger.With("subject", identity.Subject).Debug("session restored")
}

// Loading reports whether the session is still being restored.
func (m *Manager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Authenticated reports whether a live session exists.
func (m *Manager) Authenticated() bool {
	return m.Identity() != nil
}

// Identity returns the current session identity, or nil when
// anonymous. A session whose token has expired since login reads as
// anonymous.
func (m *Manager) Identity() *token.Identity {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" || !token.LiveAt(m.token, m.now()) {
		return nil
	}
	return m.identity
}

// Token returns the raw session token for request authentication, or
// "" when there is no live session. Implements the api package's
// TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.token == "" || !token.LiveAt(m.token, m.now()) {
		return ""
	}
	return m.token
}

// Login exchanges credentials for a session. On success the token is
// persisted and the in-memory state swapped in one step; on any
// failure the previous session state is untouched.
func (m *Manager) Login(ctx context.Context, email, password string) (*token.Identity, error) {
	raw, err := m.auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.adopt(raw)
}

// Register creates an account and starts a session with the returned
// token. Same atomicity as Login.
func (m *Manager) Register(ctx context.Context, email, password string) (*token.Identity, error) {
	raw, err := m.auth.Register(ctx, email, password)
	if err != nil {
		return nil, err
	}
	return m.adopt(raw)
}

// Logout ends the session. It never fails: a store that cannot be
// cleared is logged, the in-memory session is dropped regardless.
func (m *Manager) Logout(ctx context.Context) {
	m.mu.Lock()
	m.clearLocked()
	m.mu.Unlock()

	m.notifier.Notify(KindInfo, "Logged out.")
}

// adopt validates a freshly issued token and swaps it in.
func (m *Manager) adopt(raw string) (*token.Identity, error) {
	identity, err := token.Decode(raw)
	if err != nil {
		return nil, WrapError(ErrTokenRejected, "backend returned an unusable token", err)
	}
	if !token.LiveAt(raw, m.now()) {
		return nil, NewError(ErrTokenRejected, "backend returned an expired token")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.store.Write(raw); err != nil {
		return nil, WrapError(ErrPersistFailed, "failed to persist session token", err)
	}
	m.token = raw
	m.identity = identity

	m.logger.With("subject", identity.Subject).Debug("session established")
	return identity, nil
}

func (m *Manager) clearLocked() {
	if err := m.store.Clear(); err != nil {
		m.logger.WithError(err).Warn("failed to clear stored session")
	}
	m.token = ""
	m.identity = nil
}
