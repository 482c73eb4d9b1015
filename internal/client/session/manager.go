// Package session owns the client's authentication state: the token,
// its durable persistence, and the recurring background refresh that
// keeps it from expiring.
package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/potluck/recipebook/internal/client/api"
)

type State int

const (
	Unauthenticated State = iota
	Authenticating
	Authenticated
)

func (s State) String() string {
	switch s {
	case Authenticating:
		return "authenticating"
	case Authenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// API is the slice of the REST client the manager needs.
type API interface {
	SignIn(ctx context.Context, email, password string) (api.Credentials, error)
	SignUp(ctx context.Context, email, password string) (api.Credentials, error)
	RefreshToken(ctx context.Context) (string, error)
}

// Manager is the client-side session state machine. It satisfies
// api.TokenSource, so the REST client always reads the freshest token.
//
// The refresh loop runs only while Authenticated: it starts on entry and
// stops on sign-out. The refresh period must stay below the server-side
// token expiry so a refresh always lands before the token lapses.
type Manager struct {
	api          API
	store        *TokenStore
	refreshEvery time.Duration
	logger       *slog.Logger

	mu          sync.Mutex
	state       State
	token       string
	stopRefresh chan struct{}
}

func NewManager(apiClient API, store *TokenStore, refreshEvery time.Duration, logger *slog.Logger) *Manager {
	return &Manager{
		api:          apiClient,
		store:        store,
		refreshEvery: refreshEvery,
		logger:       logger,
	}
}

// Token returns the current session token, or "" when signed out.
func (m *Manager) Token() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.token
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// SignIn authenticates with the server. On failure the manager drops
// back to Unauthenticated and the server's error is returned for the
// caller to surface.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	return m.authenticate(ctx, email, password, m.api.SignIn)
}

// SignUp registers a new account and enters the session on success.
func (m *Manager) SignUp(ctx context.Context, email, password string) error {
	return m.authenticate(ctx, email, password, m.api.SignUp)
}

func (m *Manager) authenticate(ctx context.Context, email, password string, call func(context.Context, string, string) (api.Credentials, error)) error {
	m.setState(Authenticating)

	creds, err := call(ctx, email, password)
	if err != nil {
		m.setState(Unauthenticated)
		return err
	}

	m.enterAuthenticated(creds.Token)
	return nil
}

// Resume attempts the cold-start auto-login: if a token was persisted,
// trade it for a fresh one. Failures are silent; this is best effort,
// not a user-initiated action.
func (m *Manager) Resume(ctx context.Context) bool {
	stored, err := m.store.Load()
	if err != nil || stored == "" {
		return false
	}

	m.mu.Lock()
	m.state = Authenticating
	m.token = stored
	m.mu.Unlock()

	fresh, err := m.api.RefreshToken(ctx)
	if err != nil {
		m.logger.Debug("auto-login refresh failed", "err", err)
		m.mu.Lock()
		m.state = Unauthenticated
		m.token = ""
		m.mu.Unlock()
		return false
	}

	m.enterAuthenticated(fresh)
	return true
}

// SignOut clears the persisted token and stops the refresh loop.
func (m *Manager) SignOut() {
	m.mu.Lock()
	stop := m.stopRefresh
	m.stopRefresh = nil
	m.state = Unauthenticated
	m.token = ""
	m.mu.Unlock()

	if stop != nil {
		close(stop)
	}
	if err := m.store.Clear(); err != nil {
		m.logger.Warn("clearing stored token failed", "err", err)
	}
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) enterAuthenticated(token string) {
	m.mu.Lock()
	m.state = Authenticated
	m.token = token
	start := m.stopRefresh == nil
	var stop chan struct{}
	if start {
		stop = make(chan struct{})
		m.stopRefresh = stop
	}
	m.mu.Unlock()

	if err := m.store.Save(token); err != nil {
		m.logger.Warn("persisting token failed", "err", err)
	}
	if start {
		go m.refreshLoop(stop)
	}
}

func (m *Manager) refreshLoop(stop chan struct{}) {
	ticker := time.NewTicker(m.refreshEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			fresh, err := m.api.RefreshToken(ctx)
			cancel()

			if err != nil {
				var apiErr *api.Error
				if errors.As(err, &apiErr) && apiErr.Status == http.StatusUnauthorized {
					// The server no longer accepts the token. Nothing a
					// retry can fix, so end the session.
					m.logger.Warn("session rejected by server, signing out", "err", err)
					m.SignOut()
					return
				}
				// Transient failure: log, keep the current token, try
				// again next tick.
				m.logger.Warn("token refresh failed", "err", err)
				continue
			}

			m.mu.Lock()
			m.token = fresh
			m.mu.Unlock()
			if err := m.store.Save(fresh); err != nil {
				m.logger.Warn("persisting refreshed token failed", "err", err)
			}

		case <-stop:
			return
		}
	}
}
