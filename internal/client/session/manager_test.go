package session

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/potluck/recipebook/internal/client/api"
	"github.com/stretchr/testify/require"
)

// fakeAPI scripts the auth endpoints for the manager under test.
type fakeAPI struct {
	mu         sync.Mutex
	signInErr  error
	refreshErr error
	refreshes  int
}

func (f *fakeAPI) SignIn(ctx context.Context, email, password string) (api.Credentials, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signInErr != nil {
		return api.Credentials{}, f.signInErr
	}
	return api.Credentials{ID: "user-1", Email: email, Token: "token-0"}, nil
}

func (f *fakeAPI) SignUp(ctx context.Context, email, password string) (api.Credentials, error) {
	return f.SignIn(ctx, email, password)
}

func (f *fakeAPI) RefreshToken(ctx context.Context) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.refreshErr != nil {
		return "", f.refreshErr
	}
	f.refreshes++
	return fmt.Sprintf("token-%d", f.refreshes), nil
}

func (f *fakeAPI) setRefreshErr(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refreshErr = err
}

func newTestManager(t *testing.T, fake *fakeAPI, refreshEvery time.Duration) (*Manager, *TokenStore) {
	t.Helper()
	store := NewTokenStore(t.TempDir())
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	m := NewManager(fake, store, refreshEvery, logger)
	t.Cleanup(m.SignOut)
	return m, store
}

func TestSignInEntersAuthenticated(t *testing.T) {
	m, store := newTestManager(t, &fakeAPI{}, time.Hour)

	require.Equal(t, Unauthenticated, m.State())
	require.NoError(t, m.SignIn(context.Background(), "a@b.com", "123456"))
	require.Equal(t, Authenticated, m.State())
	require.Equal(t, "token-0", m.Token())

	// The token survives a restart.
	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "token-0", stored)
}

func TestSignInFailureStaysUnauthenticated(t *testing.T) {
	fake := &fakeAPI{signInErr: &api.Error{Status: http.StatusUnauthorized, Message: "Password is not correct!"}}
	m, store := newTestManager(t, fake, time.Hour)

	err := m.SignIn(context.Background(), "a@b.com", "wrong")
	require.EqualError(t, err, "Password is not correct!")
	require.Equal(t, Unauthenticated, m.State())
	require.Empty(t, m.Token())

	stored, loadErr := store.Load()
	require.NoError(t, loadErr)
	require.Empty(t, stored)
}

func TestResumeWithoutStoredToken(t *testing.T) {
	m, _ := newTestManager(t, &fakeAPI{}, time.Hour)
	require.False(t, m.Resume(context.Background()))
	require.Equal(t, Unauthenticated, m.State())
}

func TestResumeSuccess(t *testing.T) {
	m, store := newTestManager(t, &fakeAPI{}, time.Hour)
	require.NoError(t, store.Save("stale-token"))

	require.True(t, m.Resume(context.Background()))
	require.Equal(t, Authenticated, m.State())
	// Resume trades the stored token for a fresh one.
	require.Equal(t, "token-1", m.Token())

	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, "token-1", stored)
}

func TestResumeFailureIsSilent(t *testing.T) {
	fake := &fakeAPI{refreshErr: &api.Error{Status: http.StatusUnauthorized}}
	m, store := newTestManager(t, fake, time.Hour)
	require.NoError(t, store.Save("expired-token"))

	require.False(t, m.Resume(context.Background()))
	require.Equal(t, Unauthenticated, m.State())
	require.Empty(t, m.Token())
}

func TestBackgroundRefreshRotatesToken(t *testing.T) {
	fake := &fakeAPI{}
	m, store := newTestManager(t, fake, 20*time.Millisecond)

	require.NoError(t, m.SignIn(context.Background(), "a@b.com", "123456"))

	require.Eventually(t, func() bool {
		return m.Token() != "token-0"
	}, time.Second, 5*time.Millisecond)

	require.Equal(t, Authenticated, m.State())
	stored, err := store.Load()
	require.NoError(t, err)
	require.Equal(t, m.Token(), stored)
}

func TestRefreshRejectionSignsOut(t *testing.T) {
	fake := &fakeAPI{}
	m, store := newTestManager(t, fake, 20*time.Millisecond)

	require.NoError(t, m.SignIn(context.Background(), "a@b.com", "123456"))
	fake.setRefreshErr(&api.Error{Status: http.StatusUnauthorized, Message: "Unauthorized token!"})

	require.Eventually(t, func() bool {
		return m.State() == Unauthenticated
	}, time.Second, 5*time.Millisecond)

	require.Empty(t, m.Token())
	stored, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, stored)
}

func TestTransientRefreshFailureKeepsSession(t *testing.T) {
	fake := &fakeAPI{}
	m, _ := newTestManager(t, fake, 20*time.Millisecond)

	require.NoError(t, m.SignIn(context.Background(), "a@b.com", "123456"))
	fake.setRefreshErr(fmt.Errorf("dial tcp: connection refused"))

	// Give the loop a few ticks; a network error must not end the session.
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, Authenticated, m.State())
	require.Equal(t, "token-0", m.Token())
}

func TestSignOutClearsEverything(t *testing.T) {
	m, store := newTestManager(t, &fakeAPI{}, time.Hour)

	require.NoError(t, m.SignIn(context.Background(), "a@b.com", "123456"))
	m.SignOut()

	require.Equal(t, Unauthenticated, m.State())
	require.Empty(t, m.Token())

	stored, err := store.Load()
	require.NoError(t, err)
	require.Empty(t, stored)
}
