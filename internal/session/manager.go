// Package session owns the authentication state machine.
//
// The Manager is the only writer of the credential store. Every state
// transition that involves the store happens while holding the manager's
// lock, so no caller observes an Authenticated state without a persisted
// token or the reverse.
package session

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"nockpoint/internal/credentials"
	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

const bearerPrefix = "Bearer "

// Manager implements domain.SessionManager.
type Manager struct {
	store   domain.CredentialStore
	gateway domain.AuthGateway
	logger  *slog.Logger

	mu          sync.Mutex
	state       domain.SessionState
	token       string
	generation  uint64
	subscribers map[uint64]chan domain.SessionState
	nextSubID   uint64
}

// NewManager creates a manager in the Unknown state.
func NewManager(store domain.CredentialStore, gateway domain.AuthGateway, logger *slog.Logger) *Manager {
	return &Manager{
		store:       store,
		gateway:     gateway,
		logger:      logger,
		state:       domain.SessionState{Status: domain.SessionUnknown},
		subscribers: make(map[uint64]chan domain.SessionState),
	}
}

// Login exchanges credentials for a token and persists it. The token and
// profile are stored before the state flips to Authenticated.
func (m *Manager) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	result, err := m.gateway.Login(ctx, username, password)
	if err != nil {
		m.mu.Lock()
		defer m.mu.Unlock()
		if apperrors.IsInvalidCredentials(err) && m.state.IsLoading() {
			m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
		}
		m.logger.WarnContext(ctx, "Login failed", "username", username, "error", err)
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.persistLocked(ctx, result.Token, result.User); err != nil {
		m.logger.ErrorContext(ctx, "Failed to persist credentials after login", "username", username, "error", err)
		m.clearStoreLocked(ctx)
		m.token = ""
		m.generation++
		m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
		return nil, err
	}

	m.token = result.Token
	m.generation++
	m.setStateLocked(domain.SessionState{Status: domain.SessionAuthenticated, User: result.User})
	m.logger.InfoContext(ctx, "Logged in", "username", result.User.Username, "user_id", result.User.ID)

	return result, nil
}

// Validate re-checks the stored token with the remote service.
//
// A missing token resolves to Unauthenticated without any network call.
// A 401 clears the store. Any other failure leaves the stored token in
// place so a later attempt can still succeed once connectivity returns.
func (m *Manager) Validate(ctx context.Context) (domain.SessionState, error) {
	m.mu.Lock()
	if m.state.Status == domain.SessionUnknown {
		m.setStateLocked(domain.SessionState{Status: domain.SessionChecking})
	}

	token, ok, err := m.store.Get(ctx, credentials.TokenKey)
	if err != nil {
		m.logger.ErrorContext(ctx, "Failed to read stored token", "error", err)
		m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
		state := m.state
		m.mu.Unlock()
		return state, err
	}
	if !ok || token == "" {
		m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
		state := m.state
		m.mu.Unlock()
		return state, nil
	}
	generation := m.generation
	m.mu.Unlock()

	profile, verifyErr := m.gateway.Verify(ctx, token)

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.generation != generation {
		// A login or logout completed while verification was in flight.
		m.logger.DebugContext(ctx, "Discarding stale validation result")
		return m.state, nil
	}

	switch {
	case verifyErr == nil:
		if err := m.putProfileLocked(ctx, *profile); err != nil {
			m.logger.ErrorContext(ctx, "Failed to refresh stored profile", "error", err)
			m.token = ""
			m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
			return m.state, err
		}
		m.token = token
		m.setStateLocked(domain.SessionState{Status: domain.SessionAuthenticated, User: *profile})
		return m.state, nil

	case apperrors.IsUnauthorized(verifyErr):
		m.logger.InfoContext(ctx, "Stored token rejected, clearing credentials")
		storeErr := m.clearStoreLocked(ctx)
		m.token = ""
		m.generation++
		m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
		return m.state, apperrors.Join(verifyErr, storeErr)

	default:
		m.logger.WarnContext(ctx, "Token validation failed, keeping stored token", "error", verifyErr)
		m.token = ""
		m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
		return m.state, verifyErr
	}
}

// Logout clears the stored credentials. It is safe to call repeatedly and
// from any state; the state always ends Unauthenticated.
func (m *Manager) Logout(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	err := m.clearStoreLocked(ctx)
	m.token = ""
	m.generation++
	if m.state.Status != domain.SessionUnauthenticated {
		m.logger.InfoContext(ctx, "Logged out")
	}
	m.setStateLocked(domain.SessionState{Status: domain.SessionUnauthenticated})
	return err
}

// CurrentState returns the in-memory session state.
func (m *Manager) CurrentState() domain.SessionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// AuthHeaderValue returns the Authorization header value, if authenticated.
func (m *Manager) AuthHeaderValue() (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state.Status != domain.SessionAuthenticated || m.token == "" {
		return "", false
	}
	return bearerPrefix + m.token, true
}

// Subscribe returns a channel that receives the current state immediately
// and then every subsequent transition. Slow readers only see the latest
// state. The returned function stops delivery and closes the channel.
func (m *Manager) Subscribe() (<-chan domain.SessionState, func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	ch := make(chan domain.SessionState, 1)
	ch <- m.state
	m.subscribers[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			m.mu.Lock()
			defer m.mu.Unlock()
			delete(m.subscribers, id)
			close(ch)
		})
	}
}

func (m *Manager) persistLocked(ctx context.Context, token string, profile domain.UserProfile) error {
	if err := m.store.Put(ctx, credentials.TokenKey, token); err != nil {
		return asStorageError("put", credentials.TokenKey, err)
	}
	return m.putProfileLocked(ctx, profile)
}

func (m *Manager) putProfileLocked(ctx context.Context, profile domain.UserProfile) error {
	encoded, err := credentials.EncodeProfile(profile)
	if err != nil {
		return apperrors.NewStorageError("put", credentials.ProfileKey, err)
	}
	if err := m.store.Put(ctx, credentials.ProfileKey, encoded); err != nil {
		return asStorageError("put", credentials.ProfileKey, err)
	}
	return nil
}

func (m *Manager) clearStoreLocked(ctx context.Context) error {
	var errs []error
	for _, key := range []string{credentials.TokenKey, credentials.ProfileKey} {
		if err := m.store.Delete(ctx, key); err != nil {
			m.logger.ErrorContext(ctx, "Failed to delete stored credential", "key", key, "error", err)
			errs = append(errs, asStorageError("delete", key, err))
		}
	}
	return apperrors.Join(errs...)
}

// setStateLocked records the new state and notifies subscribers when it changed.
func (m *Manager) setStateLocked(next domain.SessionState) {
	if next == m.state {
		return
	}
	m.logger.Debug("Session state changed", "from", m.state.Status.String(), "to", next.Status.String())
	m.state = next
	for _, ch := range m.subscribers {
		select {
		case <-ch:
		default:
		}
		ch <- next
	}
}

func asStorageError(op, key string, err error) error {
	if errors.Is(err, apperrors.ErrStorage) {
		return err
	}
	return apperrors.NewStorageError(op, key, err)
}
