package domain

import "context"

// PasswordReader handles secure password input from users.
type PasswordReader interface {
	ReadPassword(ctx context.Context, prompt string) (string, error)
	IsInteractive() bool
}

// UserProfile is the cached snapshot of the authenticated user as last reported by the server.
type UserProfile struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// AuthResult is the successful outcome of a login.
type AuthResult struct {
	Token string
	User  UserProfile
}

// SessionStatus is the tag of the session state machine.
type SessionStatus int

const (
	// SessionUnknown means the stored credentials have not been checked yet.
	SessionUnknown SessionStatus = iota
	// SessionChecking means the first validation is in flight.
	SessionChecking
	// SessionUnauthenticated means there is no usable credential.
	SessionUnauthenticated
	// SessionAuthenticated means a persisted token backs the session.
	SessionAuthenticated
)

func (s SessionStatus) String() string {
	switch s {
	case SessionUnknown:
		return "unknown"
	case SessionChecking:
		return "checking"
	case SessionUnauthenticated:
		return "unauthenticated"
	case SessionAuthenticated:
		return "authenticated"
	default:
		return "invalid"
	}
}

// SessionState is the client's current belief about the user's authentication.
// User is only meaningful when Status is SessionAuthenticated.
type SessionState struct {
	Status SessionStatus
	User   UserProfile
}

// IsAuthenticated reports whether the state carries an authenticated user.
func (s SessionState) IsAuthenticated() bool {
	return s.Status == SessionAuthenticated
}

// IsLoading reports whether the first resolution has not happened yet.
func (s SessionState) IsLoading() bool {
	return s.Status == SessionUnknown || s.Status == SessionChecking
}

// CredentialStore persists the bearer token and user profile across restarts.
type CredentialStore interface {
	// Put overwrites the value stored under key.
	Put(ctx context.Context, key, value string) error
	// Get returns the value under key; ok is false when the key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// AuthGateway talks to the remote service's authentication endpoints.
type AuthGateway interface {
	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Verify(ctx context.Context, token string) (*UserProfile, error)
}

// CredentialSource is the narrow view of the session used by the API client.
type CredentialSource interface {
	AuthHeaderValue() (string, bool)
	Logout(ctx context.Context) error
}

// SessionManager owns the authentication state machine.
type SessionManager interface {
	CredentialSource

	Login(ctx context.Context, username, password string) (*AuthResult, error)
	Validate(ctx context.Context) (SessionState, error)
	CurrentState() SessionState
	Subscribe() (<-chan SessionState, func())
}
