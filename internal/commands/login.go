package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

// LoginCommand exchanges a username and password for a persisted session.
type LoginCommand struct {
	session        domain.SessionManager
	passwordReader domain.PasswordReader
	logger         *slog.Logger
}

// NewLoginCommand creates a new login command.
func NewLoginCommand(
	session domain.SessionManager,
	passwordReader domain.PasswordReader,
	logger *slog.Logger,
) *LoginCommand {
	return &LoginCommand{
		session:        session,
		passwordReader: passwordReader,
		logger:         logger,
	}
}

// LoginRequest contains the parameters for the login command.
type LoginRequest struct {
	Username string
	// Password is read from the terminal when empty.
	Password string
}

// LoginResult contains the result of the login command.
type LoginResult struct {
	User domain.UserProfile
}

// Execute runs the login command.
func (c *LoginCommand) Execute(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("username", req.Username, "required", "Username is required")
	}

	password := req.Password
	if password == "" {
		var err error
		password, err = c.passwordReader.ReadPassword(ctx, fmt.Sprintf("Password for %s: ", username))
		if err != nil {
			return nil, fmt.Errorf("failed to read password: %w", err)
		}
	}
	if password == "" {
		return nil, apperrors.NewValidationError("password", "", "required", "Password is required")
	}

	c.logger.DebugContext(ctx, "Logging in", "username", username)
	result, err := c.session.Login(ctx, username, password)
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Logged in", "username", result.User.Username)
	return &LoginResult{User: result.User}, nil
}

// LogoutCommand ends the current session.
type LogoutCommand struct {
	session domain.SessionManager
	logger  *slog.Logger
}

// NewLogoutCommand creates a new logout command.
func NewLogoutCommand(session domain.SessionManager, logger *slog.Logger) *LogoutCommand {
	return &LogoutCommand{
		session: session,
		logger:  logger,
	}
}

// Execute runs the logout command. The local session is always cleared.
func (c *LogoutCommand) Execute(ctx context.Context) error {
	if err := c.session.Logout(ctx); err != nil {
		c.logger.WarnContext(ctx, "Logout could not clear stored credentials", "error", err)
		return err
	}
	c.logger.InfoContext(ctx, "Logged out")
	return nil
}

// StatusCommand reports whether the stored session is still accepted.
type StatusCommand struct {
	session domain.SessionManager
	logger  *slog.Logger
}

// NewStatusCommand creates a new status command.
func NewStatusCommand(session domain.SessionManager, logger *slog.Logger) *StatusCommand {
	return &StatusCommand{
		session: session,
		logger:  logger,
	}
}

// StatusResult contains the result of the status command.
type StatusResult struct {
	State domain.SessionState
	// Expired is set when a stored token was rejected by the server.
	Expired bool
}

// Execute runs the status command.
func (c *StatusCommand) Execute(ctx context.Context) (*StatusResult, error) {
	state, err := c.session.Validate(ctx)
	if err != nil {
		if apperrors.IsUnauthorized(err) {
			return &StatusResult{State: state, Expired: true}, nil
		}
		return nil, err
	}
	c.logger.DebugContext(ctx, "Session resolved", "status", state.Status.String())
	return &StatusResult{State: state}, nil
}
