package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	httpadapter "nockpoint/internal/adapters/http"
	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

const (
	loginPath  = "/auth/login"
	verifyPath = "/auth/verify"
)

// Gateway talks to the club service's authentication endpoints.
type Gateway struct {
	httpAdapter domain.HTTPAdapter
	serverURL   string
	logger      *slog.Logger
}

// NewGateway creates a new authentication gateway. The adapter must not
// carry the forced-logout inspector; a 401 here means bad credentials.
func NewGateway(httpAdapter domain.HTTPAdapter, serverURL string, logger *slog.Logger) *Gateway {
	return &Gateway{
		httpAdapter: httpAdapter,
		serverURL:   serverURL,
		logger:      logger,
	}
}

// Login exchanges a username and password for a bearer token.
func (g *Gateway) Login(ctx context.Context, username, password string) (*domain.AuthResult, error) {
	g.logger.DebugContext(ctx, "Authenticating with club service",
		"server", g.serverURL,
		"username", username)

	resp, err := g.httpAdapter.Do(ctx, domain.HTTPRequest{
		Method: http.MethodPost,
		Path:   loginPath,
		Body: map[string]string{
			"username": username,
			"password": password,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("authentication request failed: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		// A rejected login must not match ErrUnauthorized, so the cause is a plain error.
		message := httpadapter.ServerMessage(resp.Body)
		if message == "" {
			message = "invalid credentials"
		}
		cause := errors.New(message)
		return nil, apperrors.NewAuthenticationError(g.serverURL, username, cause)
	}
	if !resp.IsSuccess() {
		return nil, apperrors.NewHTTPError(resp.StatusCode, resp.Method, resp.URL, httpadapter.ServerMessage(resp.Body))
	}

	var authResp loginResponse
	if err := json.Unmarshal(resp.Body, &authResp); err != nil {
		return nil, fmt.Errorf("failed to decode auth response: %w: %w", apperrors.ErrServer, err)
	}
	if authResp.Token == "" {
		return nil, fmt.Errorf("authentication succeeded but no token was returned: %w", apperrors.ErrServer)
	}

	var user domain.UserProfile
	if authResp.User != nil {
		user = *authResp.User
	}

	g.logger.DebugContext(ctx, "Authentication successful",
		"server", g.serverURL,
		"userID", user.ID,
		"expiresIn", authResp.ExpiresIn)

	return &domain.AuthResult{
		Token: authResp.Token,
		User:  user,
	}, nil
}

// Verify asks the service whether token is still accepted and returns the
// current profile of its owner.
func (g *Gateway) Verify(ctx context.Context, token string) (*domain.UserProfile, error) {
	resp, err := g.httpAdapter.Do(ctx, domain.HTTPRequest{
		Method: http.MethodGet,
		Path:   verifyPath,
		Token:  token,
	})
	if err != nil {
		return nil, fmt.Errorf("token verification request failed: %w", err)
	}

	if !resp.IsSuccess() {
		return nil, apperrors.NewHTTPError(resp.StatusCode, resp.Method, resp.URL, httpadapter.ServerMessage(resp.Body))
	}

	var verifyResp verifyResponse
	if err := json.Unmarshal(resp.Body, &verifyResp); err != nil {
		return nil, fmt.Errorf("failed to decode verify response: %w: %w", apperrors.ErrServer, err)
	}
	if verifyResp.User == nil {
		return nil, fmt.Errorf("token verification returned no user: %w", apperrors.ErrServer)
	}

	g.logger.DebugContext(ctx, "Token verified", "userID", verifyResp.User.ID)
	return verifyResp.User, nil
}

// loginResponse represents the club service login response.
type loginResponse struct {
	Token     string              `json:"token"`
	User      *domain.UserProfile `json:"user"`
	ExpiresIn int64               `json:"expires_in"` // seconds
}

type verifyResponse struct {
	Valid bool                `json:"valid"`
	User  *domain.UserProfile `json:"user"`
}
