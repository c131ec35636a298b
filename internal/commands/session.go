package commands

import (
	"context"
	"errors"
	"fmt"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

// ErrNotLoggedIn is returned by authenticated commands when no session exists.
var ErrNotLoggedIn = fmt.Errorf("not logged in: %w", apperrors.ErrUnauthorized)

// requireSession resolves the stored session before an authenticated call.
func requireSession(ctx context.Context, session domain.SessionManager) (domain.SessionState, error) {
	state, err := session.Validate(ctx)
	if state.IsAuthenticated() {
		return state, nil
	}
	if err != nil && !apperrors.IsUnauthorized(err) {
		return state, err
	}
	return state, ErrNotLoggedIn
}

// Describe renders err as a message suitable for the terminal.
func Describe(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrNotLoggedIn):
		return "You are not logged in. Run 'nockpoint login' first."
	}
	var validationErr *apperrors.ValidationError
	if errors.As(err, &validationErr) {
		return validationErr.Message
	}
	return apperrors.UserMessage(err)
}
