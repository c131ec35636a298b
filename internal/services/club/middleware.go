package club

import (
	"context"
	"log/slog"
	"net/http"

	"nockpoint/internal/domain"
)

// BearerAuth attaches the session's current credential. When there is
// none the request goes out unauthenticated and the server decides.
func BearerAuth(source domain.CredentialSource) domain.RequestDecorator {
	return func(_ context.Context, header http.Header) error {
		if value, ok := source.AuthHeaderValue(); ok {
			header.Set("Authorization", value)
		}
		return nil
	}
}

// LogoutOnUnauthorized forces a logout whenever the service answers 401.
// Concurrent rejections each call Logout, which is idempotent.
func LogoutOnUnauthorized(source domain.CredentialSource, logger *slog.Logger) domain.ResponseInspector {
	return func(ctx context.Context, resp *domain.HTTPResponse) error {
		if resp.StatusCode != http.StatusUnauthorized {
			return nil
		}
		logger.WarnContext(ctx, "Credentials rejected, forcing logout",
			"method", resp.Method,
			"url", resp.URL)
		if err := source.Logout(ctx); err != nil {
			logger.ErrorContext(ctx, "Forced logout could not clear stored credentials", "error", err)
		}
		return nil
	}
}
