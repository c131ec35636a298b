package app

import (
	"log/slog"

	httpadapter "nockpoint/internal/adapters/http"
	"nockpoint/internal/domain"
	"nockpoint/internal/services/auth"
	"nockpoint/internal/services/club"
	"nockpoint/internal/services/dashboard"
	"nockpoint/internal/session"
)

// Services are the session-bound services created for one settings snapshot.
type Services struct {
	Session   *session.Manager
	Club      *club.Client
	Dashboard *dashboard.Loader
}

// ServiceFactory builds the HTTP stack and the services on top of it.
type ServiceFactory struct {
	logger  *slog.Logger
	version string
}

// NewServiceFactory creates a new service factory.
func NewServiceFactory(logger *slog.Logger, version string) *ServiceFactory {
	return &ServiceFactory{
		logger:  logger,
		version: version,
	}
}

// CreateServices wires the session manager and the club client.
//
// Authentication calls and business calls use separate adapters so that a
// rejected login never goes through the forced-logout inspector. Both share
// one rate limiter.
func (f *ServiceFactory) CreateServices(settings domain.Settings, store domain.CredentialStore) Services {
	limiter := httpadapter.NewLimiter(settings.RateLimit, settings.RateBurst)
	newAdapter := func() *httpadapter.Adapter {
		return httpadapter.NewAdapter(settings.APIURL, settings.Timeout, f.logger,
			httpadapter.WithInsecureSkipVerify(settings.InsecureSkipVerify),
			httpadapter.WithDecorators(
				httpadapter.RateLimit(limiter),
				httpadapter.RequestID(),
				httpadapter.UserAgent(f.version),
			),
		)
	}

	gateway := auth.NewGateway(newAdapter(), settings.APIURL, f.logger)
	sessionManager := session.NewManager(store, gateway, f.logger)
	clubClient := club.NewClient(newAdapter(), sessionManager, f.logger)

	return Services{
		Session:   sessionManager,
		Club:      clubClient,
		Dashboard: dashboard.NewLoader(clubClient, f.logger),
	}
}
