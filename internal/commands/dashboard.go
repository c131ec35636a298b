package commands

import (
	"context"
	"log/slog"

	"nockpoint/internal/domain"
	"nockpoint/internal/services/filter"
)

// DashboardCommand loads the welcome screen for the logged in user.
type DashboardCommand struct {
	session domain.SessionManager
	loader  domain.DashboardLoader
	logger  *slog.Logger
}

// NewDashboardCommand creates a new dashboard command.
func NewDashboardCommand(session domain.SessionManager, loader domain.DashboardLoader, logger *slog.Logger) *DashboardCommand {
	return &DashboardCommand{
		session: session,
		loader:  loader,
		logger:  logger,
	}
}

// DashboardRequest contains the parameters for the dashboard command.
type DashboardRequest struct {
	Exclude []string
}

// DashboardResult contains the result of the dashboard command.
// Dashboard may be partially filled when Err is set.
type DashboardResult struct {
	User      domain.UserProfile
	Dashboard *domain.Dashboard
	Err       error
}

// Execute runs the dashboard command. A partial load is not an error.
func (c *DashboardCommand) Execute(ctx context.Context, req DashboardRequest) (*DashboardResult, error) {
	eventFilter, err := filter.New(req.Exclude, c.logger)
	if err != nil {
		return nil, err
	}
	state, err := requireSession(ctx, c.session)
	if err != nil {
		return nil, err
	}

	dashboard, loadErr := c.loader.Load(ctx, eventFilter)
	if loadErr != nil && dashboard == nil {
		return nil, loadErr
	}
	if loadErr != nil {
		c.logger.WarnContext(ctx, "Dashboard partially loaded", "error", loadErr)
	}

	// A 401 during the load logs the session out.
	if !c.session.CurrentState().IsAuthenticated() {
		return nil, ErrNotLoggedIn
	}

	return &DashboardResult{
		User:      state.User,
		Dashboard: dashboard,
		Err:       loadErr,
	}, nil
}
