package commands

import (
	"context"
	"fmt"
	"log/slog"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/services/filter"
)

// EventsListCommand lists club events.
type EventsListCommand struct {
	session domain.SessionManager
	api     domain.ClubAPI
	logger  *slog.Logger
}

// NewEventsListCommand creates a new events list command.
func NewEventsListCommand(session domain.SessionManager, api domain.ClubAPI, logger *slog.Logger) *EventsListCommand {
	return &EventsListCommand{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// EventsListRequest contains the parameters for the events list command.
type EventsListRequest struct {
	Query domain.EventQuery
	// Exclude holds regex patterns matched against event titles and types.
	Exclude []string
}

// EventsListResult contains the result of the events list command.
type EventsListResult struct {
	Events   []domain.Event
	Excluded int
}

// Execute runs the events list command.
func (c *EventsListCommand) Execute(ctx context.Context, req EventsListRequest) (*EventsListResult, error) {
	eventFilter, err := filter.New(req.Exclude, c.logger)
	if err != nil {
		return nil, err
	}
	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}

	events, err := c.api.ListEvents(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	visible := filter.Events(events, eventFilter)

	c.logger.InfoContext(ctx, "Retrieved events", "count", len(visible), "excluded", len(events)-len(visible))
	return &EventsListResult{
		Events:   visible,
		Excluded: len(events) - len(visible),
	}, nil
}

// EventShowCommand shows one event with its participants.
type EventShowCommand struct {
	session domain.SessionManager
	api     domain.ClubAPI
	logger  *slog.Logger
}

// NewEventShowCommand creates a new event show command.
func NewEventShowCommand(session domain.SessionManager, api domain.ClubAPI, logger *slog.Logger) *EventShowCommand {
	return &EventShowCommand{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// Execute runs the event show command.
func (c *EventShowCommand) Execute(ctx context.Context, eventID int) (*domain.EventDetail, error) {
	if err := validateID("event_id", eventID); err != nil {
		return nil, err
	}
	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}
	c.logger.DebugContext(ctx, "Fetching event", "eventID", eventID)
	return c.api.GetEvent(ctx, eventID)
}

// EventRegistrationCommand registers or unregisters the current user.
type EventRegistrationCommand struct {
	session domain.SessionManager
	api     domain.ClubAPI
	logger  *slog.Logger
}

// NewEventRegistrationCommand creates a new event registration command.
func NewEventRegistrationCommand(
	session domain.SessionManager,
	api domain.ClubAPI,
	logger *slog.Logger,
) *EventRegistrationCommand {
	return &EventRegistrationCommand{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// EventRegistrationRequest contains the parameters for the registration command.
type EventRegistrationRequest struct {
	EventID    int
	Unregister bool
}

// Execute runs the registration command.
func (c *EventRegistrationCommand) Execute(
	ctx context.Context,
	req EventRegistrationRequest,
) (*domain.RegistrationResult, error) {
	if err := validateID("event_id", req.EventID); err != nil {
		return nil, err
	}
	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}

	var (
		result *domain.RegistrationResult
		err    error
	)
	if req.Unregister {
		result, err = c.api.UnregisterFromEvent(ctx, req.EventID)
	} else {
		result, err = c.api.RegisterForEvent(ctx, req.EventID)
	}
	if err != nil {
		return nil, err
	}

	c.logger.InfoContext(ctx, "Registration updated", "eventID", req.EventID, "unregister", req.Unregister)
	return result, nil
}

func validateID(field string, id int) error {
	if id <= 0 {
		return apperrors.NewValidationError(field, fmt.Sprint(id), "positive",
			fmt.Sprintf("%s must be a positive number", field))
	}
	return nil
}
