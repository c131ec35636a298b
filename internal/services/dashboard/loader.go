// Package dashboard loads the data shown on the welcome screen.
package dashboard

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/services/filter"
)

// Loader fetches upcoming events and competitions concurrently.
type Loader struct {
	api    domain.ClubAPI
	logger *slog.Logger
}

// NewLoader creates a new dashboard loader.
func NewLoader(api domain.ClubAPI, logger *slog.Logger) *Loader {
	return &Loader{
		api:    api,
		logger: logger,
	}
}

type fetchResult struct {
	events       []domain.Event
	competitions []domain.Competition
	err          error
}

// Load fetches both listings. When one fails the other is still returned
// together with the error.
func (l *Loader) Load(ctx context.Context, eventFilter domain.EventFilter) (*domain.Dashboard, error) {
	if eventFilter == nil {
		eventFilter = filter.NewNoOpFilter()
	}

	resultChan := make(chan fetchResult, 2)
	var wg sync.WaitGroup

	wg.Add(2)
	go func() {
		defer wg.Done()
		events, err := l.api.ListUpcomingEvents(ctx)
		if err != nil {
			err = fmt.Errorf("failed to load upcoming events: %w", err)
		}
		resultChan <- fetchResult{events: events, err: err}
	}()
	go func() {
		defer wg.Done()
		competitions, err := l.api.ListCompetitions(ctx, true)
		if err != nil {
			err = fmt.Errorf("failed to load competitions: %w", err)
		}
		resultChan <- fetchResult{competitions: competitions, err: err}
	}()

	wg.Wait()
	close(resultChan)

	dashboard := &domain.Dashboard{
		Events:       []domain.Event{},
		Competitions: []domain.Competition{},
	}
	var errs []error
	for result := range resultChan {
		if result.err != nil {
			l.logger.ErrorContext(ctx, "Dashboard fetch failed", "error", result.err)
			errs = append(errs, result.err)
			continue
		}
		if result.events != nil {
			dashboard.Events = filter.Events(result.events, eventFilter)
		}
		if result.competitions != nil {
			dashboard.Competitions = result.competitions
		}
	}

	l.logger.DebugContext(ctx, "Dashboard loaded",
		"events", len(dashboard.Events),
		"competitions", len(dashboard.Competitions),
		"failures", len(errs))

	return dashboard, apperrors.Join(errs...)
}
