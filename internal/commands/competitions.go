package commands

import (
	"context"
	"log/slog"

	"nockpoint/internal/domain"
)

// CompetitionsListCommand lists competitions.
type CompetitionsListCommand struct {
	session domain.SessionManager
	api     domain.ClubAPI
	logger  *slog.Logger
}

// NewCompetitionsListCommand creates a new competitions list command.
func NewCompetitionsListCommand(
	session domain.SessionManager,
	api domain.ClubAPI,
	logger *slog.Logger,
) *CompetitionsListCommand {
	return &CompetitionsListCommand{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// Execute runs the competitions list command.
func (c *CompetitionsListCommand) Execute(ctx context.Context, upcomingOnly bool) ([]domain.Competition, error) {
	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}
	competitions, err := c.api.ListCompetitions(ctx, upcomingOnly)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "Retrieved competitions", "count", len(competitions))
	return competitions, nil
}

// CompetitionShowCommand shows one competition with the caller's scores.
type CompetitionShowCommand struct {
	session domain.SessionManager
	api     domain.ClubAPI
	logger  *slog.Logger
}

// NewCompetitionShowCommand creates a new competition show command.
func NewCompetitionShowCommand(
	session domain.SessionManager,
	api domain.ClubAPI,
	logger *slog.Logger,
) *CompetitionShowCommand {
	return &CompetitionShowCommand{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// CompetitionShowResult contains the result of the competition show command.
type CompetitionShowResult struct {
	Competition *domain.CompetitionDetail
	Total       int
	Xs          int
}

// Execute runs the competition show command.
func (c *CompetitionShowCommand) Execute(ctx context.Context, competitionID int) (*CompetitionShowResult, error) {
	if err := validateID("competition_id", competitionID); err != nil {
		return nil, err
	}
	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}
	competition, err := c.api.GetCompetition(ctx, competitionID)
	if err != nil {
		return nil, err
	}

	result := &CompetitionShowResult{Competition: competition}
	for _, score := range competition.UserScores {
		result.Total += score.Score
		if score.IsX {
			result.Xs++
		}
	}
	return result, nil
}
