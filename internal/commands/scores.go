package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

// StdinSource selects standard input as the batch file.
const StdinSource = "-"

// ScoreSubmitCommand submits a single arrow score.
type ScoreSubmitCommand struct {
	session domain.SessionManager
	api     domain.ClubAPI
	logger  *slog.Logger
}

// NewScoreSubmitCommand creates a new score submit command.
func NewScoreSubmitCommand(session domain.SessionManager, api domain.ClubAPI, logger *slog.Logger) *ScoreSubmitCommand {
	return &ScoreSubmitCommand{
		session: session,
		api:     api,
		logger:  logger,
	}
}

// ScoreSubmitRequest contains the parameters for the score submit command.
type ScoreSubmitRequest struct {
	CompetitionID int
	Score         domain.ArrowScore
}

// Execute runs the score submit command.
func (c *ScoreSubmitCommand) Execute(ctx context.Context, req ScoreSubmitRequest) (*domain.ScoreSubmission, error) {
	if err := validateID("competition_id", req.CompetitionID); err != nil {
		return nil, err
	}
	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}

	submission, err := c.api.SubmitScore(ctx, req.CompetitionID, req.Score)
	if err != nil {
		return nil, err
	}
	c.logger.InfoContext(ctx, "Score submitted",
		"competitionID", req.CompetitionID,
		"round", req.Score.RoundNumber,
		"arrow", req.Score.ArrowNumber)
	return submission, nil
}

// ScoreBatchCommand submits scores read from a YAML or JSON file.
// Scores are sent as read; the service decides what it accepts.
type ScoreBatchCommand struct {
	session    domain.SessionManager
	api        domain.ClubAPI
	fileSystem domain.FileSystemAdapter
	stdin      io.Reader
	logger     *slog.Logger
}

// NewScoreBatchCommand creates a new score batch command.
func NewScoreBatchCommand(
	session domain.SessionManager,
	api domain.ClubAPI,
	fileSystem domain.FileSystemAdapter,
	stdin io.Reader,
	logger *slog.Logger,
) *ScoreBatchCommand {
	return &ScoreBatchCommand{
		session:    session,
		api:        api,
		fileSystem: fileSystem,
		stdin:      stdin,
		logger:     logger,
	}
}

// ScoreBatchRequest contains the parameters for the score batch command.
type ScoreBatchRequest struct {
	CompetitionID int
	// Source is a file path, or StdinSource.
	Source string
}

type scoreFile struct {
	Scores []domain.ArrowScore `yaml:"scores"`
}

// Execute runs the score batch command.
func (c *ScoreBatchCommand) Execute(ctx context.Context, req ScoreBatchRequest) (*domain.BatchScoreSubmission, error) {
	if err := validateID("competition_id", req.CompetitionID); err != nil {
		return nil, err
	}

	scores, err := c.readScores(req.Source)
	if err != nil {
		return nil, err
	}
	if scores == nil {
		scores = []domain.ArrowScore{}
	}

	if _, err := requireSession(ctx, c.session); err != nil {
		return nil, err
	}

	c.logger.DebugContext(ctx, "Submitting score batch", "competitionID", req.CompetitionID, "count", len(scores))
	return c.api.SubmitScoresBatch(ctx, req.CompetitionID, scores)
}

func (c *ScoreBatchCommand) readScores(source string) ([]domain.ArrowScore, error) {
	var (
		data []byte
		err  error
	)
	switch source {
	case "":
		return nil, apperrors.NewValidationError("file", source, "required", "A scores file is required")
	case StdinSource:
		data, err = io.ReadAll(c.stdin)
	default:
		data, err = c.fileSystem.ReadFile(source)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read scores from %s: %w", source, err)
	}

	// A bare list and a {scores: [...]} document are both accepted. JSON parses as YAML.
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, apperrors.NewValidationError("file", source, "format", "Scores file is not valid YAML or JSON")
	}
	if len(node.Content) == 0 {
		return nil, nil
	}

	var scores []domain.ArrowScore
	if node.Content[0].Kind == yaml.SequenceNode {
		err = node.Content[0].Decode(&scores)
	} else {
		var file scoreFile
		err = node.Content[0].Decode(&file)
		scores = file.Scores
	}
	if err != nil {
		return nil, apperrors.NewValidationError("file", source, "format", "Scores file has an unexpected shape")
	}
	return scores, nil
}
