// Package club is the authenticated client for the club service's
// events, competitions and scores endpoints.
package club

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	httpadapter "nockpoint/internal/adapters/http"
	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
)

// Client handles all club API operations. Calls are sent once and never retried.
type Client struct {
	httpAdapter domain.HTTPAdapter
	logger      *slog.Logger
}

// NewClient creates a client on top of pipeline and installs the
// credential decorator and the forced-logout inspector on it.
func NewClient(pipeline domain.HTTPPipeline, source domain.CredentialSource, logger *slog.Logger) *Client {
	pipeline.Use(BearerAuth(source))
	pipeline.Inspect(LogoutOnUnauthorized(source, logger))

	return &Client{
		httpAdapter: pipeline,
		logger:      logger,
	}
}

// ListUpcomingEvents returns events that have not happened yet.
func (c *Client) ListUpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	return c.ListEvents(ctx, domain.EventQuery{UpcomingOnly: true})
}

// ListEvents returns events matching query.
func (c *Client) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.Event, error) {
	c.logger.DebugContext(ctx, "Fetching events", "upcomingOnly", query.UpcomingOnly, "type", query.Type)

	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/events",
		Query:  query.Values(),
	}, "Failed to fetch events")
	if err != nil {
		return nil, err
	}

	eventsResp := decode[eventsResponse](ctx, c.logger, resp)
	if eventsResp.Events == nil {
		return []domain.Event{}, nil
	}
	return eventsResp.Events, nil
}

// GetEvent returns a single event with its participants.
func (c *Client) GetEvent(ctx context.Context, eventID int) (*domain.EventDetail, error) {
	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/events/" + strconv.Itoa(eventID),
	}, "Failed to fetch event details")
	if err != nil {
		return nil, err
	}

	detail := decode[domain.EventDetail](ctx, c.logger, resp)
	if detail.Participants == nil {
		detail.Participants = []domain.Participant{}
	}
	return &detail, nil
}

// RegisterForEvent registers the current user for an event.
func (c *Client) RegisterForEvent(ctx context.Context, eventID int) (*domain.RegistrationResult, error) {
	c.logger.InfoContext(ctx, "Registering for event", "eventID", eventID)

	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/events/%d/register", eventID),
	}, "Failed to register for event")
	if err != nil {
		return nil, err
	}

	result := decode[domain.RegistrationResult](ctx, c.logger, resp)
	return &result, nil
}

// UnregisterFromEvent withdraws the current user from an event.
func (c *Client) UnregisterFromEvent(ctx context.Context, eventID int) (*domain.RegistrationResult, error) {
	c.logger.InfoContext(ctx, "Unregistering from event", "eventID", eventID)

	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodDelete,
		Path:   fmt.Sprintf("/events/%d/unregister", eventID),
	}, "Failed to unregister from event")
	if err != nil {
		return nil, err
	}

	result := decode[domain.RegistrationResult](ctx, c.logger, resp)
	return &result, nil
}

// ListCompetitions returns competitions, optionally only upcoming ones.
func (c *Client) ListCompetitions(ctx context.Context, upcomingOnly bool) ([]domain.Competition, error) {
	c.logger.DebugContext(ctx, "Fetching competitions", "upcomingOnly", upcomingOnly)

	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/competitions",
		Query:  url.Values{"upcoming_only": []string{strconv.FormatBool(upcomingOnly)}},
	}, "Failed to fetch competitions")
	if err != nil {
		return nil, err
	}

	competitionsResp := decode[competitionsResponse](ctx, c.logger, resp)
	if competitionsResp.Competitions == nil {
		return []domain.Competition{}, nil
	}
	return competitionsResp.Competitions, nil
}

// GetCompetition returns a competition with the current user's scores.
func (c *Client) GetCompetition(ctx context.Context, competitionID int) (*domain.CompetitionDetail, error) {
	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodGet,
		Path:   "/competitions/" + strconv.Itoa(competitionID),
	}, "Failed to fetch competition details")
	if err != nil {
		return nil, err
	}

	detail := decode[domain.CompetitionDetail](ctx, c.logger, resp)
	if detail.UserScores == nil {
		detail.UserScores = []domain.RecordedScore{}
	}
	if detail.Groups == nil {
		detail.Groups = []domain.CompetitionGroup{}
	}
	return &detail, nil
}

// SubmitScore records a single arrow.
func (c *Client) SubmitScore(
	ctx context.Context,
	competitionID int,
	score domain.ArrowScore,
) (*domain.ScoreSubmission, error) {
	c.logger.InfoContext(ctx, "Submitting score",
		"competitionID", competitionID,
		"round", score.RoundNumber,
		"arrow", score.ArrowNumber)

	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/competitions/%d/scores", competitionID),
		Body:   score,
	}, "Failed to submit score")
	if err != nil {
		return nil, err
	}

	result := decode[domain.ScoreSubmission](ctx, c.logger, resp)
	return &result, nil
}

// SubmitScoresBatch records several arrows in one request. An empty batch
// is sent as is; the service decides what it means.
func (c *Client) SubmitScoresBatch(
	ctx context.Context,
	competitionID int,
	scores []domain.ArrowScore,
) (*domain.BatchScoreSubmission, error) {
	if scores == nil {
		scores = []domain.ArrowScore{}
	}

	c.logger.InfoContext(ctx, "Submitting score batch",
		"competitionID", competitionID,
		"count", len(scores))

	resp, err := c.call(ctx, domain.HTTPRequest{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/competitions/%d/scores/batch", competitionID),
		Body:   batchRequest{Scores: scores},
	}, "Failed to submit scores")
	if err != nil {
		return nil, err
	}

	result := decode[domain.BatchScoreSubmission](ctx, c.logger, resp)
	if result.SubmittedScores == nil {
		result.SubmittedScores = []domain.ArrowScore{}
	}
	return &result, nil
}

// call sends req and turns any non-2xx answer into an HTTPError carrying
// the server's message, or fallback when it sent none.
func (c *Client) call(ctx context.Context, req domain.HTTPRequest, fallback string) (*domain.HTTPResponse, error) {
	resp, err := c.httpAdapter.Do(ctx, req)
	if err != nil {
		// A 401 still comes back with its response after the inspector ran.
		if resp == nil {
			return nil, err
		}
		c.logger.ErrorContext(ctx, "Response handling failed", "error", err)
	}

	if resp.IsSuccess() {
		return resp, nil
	}

	message := httpadapter.ServerMessage(resp.Body)
	if message == "" {
		message = fallback
	}
	return nil, apperrors.NewHTTPError(resp.StatusCode, resp.Method, resp.URL, message)
}

// decode parses the response body as T. A malformed body is logged and
// treated as empty.
func decode[T any](ctx context.Context, logger *slog.Logger, resp *domain.HTTPResponse) T {
	var v T
	if len(resp.Body) == 0 {
		return v
	}
	if err := json.Unmarshal(resp.Body, &v); err != nil {
		logger.WarnContext(ctx, "Ignoring malformed response body",
			"method", resp.Method,
			"url", resp.URL,
			"error", err)
		var zero T
		return zero
	}
	return v
}

type eventsResponse struct {
	Events []domain.Event `json:"events"`
}

type competitionsResponse struct {
	Competitions []domain.Competition `json:"competitions"`
}

type batchRequest struct {
	Scores []domain.ArrowScore `json:"scores"`
}
