package club

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	httpadapter "nockpoint/internal/adapters/http"
	"nockpoint/internal/credentials"
	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/mocks"
	"nockpoint/internal/services/auth"
	"nockpoint/internal/session"
	"nockpoint/internal/testutil"
)

var coach = domain.UserProfile{ID: 1, Username: "coach1", Email: "coach1@example.com"}

type ClientTestSuite struct {
	suite.Suite

	ctx     context.Context
	server  *testutil.ClubServer
	store   *credentials.MemoryStore
	session *session.Manager
	client  *Client
}

func (s *ClientTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.server = testutil.NewClubServer(s.T())
	s.server.AddUser(coach, "rightpass")
	s.server.AddEvent(domain.Event{ID: 3, Title: "Summer Shoot", EventType: "competition"})
	s.server.AddCompetition(domain.Competition{ID: 4, Name: "Club Championship", Status: "active"})

	logger := testutil.Logger()
	authAdapter := httpadapter.NewAdapter(s.server.URL(), 5*time.Second, logger)
	s.store = credentials.NewMemoryStore()
	s.session = session.NewManager(s.store, auth.NewGateway(authAdapter, s.server.URL(), logger), logger)

	apiAdapter := httpadapter.NewAdapter(s.server.URL(), 5*time.Second, logger)
	s.client = NewClient(apiAdapter, s.session, logger)
}

func (s *ClientTestSuite) login() {
	_, err := s.session.Login(s.ctx, "coach1", "rightpass")
	s.Require().NoError(err)
}

func (s *ClientTestSuite) assertLoggedOut() {
	s.Equal(domain.SessionUnauthenticated, s.session.CurrentState().Status)
	_, ok, err := s.store.Get(s.ctx, credentials.TokenKey)
	s.Require().NoError(err)
	s.False(ok)
	_, ok, err = s.store.Get(s.ctx, credentials.ProfileKey)
	s.Require().NoError(err)
	s.False(ok)
}

func (s *ClientTestSuite) TestAttachesBearerToken() {
	s.login()
	token, _, _ := s.store.Get(s.ctx, credentials.TokenKey)

	events, err := s.client.ListUpcomingEvents(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	s.Equal("Summer Shoot", events[0].Title)

	requests := s.server.RequestsTo(http.MethodGet, "/events")
	s.Require().Len(requests, 1)
	s.Equal("Bearer "+token, requests[0].Authorization)
	s.Equal("true", requests[0].Query.Get("upcoming_only"))
}

func (s *ClientTestSuite) TestListEvents_Query() {
	s.login()
	from := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := s.client.ListEvents(s.ctx, domain.EventQuery{Type: "beginners_course", FromDate: from})
	s.Require().NoError(err)

	query := s.server.RequestsTo(http.MethodGet, "/events")[0].Query
	s.Equal("false", query.Get("upcoming_only"))
	s.Equal("beginners_course", query.Get("type"))
	s.Equal("2024-05-01", query.Get("from_date"))
	s.False(query.Has("to_date"))
}

func (s *ClientTestSuite) TestUnauthorizedForcesLogout() {
	s.login()
	s.server.RevokeTokens()

	_, err := s.client.ListUpcomingEvents(s.ctx)
	s.Require().Error(err)
	s.True(apperrors.IsUnauthorized(err))
	s.Equal(apperrors.KindUnauthorized, apperrors.KindOf(err))
	s.assertLoggedOut()
}

func (s *ClientTestSuite) TestUnauthenticatedCallProceeds() {
	_, err := s.client.ListCompetitions(s.ctx, true)
	s.True(apperrors.IsUnauthorized(err))

	requests := s.server.RequestsTo(http.MethodGet, "/competitions")
	s.Require().Len(requests, 1)
	s.Empty(requests[0].Authorization)
	s.assertLoggedOut()
}

func (s *ClientTestSuite) TestConcurrentUnauthorized() {
	s.login()
	s.server.RevokeTokens()

	var wg sync.WaitGroup
	errs := make([]error, 6)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if i%2 == 0 {
				_, errs[i] = s.client.ListUpcomingEvents(s.ctx)
			} else {
				_, errs[i] = s.client.GetCompetition(s.ctx, 4)
			}
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		s.True(apperrors.IsUnauthorized(err))
	}
	s.assertLoggedOut()
}

func (s *ClientTestSuite) TestServerErrorMessage() {
	s.login()
	s.server.Respond(http.MethodPost, "/events/3/register", http.StatusBadRequest,
		`{"error":"Already registered for this event"}`)

	_, err := s.client.RegisterForEvent(s.ctx, 3)
	s.Require().Error(err)
	s.Equal("Already registered for this event", apperrors.UserMessage(err))
	s.Equal(domain.SessionAuthenticated, s.session.CurrentState().Status)
}

func (s *ClientTestSuite) TestServerErrorFallbackMessage() {
	s.login()
	s.server.Respond(http.MethodDelete, "/events/3/unregister", http.StatusInternalServerError, `oops`)

	_, err := s.client.UnregisterFromEvent(s.ctx, 3)
	s.Require().Error(err)
	s.Equal("Failed to unregister from event", apperrors.UserMessage(err))
	s.True(apperrors.IsHTTPStatus(err, http.StatusInternalServerError))
}

func (s *ClientTestSuite) TestNotFound() {
	s.login()

	_, err := s.client.GetEvent(s.ctx, 99)
	s.True(apperrors.IsNotFound(err))
	s.Equal("Event not found", apperrors.UserMessage(err))
}

func (s *ClientTestSuite) TestNormalizesMissingLists() {
	s.login()
	s.server.Respond(http.MethodGet, "/events", http.StatusOK, `{}`)
	s.server.Respond(http.MethodGet, "/competitions", http.StatusOK, `not json`)

	events, err := s.client.ListUpcomingEvents(s.ctx)
	s.Require().NoError(err)
	s.NotNil(events)
	s.Empty(events)

	competitions, err := s.client.ListCompetitions(s.ctx, false)
	s.Require().NoError(err)
	s.NotNil(competitions)
	s.Empty(competitions)
}

func (s *ClientTestSuite) TestRegisterAndUnregister() {
	s.login()

	result, err := s.client.RegisterForEvent(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal(3, result.EventID)
	s.Equal(coach.ID, result.UserID)

	result, err = s.client.UnregisterFromEvent(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("Successfully unregistered from event", result.Message)
}

func (s *ClientTestSuite) TestGetEvent() {
	s.login()

	detail, err := s.client.GetEvent(s.ctx, 3)
	s.Require().NoError(err)
	s.Equal("Summer Shoot", detail.Title)
	s.NotNil(detail.Participants)
}

func (s *ClientTestSuite) TestSubmitScores() {
	s.login()

	single, err := s.client.SubmitScore(s.ctx, 4, domain.ArrowScore{RoundNumber: 1, ArrowNumber: 1, Score: 10, IsX: true})
	s.Require().NoError(err)
	s.Equal(10, single.TotalScore)
	s.True(single.IsX)

	batch, err := s.client.SubmitScoresBatch(s.ctx, 4, []domain.ArrowScore{
		{RoundNumber: 1, ArrowNumber: 2, Score: 9},
		{RoundNumber: 1, ArrowNumber: 3, Score: 7},
	})
	s.Require().NoError(err)
	s.Equal(26, batch.TotalScore)
	s.Len(batch.SubmittedScores, 2)

	detail, err := s.client.GetCompetition(s.ctx, 4)
	s.Require().NoError(err)
	s.Len(detail.UserScores, 3)
	s.NotNil(detail.Groups)
}

func (s *ClientTestSuite) TestEmptyBatchSentAsIs() {
	s.login()
	s.server.Respond(http.MethodPost, "/competitions/4/scores/batch", http.StatusCreated,
		`{"message":"Successfully submitted 0 scores","submitted_scores":[],"total_score":42}`)

	result, err := s.client.SubmitScoresBatch(s.ctx, 4, nil)
	s.Require().NoError(err)
	s.Equal("Successfully submitted 0 scores", result.Message)
	s.Equal(42, result.TotalScore)
	s.Empty(result.SubmittedScores)

	requests := s.server.RequestsTo(http.MethodPost, "/competitions/4/scores/batch")
	s.Require().Len(requests, 1)
	s.JSONEq(`{"scores":[]}`, string(requests[0].Body))
}

func (s *ClientTestSuite) TestScoreBody() {
	s.login()

	_, err := s.client.SubmitScore(s.ctx, 4, domain.ArrowScore{RoundNumber: 2, ArrowNumber: 6, Score: 8})
	s.Require().NoError(err)

	var body map[string]any
	requests := s.server.RequestsTo(http.MethodPost, "/competitions/4/scores")
	s.Require().NoError(json.Unmarshal(requests[0].Body, &body))
	s.Equal(map[string]any{"round_number": 2.0, "arrow_number": 6.0, "score": 8.0, "is_x": false}, body)
}

func (s *ClientTestSuite) TestNetworkErrorKeepsSession() {
	s.login()
	s.server.Close()

	_, err := s.client.ListUpcomingEvents(s.ctx)
	s.True(apperrors.IsNetwork(err))
	s.Equal(domain.SessionAuthenticated, s.session.CurrentState().Status)
	_, ok, _ := s.store.Get(s.ctx, credentials.TokenKey)
	s.True(ok)
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

type MiddlewareTestSuite struct {
	suite.Suite

	source *mocks.MockSessionManager
}

func (s *MiddlewareTestSuite) SetupTest() {
	s.source = mocks.NewMockSessionManager(s.T())
}

func (s *MiddlewareTestSuite) TestBearerAuth() {
	s.source.EXPECT().AuthHeaderValue().Return("Bearer abc", true).Once()
	header := http.Header{}

	s.Require().NoError(BearerAuth(s.source)(context.Background(), header))
	s.Equal("Bearer abc", header.Get("Authorization"))
}

func (s *MiddlewareTestSuite) TestBearerAuth_Absent() {
	s.source.EXPECT().AuthHeaderValue().Return("", false).Once()
	header := http.Header{}

	s.Require().NoError(BearerAuth(s.source)(context.Background(), header))
	s.Empty(header.Get("Authorization"))
}

func (s *MiddlewareTestSuite) TestLogoutOnUnauthorized() {
	inspect := LogoutOnUnauthorized(s.source, testutil.Logger())
	s.source.EXPECT().Logout(mock.Anything).Return(nil).Once()

	s.NoError(inspect(context.Background(), &domain.HTTPResponse{StatusCode: http.StatusOK}))
	s.NoError(inspect(context.Background(), &domain.HTTPResponse{StatusCode: http.StatusForbidden}))
	s.NoError(inspect(context.Background(), &domain.HTTPResponse{StatusCode: http.StatusUnauthorized}))
}

func (s *MiddlewareTestSuite) TestLogoutOnUnauthorized_LogoutFailureSwallowed() {
	inspect := LogoutOnUnauthorized(s.source, testutil.Logger())
	s.source.EXPECT().Logout(mock.Anything).Return(apperrors.ErrStorage).Once()

	s.NoError(inspect(context.Background(), &domain.HTTPResponse{StatusCode: http.StatusUnauthorized}))
}

func TestMiddlewareTestSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareTestSuite))
}
