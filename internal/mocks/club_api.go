package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"nockpoint/internal/domain"
)

// MockClubAPI is a mock of domain.ClubAPI.
type MockClubAPI struct {
	mock.Mock
}

// NewMockClubAPI creates a MockClubAPI bound to t.
func NewMockClubAPI(t testingT) *MockClubAPI {
	m := &MockClubAPI{}
	register(&m.Mock, t)
	return m
}

// MockClubAPIExpecter sets typed expectations.
type MockClubAPIExpecter struct {
	mock *mock.Mock
}

func (m *MockClubAPI) EXPECT() *MockClubAPIExpecter {
	return &MockClubAPIExpecter{mock: &m.Mock}
}

func (m *MockClubAPI) ListUpcomingEvents(ctx context.Context) ([]domain.Event, error) {
	ret := m.Called(ctx)
	events, _ := ret.Get(0).([]domain.Event)
	return events, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) ListUpcomingEvents(ctx any) *mock.Call {
	return e.mock.On("ListUpcomingEvents", ctx)
}

func (m *MockClubAPI) ListEvents(ctx context.Context, query domain.EventQuery) ([]domain.Event, error) {
	ret := m.Called(ctx, query)
	events, _ := ret.Get(0).([]domain.Event)
	return events, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) ListEvents(ctx, query any) *mock.Call {
	return e.mock.On("ListEvents", ctx, query)
}

func (m *MockClubAPI) GetEvent(ctx context.Context, eventID int) (*domain.EventDetail, error) {
	ret := m.Called(ctx, eventID)
	detail, _ := ret.Get(0).(*domain.EventDetail)
	return detail, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) GetEvent(ctx, eventID any) *mock.Call {
	return e.mock.On("GetEvent", ctx, eventID)
}

func (m *MockClubAPI) RegisterForEvent(ctx context.Context, eventID int) (*domain.RegistrationResult, error) {
	ret := m.Called(ctx, eventID)
	result, _ := ret.Get(0).(*domain.RegistrationResult)
	return result, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) RegisterForEvent(ctx, eventID any) *mock.Call {
	return e.mock.On("RegisterForEvent", ctx, eventID)
}

func (m *MockClubAPI) UnregisterFromEvent(ctx context.Context, eventID int) (*domain.RegistrationResult, error) {
	ret := m.Called(ctx, eventID)
	result, _ := ret.Get(0).(*domain.RegistrationResult)
	return result, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) UnregisterFromEvent(ctx, eventID any) *mock.Call {
	return e.mock.On("UnregisterFromEvent", ctx, eventID)
}

func (m *MockClubAPI) ListCompetitions(ctx context.Context, upcomingOnly bool) ([]domain.Competition, error) {
	ret := m.Called(ctx, upcomingOnly)
	competitions, _ := ret.Get(0).([]domain.Competition)
	return competitions, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) ListCompetitions(ctx, upcomingOnly any) *mock.Call {
	return e.mock.On("ListCompetitions", ctx, upcomingOnly)
}

func (m *MockClubAPI) GetCompetition(ctx context.Context, competitionID int) (*domain.CompetitionDetail, error) {
	ret := m.Called(ctx, competitionID)
	detail, _ := ret.Get(0).(*domain.CompetitionDetail)
	return detail, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) GetCompetition(ctx, competitionID any) *mock.Call {
	return e.mock.On("GetCompetition", ctx, competitionID)
}

func (m *MockClubAPI) SubmitScore(ctx context.Context, competitionID int, score domain.ArrowScore) (*domain.ScoreSubmission, error) {
	ret := m.Called(ctx, competitionID, score)
	result, _ := ret.Get(0).(*domain.ScoreSubmission)
	return result, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) SubmitScore(ctx, competitionID, score any) *mock.Call {
	return e.mock.On("SubmitScore", ctx, competitionID, score)
}

func (m *MockClubAPI) SubmitScoresBatch(ctx context.Context, competitionID int, scores []domain.ArrowScore) (*domain.BatchScoreSubmission, error) {
	ret := m.Called(ctx, competitionID, scores)
	result, _ := ret.Get(0).(*domain.BatchScoreSubmission)
	return result, errorAt(ret, 1)
}

func (e *MockClubAPIExpecter) SubmitScoresBatch(ctx, competitionID, scores any) *mock.Call {
	return e.mock.On("SubmitScoresBatch", ctx, competitionID, scores)
}
