package commands

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/mocks"
	"nockpoint/internal/testutil"
)

func TestEventsListCommand_Execute_AppliesQueryAndExclusions(t *testing.T) {
	// Arrange
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)

	query := domain.EventQuery{UpcomingOnly: true, FromDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC)}
	api.EXPECT().ListEvents(mock.Anything, query).Return([]domain.Event{
		{ID: 1, Title: "Club shoot", EventType: "shoot"},
		{ID: 2, Title: "Work party", EventType: "maintenance"},
		{ID: 3, Title: "Beginners course", EventType: "course"},
	}, nil)

	cmd := NewEventsListCommand(session, api, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), EventsListRequest{
		Query:   query,
		Exclude: []string{"^maintenance$"},
	})

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Events, 2)
	assert.Equal(t, 1, result.Events[0].ID)
	assert.Equal(t, 3, result.Events[1].ID)
	assert.Equal(t, 1, result.Excluded)
}

func TestEventsListCommand_Execute_InvalidPattern(t *testing.T) {
	cmd := NewEventsListCommand(mocks.NewMockSessionManager(t), mocks.NewMockClubAPI(t), testutil.Logger())

	_, err := cmd.Execute(context.Background(), EventsListRequest{Exclude: []string{"("}})

	assert.Error(t, err)
}

func TestEventsListCommand_Execute_NotLoggedIn(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	session.EXPECT().Validate(mock.Anything).Return(unauthenticatedState(), nil)

	cmd := NewEventsListCommand(session, api, testutil.Logger())

	_, err := cmd.Execute(context.Background(), EventsListRequest{})

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	api.AssertNotCalled(t, "ListEvents", mock.Anything, mock.Anything)
}

func TestEventShowCommand_Execute(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)
	detail := &domain.EventDetail{
		Event:        domain.Event{ID: 4, Title: "Open day"},
		Participants: []domain.Participant{{ID: 7, Name: "Robin"}},
	}
	api.EXPECT().GetEvent(mock.Anything, 4).Return(detail, nil)

	result, err := NewEventShowCommand(session, api, testutil.Logger()).Execute(context.Background(), 4)

	require.NoError(t, err)
	assert.Equal(t, detail, result)
}

func TestEventShowCommand_Execute_RejectsInvalidID(t *testing.T) {
	cmd := NewEventShowCommand(mocks.NewMockSessionManager(t), mocks.NewMockClubAPI(t), testutil.Logger())

	_, err := cmd.Execute(context.Background(), 0)

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
}

func TestEventRegistrationCommand_Execute(t *testing.T) {
	tests := []struct {
		name       string
		unregister bool
		method     string
	}{
		{name: "register", method: "RegisterForEvent"},
		{name: "unregister", unregister: true, method: "UnregisterFromEvent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mocks.NewMockSessionManager(t)
			api := mocks.NewMockClubAPI(t)
			expectSession(session)
			want := &domain.RegistrationResult{Message: "ok", EventID: 9, UserID: testUser.ID}
			api.On(tt.method, mock.Anything, 9).Return(want, nil)

			cmd := NewEventRegistrationCommand(session, api, testutil.Logger())
			result, err := cmd.Execute(context.Background(), EventRegistrationRequest{
				EventID:    9,
				Unregister: tt.unregister,
			})

			require.NoError(t, err)
			assert.Equal(t, want, result)
		})
	}
}

func TestEventRegistrationCommand_Execute_APIError(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)
	apiErr := errors.New("boom")
	api.EXPECT().RegisterForEvent(mock.Anything, 9).Return(nil, apiErr)

	cmd := NewEventRegistrationCommand(session, api, testutil.Logger())
	_, err := cmd.Execute(context.Background(), EventRegistrationRequest{EventID: 9})

	assert.ErrorIs(t, err, apiErr)
}
