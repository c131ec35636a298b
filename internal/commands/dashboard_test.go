package commands

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nockpoint/internal/domain"
	"nockpoint/internal/mocks"
	"nockpoint/internal/testutil"
)

func TestDashboardCommand_Execute(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	loader := mocks.NewMockDashboardLoader(t)
	expectSession(session)
	session.EXPECT().CurrentState().Return(authenticatedState())
	dashboard := &domain.Dashboard{
		Events:       []domain.Event{{ID: 1, Title: "Club shoot"}},
		Competitions: []domain.Competition{},
	}
	loader.EXPECT().Load(mock.Anything, mock.Anything).Return(dashboard, nil)

	result, err := NewDashboardCommand(session, loader, testutil.Logger()).
		Execute(context.Background(), DashboardRequest{})

	require.NoError(t, err)
	assert.Equal(t, testUser, result.User)
	assert.Equal(t, dashboard, result.Dashboard)
	assert.NoError(t, result.Err)
}

func TestDashboardCommand_Execute_PartialLoad(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	loader := mocks.NewMockDashboardLoader(t)
	expectSession(session)
	session.EXPECT().CurrentState().Return(authenticatedState())
	loadErr := errors.New("failed to load competitions")
	loader.EXPECT().Load(mock.Anything, mock.Anything).Return(&domain.Dashboard{
		Events:       []domain.Event{{ID: 1}},
		Competitions: []domain.Competition{},
	}, loadErr)

	result, err := NewDashboardCommand(session, loader, testutil.Logger()).
		Execute(context.Background(), DashboardRequest{})

	require.NoError(t, err)
	assert.Len(t, result.Dashboard.Events, 1)
	assert.ErrorIs(t, result.Err, loadErr)
}

func TestDashboardCommand_Execute_LoggedOutDuringLoad(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	loader := mocks.NewMockDashboardLoader(t)
	expectSession(session)
	session.EXPECT().CurrentState().Return(unauthenticatedState())
	loader.EXPECT().Load(mock.Anything, mock.Anything).
		Return(&domain.Dashboard{}, errors.New("unauthorized"))

	_, err := NewDashboardCommand(session, loader, testutil.Logger()).
		Execute(context.Background(), DashboardRequest{})

	assert.ErrorIs(t, err, ErrNotLoggedIn)
}
