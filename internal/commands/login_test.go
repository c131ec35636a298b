package commands

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nockpoint/internal/adapters/terminal"
	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/mocks"
	"nockpoint/internal/testutil"
)

func TestLoginCommand_Execute_WithPassword(t *testing.T) {
	// Arrange
	session := mocks.NewMockSessionManager(t)
	reader := mocks.NewMockPasswordReader(t)
	session.EXPECT().Login(mock.Anything, "robin", "arrow").
		Return(&domain.AuthResult{Token: "tok", User: testUser}, nil)

	cmd := NewLoginCommand(session, reader, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), LoginRequest{Username: " robin ", Password: "arrow"})

	// Assert
	require.NoError(t, err)
	assert.Equal(t, testUser, result.User)
	reader.AssertNotCalled(t, "ReadPassword", mock.Anything, mock.Anything)
}

func TestLoginCommand_Execute_PromptsForPassword(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	reader := mocks.NewMockPasswordReader(t)
	reader.EXPECT().ReadPassword(mock.Anything, "Password for robin: ").Return("arrow", nil)
	session.EXPECT().Login(mock.Anything, "robin", "arrow").
		Return(&domain.AuthResult{Token: "tok", User: testUser}, nil)

	cmd := NewLoginCommand(session, reader, testutil.Logger())

	result, err := cmd.Execute(context.Background(), LoginRequest{Username: "robin"})

	require.NoError(t, err)
	assert.Equal(t, "robin", result.User.Username)
}

func TestLoginCommand_Execute_NonInteractiveWithoutPassword(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	reader := mocks.NewMockPasswordReader(t)
	reader.EXPECT().ReadPassword(mock.Anything, mock.Anything).Return("", terminal.ErrNonInteractive)

	cmd := NewLoginCommand(session, reader, testutil.Logger())

	_, err := cmd.Execute(context.Background(), LoginRequest{Username: "robin"})

	assert.ErrorIs(t, err, terminal.ErrNonInteractive)
	session.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
}

func TestLoginCommand_Execute_RequiresUsername(t *testing.T) {
	cmd := NewLoginCommand(mocks.NewMockSessionManager(t), mocks.NewMockPasswordReader(t), testutil.Logger())

	_, err := cmd.Execute(context.Background(), LoginRequest{Username: "  ", Password: "arrow"})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "username", validationErr.Field)
}

func TestLoginCommand_Execute_InvalidCredentials(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	authErr := apperrors.NewAuthenticationError("http://club", "robin", errors.New("Invalid credentials"))
	session.EXPECT().Login(mock.Anything, "robin", "wrong").Return(nil, authErr)

	cmd := NewLoginCommand(session, mocks.NewMockPasswordReader(t), testutil.Logger())

	result, err := cmd.Execute(context.Background(), LoginRequest{Username: "robin", Password: "wrong"})

	assert.Nil(t, result)
	assert.True(t, apperrors.IsInvalidCredentials(err))
	assert.False(t, apperrors.IsUnauthorized(err))
	assert.Equal(t, "Invalid username or password", Describe(err))
}

func TestLogoutCommand_Execute(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	session.EXPECT().Logout(mock.Anything).Return(nil)

	err := NewLogoutCommand(session, testutil.Logger()).Execute(context.Background())

	assert.NoError(t, err)
}

func TestLogoutCommand_Execute_StorageFailure(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	storageErr := apperrors.NewStorageError("delete", "nockpoint_auth_token", errors.New("read-only"))
	session.EXPECT().Logout(mock.Anything).Return(storageErr)

	err := NewLogoutCommand(session, testutil.Logger()).Execute(context.Background())

	assert.True(t, apperrors.IsStorage(err))
}

func TestStatusCommand_Execute(t *testing.T) {
	unauthorized := apperrors.NewHTTPError(http.StatusUnauthorized, "GET", "/auth/verify", "expired")

	tests := []struct {
		name        string
		state       domain.SessionState
		validateErr error
		wantExpired bool
		wantErr     bool
	}{
		{name: "authenticated", state: authenticatedState()},
		{name: "logged out", state: unauthenticatedState()},
		{name: "expired", state: unauthenticatedState(), validateErr: unauthorized, wantExpired: true},
		{
			name:        "unreachable",
			state:       unauthenticatedState(),
			validateErr: apperrors.NewNetworkError("GET", "/auth/verify", errors.New("refused")),
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mocks.NewMockSessionManager(t)
			session.EXPECT().Validate(mock.Anything).Return(tt.state, tt.validateErr)

			result, err := NewStatusCommand(session, testutil.Logger()).Execute(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.state, result.State)
			assert.Equal(t, tt.wantExpired, result.Expired)
		})
	}
}
