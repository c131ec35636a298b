package app_test

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nockpoint/internal/app"
	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/logging"
	"nockpoint/internal/testutil"
)

func newTestApp(t *testing.T, opts ...app.Option) *app.App {
	t.Helper()
	dir := t.TempDir()
	base := []app.Option{
		app.WithConfigPath(filepath.Join(dir, "config.yaml")),
		app.WithCredentialsDir(filepath.Join(dir, "credentials")),
		app.WithLogOutput(io.Discard),
	}
	a, err := app.NewApp(context.Background(), append(base, opts...)...)
	require.NoError(t, err)
	t.Cleanup(a.Close)
	return a
}

func TestNewApp_Defaults(t *testing.T) {
	a := newTestApp(t)

	assert.Equal(t, "http://localhost:5000/api", a.Settings.APIURL)
	assert.Equal(t, logging.LevelWarn, a.Config.LogLevel)
	assert.Equal(t, domain.SessionUnknown, a.Session.CurrentState().Status)
	assert.NotNil(t, a.Club)
	assert.NotNil(t, a.Dashboard)
}

func TestNewApp_VerboseEnablesDebug(t *testing.T) {
	a := newTestApp(t, app.WithVerbose(true))
	assert.Equal(t, logging.LevelDebug, a.Config.LogLevel)
}

func TestNewApp_RejectsInvalidAPIURL(t *testing.T) {
	dir := t.TempDir()
	_, err := app.NewApp(context.Background(),
		app.WithConfigPath(filepath.Join(dir, "config.yaml")),
		app.WithCredentialsDir(filepath.Join(dir, "credentials")),
		app.WithLogOutput(io.Discard),
		app.WithAPIURL("ftp://club.example"),
	)
	var validationErr *apperrors.ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestNewApp_SessionSurvivesRestart(t *testing.T) {
	server := testutil.NewClubServer(t)
	server.AddUser(domain.UserProfile{ID: 1, Username: "robin"}, "arrow")

	dir := t.TempDir()
	opts := []app.Option{
		app.WithConfigPath(filepath.Join(dir, "config.yaml")),
		app.WithCredentialsDir(filepath.Join(dir, "credentials")),
		app.WithLogOutput(io.Discard),
		app.WithAPIURL(server.URL()),
	}
	ctx := context.Background()

	first, err := app.NewApp(ctx, opts...)
	require.NoError(t, err)
	_, err = first.Session.Login(ctx, "robin", "arrow")
	require.NoError(t, err)
	first.Close()

	second, err := app.NewApp(ctx, opts...)
	require.NoError(t, err)
	defer second.Close()

	state, err := second.Session.Validate(ctx)
	require.NoError(t, err)
	assert.True(t, state.IsAuthenticated())
	assert.Equal(t, "robin", state.User.Username)

	events, err := second.Club.ListUpcomingEvents(ctx)
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestApp_CloseIsIdempotent(t *testing.T) {
	a := newTestApp(t)
	a.Close()
	a.Close()
}
