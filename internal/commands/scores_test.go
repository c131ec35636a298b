package commands

import (
	"context"
	"net/http"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"nockpoint/internal/domain"
	apperrors "nockpoint/internal/errors"
	"nockpoint/internal/mocks"
	"nockpoint/internal/testutil"
)

func TestScoreSubmitCommand_Execute(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)
	score := domain.ArrowScore{RoundNumber: 1, ArrowNumber: 3, Score: 10, IsX: true}
	want := &domain.ScoreSubmission{Message: "Score submitted", Score: 10, IsX: true, TotalScore: 10}
	api.EXPECT().SubmitScore(mock.Anything, 5, score).Return(want, nil)

	cmd := NewScoreSubmitCommand(session, api, testutil.Logger())
	result, err := cmd.Execute(context.Background(), ScoreSubmitRequest{CompetitionID: 5, Score: score})

	require.NoError(t, err)
	assert.Equal(t, want, result)
}

func TestScoreSubmitCommand_Execute_RejectsInvalidCompetitionID(t *testing.T) {
	cmd := NewScoreSubmitCommand(mocks.NewMockSessionManager(t), mocks.NewMockClubAPI(t), testutil.Logger())

	_, err := cmd.Execute(context.Background(), ScoreSubmitRequest{
		Score: domain.ArrowScore{RoundNumber: 1, ArrowNumber: 1, Score: 9},
	})

	var validationErr *apperrors.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "competition_id", validationErr.Field)
}

func TestScoreSubmitCommand_Execute_ServerRejection(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)
	score := domain.ArrowScore{RoundNumber: 1, ArrowNumber: 1, Score: 11}
	rejection := apperrors.NewHTTPError(http.StatusBadRequest, "POST", "/competitions/5/scores",
		"Score must be between 0 and 10")
	api.EXPECT().SubmitScore(mock.Anything, 5, score).Return(nil, rejection)

	cmd := NewScoreSubmitCommand(session, api, testutil.Logger())
	_, err := cmd.Execute(context.Background(), ScoreSubmitRequest{CompetitionID: 5, Score: score})

	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Equal(t, "Score must be between 0 and 10", Describe(err))
}

func TestScoreBatchCommand_Execute_Formats(t *testing.T) {
	want := []domain.ArrowScore{
		{RoundNumber: 1, ArrowNumber: 1, Score: 9},
		{RoundNumber: 1, ArrowNumber: 2, Score: 10, IsX: true},
	}

	tests := []struct {
		name    string
		content string
	}{
		{
			name: "yaml document",
			content: `scores:
  - round_number: 1
    arrow_number: 1
    score: 9
  - round_number: 1
    arrow_number: 2
    score: 10
    is_x: true
`,
		},
		{
			name: "json list",
			content: `[{"round_number":1,"arrow_number":1,"score":9},` +
				`{"round_number":1,"arrow_number":2,"score":10,"is_x":true}]`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mocks.NewMockSessionManager(t)
			api := mocks.NewMockClubAPI(t)
			fs := mocks.NewMockFileSystemAdapter(t)
			expectSession(session)
			fs.EXPECT().ReadFile("scores.yaml").Return([]byte(tt.content), nil)
			result := &domain.BatchScoreSubmission{Message: "2 scores submitted", TotalScore: 19}
			api.EXPECT().SubmitScoresBatch(mock.Anything, 2, want).Return(result, nil)

			cmd := NewScoreBatchCommand(session, api, fs, strings.NewReader(""), testutil.Logger())
			got, err := cmd.Execute(context.Background(), ScoreBatchRequest{CompetitionID: 2, Source: "scores.yaml"})

			require.NoError(t, err)
			assert.Equal(t, result, got)
		})
	}
}

func TestScoreBatchCommand_Execute_Stdin(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)
	scores := []domain.ArrowScore{{RoundNumber: 2, ArrowNumber: 6, Score: 7}}
	api.EXPECT().SubmitScoresBatch(mock.Anything, 2, scores).
		Return(&domain.BatchScoreSubmission{TotalScore: 7}, nil)

	stdin := strings.NewReader("- {round_number: 2, arrow_number: 6, score: 7}\n")
	cmd := NewScoreBatchCommand(session, api, mocks.NewMockFileSystemAdapter(t), stdin, testutil.Logger())
	got, err := cmd.Execute(context.Background(), ScoreBatchRequest{CompetitionID: 2, Source: StdinSource})

	require.NoError(t, err)
	assert.Equal(t, 7, got.TotalScore)
}

func TestScoreBatchCommand_Execute_InputErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		readErr error
		wantIs  error
	}{
		{name: "missing file", readErr: os.ErrNotExist, wantIs: os.ErrNotExist},
		{name: "not yaml", content: "scores: [", wantIs: apperrors.ErrInvalidInput},
		{name: "wrong shape", content: "scores: 12", wantIs: apperrors.ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fs := mocks.NewMockFileSystemAdapter(t)
			fs.EXPECT().ReadFile("scores.yaml").Return([]byte(tt.content), tt.readErr)

			cmd := NewScoreBatchCommand(mocks.NewMockSessionManager(t), mocks.NewMockClubAPI(t), fs,
				strings.NewReader(""), testutil.Logger())
			_, err := cmd.Execute(context.Background(), ScoreBatchRequest{CompetitionID: 2, Source: "scores.yaml"})

			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestScoreBatchCommand_Execute_EmptyBatchIsSent(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty list", input: "scores: []\n"},
		{name: "empty input", input: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session := mocks.NewMockSessionManager(t)
			api := mocks.NewMockClubAPI(t)
			expectSession(session)
			result := &domain.BatchScoreSubmission{Message: "0 scores submitted successfully"}
			api.EXPECT().SubmitScoresBatch(mock.Anything, 5, []domain.ArrowScore{}).Return(result, nil)

			cmd := NewScoreBatchCommand(session, api, mocks.NewMockFileSystemAdapter(t),
				strings.NewReader(tt.input), testutil.Logger())
			got, err := cmd.Execute(context.Background(), ScoreBatchRequest{CompetitionID: 5, Source: StdinSource})

			require.NoError(t, err)
			assert.Equal(t, result, got)
		})
	}
}

func TestScoreBatchCommand_Execute_ServerRejectionReachesUser(t *testing.T) {
	session := mocks.NewMockSessionManager(t)
	api := mocks.NewMockClubAPI(t)
	expectSession(session)
	scores := []domain.ArrowScore{{RoundNumber: 0, ArrowNumber: 1, Score: 5}}
	rejection := apperrors.NewHTTPError(http.StatusBadRequest, "POST", "/competitions/5/scores/batch",
		"Invalid round number")
	api.EXPECT().SubmitScoresBatch(mock.Anything, 5, scores).Return(nil, rejection)

	stdin := strings.NewReader("- {round_number: 0, arrow_number: 1, score: 5}\n")
	cmd := NewScoreBatchCommand(session, api, mocks.NewMockFileSystemAdapter(t), stdin, testutil.Logger())
	_, err := cmd.Execute(context.Background(), ScoreBatchRequest{CompetitionID: 5, Source: StdinSource})

	assert.ErrorIs(t, err, apperrors.ErrServer)
	assert.Equal(t, "Invalid round number", Describe(err))
}
