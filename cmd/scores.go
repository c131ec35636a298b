package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nockpoint/internal/commands"
	"nockpoint/internal/domain"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Submit competition scores",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var scoresSubmitCmd = &cobra.Command{
	Use:   "submit COMPETITION_ID",
	Short: "Submit the score of a single arrow",
	Args:  cobra.ExactArgs(1),
	RunE:  runScoresSubmit,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var scoresBatchCmd = &cobra.Command{
	Use:   "batch COMPETITION_ID",
	Short: "Submit many scores from a YAML or JSON file",
	Long: `Submit many scores at once. The file holds either a list of scores or a
document with a "scores" list. Each score has round_number, arrow_number,
score and an optional is_x. Use --file - to read from standard input.`,
	Args: cobra.ExactArgs(1),
	RunE: runScoresBatch,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.AddCommand(scoresSubmitCmd, scoresBatchCmd)

	scoresSubmitCmd.Flags().Int("round", 0, "Round number (required)")
	scoresSubmitCmd.Flags().Int("arrow", 0, "Arrow number within the round (required)")
	scoresSubmitCmd.Flags().Int("score", 0, "Arrow score")
	scoresSubmitCmd.Flags().Bool("x", false, "Arrow hit the X ring")
	_ = scoresSubmitCmd.MarkFlagRequired("round")
	_ = scoresSubmitCmd.MarkFlagRequired("arrow")
	_ = scoresSubmitCmd.MarkFlagRequired("score")

	scoresBatchCmd.Flags().StringP("file", "f", "", "Scores file, or - for standard input (required)")
	_ = scoresBatchCmd.MarkFlagRequired("file")
}

func runScoresSubmit(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	competitionID, err := parseID("competition", args[0])
	if err != nil {
		return err
	}

	round, _ := cmd.Flags().GetInt("round")
	arrow, _ := cmd.Flags().GetInt("arrow")
	score, _ := cmd.Flags().GetInt("score")
	isX, _ := cmd.Flags().GetBool("x")

	submitCommand := commands.NewScoreSubmitCommand(app.Session, app.Club, app.Logger)
	result, err := submitCommand.Execute(cmd.Context(), commands.ScoreSubmitRequest{
		CompetitionID: competitionID,
		Score: domain.ArrowScore{
			RoundNumber: round,
			ArrowNumber: arrow,
			Score:       score,
			IsX:         isX,
		},
	})
	if err != nil {
		return present(err)
	}

	return render(cmd, result, func(w io.Writer) {
		fmt.Fprintln(w, result.Message)
		fmt.Fprintf(w, "Running total: %d\n", result.TotalScore)
	})
}

func runScoresBatch(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	competitionID, err := parseID("competition", args[0])
	if err != nil {
		return err
	}
	file, _ := cmd.Flags().GetString("file")

	batchCommand := commands.NewScoreBatchCommand(app.Session, app.Club, app.FileSystem, cmd.InOrStdin(), app.Logger)
	result, err := batchCommand.Execute(cmd.Context(), commands.ScoreBatchRequest{
		CompetitionID: competitionID,
		Source:        file,
	})
	if err != nil {
		return present(err)
	}

	return render(cmd, result, func(w io.Writer) {
		fmt.Fprintln(w, result.Message)
		fmt.Fprintf(w, "Submitted %d score(s), running total: %d\n", len(result.SubmittedScores), result.TotalScore)
	})
}
