package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nockpoint/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var competitionsCmd = &cobra.Command{
	Use:     "competitions",
	Aliases: []string{"comps"},
	Short:   "Browse competitions and your scores",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var competitionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List competitions",
	Args:  cobra.NoArgs,
	RunE:  runCompetitionsList,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var competitionsShowCmd = &cobra.Command{
	Use:   "show COMPETITION_ID",
	Short: "Show a competition with your recorded scores",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompetitionsShow,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(competitionsCmd)
	competitionsCmd.AddCommand(competitionsListCmd, competitionsShowCmd)

	competitionsListCmd.Flags().Bool("all", false, "Include finished competitions")
}

func runCompetitionsList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	all, _ := cmd.Flags().GetBool("all")

	competitions, err := commands.NewCompetitionsListCommand(app.Session, app.Club, app.Logger).
		Execute(cmd.Context(), !all)
	if err != nil {
		return present(err)
	}

	return render(cmd, competitions, func(w io.Writer) {
		if len(competitions) == 0 {
			fmt.Fprintln(w, "No competitions found.")
			return
		}
		fmt.Fprintf(w, "Competitions (%d):\n\n", len(competitions))
		for _, competition := range competitions {
			printCompetition(w, competition)
		}
	})
}

func runCompetitionsShow(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	competitionID, err := parseID("competition", args[0])
	if err != nil {
		return err
	}

	result, err := commands.NewCompetitionShowCommand(app.Session, app.Club, app.Logger).
		Execute(cmd.Context(), competitionID)
	if err != nil {
		return present(err)
	}

	return render(cmd, result.Competition, func(w io.Writer) {
		competition := result.Competition
		printCompetition(w, competition.Competition)
		if competition.Rounds > 0 {
			fmt.Fprintf(w, "   Format: %d rounds of %d arrows (%s)\n",
				competition.Rounds, competition.ArrowsPerRound, competition.ScoringType)
		}
		if len(competition.UserScores) == 0 {
			fmt.Fprintln(w, "\nNo scores recorded yet.")
			return
		}
		fmt.Fprintln(w, "\nYour scores:")
		for _, score := range competition.UserScores {
			x := ""
			if score.IsX {
				x = " X"
			}
			fmt.Fprintf(w, "  R%d A%d: %d%s\n", score.RoundNumber, score.ArrowNumber, score.Score, x)
		}
		fmt.Fprintf(w, "\nTotal: %d (%d Xs)\n", result.Total, result.Xs)
	})
}
