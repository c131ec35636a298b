package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nockpoint/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show upcoming events and competitions",
	Args:  cobra.NoArgs,
	RunE:  runDashboard,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(dashboardCmd)

	dashboardCmd.Flags().StringSlice("exclude", nil, "Regex patterns of event titles or types to hide")
}

func runDashboard(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	exclude, _ := cmd.Flags().GetStringSlice("exclude")

	result, err := commands.NewDashboardCommand(app.Session, app.Dashboard, app.Logger).
		Execute(cmd.Context(), commands.DashboardRequest{Exclude: exclude})
	if err != nil {
		return present(err)
	}

	if err := render(cmd, result.Dashboard, func(w io.Writer) {
		fmt.Fprintf(w, "Welcome, %s\n\n", result.User.Username)
		fmt.Fprintf(w, "Upcoming events (%d):\n", len(result.Dashboard.Events))
		for _, event := range result.Dashboard.Events {
			printEvent(w, event)
		}
		fmt.Fprintf(w, "\nCompetitions (%d):\n", len(result.Dashboard.Competitions))
		for _, competition := range result.Dashboard.Competitions {
			printCompetition(w, competition)
		}
	}); err != nil {
		return err
	}

	if result.Err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: %s\n", commands.Describe(result.Err))
	}
	return nil
}
