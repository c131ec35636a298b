package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"nockpoint/internal/commands"
	"nockpoint/internal/domain"
)

const dateLayout = "2006-01-02"

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var eventsCmd = &cobra.Command{
	Use:   "events",
	Short: "Browse and register for club events",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var eventsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List club events",
	Long: `List club events. Only upcoming events are shown unless --all is given.
Events whose title or type matches an --exclude pattern are hidden.`,
	Args: cobra.NoArgs,
	RunE: runEventsList,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var eventsShowCmd = &cobra.Command{
	Use:   "show EVENT_ID",
	Short: "Show an event and its participants",
	Args:  cobra.ExactArgs(1),
	RunE:  runEventsShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var eventsRegisterCmd = &cobra.Command{
	Use:   "register EVENT_ID",
	Short: "Register for an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegistration(cmd, args[0], false)
	},
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var eventsUnregisterCmd = &cobra.Command{
	Use:   "unregister EVENT_ID",
	Short: "Withdraw from an event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRegistration(cmd, args[0], true)
	},
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(eventsCmd)
	eventsCmd.AddCommand(eventsListCmd, eventsShowCmd, eventsRegisterCmd, eventsUnregisterCmd)

	eventsListCmd.Flags().Bool("all", false, "Include past events")
	eventsListCmd.Flags().String("type", "", "Only show events of this type")
	eventsListCmd.Flags().String("from", "", "Only show events on or after this date (YYYY-MM-DD)")
	eventsListCmd.Flags().String("to", "", "Only show events on or before this date (YYYY-MM-DD)")
	eventsListCmd.Flags().StringSlice("exclude", nil, "Regex patterns of event titles or types to hide")
}

func runEventsList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	all, _ := cmd.Flags().GetBool("all")
	eventType, _ := cmd.Flags().GetString("type")
	exclude, _ := cmd.Flags().GetStringSlice("exclude")
	query := domain.EventQuery{UpcomingOnly: !all, Type: eventType}
	if query.FromDate, err = parseDateFlag(cmd, "from"); err != nil {
		return err
	}
	if query.ToDate, err = parseDateFlag(cmd, "to"); err != nil {
		return err
	}

	listCommand := commands.NewEventsListCommand(app.Session, app.Club, app.Logger)
	result, err := listCommand.Execute(cmd.Context(), commands.EventsListRequest{
		Query:   query,
		Exclude: exclude,
	})
	if err != nil {
		return present(err)
	}

	return render(cmd, result.Events, func(w io.Writer) {
		if len(result.Events) == 0 {
			fmt.Fprintln(w, "No events found.")
			return
		}
		fmt.Fprintf(w, "Events (%d):\n\n", len(result.Events))
		for _, event := range result.Events {
			printEvent(w, event)
		}
		if result.Excluded > 0 {
			fmt.Fprintf(w, "\n%d event(s) hidden by exclude patterns\n", result.Excluded)
		}
	})
}

func runEventsShow(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	eventID, err := parseID("event", args[0])
	if err != nil {
		return err
	}

	detail, err := commands.NewEventShowCommand(app.Session, app.Club, app.Logger).Execute(cmd.Context(), eventID)
	if err != nil {
		return present(err)
	}

	return render(cmd, detail, func(w io.Writer) {
		printEvent(w, detail.Event)
		if detail.Description != "" {
			fmt.Fprintf(w, "\n%s\n", detail.Description)
		}
		fmt.Fprintf(w, "\nParticipants (%d):\n", len(detail.Participants))
		for _, participant := range detail.Participants {
			fmt.Fprintf(w, "  - %s\n", participant.Name)
		}
		if len(detail.Students) > 0 {
			fmt.Fprintf(w, "\nStudents (%d):\n", len(detail.Students))
			for _, student := range detail.Students {
				fmt.Fprintf(w, "  - %s\n", student.Name)
			}
		}
	})
}

func runRegistration(cmd *cobra.Command, rawID string, unregister bool) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	eventID, err := parseID("event", rawID)
	if err != nil {
		return err
	}

	registrationCommand := commands.NewEventRegistrationCommand(app.Session, app.Club, app.Logger)
	result, err := registrationCommand.Execute(cmd.Context(), commands.EventRegistrationRequest{
		EventID:    eventID,
		Unregister: unregister,
	})
	if err != nil {
		return present(err)
	}

	return render(cmd, result, func(w io.Writer) {
		fmt.Fprintln(w, result.Message)
	})
}

func parseDateFlag(cmd *cobra.Command, name string) (time.Time, error) {
	raw, _ := cmd.Flags().GetString(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s date %q, expected YYYY-MM-DD", name, raw)
	}
	return parsed, nil
}
