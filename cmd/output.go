package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nockpoint/internal/app"
	"nockpoint/internal/commands"
	"nockpoint/internal/domain"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// displayError prints as the user-facing message while keeping the cause.
type displayError struct {
	err error
}

func (e displayError) Error() string { return commands.Describe(e.err) }
func (e displayError) Unwrap() error { return e.err }

func present(err error) error {
	if err == nil {
		return nil
	}
	return displayError{err: err}
}

func requireApp() (*app.App, error) {
	a := GetApp()
	if a == nil {
		return nil, errors.New("application not initialized")
	}
	return a, nil
}

// render writes v as JSON when requested, otherwise calls text.
func render(cmd *cobra.Command, v any, text func(w io.Writer)) error {
	switch format := viper.GetString("output"); format {
	case outputJSON:
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	case outputText, "":
		text(cmd.OutOrStdout())
		return nil
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}

func parseID(kind, raw string) (int, error) {
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s id %q", kind, raw)
	}
	return id, nil
}

func printEvent(w io.Writer, event domain.Event) {
	fmt.Fprintf(w, "#%d %s\n", event.ID, event.Title)
	fmt.Fprintf(w, "   When: %s\n", event.EventDate)
	if event.Location != "" {
		fmt.Fprintf(w, "   Where: %s\n", event.Location)
	}
	fmt.Fprintf(w, "   Type: %s\n", event.EventType)
	if event.AvailableSpots != nil {
		fmt.Fprintf(w, "   Spots left: %d\n", *event.AvailableSpots)
	}
	if !event.IsFree && event.ChargeAmount != nil {
		fmt.Fprintf(w, "   Cost: %.2f\n", *event.ChargeAmount)
	}
	switch {
	case event.UserRegistered:
		fmt.Fprintln(w, "   You are registered")
	case event.CanRegister:
		fmt.Fprintln(w, "   Registration open")
	}
}

func printCompetition(w io.Writer, competition domain.Competition) {
	fmt.Fprintf(w, "#%d %s [%s]\n", competition.ID, competition.Name, competition.Status)
	fmt.Fprintf(w, "   Dates: %s to %s\n", competition.StartDate, competition.EndDate)
	if competition.Location != "" {
		fmt.Fprintf(w, "   Where: %s\n", competition.Location)
	}
	if competition.UserRegistered {
		fmt.Fprintln(w, "   You are entered")
	}
}
