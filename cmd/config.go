package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nockpoint/internal/commands"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change client settings",
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective settings",
	Args:  cobra.NoArgs,
	RunE:  runConfigShow,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var configSetURLCmd = &cobra.Command{
	Use:   "set-url URL",
	Short: "Set the club service URL",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigSetURL,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetURLCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	result, err := commands.NewConfigShowCommand(app.ConfigRepo, app.ConfigProvider).Execute(cmd.Context())
	if err != nil {
		return present(err)
	}

	return render(cmd, result.Settings, func(w io.Writer) {
		settings := result.Settings
		fmt.Fprintf(w, "Config file: %s\n", result.Path)
		fmt.Fprintf(w, "API URL: %s\n", settings.APIURL)
		if app.Settings.APIURL != settings.APIURL {
			fmt.Fprintf(w, "   overridden by flag or environment: %s\n", app.Settings.APIURL)
		}
		fmt.Fprintf(w, "Timeout: %s\n", settings.Timeout)
		fmt.Fprintf(w, "Rate limit: %.1f req/s (burst %d)\n", settings.RateLimit, settings.RateBurst)
		if settings.InsecureSkipVerify {
			fmt.Fprintln(w, "TLS verification: disabled")
		}
	})
}

func runConfigSetURL(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	apiURL, err := commands.NewConfigSetURLCommand(app.ConfigRepo, app.Logger).Execute(cmd.Context(), args[0])
	if err != nil {
		return present(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "API URL set to %s\n", apiURL)
	fmt.Fprintln(cmd.OutOrStdout(), "Run 'nockpoint login' if you were signed in to a different server.")
	return nil
}
