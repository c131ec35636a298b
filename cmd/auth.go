package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"nockpoint/internal/commands"
	"nockpoint/internal/domain"
)

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the club service",
	Long: `Sign in with your club username and password. The password is read from
NOCKPOINT_PASSWORD when set, otherwise you are prompted for it.`,
	RunE: runLogin,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and forget the stored session",
	RunE:  runLogout,
}

//nolint:gochecknoglobals // Cobra CLI pattern for subcommand
var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether you are signed in",
	Long:  `Check the stored session against the club service and show who you are signed in as.`,
	RunE:  runStatus,
}

//nolint:gochecknoinits // Cobra CLI pattern for command registration
func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(statusCmd)

	loginCmd.Flags().StringP("username", "u", "", "Club username (required)")
	_ = loginCmd.MarkFlagRequired("username")
}

func runLogin(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	username, _ := cmd.Flags().GetString("username")

	loginCommand := commands.NewLoginCommand(app.Session, app.PasswordReader, app.Logger)
	result, err := loginCommand.Execute(cmd.Context(), commands.LoginRequest{Username: username})
	if err != nil {
		return present(err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", result.User.Username)
	return nil
}

func runLogout(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := commands.NewLogoutCommand(app.Session, app.Logger).Execute(cmd.Context()); err != nil {
		return present(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
	return nil
}

func runStatus(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	result, err := commands.NewStatusCommand(app.Session, app.Logger).Execute(cmd.Context())
	if err != nil {
		return present(err)
	}

	return render(cmd, result, func(w io.Writer) {
		printStatus(w, result, app.Settings.APIURL)
	})
}

func printStatus(w io.Writer, result *commands.StatusResult, apiURL string) {
	switch {
	case result.State.Status == domain.SessionAuthenticated:
		user := result.State.User
		fmt.Fprintf(w, "Logged in to %s as %s", apiURL, user.Username)
		if user.Email != "" {
			fmt.Fprintf(w, " <%s>", user.Email)
		}
		if user.IsAdmin {
			fmt.Fprint(w, " (admin)")
		}
		fmt.Fprintln(w)
	case result.Expired:
		fmt.Fprintln(w, "Your session has expired. Run 'nockpoint login' to sign in again.")
	default:
		fmt.Fprintln(w, "Not logged in. Run 'nockpoint login' to sign in.")
	}
}
