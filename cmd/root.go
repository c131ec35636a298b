package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"nockpoint/internal/app"
	"nockpoint/internal/commands"
	"nockpoint/internal/logging"
)

//nolint:gochecknoglobals // Cobra CLI pattern for persistent flag variables
var (
	cfgFile string

	application *app.App
)

// VersionInfo holds build information.
type VersionInfo struct {
	Version string
	Commit  string
	Date    string
	BuiltBy string
}

//nolint:gochecknoglobals // Package-level version info for CLI commands
var versionInfo = VersionInfo{
	Version: "dev",
	Commit:  "none",
	Date:    "unknown",
	BuiltBy: "unknown",
}

// SetVersionInfo updates the build information.
func SetVersionInfo(v, c, d, b string) {
	versionInfo.Version = v
	versionInfo.Commit = c
	versionInfo.Date = d
	versionInfo.BuiltBy = b
}

// GetVersionInfo returns the current version information.
func GetVersionInfo() VersionInfo {
	return versionInfo
}

// GetApp returns the initialized application instance.
func GetApp() *app.App {
	return application
}

//nolint:gochecknoglobals // Cobra CLI pattern for root command
var rootCmd = &cobra.Command{
	Use:   "nockpoint",
	Short: "A command line client for the archery club service",
	Long: `Nockpoint signs you in to your archery club's service and lets you browse
events, register for them, follow competitions and submit your scores.

Your session is stored under $HOME/.config/nockpoint and reused until it expires.`,
	SilenceUsage: true,
}

// Execute runs the root command and releases the application afterwards.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if application != nil {
		application.Close()
	}
	if err != nil {
		os.Exit(1)
	}
}

//nolint:gochecknoinits // Cobra CLI pattern for flag initialization
func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().
		StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/nockpoint/config.yaml)")
	rootCmd.PersistentFlags().
		BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().
		String("api-url", "", "Club service URL, e.g. https://club.example/api")
	rootCmd.PersistentFlags().
		String("log-format", "text", "Log format: text or json")
	rootCmd.PersistentFlags().
		String("log-level", "", "Log level: debug, info, warn or error")
	rootCmd.PersistentFlags().
		StringP("output", "o", outputText, "Output format: text or json")
}

// bindFlags lets flags take precedence over NOCKPOINT_* variables and the config file.
func bindFlags() {
	flags := rootCmd.PersistentFlags()
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
	_ = viper.BindPFlag("api_url", flags.Lookup("api-url"))
	_ = viper.BindPFlag("log_format", flags.Lookup("log-format"))
	_ = viper.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = viper.BindPFlag("output", flags.Lookup("output"))
}

func initConfig() {
	bindFlags()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(home + "/.config/nockpoint")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("NOCKPOINT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Read config file silently (ignore error if config file doesn't exist)
	_ = viper.ReadInConfig()

	// Initialize the application with dependency injection
	opts := []app.Option{
		app.WithVersion(versionInfo.Version),
		app.WithLogFormat(viper.GetString("log_format")),
	}
	if level := viper.GetString("log_level"); level != "" {
		opts = append(opts, app.WithLogLevel(logging.ParseLevel(level)))
	}
	if viper.GetBool("verbose") {
		opts = append(opts, app.WithVerbose(true))
	}
	if cfgFile != "" {
		opts = append(opts, app.WithConfigPath(cfgFile))
	}
	if apiURL := viper.GetString("api_url"); apiURL != "" {
		opts = append(opts, app.WithAPIURL(apiURL))
	}

	if application != nil {
		application.Close()
	}

	var err error
	application, err = app.NewApp(context.Background(), opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize application: %s\n", commands.Describe(err))
		os.Exit(1)
	}
}
