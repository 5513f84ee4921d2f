package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"dayplan/internal/config"
)

// rootCmd represents the base command for the dayplan application
var rootCmd = &cobra.Command{
	Use:   "dayplan",
	Short: "Personal scheduling and email triage from the terminal",
	Long: `dayplan is a client for a personal scheduling backend. It renders a
day view of your events, creates and edits events as wall-clock times,
and triages the emails the backend has summarized for you.

Event times never pass through a timezone: what you type is what the
backend stores and what every view shows.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// configPath is shared by all subcommands via the persistent flag.
var configPath string

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "dayplan version %s\n" .Version}}`)

	// If no subcommand is provided, show the agenda by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "agenda")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", config.DefaultPath(), "Path to the configuration file")

	rootCmd.AddCommand(newAgendaCmd())
	rootCmd.AddCommand(newTriageCmd())
	rootCmd.AddCommand(newEventCmd())
	rootCmd.AddCommand(newWatchCmd())
	rootCmd.AddCommand(newVersionCmd())
}
