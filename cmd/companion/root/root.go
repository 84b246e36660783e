// Package root wires the companion CLI: a terminal stand-in for the
// mobile client that drives the same local store, aggregation, and
// calendar logic the app screens used.
package root

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sukoon/internal/localstore"
)

const Version = "0.1.0"

var dataPath string

var rootCmd = &cobra.Command{
	Use:           "companion",
	Short:         "Sukoon companion — local to-dos, activity logs and reminders",
	Long:          "Companion keeps the sukoon client's local state (to-dos, game and exercise sessions, monthly notes, reminders) in a JSON file and computes the monthly progress summary from it.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "sukoon.json", "Path to the companion data file")

	rootCmd.AddCommand(
		newTodoCmd(),
		newGameCmd(),
		newExerciseCmd(),
		newNoteCmd(),
		newSummaryCmd(),
		newAgendaCmd(),
		newReminderCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func openStore() (*localstore.Store, error) {
	return localstore.Open(dataPath)
}
