package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/dylo101/DFA-Union/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "dfa-union",
	Short: "dfa-union combines two deterministic finite automata",
	Long: `dfa-union loads two DFA documents (JSON or YAML), builds their union via
the cross-product construction, validates the result, and writes it back out
as a document in the same format.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// Commands handle their own pipeline failures (exit 1); the errors that reach
// this point are cobra usage errors, so they exit 2.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "error", "Log verbosity (debug, info, warn, error)")
}

// newLogger builds the slog logger selected by --log-level. An unknown level
// falls back to error rather than aborting the command.
func newLogger(cmd *cobra.Command) *slog.Logger {
	name, _ := cmd.Flags().GetString("log-level")
	level, err := logging.ParseLevel(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v, using error\n", err)
	}
	return logging.New(level)
}
