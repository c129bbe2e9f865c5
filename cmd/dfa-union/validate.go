package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dfaunion "github.com/dylo101/DFA-Union"
)

var validateCmd = &cobra.Command{
	Use:   "validate <dfa>",
	Short: "Check that a document is a well-formed automaton",
	Long:  `Loads a single DFA document and reports the first shape problem found, if any.`,
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		eng := dfaunion.New(dfaunion.WithLogger(newLogger(cmd)))

		a, err := eng.Load(cmd.Context(), args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Document is well-formed! ✅ (%d states, %d symbols)\n", len(a.States), len(a.Alphabet()))
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
