package main

import (
	"fmt"

	"github.com/spf13/cobra"

	dfaunion "github.com/dylo101/DFA-Union"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of dfa-union",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("dfa-union version %s\n", dfaunion.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
