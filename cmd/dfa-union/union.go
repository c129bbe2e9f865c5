package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dfaunion "github.com/dylo101/DFA-Union"
	"github.com/dylo101/DFA-Union/internal/presentation/report"
)

// unionCmd represents the union command
var unionCmd = &cobra.Command{
	Use:   "union <dfa-a> <dfa-b>",
	Short: "Build the union of two automata",
	Long: `Loads both documents, builds the cross-product union, validates it, and
writes the result to the output file. Nothing is written when the union has
structural defects.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		output, _ := cmd.Flags().GetString("output")
		plain, _ := cmd.Flags().GetBool("plain")

		eng := dfaunion.New(dfaunion.WithLogger(newLogger(cmd)))

		res, err := eng.Union(cmd.Context(), args[0], args[1])
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		md := report.Build(res.Union, res.Report)
		fmt.Print(report.Render(md, plain))
		fmt.Println(report.StatusLine(res.Report.Valid(), len(res.Report.Findings), plain))

		if !res.Report.Valid() {
			os.Exit(1)
		}

		if err := eng.Persist(cmd.Context(), res, output); err != nil {
			fmt.Printf("Error writing union: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Union written to %s\n", output)
	},
}

func init() {
	rootCmd.AddCommand(unionCmd)

	unionCmd.Flags().StringP("output", "o", "union.json", "Path for the union document (.json or .yaml)")
	unionCmd.Flags().Bool("plain", false, "Plain text report (no terminal styling)")
}
