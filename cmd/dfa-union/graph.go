package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	dfaunion "github.com/dylo101/DFA-Union"
	"github.com/dylo101/DFA-Union/internal/presentation/graph"
)

// graphCmd represents the graph command
var graphCmd = &cobra.Command{
	Use:   "graph <dfa-a> [dfa-b]",
	Short: "Export an automaton as a Mermaid diagram",
	Long: `Outputs a Mermaid flowchart (graph TD) for a single automaton, or for the
cross-product union when two documents are given. The union is drawn even when
it has structural defects.`,
	Args: cobra.RangeArgs(1, 2),
	Run: func(cmd *cobra.Command, args []string) {
		eng := dfaunion.New(dfaunion.WithLogger(newLogger(cmd)))

		if len(args) == 1 {
			a, err := eng.Load(cmd.Context(), args[0])
			if err != nil {
				fmt.Printf("Error loading automaton: %v\n", err)
				os.Exit(1)
			}
			fmt.Print(graph.GenerateMermaid(a))
			return
		}

		res, err := eng.Union(cmd.Context(), args[0], args[1])
		if err != nil {
			fmt.Printf("Error building union: %v\n", err)
			os.Exit(1)
		}
		fmt.Print(graph.GenerateUnionMermaid(res.Union))
	},
}

func init() {
	rootCmd.AddCommand(graphCmd)
}
