package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docket-run/docket"
	"github.com/docket-run/docket/internal/cli"
)

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run <manifest.yaml>",
	Short: "Process every project declared in a manifest",
	Long: `Builds the projects declared in the manifest and applies each project's
action sequence in bind order, printing the resulting state per project.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		jsonMode, _ := cmd.Flags().GetBool("json")
		repeat, _ := cmd.Flags().GetInt("repeat")

		eng := docket.New(docket.WithLogger(newLogger(cmd)))

		states, err := cli.Run(cmd.Context(), eng, args[0], repeat)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if jsonMode {
			if err := cli.WriteJSON(os.Stdout, states); err != nil {
				fmt.Printf("Error: %v\n", err)
				os.Exit(1)
			}
			return
		}
		cli.WriteText(os.Stdout, states)
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().Bool("json", false, "Print results as NDJSON")
	runCmd.Flags().Int("repeat", 1, "Process each project this many times (runs are cumulative)")
}
