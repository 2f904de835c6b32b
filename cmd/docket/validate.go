package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/docket-run/docket/internal/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate <manifest.yaml>",
	Short: "Check that a manifest parses and all its actions build",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := cli.Validate(args[0]); err != nil {
			fmt.Printf("Invalid: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("OK")
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
