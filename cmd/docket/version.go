package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/docket-run/docket"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of docket",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("docket version %s\n", docket.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
