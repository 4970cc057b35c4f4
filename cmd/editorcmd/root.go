package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "editorcmd",
	Short: "editorcmd resolves and launches the user's preferred text editor",
	Long:  "editorcmd reads the VISUAL and EDITOR environment variables, parses the configured command with shell quoting rules, and opens files with it",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("editorcmd: run 'editorcmd --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
