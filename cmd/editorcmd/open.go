package main

import (
	"github.com/spf13/cobra"

	"github.com/VoxDroid/editorcmd"
	"github.com/VoxDroid/editorcmd/internal/launcher"
)

var openCmd = &cobra.Command{
	Use:   "open <file>",
	Short: "Open a file in the configured editor",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, _ := cmd.Flags().GetString("editor")
		fallback, _ := cmd.Flags().GetString("fallback")
		r := &editorcmd.Resolver{Priority: editor, Default: fallback}
		return launcher.Open(args[0], r)
	},
}

func init() {
	openCmd.Flags().StringP("editor", "e", "", "Editor command to use instead of VISUAL/EDITOR")
	openCmd.Flags().String("fallback", launcher.PlatformDefault(), "Editor used when nothing is configured (empty disables the fallback)")
	rootCmd.AddCommand(openCmd)
}
