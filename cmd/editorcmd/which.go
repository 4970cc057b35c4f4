package main

import (
	"fmt"

	"github.com/kballard/go-shellquote"
	"github.com/spf13/cobra"

	"github.com/VoxDroid/editorcmd"
)

var whichCmd = &cobra.Command{
	Use:   "which [file]",
	Short: "Print the resolved editor command without running it",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		editor, _ := cmd.Flags().GetString("editor")
		programOnly, _ := cmd.Flags().GetBool("program-only")

		path := ""
		if len(args) == 1 {
			path = args[0]
		}
		r := &editorcmd.Resolver{Priority: editor}
		c, err := r.Resolve(path)
		if err != nil {
			return err
		}

		if programOnly {
			fmt.Fprintln(cmd.OutOrStdout(), c.Program)
			return nil
		}
		words := append([]string{c.Program}, c.Args...)
		if len(args) == 0 {
			// no file was given; drop the trailing placeholder argument
			words = words[:len(words)-1]
		}
		fmt.Fprintln(cmd.OutOrStdout(), shellquote.Join(words...))
		return nil
	},
}

func init() {
	whichCmd.Flags().StringP("editor", "e", "", "Editor command to use instead of VISUAL/EDITOR")
	whichCmd.Flags().Bool("program-only", false, "Print only the program name, without arguments")
	rootCmd.AddCommand(whichCmd)
}
