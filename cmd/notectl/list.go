package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List your notes",
	Run: func(cmd *cobra.Command, args []string) {
		var out []noteView
		if err := newAPIClient().do("GET", "/api/notes", nil, &out); err != nil {
			fatal("Failed to list notes", err)
		}

		printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
