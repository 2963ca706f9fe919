package main

import (
	"github.com/spf13/cobra"
)

var getCmd = &cobra.Command{
	Use:   "get <note-id>",
	Short: "Show a single note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var out noteView
		if err := newAPIClient().do("GET", "/api/notes/"+args[0], nil, &out); err != nil {
			fatal("Failed to fetch note", err)
		}

		printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
