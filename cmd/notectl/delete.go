package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <note-id>",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var out struct {
			Message string `json:"message"`
		}
		if err := newAPIClient().do("DELETE", "/api/notes/"+args[0], nil, &out); err != nil {
			fatal("Failed to delete note", err)
		}

		fmt.Println(out.Message)
	},
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}
