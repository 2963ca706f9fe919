package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var shareCmd = &cobra.Command{
	Use:   "share <note-id>",
	Short: "Share one of your notes with another user",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("with")

		var out struct {
			Message string `json:"message"`
		}
		body := map[string]string{"username": username}
		if err := newAPIClient().do("POST", "/api/notes/"+args[0]+"/share", body, &out); err != nil {
			fatal("Failed to share note", err)
		}

		fmt.Println(out.Message)
	},
}

func init() {
	rootCmd.AddCommand(shareCmd)
	shareCmd.Flags().StringP("with", "w", "", "Username to share the note with")
	shareCmd.MarkFlagRequired("with")
}
