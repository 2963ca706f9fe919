package main

import (
	"github.com/spf13/cobra"
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Run: func(cmd *cobra.Command, args []string) {
		title, _ := cmd.Flags().GetString("title")
		noteBody, _ := cmd.Flags().GetString("body")

		var out noteView
		body := map[string]string{"title": title, "body": noteBody}
		if err := newAPIClient().do("POST", "/api/notes", body, &out); err != nil {
			fatal("Failed to create note", err)
		}

		printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(createCmd)
	createCmd.Flags().StringP("title", "t", "", "Note title")
	createCmd.Flags().StringP("body", "b", "", "Note body")
	createCmd.MarkFlagRequired("title")
	createCmd.MarkFlagRequired("body")
}
