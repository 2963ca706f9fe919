package main

import (
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update <note-id>",
	Short: "Update a note's title and/or body",
	Long: `Update a note. Only the fields passed as flags change, the rest
keep their stored values.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		body := map[string]string{}
		if cmd.Flags().Changed("title") {
			title, _ := cmd.Flags().GetString("title")
			body["title"] = title
		}
		if cmd.Flags().Changed("body") {
			noteBody, _ := cmd.Flags().GetString("body")
			body["body"] = noteBody
		}

		var out noteView
		if err := newAPIClient().do("PUT", "/api/notes/"+args[0], body, &out); err != nil {
			fatal("Failed to update note", err)
		}

		printJSON(out)
	},
}

func init() {
	rootCmd.AddCommand(updateCmd)
	updateCmd.Flags().StringP("title", "t", "", "New title")
	updateCmd.Flags().StringP("body", "b", "", "New body")
}
