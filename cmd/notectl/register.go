package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and print a bearer token",
	Run: func(cmd *cobra.Command, args []string) {
		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")

		if password == "" {
			var err error
			password, err = readPassword()
			if err != nil {
				fatal("Failed to read password", err)
			}
		}

		var out struct {
			Token string `json:"token"`
		}
		body := map[string]string{"username": username, "password": password}
		if err := newAPIClient().do("POST", "/auth/register", body, &out); err != nil {
			fatal("Registration failed", err)
		}

		fmt.Println(out.Token)
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
	registerCmd.Flags().StringP("username", "u", "", "Username for the new account")
	registerCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	registerCmd.MarkFlagRequired("username")
}
