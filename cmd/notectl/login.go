package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print a bearer token",
	Long: `Log in with an existing account and print the bearer token to stdout,
so it can be captured directly:

  export NOTECTL_TOKEN=$(notectl login -u alice)`,
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
		if err := newAPIClient().do("POST", "/auth/login", body, &out); err != nil {
			fatal("Login failed", err)
		}

		fmt.Println(out.Token)
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringP("username", "u", "", "Username")
	loginCmd.Flags().StringP("password", "p", "", "Password (prompted when omitted)")
	loginCmd.MarkFlagRequired("username")
}
