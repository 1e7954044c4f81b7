package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authseal/authseal/pkg/config"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Issue and verify tokens locally",
	Long:  `Issue and verify tokens locally, without going through the HTTP server.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'token' requires a subcommand (issue, verify)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
	tokenCmd.PersistentFlags().StringP("realm", "r", "", "Realm whose salt key to use (default: config realm)")
}

// resolveSalt prefers the static env salt and falls back to the keystore.
func resolveSalt(cmd *cobra.Command) (string, error) {
	if salt := config.SaltKey(); salt != "" {
		return salt, nil
	}

	realm, _ := cmd.Flags().GetString("realm")
	if realm == "" {
		realm = config.Get().Realm
	}

	store, err := openKeyStore()
	if err != nil {
		return "", err
	}
	return store.ByRealm(realm)
}
