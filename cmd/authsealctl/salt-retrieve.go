package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// saltRetrieveCmd represents the salt retrieve command
var saltRetrieveCmd = &cobra.Command{
	Use:   "retrieve [realm]",
	Short: "Retrieve the salt key for a realm",
	Long: `Retrieve the decrypted salt key for a realm.

The salt key is printed to STDOUT so it can be exported into the environment
of a database-less verifying instance.

Example:
  export AUTHSEAL_SALT_KEY="$(authsealctl salt retrieve production)"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		realm := args[0]

		store, err := openKeyStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open keystore: %v\n", err)
			os.Exit(1)
		}

		salt, err := store.ByRealm(realm)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to retrieve salt: %v\n", err)
			os.Exit(1)
		}

		fmt.Print(salt)
	},
}

func init() {
	saltCmd.AddCommand(saltRetrieveCmd)
}
