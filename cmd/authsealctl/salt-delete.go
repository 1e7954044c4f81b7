package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// saltDeleteCmd represents the salt delete command
var saltDeleteCmd = &cobra.Command{
	Use:   "delete [realm]",
	Short: "Delete the salt key for a realm",
	Long: `Delete the salt key for a realm.

Tokens issued under the deleted salt can no longer be verified.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		realm := args[0]

		store, err := openKeyStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open keystore: %v\n", err)
			os.Exit(1)
		}

		if err := store.Delete(realm); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to delete salt: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Deleted salt key for realm '%s'\n", realm)
	},
}

func init() {
	saltCmd.AddCommand(saltDeleteCmd)
}
