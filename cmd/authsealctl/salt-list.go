package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// saltListCmd represents the salt list command
var saltListCmd = &cobra.Command{
	Use:   "list",
	Short: "List realms with a registered salt key",
	Run: func(cmd *cobra.Command, args []string) {
		store, err := openKeyStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open keystore: %v\n", err)
			os.Exit(1)
		}

		realms, err := store.List()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to list realms: %v\n", err)
			os.Exit(1)
		}

		for _, realm := range realms {
			fmt.Println(realm)
		}
	},
}

func init() {
	saltCmd.AddCommand(saltListCmd)
}
