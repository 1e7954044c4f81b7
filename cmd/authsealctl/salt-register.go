package main

import (
	"encoding/base64"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authseal/authseal/pkg/seal"
)

// saltRegisterCmd represents the salt register command
var saltRegisterCmd = &cobra.Command{
	Use:   "register [realm]",
	Short: "Register a salt key for a realm",
	Long: `Register a salt key for a realm.

The salt key is sealed with AUTHSEAL_DATA_KEY before it is stored. When no
--salt is given, a random 256-bit salt is generated and printed to STDOUT so
it can be shared with other verifying instances.

Example:
  authsealctl salt register production
  authsealctl salt register production --salt s3cr3t`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		realm := args[0]
		salt, _ := cmd.Flags().GetString("salt")

		generated := salt == ""
		if generated {
			bytes, err := seal.RandomBytes(32)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to generate salt: %v\n", err)
				os.Exit(1)
			}
			salt = base64.StdEncoding.EncodeToString(bytes)
		}

		store, err := openKeyStore()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open keystore: %v\n", err)
			os.Exit(1)
		}

		if err := store.Register(realm, salt); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register salt: %v\n", err)
			os.Exit(1)
		}

		fmt.Fprintf(os.Stderr, "Registered salt key for realm '%s'\n", realm)
		if generated {
			fmt.Println(salt)
		}
	},
}

func init() {
	saltCmd.AddCommand(saltRegisterCmd)
	saltRegisterCmd.Flags().StringP("salt", "s", "", "Salt key to register (default: generate)")
}
