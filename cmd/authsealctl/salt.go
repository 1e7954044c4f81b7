package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authseal/authseal/pkg/config"
	"github.com/authseal/authseal/pkg/db"
	"github.com/authseal/authseal/pkg/keystore"
)

// saltCmd represents the salt command
var saltCmd = &cobra.Command{
	Use:   "salt",
	Short: "Manage realm salt keys",
	Long:  `Manage the per-realm salt keys held in the database keystore.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'salt' requires a subcommand (register, retrieve, list, delete)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(saltCmd)
}

// openKeyStore connects to the database and unseals the keystore with the
// data key from the environment.
func openKeyStore() (*keystore.KeyStore, error) {
	dataKey, err := config.DataKey()
	if err != nil {
		return nil, err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	return keystore.NewKeyStore(database, dataKey)
}
