package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "authsealctl",
	Short: "AuthSeal token service",
	Long:  `AuthSeal issues and verifies compact encrypted auth tokens bound to a realm salt key.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
