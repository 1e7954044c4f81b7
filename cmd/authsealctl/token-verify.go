package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/authseal/authseal/pkg/token"
)

// tokenVerifyCmd represents the token verify command
var tokenVerifyCmd = &cobra.Command{
	Use:   "verify [wire-token]",
	Short: "Verify a token and print its claims",
	Long: `Verify a token and print its claims.

Exits non-zero when the token does not verify or has expired.

Example:
  authsealctl token verify "$WIRE_TOKEN"`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		salt, err := resolveSalt(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve salt key: %v\n", err)
			os.Exit(1)
		}

		tok := token.New()
		if err := tok.SetKeySalt(salt); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to verify token: %v\n", err)
			os.Exit(1)
		}

		if err := tok.Decrypt(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Token does not verify: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("auth_id: %d\n", tok.AuthID())
		fmt.Printf("expires_at: %s\n", tok.ExpirationTime().Format(time.RFC3339))

		if tok.IsExpired() {
			fmt.Println("expired: true")
			os.Exit(1)
		}
		fmt.Println("expired: false")
	},
}

func init() {
	tokenCmd.AddCommand(tokenVerifyCmd)
}
