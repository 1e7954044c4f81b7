package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/authseal/authseal/pkg/config"
	"github.com/authseal/authseal/pkg/token"
)

// tokenIssueCmd represents the token issue command
var tokenIssueCmd = &cobra.Command{
	Use:   "issue [auth-id]",
	Short: "Issue a token for an auth id",
	Long: `Issue a token for an auth id.

The wire token is printed to STDOUT.

Example:
  authsealctl token issue 42
  authsealctl token issue 42 --ttl 600`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		var authID int64
		if _, err := fmt.Sscanf(args[0], "%d", &authID); err != nil {
			fmt.Fprintf(os.Stderr, "Invalid auth id %q\n", args[0])
			os.Exit(1)
		}

		ttl, _ := cmd.Flags().GetInt64("ttl")
		ttl = config.Get().ClampTTL(ttl)

		salt, err := resolveSalt(cmd)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to resolve salt key: %v\n", err)
			os.Exit(1)
		}

		wire, err := issueToken(salt, authID, ttl)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to issue token: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(wire)
	},
}

func issueToken(salt string, authID, ttl int64) (string, error) {
	tok := token.New()
	if err := tok.SetKeySalt(salt); err != nil {
		return "", err
	}
	if err := tok.SetAuthID(authID); err != nil {
		return "", err
	}
	if err := tok.SetExpirationDelay(ttl); err != nil {
		return "", err
	}
	return tok.Encrypt()
}

func init() {
	tokenCmd.AddCommand(tokenIssueCmd)
	tokenIssueCmd.Flags().Int64P("ttl", "t", 0, "Token lifetime in seconds (default: config default)")
}
