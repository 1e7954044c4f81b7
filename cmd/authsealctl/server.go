package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/authseal/authseal/pkg/config"
	"github.com/authseal/authseal/pkg/db"
	"github.com/authseal/authseal/pkg/keystore"
	"github.com/authseal/authseal/pkg/server"
	"github.com/authseal/authseal/pkg/server/endpoints"
)

func defaultBindAddress() string {
	if addr := os.Getenv("BIND_ADDRESS"); addr != "" {
		return addr
	}
	return "0.0.0.0"
}

// serverCmd represents the server command
var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run the AuthSeal token server",
	Long: `Run the AuthSeal token server.

With DATABASE_URL set, salt keys come from the database keystore and
AUTHSEAL_DATA_KEY is required to unseal them. Without a database, set
AUTHSEAL_SALT_KEY to serve a single realm from a static salt.

By default, database migrations are run on startup. Use --no-migrate to skip.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		salts, err := buildSaltSource(cmd, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		host, _ := cmd.Flags().GetString("bind-address")
		port, _ := cmd.Flags().GetString("port")
		if port == "" {
			port = cfg.Port
		}

		s := server.NewServer(salts, cfg, host, port)
		endpoints.RegisterAll(s)

		stop := make(chan struct{})
		defer close(stop)
		go func() {
			err := config.Watch(func(next *config.Config) {
				log.Printf("configuration reloaded (realm=%s)", next.Realm)
				s.Config = next
			}, stop)
			if err != nil {
				log.Printf("config watch unavailable: %v", err)
			}
		}()

		log.Printf("Running server at http://%s:%s...\n", host, port)
		log.Fatal(s.Start())
	},
}

func buildSaltSource(cmd *cobra.Command, cfg *config.Config) (server.SaltSource, error) {
	if db.URL() == "" && cfg.DatabaseURL == "" {
		salt := config.SaltKey()
		if salt == "" {
			return nil, fmt.Errorf("either DATABASE_URL or AUTHSEAL_SALT_KEY is required")
		}
		return server.StaticSalts{Realm: cfg.Realm, Salt: salt}, nil
	}

	noMigrate, _ := cmd.Flags().GetBool("no-migrate")
	if !noMigrate {
		log.Println("Running database migrations...")
		if err := runMigrations(); err != nil {
			return nil, fmt.Errorf("migration failed: %w", err)
		}
	}

	dataKey, err := config.DataKey()
	if err != nil {
		return nil, err
	}

	database, err := db.Connect(db.Config{URL: cfg.DatabaseURL})
	if err != nil {
		return nil, err
	}

	return keystore.NewKeyStore(database, dataKey)
}

func init() {
	rootCmd.AddCommand(serverCmd)

	serverCmd.Flags().StringP("port", "p", "", "server listen port (default: config port)")
	serverCmd.Flags().StringP("bind-address", "b", defaultBindAddress(), "server bind address")
	serverCmd.Flags().Bool("no-migrate", false, "skip running database migrations on start")
}
