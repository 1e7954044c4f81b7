// Package main provides authsealctl, the CLI for the AuthSeal token service.
//
// AuthSeal issues compact encrypted tokens that bind an auth id to an
// expiration time under a server-held salt key. Verification is stateless:
// any instance holding the same salt can verify a token without a database
// round trip.
//
// # Quick Start
//
// The server is run via the authsealctl CLI:
//
//	# Generate a data key that protects salt keys at rest
//	export AUTHSEAL_DATA_KEY="$(authsealctl data-key generate)"
//
//	# Run database migrations
//	authsealctl db migrate
//
//	# Register a salt key for a realm
//	authsealctl salt register production
//
//	# Start the server
//	authsealctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string for the salt keystore
//   - AUTHSEAL_DATA_KEY: Base64-encoded 256-bit key encrypting salts at rest
//   - AUTHSEAL_SALT_KEY: Static salt key for database-less deployments
//   - AUTHSEAL_REALM: Realm served by this instance
//   - AUTHSEAL_AUDIT_ENABLED: Enable RFC 5424 audit logging
//   - AUTHSEAL_LOG_LEVEL: Log level (debug enables SQL logging)
//   - PORT: Server port (default: 8080)
package main
