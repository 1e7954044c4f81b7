// Package config provides configuration management for the AuthSeal server.
//
// Configuration is loaded from an optional YAML file and overridden by
// environment variables; each attribute remembers which source supplied it.
//
// # Key Configuration Options
//
//   - PORT: HTTP listen port
//   - DATABASE_URL: Postgres connection URL for the salt keystore
//   - AUTHSEAL_REALM: realm served by this instance
//   - AUTHSEAL_DATA_KEY: base64 key protecting salt keys at rest (env only)
//   - AUTHSEAL_SALT_KEY: shared salt key for keystore-less deployments (env only)
//   - AUTHSEAL_DEFAULT_TOKEN_TTL / AUTHSEAL_MAX_TOKEN_TTL: token lifetimes
//   - AUTHSEAL_JWT_EXCHANGE_SECRET / _ISSUER / _CLAIM: JWT exchange settings
//   - AUTHSEAL_CONFIG_PATH: directory holding authseal.yml
//
// Watch keeps the global config current while the server runs.
package config
