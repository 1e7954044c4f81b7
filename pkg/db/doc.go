// Package db provides database connectivity for the salt keystore.
//
// Connections go through gorm with the Postgres driver. The URL comes from
// the DATABASE_URL environment variable unless supplied explicitly. Schema
// migrations live under db/migrations and run via authsealctl db migrate.
package db
