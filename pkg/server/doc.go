// Package server provides the HTTP surface over the token codec.
//
// The server issues tokens, exchanges third-party JWTs for tokens and
// verifies tokens presented on protected endpoints. Salt keys come from a
// SaltSource: either the database-backed keystore or a static env-configured
// salt. Per the error-handling policy, responses never reveal which
// verification check failed; the audit log carries that detail.
package server
