// Package keystore stores per-realm salt keys encrypted at rest.
//
// Each realm's shared salt key is sealed with the server data key (AES-GCM,
// realm name as associated data) before it touches the database, and its
// SHA-256 fingerprint is checked on every load. Decrypted salts are cached in
// memory so verification does not hit the database per request.
package keystore
