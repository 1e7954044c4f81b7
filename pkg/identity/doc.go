// Package identity provides authenticated identity management for requests.
//
// This package separates the authenticated identity from raw token
// verification. An Identity combines the verified token fields (auth ID,
// realm, expiry) with request-specific context such as the client IP.
//
// # Basic Usage
//
//	// Create identity from a verified token
//	id := identity.FromToken(verifiedToken, realm)
//
//	// Add request context
//	id.WithRemoteIP(clientIP)
//
//	// Store in request context
//	ctx = identity.Set(ctx, id)
//
//	// Retrieve from context
//	id, ok := identity.Get(ctx)
package identity
