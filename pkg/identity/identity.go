package identity

import (
	"context"
	"net"
	"time"

	"github.com/authseal/authseal/pkg/token"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Identity.
	Key ContextKey = "identity"
)

// Identity represents the authenticated identity for a request.
// It combines verified token fields with request-specific context.
type Identity struct {
	// Verified token fields
	AuthID    int64
	Realm     string
	ExpiresAt time.Time

	// Request context
	RemoteIP net.IP

	// The verified token
	Token *token.Token
}

// FromToken creates an Identity from a verified token and realm.
func FromToken(tok *token.Token, realm string) *Identity {
	return &Identity{
		AuthID:    tok.AuthID(),
		Realm:     realm,
		ExpiresAt: tok.ExpirationTime(),
		Token:     tok,
	}
}

// WithRemoteIP sets the remote IP address.
func (i *Identity) WithRemoteIP(ip net.IP) *Identity {
	i.RemoteIP = ip
	return i
}

// Get retrieves Identity from context.
func Get(ctx context.Context) (*Identity, bool) {
	id, ok := ctx.Value(Key).(*Identity)
	return id, ok
}

// Set stores Identity in context.
func Set(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, Key, id)
}
