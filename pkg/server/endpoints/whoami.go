package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/authseal/authseal/pkg/identity"
	"github.com/authseal/authseal/pkg/server"
	"github.com/authseal/authseal/pkg/server/middleware"
)

// WhoamiResponse describes the identity behind a verified token.
type WhoamiResponse struct {
	AuthID    int64  `json:"auth_id"`
	Realm     string `json:"realm"`
	ExpiresAt int64  `json:"expires_at"`
	ClientIP  string `json:"client_ip,omitempty"`
}

// RegisterWhoamiEndpoint registers the token introspection endpoint behind
// the authentication middleware.
func RegisterWhoamiEndpoint(s *server.Server) {
	authenticator := middleware.NewTokenAuthenticator(s.Salts, s.Config.Realm)

	protected := s.Router.PathPrefix("/whoami").Subrouter()
	protected.Use(authenticator.Middleware)
	protected.HandleFunc("", handleWhoami).Methods("GET")
}

func handleWhoami(w http.ResponseWriter, r *http.Request) {
	id, ok := identity.Get(r.Context())
	if !ok {
		// The middleware always sets the identity; reaching here means the
		// route was wired without it.
		http.Error(w, "Authentication failed", http.StatusUnauthorized)
		return
	}

	resp := WhoamiResponse{
		AuthID:    id.AuthID,
		Realm:     id.Realm,
		ExpiresAt: id.ExpiresAt.Unix(),
	}
	if id.RemoteIP != nil {
		resp.ClientIP = id.RemoteIP.String()
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}
