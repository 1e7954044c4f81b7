package endpoints

import (
	"github.com/authseal/authseal/pkg/server"
)

// RegisterAll registers all API endpoints on the server
func RegisterAll(srv *server.Server) {
	RegisterStatusEndpoint(srv)
	RegisterTokensEndpoint(srv)
	RegisterExchangeEndpoint(srv)
	RegisterWhoamiEndpoint(srv)
}
