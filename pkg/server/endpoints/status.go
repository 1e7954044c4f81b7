package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/authseal/authseal/pkg/server"
)

// StatusResponse reports liveness for health checks.
type StatusResponse struct {
	Status string `json:"status"`
	Realm  string `json:"realm"`
}

// RegisterStatusEndpoint registers the unauthenticated health endpoint.
func RegisterStatusEndpoint(s *server.Server) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(StatusResponse{
			Status: "ok",
			Realm:  s.Config.Realm,
		})
	}

	s.Router.HandleFunc("/", handler).Methods("GET")
	s.Router.HandleFunc("/status", handler).Methods("GET")
}
