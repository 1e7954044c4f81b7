package server

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/authseal/authseal/pkg/config"
)

// SaltSource resolves the shared salt key for a realm. The keystore satisfies
// it; StaticSalts covers deployments without a database.
type SaltSource interface {
	ByRealm(realm string) (string, error)
}

// StaticSalts serves a single realm's salt from configuration.
type StaticSalts struct {
	Realm string
	Salt  string
}

func (s StaticSalts) ByRealm(realm string) (string, error) {
	if realm != s.Realm {
		return "", fmt.Errorf("unknown realm %q", realm)
	}
	return s.Salt, nil
}

type Server struct {
	Salts  SaltSource
	Config *config.Config
	Router *mux.Router
	srv    *http.Server
}

func NewServer(
	salts SaltSource,
	cfg *config.Config,
	host string,
	port string,
) *Server {

	router := mux.NewRouter().UseEncodedPath()
	srv := &http.Server{
		Handler: handlers.LoggingHandler(os.Stdout, router),
		Addr:    host + ":" + port,
		// Good practice: enforce timeouts for servers you create!
		WriteTimeout: 15 * time.Second,
		ReadTimeout:  15 * time.Second,
	}

	return &Server{
		Salts:  salts,
		Config: cfg,
		Router: router,
		srv:    srv,
	}
}

func (s Server) Start() error {
	return s.srv.ListenAndServe()
}
