package endpoints

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/authseal/authseal/pkg/audit"
	"github.com/authseal/authseal/pkg/config"
	"github.com/authseal/authseal/pkg/server"
	"github.com/authseal/authseal/pkg/server/middleware"
)

// ExchangeRequest is the body of POST /realms/{realm}/exchange
type ExchangeRequest struct {
	JWT string `json:"jwt"`
}

// RegisterExchangeEndpoint registers the JWT exchange endpoint. Callers
// holding an HS256 JWT from the configured issuer trade it for a compact
// token carrying the auth id claim.
func RegisterExchangeEndpoint(s *server.Server) {
	s.Router.HandleFunc("/realms/{realm}/exchange", handleExchange(s)).Methods("POST")
}

func handleExchange(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		realm := vars["realm"]
		clientIP := middleware.ClientIP(r)

		cfg := s.Config
		secret := config.JWTExchangeSecret()
		if cfg.JWTExchangeIssuer == "" || secret == "" {
			http.Error(w, "Exchange is not enabled", http.StatusNotFound)
			return
		}

		var req ExchangeRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		authID, err := authIDFromJWT(req.JWT, secret, cfg.JWTExchangeIssuer, cfg.JWTExchangeClaim)
		if err != nil {
			audit.Log(audit.IssueEvent{
				Realm:        realm,
				ClientIP:     clientIP,
				ErrorMessage: "jwt exchange: " + err.Error(),
			})
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte("Authentication failed"))
			return
		}

		salt, err := s.Salts.ByRealm(realm)
		if err != nil {
			http.Error(w, "Realm not found", http.StatusNotFound)
			return
		}

		ttl := cfg.DefaultTokenTTL
		wire, expiresAt, err := issueToken(salt, authID, ttl)
		if err != nil {
			audit.Log(audit.IssueEvent{
				AuthID:       authID,
				Realm:        realm,
				ClientIP:     clientIP,
				TTL:          ttl,
				ErrorMessage: err.Error(),
			})
			http.Error(w, "Unable to issue token", http.StatusUnprocessableEntity)
			return
		}

		audit.Log(audit.IssueEvent{
			AuthID:   authID,
			Realm:    realm,
			ClientIP: clientIP,
			TTL:      ttl,
			Success:  true,
		})

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(IssueResponse{Token: wire, ExpiresAt: expiresAt})
	}
}

// authIDFromJWT validates an HS256 JWT against the exchange settings and
// extracts the numeric auth id claim.
func authIDFromJWT(tokenString, secret, issuer, claim string) (int64, error) {
	parsed, err := jwt.Parse(
		tokenString,
		func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
			}
			return []byte(secret), nil
		},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{"HS256"}),
	)
	if err != nil {
		return 0, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return 0, fmt.Errorf("unexpected claims type")
	}

	// encoding/json decodes JWT numbers as float64
	value, ok := claims[claim].(float64)
	if !ok {
		return 0, fmt.Errorf("missing or non-numeric %q claim", claim)
	}

	return int64(value), nil
}
