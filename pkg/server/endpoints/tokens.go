package endpoints

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/authseal/authseal/pkg/audit"
	"github.com/authseal/authseal/pkg/server"
	"github.com/authseal/authseal/pkg/server/middleware"
	"github.com/authseal/authseal/pkg/token"
)

// IssueRequest is the body of POST /realms/{realm}/tokens
type IssueRequest struct {
	AuthID int64 `json:"auth_id"`
	TTL    int64 `json:"ttl,omitempty"`
}

// IssueResponse carries a freshly minted wire token
type IssueResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
}

// RegisterTokensEndpoint registers the token issuance endpoint
func RegisterTokensEndpoint(s *server.Server) {
	s.Router.HandleFunc("/realms/{realm}/tokens", handleIssue(s)).Methods("POST")
}

func handleIssue(s *server.Server) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		vars := mux.Vars(r)
		realm := vars["realm"]
		clientIP := middleware.ClientIP(r)

		var req IssueRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "Invalid request body", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		salt, err := s.Salts.ByRealm(realm)
		if err != nil {
			http.Error(w, "Realm not found", http.StatusNotFound)
			return
		}

		ttl := s.Config.ClampTTL(req.TTL)

		wire, expiresAt, err := issueToken(salt, req.AuthID, ttl)
		if err != nil {
			audit.Log(audit.IssueEvent{
				AuthID:       req.AuthID,
				Realm:        realm,
				ClientIP:     clientIP,
				TTL:          ttl,
				ErrorMessage: err.Error(),
			})
			http.Error(w, "Unable to issue token", http.StatusUnprocessableEntity)
			return
		}

		audit.Log(audit.IssueEvent{
			AuthID:   req.AuthID,
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

// issueToken runs the codec's encode path for a caller-supplied auth id.
func issueToken(salt string, authID, ttl int64) (string, int64, error) {
	tok := token.New()
	if err := tok.SetKeySalt(salt); err != nil {
		return "", 0, err
	}
	if err := tok.SetAuthID(authID); err != nil {
		return "", 0, err
	}
	if err := tok.SetExpirationDelay(ttl); err != nil {
		return "", 0, err
	}

	wire, err := tok.Encrypt()
	if err != nil {
		return "", 0, err
	}

	return wire, tok.ExpirationTime().Unix(), nil
}
