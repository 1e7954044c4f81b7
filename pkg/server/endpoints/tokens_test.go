package endpoints

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authseal/authseal/pkg/token"
)

func TestIssueEndpoint(t *testing.T) {
	srv := newTestServer(t)
	RegisterTokensEndpoint(srv)

	t.Run("issues a verifiable token", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/realms/production/tokens",
			strings.NewReader(`{"auth_id": 42, "ttl": 600}`))
		w := httptest.NewRecorder()

		srv.Router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp IssueResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

		// The issued token must round-trip through the codec under the same
		// salt.
		tok := token.New()
		require.NoError(t, tok.SetKeySalt(testSalt))
		require.NoError(t, tok.Decrypt(resp.Token))
		assert.Equal(t, int64(42), tok.AuthID())
		assert.False(t, tok.IsExpired())
		assert.Equal(t, tok.ExpirationTime().Unix(), resp.ExpiresAt)
		assert.InDelta(t, time.Now().Add(600*time.Second).Unix(), resp.ExpiresAt, 5)
	})

	t.Run("falls back to the default ttl", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/realms/production/tokens",
			strings.NewReader(`{"auth_id": 42}`))
		w := httptest.NewRecorder()

		srv.Router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp IssueResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, time.Now().Add(3600*time.Second).Unix(), resp.ExpiresAt, 5)
	})

	t.Run("caps the requested ttl", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/realms/production/tokens",
			strings.NewReader(`{"auth_id": 42, "ttl": 9999999}`))
		w := httptest.NewRecorder()

		srv.Router.ServeHTTP(w, req)

		require.Equal(t, http.StatusCreated, w.Code)

		var resp IssueResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.InDelta(t, time.Now().Add(86400*time.Second).Unix(), resp.ExpiresAt, 5)
	})

	t.Run("rejects a non-positive auth id", func(t *testing.T) {
		for _, body := range []string{`{"auth_id": 0}`, `{"auth_id": -7}`} {
			req := httptest.NewRequest("POST", "/realms/production/tokens",
				strings.NewReader(body))
			w := httptest.NewRecorder()

			srv.Router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		}
	})

	t.Run("rejects an unknown realm", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/realms/staging/tokens",
			strings.NewReader(`{"auth_id": 42}`))
		w := httptest.NewRecorder()

		srv.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("rejects a malformed body", func(t *testing.T) {
		req := httptest.NewRequest("POST", "/realms/production/tokens",
			strings.NewReader(`{`))
		w := httptest.NewRecorder()

		srv.Router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
