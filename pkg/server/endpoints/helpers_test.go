package endpoints

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/authseal/authseal/pkg/audit"
	"github.com/authseal/authseal/pkg/config"
	"github.com/authseal/authseal/pkg/server"
	"github.com/authseal/authseal/pkg/token"
)

const testSalt = "s3cr3t"

func newTestServer(t *testing.T) *server.Server {
	t.Helper()
	audit.SetEnabled(false)

	cfg := &config.Config{
		Port:             "8080",
		Realm:            "production",
		DefaultTokenTTL:  3600,
		MaxTokenTTL:      86400,
		JWTExchangeClaim: "auth_id",
	}
	salts := server.StaticSalts{Realm: "production", Salt: testSalt}

	return server.NewServer(salts, cfg, "", cfg.Port)
}

func issueTestToken(t *testing.T, authID, delay int64) string {
	t.Helper()

	tok := token.New()
	require.NoError(t, tok.SetKeySalt(testSalt))
	require.NoError(t, tok.SetAuthID(authID))
	require.NoError(t, tok.SetExpirationDelay(delay))

	wire, err := tok.Encrypt()
	require.NoError(t, err)
	return wire
}
