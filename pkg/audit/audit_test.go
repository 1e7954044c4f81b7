package audit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogIssueEvent(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(IssueEvent{
		AuthID:   42,
		Realm:    "production",
		ClientIP: "10.0.0.1",
		TTL:      3600,
		Success:  true,
	})

	line := buf.String()

	// PRI = facility*8 + severity = 10*8 + 6
	assert.True(t, strings.HasPrefix(line, "<86>1 "), "unexpected prefix: %s", line)
	assert.Contains(t, line, " issue ")
	assert.Contains(t, line, `auth_id="42"`)
	assert.Contains(t, line, `realm="production"`)
	assert.Contains(t, line, `ip="10.0.0.1"`)
	assert.Contains(t, line, "issued token for auth id 42")
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestLogVerifyFailureOmitsSubject(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(VerifyEvent{
		Realm:       "production",
		ClientIP:    "10.0.0.1",
		FailureKind: "integrity_mismatch",
	})

	line := buf.String()

	// Failure severity is warning: 10*8 + 4
	assert.True(t, strings.HasPrefix(line, "<84>1 "), "unexpected prefix: %s", line)
	assert.Contains(t, line, `kind="integrity_mismatch"`)
	assert.NotContains(t, line, "auth_id", "unverified auth id must not be logged")
}

func TestLogVerifyExpired(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger()
	logger.SetWriter(&buf)

	logger.Log(VerifyEvent{
		AuthID:   42,
		Realm:    "production",
		Expired:  true,
		ClientIP: "10.0.0.1",
	})

	line := buf.String()
	assert.Contains(t, line, "rejected expired token for auth id 42")
	assert.Contains(t, line, `expired="true"`)
}

func TestEscapeSDValue(t *testing.T) {
	assert.Equal(t, `"plain"`, escapeSDValue("plain"))
	assert.Equal(t, `"a\"b"`, escapeSDValue(`a"b`))
	assert.Equal(t, `"a\\b"`, escapeSDValue(`a\b`))
	assert.Equal(t, `"a\]b"`, escapeSDValue("a]b"))
}
