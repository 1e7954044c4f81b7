package audit

import (
	"fmt"
	"strconv"
)

// IssueEvent records a token issuance attempt.
type IssueEvent struct {
	AuthID       int64
	Realm        string
	ClientIP     string
	TTL          int64
	Success      bool
	ErrorMessage string
}

func (e IssueEvent) MessageID() string {
	return "issue"
}

func (e IssueEvent) Message() string {
	if e.Success {
		return fmt.Sprintf("issued token for auth id %d in realm %s (ttl %ds)", e.AuthID, e.Realm, e.TTL)
	}
	msg := fmt.Sprintf("refused to issue token for auth id %d in realm %s", e.AuthID, e.Realm)
	if e.ErrorMessage != "" {
		msg += ": " + e.ErrorMessage
	}
	return msg
}

func (e IssueEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e IssueEvent) Facility() int {
	return FacilityAuthPriv
}

func (e IssueEvent) StructuredData() map[string]map[string]string {
	return map[string]map[string]string{
		SDIDSubject: {
			"auth_id": strconv.FormatInt(e.AuthID, 10),
			"realm":   e.Realm,
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
}
