package audit

import (
	"fmt"
	"strconv"
)

// VerifyEvent records a token verification outcome. FailureKind carries the
// codec's error kind for internal logs; HTTP responses stay uniform.
type VerifyEvent struct {
	AuthID      int64
	Realm       string
	ClientIP    string
	Success     bool
	Expired     bool
	FailureKind string
}

func (e VerifyEvent) MessageID() string {
	return "verify"
}

func (e VerifyEvent) Message() string {
	switch {
	case e.Success:
		return fmt.Sprintf("verified token for auth id %d in realm %s", e.AuthID, e.Realm)
	case e.Expired:
		return fmt.Sprintf("rejected expired token for auth id %d in realm %s", e.AuthID, e.Realm)
	default:
		return fmt.Sprintf("rejected token in realm %s: %s", e.Realm, e.FailureKind)
	}
}

func (e VerifyEvent) Severity() Severity {
	if e.Success {
		return SeverityInfo
	}
	return SeverityWarning
}

func (e VerifyEvent) Facility() int {
	return FacilityAuthPriv
}

func (e VerifyEvent) StructuredData() map[string]map[string]string {
	sd := map[string]map[string]string{
		SDIDAuth: {
			"success": strconv.FormatBool(e.Success),
			"expired": strconv.FormatBool(e.Expired),
		},
		SDIDClient: {
			"ip": e.ClientIP,
		},
	}
	if e.Success || e.Expired {
		sd[SDIDSubject] = map[string]string{
			"auth_id": strconv.FormatInt(e.AuthID, 10),
			"realm":   e.Realm,
		}
	}
	if e.FailureKind != "" {
		sd[SDIDAuth]["kind"] = e.FailureKind
	}
	return sd
}
