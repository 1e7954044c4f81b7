// Package audit provides security audit logging for AuthSeal.
//
// Events are emitted as RFC5424 syslog lines on stdout, with structured data
// carrying the subject, outcome and client. Two events exist: IssueEvent for
// token issuance and VerifyEvent for verification outcomes. Verification
// failures record the codec's internal error kind here and nowhere else —
// HTTP responses never reveal which check failed.
//
//	audit.Log(audit.VerifyEvent{
//	    Realm:       "production",
//	    ClientIP:    clientIP,
//	    FailureKind: "integrity_mismatch",
//	})
//
// Set AUTHSEAL_AUDIT_ENABLED=false to disable.
package audit
