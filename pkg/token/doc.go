// Package token implements AuthSeal's compact stateless authentication token.
//
// A token binds an auth identifier to an expiration deadline inside an
// encrypted, checksummed fixed-width record. Validity is entirely
// self-contained: the server verifies authenticity and freshness from the
// wire string, the shared salt key and the current time, with no per-token
// state.
//
// Issuing:
//
//	t := token.New()
//	err := t.SetKeySalt("s3cr3t")
//	err = t.SetAuthID(42)
//	err = t.SetExpirationDelay(3600)
//	wire, err := t.Encrypt()
//
// Verifying:
//
//	t := token.New()
//	err := t.SetKeySalt("s3cr3t")
//	if err := t.Decrypt(wire); err != nil {
//	    // forged, corrupted or undecipherable; reject
//	}
//	if t.IsExpired() {
//	    // genuine but stale; reject
//	}
//	authID := t.AuthID()
//
// Decrypt deliberately does not check freshness, so callers can log
// "valid but expired" distinctly from "invalid".
//
// The wire format is base64(IV ‖ ciphertext) where the 18-byte plaintext is
// nonce(6) ‖ authID(4 LE) ‖ expiration(4 LE) ‖ CRC-32(4 LE). The CRC is a
// tamper and wrong-key detector, not a cryptographic authenticator; treat the
// salt key accordingly.
package token
