package token

import (
	"crypto/rand"
	"encoding/base64"
	"io"
	"math"
	"time"

	"github.com/authseal/authseal/pkg/seal"
)

// Clock supplies the current time. Injected so nonce- and
// timestamp-dependent behavior is deterministic under test.
type Clock func() time.Time

// Token binds an auth identifier to an expiration deadline under a shared
// salt key. An instance is single-use per direction: populate the fields and
// Encrypt to issue, or set the salt and Decrypt to verify. Instances share no
// state, so concurrent use of independent Tokens needs no locking.
type Token struct {
	authID     uint32
	expiration int64
	keySalt    string

	clock  Clock
	random io.Reader
	cipher seal.Factory
}

// Option overrides one of the Token's collaborators.
type Option func(*Token)

// WithClock replaces the wall clock.
func WithClock(clock Clock) Option {
	return func(t *Token) { t.clock = clock }
}

// WithRandom replaces the secure random source used for nonce and IV.
func WithRandom(r io.Reader) Option {
	return func(t *Token) { t.random = r }
}

// WithCipher replaces the symmetric cipher factory.
func WithCipher(factory seal.Factory) Option {
	return func(t *Token) { t.cipher = factory }
}

// New returns an empty Token wired to the real clock, crypto/rand and the
// AES-CFB cipher.
func New(opts ...Option) *Token {
	t := &Token{
		clock:  time.Now,
		random: rand.Reader,
		cipher: seal.AESCFB,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// SetAuthID stores the auth identifier. Fails with ErrInvalidAuthID unless
// 0 < id <= math.MaxUint32; state is untouched on failure.
func (t *Token) SetAuthID(id int64) error {
	if id <= 0 || id > math.MaxUint32 {
		return ErrInvalidAuthID
	}
	t.authID = uint32(id)
	return nil
}

// SetExpirationDelay computes the expiration deadline as now + seconds.
// Fails with ErrInvalidExpirationDelay for a non-positive delay.
func (t *Token) SetExpirationDelay(seconds int64) error {
	if seconds <= 0 {
		return ErrInvalidExpirationDelay
	}
	return t.setExpirationTime(t.clock().Unix() + seconds)
}

// setExpirationTime stores an absolute deadline. Only the decode path and
// SetExpirationDelay reach it; callers cannot forge an arbitrary deadline.
func (t *Token) setExpirationTime(at int64) error {
	if at <= 0 || at > math.MaxUint32 {
		return ErrInvalidExpirationTime
	}
	t.expiration = at
	return nil
}

// SetKeySalt stores the shared secret the cipher key derives from. The salt
// is never embedded in the payload. Fails with ErrEmptySaltKey.
func (t *Token) SetKeySalt(key string) error {
	if key == "" {
		return ErrEmptySaltKey
	}
	t.keySalt = key
	return nil
}

// AuthID returns the auth identifier, zero until set or recovered.
func (t *Token) AuthID() int64 {
	return int64(t.authID)
}

// ExpirationTime returns the absolute deadline, zero until set or recovered.
func (t *Token) ExpirationTime() time.Time {
	if t.expiration == 0 {
		return time.Time{}
	}
	return time.Unix(t.expiration, 0)
}

// IsExpired reports whether the deadline has passed. Pure; Decrypt never
// calls it, freshness is the caller's policy.
func (t *Token) IsExpired() bool {
	return t.expiration < t.clock().Unix()
}

// Encrypt produces the wire token for a fully populated Token:
// base64(IV ‖ cipher(nonce ‖ authID ‖ expiration ‖ CRC-32)).
//
// A fresh nonce and IV are drawn per call, so repeated encodes of the same
// fields yield different wire tokens. Minting a token whose deadline already
// passed fails with ErrAlreadyExpired rather than producing a dead token.
func (t *Token) Encrypt() (string, error) {
	if t.keySalt == "" {
		return "", ErrMissingSaltKey
	}
	if t.authID == 0 {
		return "", ErrInvalidAuthID
	}
	if t.expiration <= 0 {
		return "", ErrInvalidExpirationTime
	}
	if t.IsExpired() {
		return "", ErrAlreadyExpired
	}

	p := payload{
		authID:     t.authID,
		expiration: uint32(t.expiration),
	}
	if _, err := io.ReadFull(t.random, p.nonce[:]); err != nil {
		return "", err
	}

	cipher, err := t.cipher(t.keySalt)
	if err != nil {
		return "", err
	}

	iv := make([]byte, cipher.IVSize())
	if _, err := io.ReadFull(t.random, iv); err != nil {
		return "", err
	}

	cipherText, err := cipher.Encrypt(iv, p.pack())
	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(append(iv, cipherText...)), nil
}

// Decrypt recovers and validates authID and expiration from a wire token,
// mutating the Token on success. Failures are typed per kind; any failure
// means "reject this token". Decrypt does not check freshness — call
// IsExpired afterwards, so genuine-but-stale is distinguishable from forged.
func (t *Token) Decrypt(wire string) error {
	if t.keySalt == "" {
		return ErrMissingSaltKey
	}

	raw, err := base64.StdEncoding.DecodeString(wire)
	if err != nil {
		return wrapError(KindMalformedToken, err)
	}

	cipher, err := t.cipher(t.keySalt)
	if err != nil {
		return err
	}

	ivSize := cipher.IVSize()
	if len(raw) < ivSize+packedSize {
		return ErrMalformedToken
	}

	plainText, err := cipher.Decrypt(raw[:ivSize], raw[ivSize:])
	if err != nil {
		return wrapError(KindDecryptionFailure, err)
	}

	p, transmitted, err := unpack(plainText)
	if err != nil {
		return err
	}

	// Sole tamper detector; also catches decryption under the wrong salt.
	if p.checksum() != transmitted {
		return ErrIntegrityMismatch
	}

	if p.authID == 0 {
		return ErrInvalidAuthID
	}
	if p.expiration == 0 {
		return ErrInvalidExpirationTime
	}

	t.authID = p.authID
	return t.setExpirationTime(int64(p.expiration))
}
