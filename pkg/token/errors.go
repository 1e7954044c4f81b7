package token

//go:generate go tool enumer -type Kind -trimprefix Kind -transform snake -output kind.gen.go

// Kind classifies a codec failure.
type Kind int

const (
	KindInvalidAuthID Kind = iota + 1
	KindInvalidExpirationDelay
	KindInvalidExpirationTime
	KindEmptySaltKey
	KindMissingSaltKey
	KindAlreadyExpired
	KindMalformedToken
	KindUnpackFailure
	KindIntegrityMismatch
	KindDecryptionFailure
)

// Error is a typed codec failure. Internal code and tests match on the kind
// with errors.Is against the package sentinels; external callers should treat
// every failure uniformly as "reject this token" and not surface the kind.
type Error struct {
	Kind  Kind
	cause error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Kind.String() + ": " + e.cause.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Is reports kind equality, so a wrapped sentinel still matches.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func wrapError(kind Kind, cause error) *Error {
	return &Error{Kind: kind, cause: cause}
}

var (
	ErrInvalidAuthID          = &Error{Kind: KindInvalidAuthID}
	ErrInvalidExpirationDelay = &Error{Kind: KindInvalidExpirationDelay}
	ErrInvalidExpirationTime  = &Error{Kind: KindInvalidExpirationTime}
	ErrEmptySaltKey           = &Error{Kind: KindEmptySaltKey}
	ErrMissingSaltKey         = &Error{Kind: KindMissingSaltKey}
	ErrAlreadyExpired         = &Error{Kind: KindAlreadyExpired}
	ErrMalformedToken         = &Error{Kind: KindMalformedToken}
	ErrUnpackFailure          = &Error{Kind: KindUnpackFailure}
	ErrIntegrityMismatch      = &Error{Kind: KindIntegrityMismatch}
	ErrDecryptionFailure      = &Error{Kind: KindDecryptionFailure}
)
