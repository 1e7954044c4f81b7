package token

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorKindStrings(t *testing.T) {
	assert.Equal(t, "invalid_auth_id", KindInvalidAuthID.String())
	assert.Equal(t, "integrity_mismatch", KindIntegrityMismatch.String())
	assert.Equal(t, "decryption_failure", KindDecryptionFailure.String())

	for _, kind := range KindValues() {
		parsed, err := KindString(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
}

func TestErrorIsMatchesByKind(t *testing.T) {
	wrapped := wrapError(KindDecryptionFailure, errors.New("cipher: bad things"))

	assert.ErrorIs(t, wrapped, ErrDecryptionFailure)
	assert.NotErrorIs(t, wrapped, ErrIntegrityMismatch)
	assert.Contains(t, wrapped.Error(), "decryption_failure")
	assert.Contains(t, wrapped.Error(), "bad things")
}

func TestErrorSurvivesWrapping(t *testing.T) {
	err := fmt.Errorf("verifying request token: %w", ErrIntegrityMismatch)
	assert.ErrorIs(t, err, ErrIntegrityMismatch)
}
