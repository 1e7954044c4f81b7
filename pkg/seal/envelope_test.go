package seal

import (
	"bytes"
	"testing"
)

func testDataKey() []byte {
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	return key
}

func TestEnvelopeSealOpen(t *testing.T) {
	env, err := NewEnvelope(testDataKey())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	aad := []byte("production")
	plainText := []byte("the salt key")

	sealed, err := env.Seal(aad, plainText)
	if err != nil {
		t.Fatalf("seal failed: %v", err)
	}

	opened, err := env.Open(aad, sealed)
	if err != nil {
		t.Fatalf("open failed: %v", err)
	}

	if !bytes.Equal(opened, plainText) {
		t.Errorf("round trip mismatch: %q != %q", opened, plainText)
	}
}

func TestEnvelopeRejectsWrongAAD(t *testing.T) {
	env, _ := NewEnvelope(testDataKey())

	sealed, _ := env.Seal([]byte("production"), []byte("the salt key"))

	if _, err := env.Open([]byte("staging"), sealed); err == nil {
		t.Error("expected open to fail under a different aad")
	}
}

func TestEnvelopeRejectsTampering(t *testing.T) {
	env, _ := NewEnvelope(testDataKey())

	sealed, _ := env.Seal([]byte("production"), []byte("the salt key"))
	sealed[len(sealed)-1] ^= 0x01

	if _, err := env.Open([]byte("production"), sealed); err == nil {
		t.Error("expected open to fail on a flipped bit")
	}
}

func TestEnvelopeRejectsShortRecord(t *testing.T) {
	env, _ := NewEnvelope(testDataKey())

	if _, err := env.Open([]byte("production"), []byte("short")); err == nil {
		t.Error("expected open to fail on a truncated record")
	}
}

func TestNewEnvelopeRejectsBadKeySize(t *testing.T) {
	if _, err := NewEnvelope(make([]byte, 15)); err == nil {
		t.Error("expected error for a 15-byte key")
	}
}
