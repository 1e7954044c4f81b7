package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"errors"
)

const envelopeNonceSize = 12

// Envelope is the AEAD used to protect salt keys at rest. Unlike Cipher it is
// authenticated: a wrong data key or corrupted record fails loudly on open.
type Envelope interface {
	Seal(aad, plainText []byte) ([]byte, error)
	Open(aad, packedText []byte) ([]byte, error)
}

type envelope struct {
	aesgcm cipher.AEAD
}

// NewEnvelope builds an AES-GCM Envelope from a raw data key. The key must be
// 16, 24 or 32 bytes.
func NewEnvelope(dataKey []byte) (Envelope, error) {
	block, err := aes.NewCipher(dataKey)
	if err != nil {
		return nil, err
	}

	aesgcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	return &envelope{aesgcm: aesgcm}, nil
}

// Seal encrypts plainText bound to aad and packs the result as
// nonce ‖ ciphertext ‖ tag.
func (e *envelope) Seal(aad, plainText []byte) ([]byte, error) {
	// Never reuse a nonce under the same key; GCM fails catastrophically on
	// repeats.
	nonce, err := RandomBytes(envelopeNonceSize)
	if err != nil {
		return nil, err
	}

	return e.aesgcm.Seal(nonce, nonce, plainText, aad), nil
}

// Open unpacks and decrypts a record produced by Seal.
func (e *envelope) Open(aad, packedText []byte) ([]byte, error) {
	if len(packedText) < envelopeNonceSize+e.aesgcm.Overhead() {
		return nil, errors.New("sealed record is too short")
	}

	nonce := packedText[:envelopeNonceSize]
	cipherText := packedText[envelopeNonceSize:]

	return e.aesgcm.Open(nil, nonce, cipherText, aad)
}
