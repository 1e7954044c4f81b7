package seal

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"io"
)

// Cipher is the symmetric primitive the token codec encrypts with. The codec
// assumes only that Encrypt and Decrypt are correct inverses under the same
// key and IV, and that IVSize is fixed.
type Cipher interface {
	IVSize() int
	Encrypt(iv, plainText []byte) ([]byte, error)
	Decrypt(iv, cipherText []byte) ([]byte, error)
}

// Factory builds a Cipher from a shared secret.
type Factory func(secret string) (Cipher, error)

type cfbCipher struct {
	block cipher.Block
}

// AESCFB returns an AES-256-CFB Cipher keyed with the SHA-256 digest of
// secret. The digest step means any non-empty secret yields a valid key.
func AESCFB(secret string) (Cipher, error) {
	key := sha256.Sum256([]byte(secret))
	block, err := aes.NewCipher(key[:])
	if err != nil {
		return nil, err
	}

	return &cfbCipher{block: block}, nil
}

func (c *cfbCipher) IVSize() int {
	return aes.BlockSize
}

func (c *cfbCipher) Encrypt(iv, plainText []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, errors.New("iv size mismatch")
	}

	cipherText := make([]byte, len(plainText))
	cipher.NewCFBEncrypter(c.block, iv).XORKeyStream(cipherText, plainText)
	return cipherText, nil
}

func (c *cfbCipher) Decrypt(iv, cipherText []byte) ([]byte, error) {
	if len(iv) != aes.BlockSize {
		return nil, errors.New("iv size mismatch")
	}

	plainText := make([]byte, len(cipherText))
	cipher.NewCFBDecrypter(c.block, iv).XORKeyStream(plainText, cipherText)
	return plainText, nil
}

// RandomBytes returns size bytes from the process-wide secure random source.
func RandomBytes(size int) ([]byte, error) {
	value := make([]byte, size)
	if _, err := io.ReadFull(rand.Reader, value); err != nil {
		return nil, err
	}

	return value, nil
}
