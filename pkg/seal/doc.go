// Package seal provides the symmetric cryptography used by AuthSeal.
//
// Two primitives live here. Cipher is the length-preserving cipher the token
// codec encrypts its packed record with; the codec treats it as a black box
// that satisfies decrypt(encrypt(x)) == x under a matching key and IV, with a
// fixed, known IV size. Envelope is an AEAD used to protect salt keys at rest
// in the keystore.
//
// The production Cipher is AES-256-CFB keyed with the SHA-256 digest of the
// shared salt key:
//
//	cipher, err := seal.AESCFB("s3cr3t")
//	iv, _ := seal.RandomBytes(cipher.IVSize())
//	ciphertext, err := cipher.Encrypt(iv, plaintext)
//
// CFB is deliberately non-authenticated: token integrity is carried by a
// checksum inside the encrypted record, and decryption under a wrong key must
// produce garbage rather than a cipher-level error.
package seal
