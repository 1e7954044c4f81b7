package token

import (
	"encoding/base64"
	"encoding/binary"
	"hash/crc32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/authseal/authseal/pkg/seal"
)

// encodePayload runs the encode path by hand, bypassing Token preconditions,
// so tests can craft records the builder would refuse.
func encodePayload(t *testing.T, salt string, p payload) string {
	t.Helper()

	cipher, err := seal.AESCFB(salt)
	require.NoError(t, err)

	iv := make([]byte, cipher.IVSize())
	cipherText, err := cipher.Encrypt(iv, p.pack())
	require.NoError(t, err)

	return base64.StdEncoding.EncodeToString(append(iv, cipherText...))
}

func TestPackLayout(t *testing.T) {
	p := payload{
		authID:     0x01020304,
		expiration: 0x65500000,
	}
	copy(p.nonce[:], []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11})

	buf := p.pack()
	require.Len(t, buf, packedSize)

	assert.Equal(t, []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x11}, buf[0:6])
	assert.Equal(t, uint32(0x01020304), binary.LittleEndian.Uint32(buf[6:10]))
	assert.Equal(t, uint32(0x65500000), binary.LittleEndian.Uint32(buf[10:14]))
	assert.Equal(t, crc32.ChecksumIEEE(buf[:14]), binary.LittleEndian.Uint32(buf[14:18]))
}

func TestUnpackRoundTrip(t *testing.T) {
	p := payload{
		authID:     42,
		expiration: 1700003600,
	}
	copy(p.nonce[:], []byte{1, 2, 3, 4, 5, 6})

	recovered, transmitted, err := unpack(p.pack())
	require.NoError(t, err)

	assert.Equal(t, p, recovered)
	assert.Equal(t, p.checksum(), transmitted)
}

func TestUnpackRejectsWrongWidth(t *testing.T) {
	for _, size := range []int{0, 14, 17, 19, 64} {
		_, _, err := unpack(make([]byte, size))
		assert.ErrorIs(t, err, ErrUnpackFailure, "size %d", size)
	}
}

func TestChecksumCoversEveryField(t *testing.T) {
	base := payload{authID: 42, expiration: 1700003600}
	copy(base.nonce[:], []byte{1, 2, 3, 4, 5, 6})

	nonce := base
	nonce.nonce[0] ^= 0xff
	authID := base
	authID.authID++
	expiration := base
	expiration.expiration++

	for name, mutated := range map[string]payload{
		"nonce":      nonce,
		"auth id":    authID,
		"expiration": expiration,
	} {
		assert.NotEqual(t, base.checksum(), mutated.checksum(), "%s change should move the checksum", name)
	}
}
