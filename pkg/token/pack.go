package token

import (
	"encoding/binary"
	"hash/crc32"
)

const (
	nonceSize  = 6
	recordSize = nonceSize + 4 + 4 // nonce ‖ authID ‖ expiration
	packedSize = recordSize + 4    // record ‖ CRC-32
)

// payload is the fixed-width plaintext record carried inside a wire token.
// The nonce is payload-local entropy so two tokens with identical fields
// never share a plaintext; it is not a field of the Token itself.
type payload struct {
	nonce      [nonceSize]byte
	authID     uint32
	expiration uint32
}

func (p payload) record() []byte {
	buf := make([]byte, recordSize)
	copy(buf, p.nonce[:])
	binary.LittleEndian.PutUint32(buf[nonceSize:], p.authID)
	binary.LittleEndian.PutUint32(buf[nonceSize+4:], p.expiration)
	return buf
}

// checksum is the CRC-32 over the packed record. It detects tampering,
// corruption and wrong-key decryption; it is not a cryptographic MAC.
func (p payload) checksum() uint32 {
	return crc32.ChecksumIEEE(p.record())
}

// pack serializes the record and appends its checksum, little-endian
// throughout. The result is the full 18-byte plaintext.
func (p payload) pack() []byte {
	record := p.record()
	buf := make([]byte, packedSize)
	copy(buf, record)
	binary.LittleEndian.PutUint32(buf[recordSize:], crc32.ChecksumIEEE(record))
	return buf
}

// unpack splits a decrypted plaintext into the record fields and the
// transmitted checksum. The caller compares the checksum against a recompute.
func unpack(buf []byte) (payload, uint32, error) {
	if len(buf) != packedSize {
		return payload{}, 0, ErrUnpackFailure
	}

	var p payload
	copy(p.nonce[:], buf[:nonceSize])
	p.authID = binary.LittleEndian.Uint32(buf[nonceSize:])
	p.expiration = binary.LittleEndian.Uint32(buf[nonceSize+4:])

	return p, binary.LittleEndian.Uint32(buf[recordSize:]), nil
}
