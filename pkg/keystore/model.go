package keystore

import "time"

// StoredSalt is a realm's salt key at rest. Salt holds the Envelope-sealed
// secret, bound to the realm name as associated data; Fingerprint is the hex
// SHA-256 of the plaintext salt, checked on every load.
type StoredSalt struct {
	Realm       string `gorm:"primaryKey"`
	Salt        []byte
	Fingerprint string
	CreatedAt   time.Time
}

func (StoredSalt) TableName() string {
	return "salt_keystore"
}
