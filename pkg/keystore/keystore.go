package keystore

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"sync"

	"gorm.io/gorm"

	"github.com/authseal/authseal/pkg/seal"
)

// ErrUnknownRealm indicates no salt key is registered for the realm.
var ErrUnknownRealm = errors.New("unknown realm")

// KeyStore holds per-realm salt keys, Envelope-encrypted at rest and cached
// decrypted in memory after first use.
type KeyStore struct {
	db       *gorm.DB
	envelope seal.Envelope

	mu           sync.RWMutex
	saltsByRealm map[string]string
}

// NewKeyStore builds a KeyStore over db, sealing salts with dataKey.
func NewKeyStore(db *gorm.DB, dataKey []byte) (*KeyStore, error) {
	envelope, err := seal.NewEnvelope(dataKey)
	if err != nil {
		return nil, err
	}

	return &KeyStore{
		db:           db,
		envelope:     envelope,
		saltsByRealm: map[string]string{},
	}, nil
}

func fingerprint(salt string) string {
	sum := sha256.Sum256([]byte(salt))
	return hex.EncodeToString(sum[:])
}

// Register seals and stores a salt key for a realm.
func (k *KeyStore) Register(realm, salt string) error {
	if realm == "" {
		return errors.New("realm is required")
	}
	if salt == "" {
		return errors.New("salt key is required")
	}

	sealed, err := k.envelope.Seal([]byte(realm), []byte(salt))
	if err != nil {
		return err
	}

	stored := StoredSalt{
		Realm:       realm,
		Salt:        sealed,
		Fingerprint: fingerprint(salt),
	}
	if err := k.db.Create(&stored).Error; err != nil {
		return err
	}

	k.mu.Lock()
	k.saltsByRealm[realm] = salt
	k.mu.Unlock()

	return nil
}

// ByRealm returns the decrypted salt key for a realm, fetching and unsealing
// it on first use.
func (k *KeyStore) ByRealm(realm string) (string, error) {
	k.mu.RLock()
	if salt, ok := k.saltsByRealm[realm]; ok {
		k.mu.RUnlock()
		return salt, nil
	}
	k.mu.RUnlock()

	var stored StoredSalt
	if err := k.db.Where(&StoredSalt{Realm: realm}).First(&stored).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrUnknownRealm
		}
		return "", err
	}

	salt, err := k.envelope.Open([]byte(realm), stored.Salt)
	if err != nil {
		return "", err
	}

	if stored.Fingerprint != fingerprint(string(salt)) {
		return "", errors.New("salt key has bad stored fingerprint")
	}

	k.mu.Lock()
	k.saltsByRealm[realm] = string(salt)
	k.mu.Unlock()

	return string(salt), nil
}

// List returns all registered realm names.
func (k *KeyStore) List() ([]string, error) {
	var realms []string
	if err := k.db.Raw(`SELECT realm FROM salt_keystore ORDER BY realm`).Scan(&realms).Error; err != nil {
		return nil, err
	}
	return realms, nil
}

// Delete removes a realm's salt key.
func (k *KeyStore) Delete(realm string) error {
	k.mu.Lock()
	delete(k.saltsByRealm, realm)
	k.mu.Unlock()

	return k.db.Where("realm = ?", realm).Delete(&StoredSalt{}).Error
}
