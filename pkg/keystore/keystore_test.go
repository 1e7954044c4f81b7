package keystore

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/authseal/authseal/pkg/seal"
)

func newMockStore(t *testing.T) (*KeyStore, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{Conn: sqlDB}),
		&gorm.Config{Logger: logger.Default.LogMode(logger.Silent)},
	)
	require.NoError(t, err)

	dataKey := make([]byte, 32)
	store, err := NewKeyStore(gormDB, dataKey)
	require.NoError(t, err)

	return store, mock
}

func sealedSalt(t *testing.T, realm, salt string) []byte {
	t.Helper()

	dataKey := make([]byte, 32)
	envelope, err := seal.NewEnvelope(dataKey)
	require.NoError(t, err)

	sealed, err := envelope.Seal([]byte(realm), []byte(salt))
	require.NoError(t, err)
	return sealed
}

func TestByRealm(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"realm", "salt", "fingerprint"}).
		AddRow("production", sealedSalt(t, "production", "s3cr3t"), fingerprint("s3cr3t"))
	mock.ExpectQuery(`SELECT \* FROM "salt_keystore"`).
		WithArgs("production").
		WillReturnRows(rows)

	salt, err := store.ByRealm("production")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", salt)

	// Second lookup is served from cache: no further query expected.
	salt, err = store.ByRealm("production")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", salt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestByRealmUnknown(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(`SELECT \* FROM "salt_keystore"`).
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows([]string{"realm", "salt", "fingerprint"}))

	_, err := store.ByRealm("missing")
	assert.ErrorIs(t, err, ErrUnknownRealm)
}

func TestByRealmRejectsBadFingerprint(t *testing.T) {
	store, mock := newMockStore(t)

	rows := sqlmock.NewRows([]string{"realm", "salt", "fingerprint"}).
		AddRow("production", sealedSalt(t, "production", "s3cr3t"), fingerprint("different"))
	mock.ExpectQuery(`SELECT \* FROM "salt_keystore"`).
		WithArgs("production").
		WillReturnRows(rows)

	_, err := store.ByRealm("production")
	assert.ErrorContains(t, err, "fingerprint")
}

func TestByRealmRejectsWrongDataKey(t *testing.T) {
	store, mock := newMockStore(t)

	// Sealed under a different data key than the store's.
	otherKey := make([]byte, 32)
	otherKey[0] = 0xff
	envelope, err := seal.NewEnvelope(otherKey)
	require.NoError(t, err)
	sealed, err := envelope.Seal([]byte("production"), []byte("s3cr3t"))
	require.NoError(t, err)

	rows := sqlmock.NewRows([]string{"realm", "salt", "fingerprint"}).
		AddRow("production", sealed, fingerprint("s3cr3t"))
	mock.ExpectQuery(`SELECT \* FROM "salt_keystore"`).
		WithArgs("production").
		WillReturnRows(rows)

	_, err = store.ByRealm("production")
	assert.Error(t, err)
}

func TestRegister(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "salt_keystore"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, store.Register("production", "s3cr3t"))

	// Registration caches the salt.
	salt, err := store.ByRealm("production")
	require.NoError(t, err)
	assert.Equal(t, "s3cr3t", salt)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterValidation(t *testing.T) {
	store, _ := newMockStore(t)

	assert.Error(t, store.Register("", "s3cr3t"))
	assert.Error(t, store.Register("production", ""))
}
