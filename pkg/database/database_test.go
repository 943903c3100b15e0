package database

import (
	"testing"

	"go-kasir-toko/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pakai DryRun supaya bisa memeriksa SQL yang dihasilkan tanpa server
// Postgres sungguhan. sql.Open milik pgx baru konek saat query pertama.
func newDryRunPostgres(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN: "host=localhost user=kasir dbname=kasir sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestLockForUpdate_PostgresPakaiRowLock(t *testing.T) {
	db := newDryRunPostgres(t)

	var produk model.Produk
	tx := LockForUpdate(db).First(&produk, "id = ?", uuid.New())

	assert.Contains(t, tx.Statement.SQL.String(), "FOR UPDATE")
}

func TestLockForUpdate_SQLiteTanpaRowLock(t *testing.T) {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// SQLite tidak mengenal FOR UPDATE, klausanya harus dilewati
	var produk model.Produk
	tx := LockForUpdate(db).First(&produk, "id = ?", uuid.New())

	assert.NotContains(t, tx.Statement.SQL.String(), "FOR UPDATE")
}
