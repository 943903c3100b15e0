package database

import (
	"log"
	"os"
	"time"

	"go-kasir-toko/internal/config"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// LockForUpdate menambahkan klausa SELECT ... FOR UPDATE pada dialek yang
// mendukungnya (Postgres). SQLite tidak punya row lock dan sudah
// menyerialisasi penulisan lewat transaksinya sendiri, jadi dilewati.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// ConnectDB membuka koneksi database sesuai konfigurasi:
// Postgres kalau DATABASE_URL / DB_HOST di-set, kalau tidak pakai
// SQLite file lokal (toko kecil, satu file database).
func ConnectDB(cfg *config.Config) *gorm.DB {
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	gormCfg := &gorm.Config{
		Logger:         newLogger,
		PrepareStmt:    false, // Disables GORM-level prepared statements
		TranslateError: true,  // Supaya pelanggaran constraint jadi gorm.ErrDuplicatedKey dkk
	}

	var (
		db  *gorm.DB
		err error
	)

	if cfg.UsePostgres() {
		db, err = gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.PostgresDSN(),
			PreferSimpleProtocol: true, // Disables implicit prepared statements for Supabase Transaction Mode
		}), gormCfg)
	} else {
		db, err = gorm.Open(sqlite.Open(cfg.DB.SQLitePath), gormCfg)
	}

	if err != nil {
		log.Fatal("Failed to connect to database. \n", err)
	}

	// Connection Pooling Setup (Penting untuk Production)
	sqlDB, _ := db.DB()
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Println("Database connection established")
	return db
}
