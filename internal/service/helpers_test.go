package service

import (
	"testing"

	"go-kasir-toko/internal/model"
	"go-kasir-toko/internal/repository"
	"go-kasir-toko/internal/ws"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB membuka SQLite in-memory dengan skema lengkap. Pool dibatasi
// satu koneksi supaya semua query kena database in-memory yang sama.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&model.Produk{}, &model.Transaksi{}, &model.DetailTransaksi{}))

	return db
}

func newTestHub() *ws.Hub {
	hub := ws.NewHub()
	go hub.Run()
	return hub
}

// seedProdukContoh mengisi lima produk contoh yang sama dengan seed aplikasi
// (stok 100, 50, 75, 40, 200).
func seedProdukContoh(t *testing.T, db *gorm.DB) []model.Produk {
	t.Helper()

	contoh := []model.Produk{
		{Kode: "PL001", Nama: "Plastik Klip 1kg", Kategori: "Kemasan", Harga: 15000, Stok: 100, Satuan: "pack", Supplier: "Plastik Jaya"},
		{Kode: "PL002", Nama: "Plastik Roll 30cm", Kategori: "Kemasan", Harga: 25000, Stok: 50, Satuan: "roll", Supplier: "Sinar Plastik"},
		{Kode: "PL003", Nama: "Kantong Sampah Hitam", Kategori: "Kebersihan", Harga: 40000, Stok: 75, Satuan: "pack", Supplier: "Clean Env"},
		{Kode: "PL004", Nama: "Plastik Wrap 45cm", Kategori: "Pembungkus", Harga: 32000, Stok: 40, Satuan: "roll", Supplier: "Wrap Master"},
		{Kode: "PL005", Nama: "Plastik Mika A4", Kategori: "Dokumen", Harga: 5000, Stok: 200, Satuan: "pack", Supplier: "Mika Corp"},
	}
	require.NoError(t, db.Create(&contoh).Error)

	return contoh
}

func newKatalogService(db *gorm.DB) KatalogService {
	return NewKatalogService(repository.NewProdukRepo(db), db, newTestHub())
}

func newKasirService(db *gorm.DB) KasirService {
	return NewKasirService(repository.NewProdukRepo(db), repository.NewTransaksiRepo(db), db, newTestHub())
}
