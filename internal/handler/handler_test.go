package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-kasir-toko/internal/model"
	"go-kasir-toko/internal/repository"
	"go-kasir-toko/internal/service"
	"go-kasir-toko/internal/ws"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestApp merakit aplikasi fiber dengan route dan wiring yang sama
// dengan main, di atas SQLite in-memory.
func newTestApp(t *testing.T) (*fiber.App, *gorm.DB) {
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

	hub := ws.NewHub()
	go hub.Run()

	produkRepo := repository.NewProdukRepo(db)
	transaksiRepo := repository.NewTransaksiRepo(db)
	katalogService := service.NewKatalogService(produkRepo, db, hub)
	kasirService := service.NewKasirService(produkRepo, transaksiRepo, db, hub)

	produkHandler := NewProdukHandler(katalogService)
	kasirHandler := NewKasirHandler(kasirService)

	app := fiber.New()
	api := app.Group("/api/v1")
	api.Get("/produk", produkHandler.GetProduk)
	api.Post("/tambah_produk", produkHandler.CreateProduk)
	api.Get("/edit_produk/:id", produkHandler.GetProdukByID)
	api.Put("/edit_produk/:id", produkHandler.UpdateProduk)
	api.Delete("/hapus_produk/:id", produkHandler.DeleteProduk)
	api.Post("/proses_transaksi", kasirHandler.ProsesTransaksi)
	api.Get("/detail_transaksi/:id", kasirHandler.GetDetailTransaksi)

	return app, db
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func errorBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body.Error
}

func TestCreateProdukRoute_KodeDuplikat(t *testing.T) {
	app, db := newTestApp(t)
	require.NoError(t, db.Create(&model.Produk{
		Kode: "PL001", Nama: "Plastik Klip 1kg", Kategori: "Kemasan",
		Harga: 15000, Stok: 100, Satuan: "pack", Supplier: "Plastik Jaya",
	}).Error)

	resp := doJSON(t, app, "POST", "/api/v1/tambah_produk", fiber.Map{
		"kode": "PL001", "nama": "Plastik Klip 2kg", "kategori": "Kemasan",
		"harga": 20000, "stok": 10, "satuan": "pack", "supplier": "Plastik Jaya",
	})

	// Pelanggaran aturan bisnis: 400 dengan pesan yang bisa dibaca kasir
	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, errorBody(t, resp), "kode")
}

func TestCreateProdukRoute_Validasi(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "POST", "/api/v1/tambah_produk", fiber.Map{
		"nama": "Tanpa Kode", "kategori": "Kemasan",
		"harga": 20000, "satuan": "pack", "supplier": "Plastik Jaya",
	})

	assert.Equal(t, 400, resp.StatusCode)
}

func TestProsesTransaksiRoute_StokTidakCukup(t *testing.T) {
	app, db := newTestApp(t)
	produk := &model.Produk{
		Kode: "PL001", Nama: "Plastik Klip 1kg", Kategori: "Kemasan",
		Harga: 15000, Stok: 5, Satuan: "pack", Supplier: "Plastik Jaya",
	}
	require.NoError(t, db.Create(produk).Error)

	resp := doJSON(t, app, "POST", "/api/v1/proses_transaksi", fiber.Map{
		"keranjang": []fiber.Map{
			{"id": produk.ID, "jumlah": 6, "subtotal": 90000},
		},
		"total":   90000,
		"dibayar": 100000,
	})

	assert.Equal(t, 400, resp.StatusCode)
	assert.Contains(t, errorBody(t, resp), "stok")
}

func TestDetailTransaksiRoute_TidakDitemukan(t *testing.T) {
	app, _ := newTestApp(t)

	resp := doJSON(t, app, "GET", "/api/v1/detail_transaksi/"+uuid.NewString(), nil)
	assert.Equal(t, 404, resp.StatusCode)
}

func TestCreateProdukRoute_StorageFault(t *testing.T) {
	app, db := newTestApp(t)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	resp := doJSON(t, app, "POST", "/api/v1/tambah_produk", fiber.Map{
		"kode": "PL001", "nama": "Plastik Klip 1kg", "kategori": "Kemasan",
		"harga": 15000, "stok": 100, "satuan": "pack", "supplier": "Plastik Jaya",
	})

	// Error storage bukan salah input: 500 generik, detail tidak bocor
	assert.Equal(t, 500, resp.StatusCode)
	assert.Equal(t, "Internal Server Error", errorBody(t, resp))
}
