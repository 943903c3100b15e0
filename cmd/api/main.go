package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"go-kasir-toko/internal/config"
	"go-kasir-toko/internal/handler"
	"go-kasir-toko/internal/model"
	"go-kasir-toko/internal/repository"
	"go-kasir-toko/internal/service"
	"go-kasir-toko/internal/ws"
	"go-kasir-toko/pkg/database"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

func main() {
	// 1. Load Env
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// 2. Setup Database
	db := database.ConnectDB(cfg)
	// Auto Migrate (Hati-hati di production, sebaiknya pakai tools migrasi terpisah)
	db.AutoMigrate(&model.Produk{}, &model.Transaksi{}, &model.DetailTransaksi{})

	// 3. Seed produk contoh kalau katalog masih kosong
	seedProdukContoh(db)

	// 4. Setup WebSocket Hub
	wsHub := ws.NewHub()
	go wsHub.Run()

	// 5. Dependency Injection (Wiring Layers)
	produkRepo := repository.NewProdukRepo(db)
	transaksiRepo := repository.NewTransaksiRepo(db)

	katalogService := service.NewKatalogService(produkRepo, db, wsHub)
	kasirService := service.NewKasirService(produkRepo, transaksiRepo, db, wsHub)
	dashService := service.NewDashboardService(transaksiRepo)

	produkHandler := handler.NewProdukHandler(katalogService)
	kasirHandler := handler.NewKasirHandler(kasirService)
	dashHandler := handler.NewDashboardHandler(dashService)

	// 6. Setup Fiber
	app := fiber.New(fiber.Config{
		AppName: cfg.App.Name,
	})

	// Middleware
	app.Use(logger.New())  // Logging request
	app.Use(recover.New()) // Panic recovery
	app.Use(cors.New())    // CORS

	// 7. Routes
	api := app.Group("/api/v1")

	// Dashboard
	api.Get("/dashboard", dashHandler.GetDashboardStats)

	// Manajemen Produk
	api.Get("/produk", produkHandler.GetProduk)
	api.Post("/tambah_produk", produkHandler.CreateProduk)
	api.Get("/edit_produk/:id", produkHandler.GetProdukByID)
	api.Put("/edit_produk/:id", produkHandler.UpdateProduk)
	api.Delete("/hapus_produk/:id", produkHandler.DeleteProduk)

	// Sistem Kasir
	api.Get("/kasir", kasirHandler.GetProdukKasir)
	api.Post("/proses_transaksi", kasirHandler.ProsesTransaksi)

	// Riwayat Transaksi
	api.Get("/transaksi", kasirHandler.GetTransaksi)
	api.Get("/detail_transaksi/:id", kasirHandler.GetDetailTransaksi)

	// WebSocket Route
	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return c.SendStatus(fiber.StatusUpgradeRequired)
	})
	app.Get("/ws", websocket.New(func(c *websocket.Conn) {
		wsHub.Register <- c
		defer func() { wsHub.Unregister <- c }()

		for {
			// Keep alive loop
			if _, _, err := c.ReadMessage(); err != nil {
				break
			}
		}
	}))

	// 8. Graceful Shutdown
	go func() {
		if err := app.Listen(":" + cfg.App.Port); err != nil {
			log.Panic(err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exited")
}

// seedProdukContoh mengisi lima produk contoh kalau tabel produk masih kosong.
func seedProdukContoh(db *gorm.DB) {
	var count int64
	if err := db.Model(&model.Produk{}).Count(&count).Error; err != nil {
		log.Printf("Warning: Failed to count produk: %v", err)
		return
	}
	if count > 0 {
		return
	}

	contoh := []model.Produk{
		{Kode: "PL001", Nama: "Plastik Klip 1kg", Kategori: "Kemasan", Harga: 15000, Stok: 100, Satuan: "pack", Supplier: "Plastik Jaya"},
		{Kode: "PL002", Nama: "Plastik Roll 30cm", Kategori: "Kemasan", Harga: 25000, Stok: 50, Satuan: "roll", Supplier: "Sinar Plastik"},
		{Kode: "PL003", Nama: "Kantong Sampah Hitam", Kategori: "Kebersihan", Harga: 40000, Stok: 75, Satuan: "pack", Supplier: "Clean Env"},
		{Kode: "PL004", Nama: "Plastik Wrap 45cm", Kategori: "Pembungkus", Harga: 32000, Stok: 40, Satuan: "roll", Supplier: "Wrap Master"},
		{Kode: "PL005", Nama: "Plastik Mika A4", Kategori: "Dokumen", Harga: 5000, Stok: 200, Satuan: "pack", Supplier: "Mika Corp"},
	}

	if err := db.Create(&contoh).Error; err != nil {
		log.Printf("Warning: Failed to seed produk contoh: %v", err)
	} else {
		log.Println("Seeded 5 produk contoh")
	}
}
