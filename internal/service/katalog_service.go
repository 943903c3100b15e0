package service

import (
	"errors"
	"fmt"

	"go-kasir-toko/internal/model"
	"go-kasir-toko/internal/repository"
	"go-kasir-toko/internal/ws"
	"go-kasir-toko/pkg/database"
	"go-kasir-toko/pkg/validator"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Error definitions
var (
	ErrProdukNotFound     = errors.New("produk not found")
	ErrKodeProdukDuplikat = errors.New("kode produk already exists")
)

type KatalogService interface {
	CreateProduk(req *model.Produk) error
	UpdateProduk(id uuid.UUID, req *model.Produk) (*model.Produk, error)
	DeleteProduk(id uuid.UUID) error
	GetAllProduk() ([]model.Produk, error)
	GetProdukByID(id uuid.UUID) (*model.Produk, error)
}

type katalogService struct {
	produkRepo repository.ProdukRepository
	db         *gorm.DB
	wsHub      *ws.Hub
}

func NewKatalogService(pRepo repository.ProdukRepository, db *gorm.DB, hub *ws.Hub) KatalogService {
	return &katalogService{
		produkRepo: pRepo,
		db:         db,
		wsHub:      hub,
	}
}

func (s *katalogService) CreateProduk(req *model.Produk) error {
	// 1. Validasi Struct Dasar
	if err := validator.First(req); err != nil {
		return err
	}

	// 2. Cek Duplikasi Kode (Business Logic Validation)
	bentrok, err := s.produkRepo.CekKodeBentrok(s.db, req.Kode, uuid.Nil)
	if err != nil {
		return err
	}
	if bentrok {
		return ErrKodeProdukDuplikat
	}

	// 3. Simpan ke Database. Unique index kode bisa tetap kena kalau ada
	// insert bersamaan yang lolos cek di atas.
	if err := s.produkRepo.Create(req); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrKodeProdukDuplikat
		}
		return err
	}

	// 4. Broadcast ke WebSocket
	go s.wsHub.BroadcastJSON(map[string]interface{}{
		"type":   "stok_update",
		"action": "produk_created",
		"produk": map[string]interface{}{
			"id":    req.ID,
			"kode":  req.Kode,
			"nama":  req.Nama,
			"stok":  req.Stok,
			"harga": req.Harga,
		},
		"message": fmt.Sprintf("Produk '%s' ditambahkan ke katalog", req.Nama),
	})

	return nil
}

func (s *katalogService) UpdateProduk(id uuid.UUID, req *model.Produk) (*model.Produk, error) {
	if err := validator.First(req); err != nil {
		return nil, err
	}

	var updated *model.Produk

	// Gunakan Transaction Block dengan Locking
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var existing model.Produk
		if err := database.LockForUpdate(tx).First(&existing, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrProdukNotFound
			}
			return err
		}

		// Kode baru tidak boleh bentrok dengan produk lain
		bentrok, err := s.produkRepo.CekKodeBentrok(tx, req.Kode, id)
		if err != nil {
			return err
		}
		if bentrok {
			return ErrKodeProdukDuplikat
		}

		stokLama := existing.Stok

		existing.Kode = req.Kode
		existing.Nama = req.Nama
		existing.Kategori = req.Kategori
		existing.Harga = req.Harga
		existing.Stok = req.Stok
		existing.Satuan = req.Satuan
		existing.Supplier = req.Supplier

		if err := tx.Save(&existing).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrKodeProdukDuplikat
			}
			return err
		}

		updated = &existing

		go s.wsHub.BroadcastJSON(map[string]interface{}{
			"type":   "stok_update",
			"action": "produk_updated",
			"produk": map[string]interface{}{
				"id":        existing.ID,
				"kode":      existing.Kode,
				"nama":      existing.Nama,
				"stok_lama": stokLama,
				"stok_baru": existing.Stok,
				"harga":     existing.Harga,
			},
			"message": fmt.Sprintf("Produk '%s' diperbarui", existing.Nama),
		})

		return nil
	})

	if err != nil {
		return nil, err
	}

	return updated, nil
}

// DeleteProduk menghapus produk dari katalog (soft delete).
// Riwayat transaksi yang menunjuk produk ini tetap bisa ditampilkan.
func (s *katalogService) DeleteProduk(id uuid.UUID) error {
	if _, err := s.produkRepo.FindByID(id); err != nil {
		return ErrProdukNotFound
	}
	return s.produkRepo.Delete(id)
}

func (s *katalogService) GetAllProduk() ([]model.Produk, error) {
	return s.produkRepo.FindAll()
}

func (s *katalogService) GetProdukByID(id uuid.UUID) (*model.Produk, error) {
	produk, err := s.produkRepo.FindByID(id)
	if err != nil {
		return nil, ErrProdukNotFound
	}
	return produk, nil
}
