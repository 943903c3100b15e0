package service

import (
	"errors"
	"fmt"
	"time"

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
	ErrStokTidakCukup    = errors.New("stok tidak cukup")
	ErrPembayaranKurang  = errors.New("pembayaran kurang dari total belanja")
	ErrTotalTidakSesuai  = errors.New("total tidak sama dengan jumlah subtotal keranjang")
	ErrTransaksiNotFound = errors.New("transaksi not found")
)

// ItemKeranjang adalah satu baris keranjang yang dikirim kasir.
type ItemKeranjang struct {
	ID       uuid.UUID `json:"id" validate:"uuid_required"`
	Jumlah   int       `json:"jumlah" validate:"required,gt=0"`
	Subtotal int64     `json:"subtotal" validate:"required,gt=0"`
}

type ProsesTransaksiRequest struct {
	Keranjang []ItemKeranjang `json:"keranjang" validate:"required,min=1,dive"`
	Total     int64           `json:"total" validate:"required,gt=0"`
	Dibayar   int64           `json:"dibayar" validate:"required,gt=0"`
}

type ProsesTransaksiResult struct {
	Success     bool      `json:"success"`
	TransaksiID uuid.UUID `json:"transaksi_id"`
	Kembalian   int64     `json:"kembalian"`
}

type KasirService interface {
	GetProdukTersedia() ([]model.Produk, error)
	ProsesTransaksi(req *ProsesTransaksiRequest) (*ProsesTransaksiResult, error)
	GetAllTransaksi() ([]model.Transaksi, error)
	GetTransaksiByID(id uuid.UUID) (*model.Transaksi, error)
}

type kasirService struct {
	produkRepo    repository.ProdukRepository
	transaksiRepo repository.TransaksiRepository
	db            *gorm.DB
	wsHub         *ws.Hub
}

func NewKasirService(pRepo repository.ProdukRepository, tRepo repository.TransaksiRepository, db *gorm.DB, hub *ws.Hub) KasirService {
	return &kasirService{
		produkRepo:    pRepo,
		transaksiRepo: tRepo,
		db:            db,
		wsHub:         hub,
	}
}

// GetProdukTersedia untuk layar kasir: hanya produk dengan stok > 0.
func (s *kasirService) GetProdukTersedia() ([]model.Produk, error) {
	return s.produkRepo.FindTersedia()
}

// ProsesTransaksi menjalankan checkout: simpan header transaksi, detail
// per baris keranjang, dan kurangi stok produk. Seluruhnya berjalan dalam
// satu Transaction Block - gagal di tengah berarti rollback semua.
func (s *kasirService) ProsesTransaksi(req *ProsesTransaksiRequest) (*ProsesTransaksiResult, error) {
	// 1. Validasi Input
	if err := validator.First(req); err != nil {
		return nil, err
	}

	// 2. Total harus sama dengan jumlah subtotal keranjang
	var jumlahSubtotal int64
	for _, item := range req.Keranjang {
		jumlahSubtotal += item.Subtotal
	}
	if jumlahSubtotal != req.Total {
		return nil, ErrTotalTidakSesuai
	}

	// 3. Pembayaran tidak boleh kurang dari total
	if req.Dibayar < req.Total {
		return nil, ErrPembayaranKurang
	}

	kembalian := req.Dibayar - req.Total

	transaksi := &model.Transaksi{
		Tanggal:      time.Now(),
		TotalBelanja: req.Total,
		Dibayar:      req.Dibayar,
		Kembalian:    kembalian,
	}

	// Jumlah yang dibeli per produk. Pakai map supaya produk yang muncul
	// di dua baris keranjang dihitung kumulatif.
	jumlahBeli := make(map[uuid.UUID]int)
	stokAwal := make(map[uuid.UUID]int)
	namaProduk := make(map[uuid.UUID]string)

	err := s.db.Transaction(func(tx *gorm.DB) error {
		// A. Cek stok semua baris keranjang dulu
		for _, item := range req.Keranjang {
			if _, ok := stokAwal[item.ID]; !ok {
				var produk model.Produk
				if err := database.LockForUpdate(tx).First(&produk, "id = ?", item.ID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrProdukNotFound
					}
					return err
				}
				stokAwal[produk.ID] = produk.Stok
				namaProduk[produk.ID] = produk.Nama
			}

			jumlahBeli[item.ID] += item.Jumlah
			if jumlahBeli[item.ID] > stokAwal[item.ID] {
				return ErrStokTidakCukup
			}

			transaksi.Detail = append(transaksi.Detail, model.DetailTransaksi{
				ProdukID: item.ID,
				Jumlah:   item.Jumlah,
				Subtotal: item.Subtotal,
			})
		}

		// B. Simpan header + detail sekaligus
		if err := tx.Create(transaksi).Error; err != nil {
			return err
		}

		// C. Kurangi stok per produk. Pengurangannya relatif dengan guard
		// stok di query, jadi checkout bersamaan yang kalah cepat akan
		// ditolak di sini, bukan menimpa stok dengan angka basi.
		for id, jumlah := range jumlahBeli {
			terkurangi, err := s.produkRepo.KurangiStok(tx, id, jumlah)
			if err != nil {
				return err
			}
			if !terkurangi {
				return ErrStokTidakCukup
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	// 4. Broadcast ke WebSocket setelah commit
	go func() {
		for id, jumlah := range jumlahBeli {
			stok := stokAwal[id] - jumlah
			s.wsHub.BroadcastJSON(map[string]interface{}{
				"type":   "stok_update",
				"action": "transaksi_created",
				"produk": map[string]interface{}{
					"id":        id,
					"nama":      namaProduk[id],
					"stok_baru": stok,
				},
				"transaksi_id": transaksi.ID,
				"message":      fmt.Sprintf("Stok '%s' sekarang %d", namaProduk[id], stok),
			})
		}
	}()

	return &ProsesTransaksiResult{
		Success:     true,
		TransaksiID: transaksi.ID,
		Kembalian:   kembalian,
	}, nil
}

func (s *kasirService) GetAllTransaksi() ([]model.Transaksi, error) {
	return s.transaksiRepo.FindAll()
}

func (s *kasirService) GetTransaksiByID(id uuid.UUID) (*model.Transaksi, error) {
	transaksi, err := s.transaksiRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransaksiNotFound
		}
		return nil, err
	}
	return transaksi, nil
}
