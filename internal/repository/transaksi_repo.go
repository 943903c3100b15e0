package repository

import (
	"go-kasir-toko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BatasStokMenipis adalah ambang stok untuk daftar "produk hampir habis"
// di dashboard.
const BatasStokMenipis = 10

type TransaksiRepository interface {
	FindAll() ([]model.Transaksi, error)
	FindByID(id uuid.UUID) (*model.Transaksi, error)
	GetDashboardStats() (*DashboardStats, error)
}

// DashboardStats untuk overview stats
type DashboardStats struct {
	TotalProduk    int64          `json:"total_produk"`
	TotalStok      int64          `json:"total_stok"`
	TotalTransaksi int64          `json:"total_transaksi"`
	ProdukHabis    []model.Produk `json:"produk_habis"`
}

type transaksiRepo struct {
	db *gorm.DB
}

func NewTransaksiRepo(db *gorm.DB) TransaksiRepository {
	return &transaksiRepo{db}
}

func (r *transaksiRepo) FindAll() ([]model.Transaksi, error) {
	var transaksi []model.Transaksi
	err := r.db.Order("tanggal DESC").Find(&transaksi).Error
	return transaksi, err
}

func (r *transaksiRepo) FindByID(id uuid.UUID) (*model.Transaksi, error) {
	var transaksi model.Transaksi
	// Preload detail + produk secara Unscoped supaya produk yang sudah
	// dihapus dari katalog tetap tampil di riwayat.
	err := r.db.
		Preload("Detail").
		Preload("Detail.Produk", func(db *gorm.DB) *gorm.DB {
			return db.Unscoped()
		}).
		First(&transaksi, "id = ?", id).Error
	return &transaksi, err
}

func (r *transaksiRepo) GetDashboardStats() (*DashboardStats, error) {
	var stats DashboardStats

	if err := r.db.Model(&model.Produk{}).Count(&stats.TotalProduk).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Produk{}).
		Select("COALESCE(SUM(stok), 0)").
		Scan(&stats.TotalStok).Error; err != nil {
		return nil, err
	}

	if err := r.db.Model(&model.Transaksi{}).Count(&stats.TotalTransaksi).Error; err != nil {
		return nil, err
	}

	// Produk hampir habis: stok < 10, urut naik, maksimal 5
	if err := r.db.
		Where("stok < ?", BatasStokMenipis).
		Order("stok ASC").
		Limit(5).
		Find(&stats.ProdukHabis).Error; err != nil {
		return nil, err
	}

	return &stats, nil
}
