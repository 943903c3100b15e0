package repository

import (
	"errors"

	"go-kasir-toko/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProdukRepository interface {
	Create(produk *model.Produk) error
	FindAll() ([]model.Produk, error)
	FindByID(id uuid.UUID) (*model.Produk, error)
	FindByKode(kode string) (*model.Produk, error)
	FindTersedia() ([]model.Produk, error)
	Update(produk *model.Produk) error
	KurangiStok(tx *gorm.DB, id uuid.UUID, jumlah int) (bool, error)
	CekKodeBentrok(tx *gorm.DB, kode string, kecuali uuid.UUID) (bool, error)
	Delete(id uuid.UUID) error
}

type produkRepo struct {
	db *gorm.DB
}

func NewProdukRepo(db *gorm.DB) ProdukRepository {
	return &produkRepo{db}
}

func (r *produkRepo) Create(produk *model.Produk) error {
	return r.db.Create(produk).Error
}

func (r *produkRepo) FindAll() ([]model.Produk, error) {
	var produk []model.Produk
	err := r.db.Find(&produk).Error
	return produk, err
}

func (r *produkRepo) FindByID(id uuid.UUID) (*model.Produk, error) {
	var produk model.Produk
	err := r.db.First(&produk, "id = ?", id).Error
	return &produk, err
}

func (r *produkRepo) FindByKode(kode string) (*model.Produk, error) {
	var produk model.Produk
	err := r.db.First(&produk, "kode = ?", kode).Error
	return &produk, err
}

// FindTersedia mengembalikan produk yang masih ada stoknya, untuk layar kasir.
func (r *produkRepo) FindTersedia() ([]model.Produk, error) {
	var produk []model.Produk
	err := r.db.Where("stok > 0").Find(&produk).Error
	return produk, err
}

func (r *produkRepo) Update(produk *model.Produk) error {
	return r.db.Save(produk).Error
}

// KurangiStok mengurangi stok secara relatif di dalam transaksi (tx), dengan
// guard "stok >= jumlah" di query-nya supaya dua checkout bersamaan tidak
// saling menimpa. Mengembalikan false kalau stok tidak lagi mencukupi
// (tidak ada baris yang berubah).
func (r *produkRepo) KurangiStok(tx *gorm.DB, id uuid.UUID, jumlah int) (bool, error) {
	res := tx.Model(&model.Produk{}).
		Where("id = ? AND stok >= ?", id, jumlah).
		Update("stok", gorm.Expr("stok - ?", jumlah))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// CekKodeBentrok true kalau kode sudah dipakai produk aktif lain selain id
// kecuali. Error query selain record-not-found diteruskan ke pemanggil.
func (r *produkRepo) CekKodeBentrok(tx *gorm.DB, kode string, kecuali uuid.UUID) (bool, error) {
	var other model.Produk
	err := tx.First(&other, "kode = ? AND id <> ?", kode, kecuali).Error
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return false, nil
	default:
		return false, err
	}
}

func (r *produkRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&model.Produk{}, "id = ?", id).Error
}
