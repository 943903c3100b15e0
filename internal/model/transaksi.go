package model

import (
	"time"

	"github.com/google/uuid"
)

// Transaksi adalah header satu kali checkout di kasir.
// Sekali tersimpan, baris ini tidak pernah diubah atau dihapus.
type Transaksi struct {
	BaseModel
	Tanggal      time.Time `gorm:"not null;index" json:"tanggal"`
	TotalBelanja int64     `gorm:"not null" json:"total_belanja"`
	Dibayar      int64     `gorm:"not null" json:"dibayar"`
	Kembalian    int64     `gorm:"not null" json:"kembalian"` // Dibayar - TotalBelanja

	// Relasi
	Detail []DetailTransaksi `gorm:"foreignKey:TransaksiID" json:"detail,omitempty"`
}

// DetailTransaksi adalah satu baris produk di dalam keranjang checkout.
type DetailTransaksi struct {
	BaseModel
	TransaksiID uuid.UUID `gorm:"type:uuid;not null;index" json:"id_transaksi"`
	ProdukID    uuid.UUID `gorm:"type:uuid;not null;index" json:"id_produk"`
	Produk      *Produk   `json:"produk,omitempty" validate:"-"` // Relasi - skip validation
	Jumlah      int       `gorm:"not null" json:"jumlah"`
	Subtotal    int64     `gorm:"not null" json:"subtotal"`
}
