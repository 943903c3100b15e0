package model

type Produk struct {
	BaseModel
	// Unik hanya di antara produk yang belum dihapus, supaya kode produk
	// yang sudah dihapus dari katalog bisa dipakai lagi.
	Kode     string `gorm:"type:varchar(50);not null;uniqueIndex:idx_produk_kode_aktif,where:deleted_at IS NULL" json:"kode" validate:"required"`
	Nama     string `gorm:"type:varchar(255);not null" json:"nama" validate:"required"`
	Kategori string `gorm:"type:varchar(100)" json:"kategori" validate:"required"`
	Harga    int64  `gorm:"not null" json:"harga" validate:"required,gt=0"` // Harga satuan dalam rupiah
	Stok     int    `gorm:"default:0" json:"stok" validate:"gte=0"`
	Satuan   string `gorm:"type:varchar(20)" json:"satuan" validate:"required"` // pack, roll, dst
	Supplier string `gorm:"type:varchar(255)" json:"supplier" validate:"required"`

	// Relasi
	Detail []DetailTransaksi `gorm:"foreignKey:ProdukID" json:"detail,omitempty"`
}
