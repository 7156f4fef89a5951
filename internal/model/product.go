package model

type Product struct {
	ID       string  `gorm:"type:varchar(20);primaryKey" json:"id"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name" validate:"required"`
	Price    float64 `gorm:"default:0" json:"price"`
	Stock    int     `gorm:"default:0" json:"stock" validate:"required"`
	MinStock int     `gorm:"default:0" json:"min_stock" validate:"required"`
	Unit     string  `gorm:"type:varchar(20)" json:"unit" validate:"required"`
	Category string  `gorm:"type:varchar(100)" json:"category" validate:"required"`

	// YYYY-MM-DD, refreshed on every write
	LastUpdated string `gorm:"type:varchar(10)" json:"last_updated"`
}

// LowStock is derived on every read, never stored.
func (p *Product) LowStock() bool {
	return p.Stock < p.MinStock
}

// ProductResponse carries the derived low-stock flag alongside the record.
type ProductResponse struct {
	Product
	LowStock bool `json:"low_stock"`
}

func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		Product:  *p,
		LowStock: p.LowStock(),
	}
}
