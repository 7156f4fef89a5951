package model

type MovementType string

const (
	MovementIn  MovementType = "in"
	MovementOut MovementType = "out"
)

// StockMovement is the audit log row written whenever a product's stock
// level changes. Quantity is the magnitude of the change; Type carries
// the direction.
type StockMovement struct {
	ID        string       `gorm:"type:varchar(20);primaryKey" json:"id"`
	ProductID string       `gorm:"type:varchar(20);not null;index" json:"product_id"`
	Type      MovementType `gorm:"type:varchar(10);not null" json:"type"`
	Quantity  int          `gorm:"not null" json:"quantity"`
	Reason    string       `json:"reason"`
	Date      string       `gorm:"type:varchar(10)" json:"date"` // YYYY-MM-DD
}
