package model

type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderCompleted OrderStatus = "completed"
	OrderCancelled OrderStatus = "cancelled"
)

// OrderItem snapshots a product line at the time the order was created.
type OrderItem struct {
	ID       uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	OrderID  string  `gorm:"type:varchar(20);index" json:"-"`
	Name     string  `gorm:"type:varchar(255);not null" json:"name"`
	Quantity int     `gorm:"not null" json:"quantity"`
	Price    float64 `gorm:"not null" json:"price"`
}

// Order's Total is computed once at creation and never re-derived from
// the items afterwards.
type Order struct {
	ID          string      `gorm:"type:varchar(20);primaryKey" json:"id"`
	TableNumber int         `json:"table_number"`
	Status      OrderStatus `gorm:"type:varchar(20);not null" json:"status"`
	Items       []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
	Total       float64     `gorm:"not null" json:"total"`
	CreatedAt   string      `gorm:"type:varchar(16)" json:"created_at"` // YYYY-MM-DD HH:MM display string
}
