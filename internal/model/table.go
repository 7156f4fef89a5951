package model

type TableStatus string

const (
	TableAvailable TableStatus = "available"
	TableOccupied  TableStatus = "occupied"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableOccupied, TableReserved:
		return true
	}
	return false
}

// Table is one of the fixed dining tables. Occupancy fields are only
// meaningful while the table is occupied; a status change does not clear
// them, so readers must treat them as stale outside that status.
type Table struct {
	ID     int         `gorm:"primaryKey" json:"id"`
	Status TableStatus `gorm:"type:varchar(20);not null" json:"status"`

	Customers  *int     `json:"customers,omitempty"`
	StartTime  *string  `gorm:"type:varchar(5)" json:"start_time,omitempty"` // HH:MM
	OrderTotal *float64 `json:"order_total,omitempty"`
}

// TableCount is the fixed size of the board.
const TableCount = 20
