package repository

import (
	"errors"
	"strings"

	"go-restaurant-ws/internal/model"
)

// ErrNotFound is returned when an entity does not exist in the store.
var ErrNotFound = errors.New("not found")

// ProductFilter narrows catalog listings. Category "all" (or empty)
// matches every record; Search is a case-insensitive substring match on
// the product name.
type ProductFilter struct {
	Search   string
	Category string
}

func (f ProductFilter) Match(p *model.Product) bool {
	if !containsIgnoreCase(p.Name, f.Search) {
		return false
	}
	if f.Category != "" && f.Category != "all" && p.Category != f.Category {
		return false
	}
	return true
}

type ProductRepository interface {
	Create(product *model.Product) error
	FindAll(filter ProductFilter) ([]model.Product, error)
	FindByID(id string) (*model.Product, error)
	Update(product *model.Product) error
	Delete(id string) error
	Count() (int64, error)
}

type StockMovementRepository interface {
	Create(movement *model.StockMovement) error
	FindAll() ([]model.StockMovement, error)
	Count() (int64, error)
}

type OrderRepository interface {
	Create(order *model.Order) error
	FindAll() ([]model.Order, error)
	FindByID(id string) (*model.Order, error)
	UpdateStatus(id string, status model.OrderStatus) error
	Count() (int64, error)
}

type TableRepository interface {
	Create(table *model.Table) error
	FindAll() ([]model.Table, error)
	FindByID(id int) (*model.Table, error)
	Update(table *model.Table) error
	Count() (int64, error)
}

func containsIgnoreCase(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
