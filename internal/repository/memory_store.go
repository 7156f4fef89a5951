package repository

import (
	"sync"

	"go-restaurant-ws/internal/model"
)

// MemoryStore is the default in-process backend. Slices preserve insertion
// order so listings come back in storage order.
type MemoryStore struct {
	mu        sync.RWMutex
	products  []model.Product
	orders    []model.Order
	tables    []model.Table
	movements []model.StockMovement
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// MemoryProducts implements ProductRepository on the shared store.
type MemoryProducts struct{ store *MemoryStore }

func NewMemoryProducts(store *MemoryStore) *MemoryProducts { return &MemoryProducts{store: store} }

var _ ProductRepository = (*MemoryProducts)(nil)

func (m *MemoryProducts) Create(product *model.Product) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.products = append(m.store.products, *product)
	return nil
}

func (m *MemoryProducts) FindAll(filter ProductFilter) ([]model.Product, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	out := make([]model.Product, 0)
	for i := range m.store.products {
		if filter.Match(&m.store.products[i]) {
			out = append(out, m.store.products[i])
		}
	}
	return out, nil
}

func (m *MemoryProducts) FindByID(id string) (*model.Product, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for i := range m.store.products {
		if m.store.products[i].ID == id {
			cp := m.store.products[i]
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (m *MemoryProducts) Update(product *model.Product) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range m.store.products {
		if m.store.products[i].ID == product.ID {
			m.store.products[i] = *product
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryProducts) Delete(id string) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range m.store.products {
		if m.store.products[i].ID == id {
			m.store.products = append(m.store.products[:i], m.store.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryProducts) Count() (int64, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return int64(len(m.store.products)), nil
}

// MemoryOrders implements OrderRepository on the shared store.
type MemoryOrders struct{ store *MemoryStore }

func NewMemoryOrders(store *MemoryStore) *MemoryOrders { return &MemoryOrders{store: store} }

var _ OrderRepository = (*MemoryOrders)(nil)

func (m *MemoryOrders) Create(order *model.Order) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.orders = append(m.store.orders, *order)
	return nil
}

func (m *MemoryOrders) FindAll() ([]model.Order, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	out := make([]model.Order, 0, len(m.store.orders))
	for i := range m.store.orders {
		out = append(out, copyOrder(&m.store.orders[i]))
	}
	return out, nil
}

func (m *MemoryOrders) FindByID(id string) (*model.Order, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for i := range m.store.orders {
		if m.store.orders[i].ID == id {
			cp := copyOrder(&m.store.orders[i])
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// copyOrder duplicates the items slice so callers cannot reach the
// stored record around the lock.
func copyOrder(order *model.Order) model.Order {
	cp := *order
	cp.Items = append([]model.OrderItem(nil), order.Items...)
	return cp
}

func (m *MemoryOrders) UpdateStatus(id string, status model.OrderStatus) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range m.store.orders {
		if m.store.orders[i].ID == id {
			m.store.orders[i].Status = status
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryOrders) Count() (int64, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return int64(len(m.store.orders)), nil
}

// MemoryTables implements TableRepository on the shared store.
type MemoryTables struct{ store *MemoryStore }

func NewMemoryTables(store *MemoryStore) *MemoryTables { return &MemoryTables{store: store} }

var _ TableRepository = (*MemoryTables)(nil)

func (m *MemoryTables) Create(table *model.Table) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.tables = append(m.store.tables, *table)
	return nil
}

func (m *MemoryTables) FindAll() ([]model.Table, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	out := make([]model.Table, 0, len(m.store.tables))
	for i := range m.store.tables {
		out = append(out, copyTable(&m.store.tables[i]))
	}
	return out, nil
}

func (m *MemoryTables) FindByID(id int) (*model.Table, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	for i := range m.store.tables {
		if m.store.tables[i].ID == id {
			cp := copyTable(&m.store.tables[i])
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

// copyTable duplicates the occupancy pointer fields so callers cannot
// reach the stored record around the lock.
func copyTable(table *model.Table) model.Table {
	cp := *table
	if table.Customers != nil {
		customers := *table.Customers
		cp.Customers = &customers
	}
	if table.StartTime != nil {
		startTime := *table.StartTime
		cp.StartTime = &startTime
	}
	if table.OrderTotal != nil {
		orderTotal := *table.OrderTotal
		cp.OrderTotal = &orderTotal
	}
	return cp
}

func (m *MemoryTables) Update(table *model.Table) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	for i := range m.store.tables {
		if m.store.tables[i].ID == table.ID {
			m.store.tables[i] = *table
			return nil
		}
	}
	return ErrNotFound
}

func (m *MemoryTables) Count() (int64, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return int64(len(m.store.tables)), nil
}

// MemoryMovements implements StockMovementRepository on the shared store.
type MemoryMovements struct{ store *MemoryStore }

func NewMemoryMovements(store *MemoryStore) *MemoryMovements { return &MemoryMovements{store: store} }

var _ StockMovementRepository = (*MemoryMovements)(nil)

func (m *MemoryMovements) Create(movement *model.StockMovement) error {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.movements = append(m.store.movements, *movement)
	return nil
}

func (m *MemoryMovements) FindAll() ([]model.StockMovement, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	out := make([]model.StockMovement, len(m.store.movements))
	copy(out, m.store.movements)
	return out, nil
}

func (m *MemoryMovements) Count() (int64, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()
	return int64(len(m.store.movements)), nil
}
