package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-restaurant-ws/internal/events"
	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"
	"go-restaurant-ws/internal/ws"
)

var (
	ErrTableNotFound      = errors.New("table not found")
	ErrInvalidTableStatus = errors.New("invalid table status")
)

// OccupancyUpdate is a partial update; nil fields are left untouched.
type OccupancyUpdate struct {
	Customers  *int     `json:"customers"`
	StartTime  *string  `json:"start_time"`
	OrderTotal *float64 `json:"order_total"`
}

type TableService interface {
	ListTables() ([]model.Table, error)
	GetTable(id int) (*model.Table, error)
	SetStatus(id int, status model.TableStatus) (*model.Table, error)
	UpdateOccupancy(id int, update OccupancyUpdate) (*model.Table, error)
}

type tableService struct {
	tableRepo repository.TableRepository
	wsHub     *ws.Hub
	publisher events.Publisher
}

func NewTableService(tRepo repository.TableRepository, hub *ws.Hub, pub events.Publisher) TableService {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &tableService{
		tableRepo: tRepo,
		wsHub:     hub,
		publisher: pub,
	}
}

func (s *tableService) ListTables() ([]model.Table, error) {
	return s.tableRepo.FindAll()
}

func (s *tableService) GetTable(id int) (*model.Table, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}
	return table, nil
}

// SetStatus overwrites the status of exactly the matching table. It does
// not populate or clear occupancy metadata; a table moved away from
// occupied keeps whatever customers/start-time values it had.
func (s *tableService) SetStatus(id int, status model.TableStatus) (*model.Table, error) {
	if !status.Valid() {
		return nil, ErrInvalidTableStatus
	}

	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	previous := table.Status
	table.Status = status
	if err := s.tableRepo.Update(table); err != nil {
		return nil, err
	}

	s.wsHub.Send(map[string]interface{}{
		"type":   "table_update",
		"action": "status_changed",
		"table": map[string]interface{}{
			"id":              table.ID,
			"status":          table.Status,
			"previous_status": previous,
		},
		"message": fmt.Sprintf("Table %d is now %s", table.ID, table.Status),
	})

	events.PublishJSON(context.Background(), s.publisher, events.TableStatusTopic, events.TableStatusEvent{
		EventType:      events.EventTableStatusChanged,
		TableID:        table.ID,
		Status:         string(status),
		PreviousStatus: string(previous),
		OccurredAt:     time.Now().UTC(),
	})

	return table, nil
}

// UpdateOccupancy applies the non-nil fields regardless of the table's
// current status; there is no occupied-only guard.
func (s *tableService) UpdateOccupancy(id int, update OccupancyUpdate) (*model.Table, error) {
	table, err := s.tableRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrTableNotFound
		}
		return nil, err
	}

	if update.Customers != nil {
		table.Customers = update.Customers
	}
	if update.StartTime != nil {
		table.StartTime = update.StartTime
	}
	if update.OrderTotal != nil {
		table.OrderTotal = update.OrderTotal
	}

	if err := s.tableRepo.Update(table); err != nil {
		return nil, err
	}

	s.wsHub.Send(map[string]interface{}{
		"type":   "table_update",
		"action": "occupancy_changed",
		"table": map[string]interface{}{
			"id":     table.ID,
			"status": table.Status,
		},
	})

	return table, nil
}
