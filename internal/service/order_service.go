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
	ErrOrderNotFound = errors.New("order not found")
)

type OrderService interface {
	ListOrders() ([]model.Order, error)
	GetOrder(id string) (*model.Order, error)
	CompleteOrder(id string) (*model.Order, error)
	CancelOrder(id string) (*model.Order, error)
}

type orderService struct {
	orderRepo repository.OrderRepository
	wsHub     *ws.Hub
	publisher events.Publisher
}

func NewOrderService(oRepo repository.OrderRepository, hub *ws.Hub, pub events.Publisher) OrderService {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &orderService{
		orderRepo: oRepo,
		wsHub:     hub,
		publisher: pub,
	}
}

func (s *orderService) ListOrders() ([]model.Order, error) {
	return s.orderRepo.FindAll()
}

func (s *orderService) GetOrder(id string) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return order, nil
}

func (s *orderService) CompleteOrder(id string) (*model.Order, error) {
	return s.setStatus(id, model.OrderCompleted)
}

func (s *orderService) CancelOrder(id string) (*model.Order, error) {
	return s.setStatus(id, model.OrderCancelled)
}

// setStatus overwrites the order status unconditionally, including on
// orders already in a terminal state. Callers that need a transition
// guard must check the current status themselves.
func (s *orderService) setStatus(id string, status model.OrderStatus) (*model.Order, error) {
	order, err := s.orderRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}

	previous := order.Status
	if err := s.orderRepo.UpdateStatus(id, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	order.Status = status

	s.wsHub.Send(map[string]interface{}{
		"type":   "order_update",
		"action": "order_status_changed",
		"order": map[string]interface{}{
			"id":              order.ID,
			"table_number":    order.TableNumber,
			"status":          order.Status,
			"previous_status": previous,
		},
		"message": fmt.Sprintf("Order #%s is now %s", order.ID, order.Status),
	})

	events.PublishJSON(context.Background(), s.publisher, events.OrderStatusTopic, events.OrderStatusEvent{
		EventType:      events.EventOrderStatusChanged,
		OrderID:        order.ID,
		TableNumber:    order.TableNumber,
		Status:         string(status),
		PreviousStatus: string(previous),
		OccurredAt:     time.Now().UTC(),
	})

	return order, nil
}
