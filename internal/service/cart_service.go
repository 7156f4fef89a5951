package service

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"go-restaurant-ws/internal/events"
	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"
	"go-restaurant-ws/internal/ws"

	"github.com/google/uuid"
)

var (
	ErrCartNotFound = errors.New("cart not found")
)

type CartService interface {
	Open() *model.Cart
	Get(cartID string) (*model.Cart, error)
	AddItem(cartID, productID string) (*model.Cart, error)
	ChangeQuantity(cartID, productID string, delta int) (*model.Cart, error)
	Total(cartID string) (float64, error)
	Checkout(cartID string, tableNumber int) (*model.Order, error)
	SearchCatalog(term string) ([]model.Product, error)
}

// cartService keeps carts as in-process session state: a cart lives only
// as long as the process, exactly like the POS page state it replaces.
type cartService struct {
	mu    sync.RWMutex
	carts map[string]*model.Cart

	productRepo repository.ProductRepository
	orderRepo   repository.OrderRepository
	wsHub       *ws.Hub
	publisher   events.Publisher
}

func NewCartService(pRepo repository.ProductRepository, oRepo repository.OrderRepository, hub *ws.Hub, pub events.Publisher) CartService {
	if pub == nil {
		pub = events.NoopPublisher{}
	}
	return &cartService{
		carts:       make(map[string]*model.Cart),
		productRepo: pRepo,
		orderRepo:   oRepo,
		wsHub:       hub,
		publisher:   pub,
	}
}

func (s *cartService) Open() *model.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := &model.Cart{ID: uuid.New().String(), Items: []model.CartItem{}}
	s.carts[cart.ID] = cart
	return cart
}

func (s *cartService) Get(cartID string) (*model.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}
	cp := *cart
	cp.Items = append([]model.CartItem(nil), cart.Items...)
	return &cp, nil
}

// AddItem increments the quantity of an existing line with the same
// product id, otherwise appends a new line with quantity 1.
func (s *cartService) AddItem(cartID, productID string) (*model.Cart, error) {
	product, err := s.productRepo.FindByID(productID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}

	for i := range cart.Items {
		if cart.Items[i].ID == product.ID {
			cart.Items[i].Quantity++
			return s.snapshot(cart), nil
		}
	}

	cart.Items = append(cart.Items, model.CartItem{
		ID:       product.ID,
		Name:     product.Name,
		Price:    product.Price,
		Quantity: 1,
	})
	return s.snapshot(cart), nil
}

// ChangeQuantity applies max(0, quantity+delta); a line hitting zero is
// removed rather than kept as a zero-quantity row. Unknown product ids
// leave the cart untouched.
func (s *cartService) ChangeQuantity(cartID, productID string, delta int) (*model.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart, ok := s.carts[cartID]
	if !ok {
		return nil, ErrCartNotFound
	}

	for i := range cart.Items {
		if cart.Items[i].ID != productID {
			continue
		}
		q := cart.Items[i].Quantity + delta
		if q < 0 {
			q = 0
		}
		if q == 0 {
			cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		} else {
			cart.Items[i].Quantity = q
		}
		break
	}
	return s.snapshot(cart), nil
}

func (s *cartService) Total(cartID string) (float64, error) {
	cart, err := s.Get(cartID)
	if err != nil {
		return 0, err
	}
	return cart.Total(), nil
}

// Checkout turns the current cart contents into a new pending order and
// clears the cart. The order total is snapshotted here and never
// re-derived from the items. Checking out an empty cart is a no-op.
func (s *cartService) Checkout(cartID string, tableNumber int) (*model.Order, error) {
	s.mu.Lock()
	cart, ok := s.carts[cartID]
	if !ok {
		s.mu.Unlock()
		return nil, ErrCartNotFound
	}
	if len(cart.Items) == 0 {
		s.mu.Unlock()
		return nil, nil
	}

	items := make([]model.OrderItem, 0, len(cart.Items))
	for _, item := range cart.Items {
		items = append(items, model.OrderItem{
			Name:     item.Name,
			Quantity: item.Quantity,
			Price:    item.Price,
		})
	}
	total := cart.Total()
	s.mu.Unlock()

	count, err := s.orderRepo.Count()
	if err != nil {
		return nil, err
	}

	order := &model.Order{
		ID:          strconv.FormatInt(count+1, 10),
		TableNumber: tableNumber,
		Status:      model.OrderPending,
		Items:       items,
		Total:       total,
		CreatedAt:   time.Now().Format("2006-01-02 15:04"),
	}
	if err := s.orderRepo.Create(order); err != nil {
		return nil, err
	}

	// clear only once the order is safely stored so a failed checkout
	// leaves the cart intact for a retry
	s.mu.Lock()
	cart.Items = []model.CartItem{}
	s.mu.Unlock()

	s.wsHub.Send(map[string]interface{}{
		"type":   "order_update",
		"action": "order_created",
		"order": map[string]interface{}{
			"id":           order.ID,
			"table_number": order.TableNumber,
			"status":       order.Status,
			"total":        order.Total,
		},
		"message": "Order #" + order.ID + " created, total " + model.FormatBRL(order.Total),
	})

	events.PublishJSON(context.Background(), s.publisher, events.OrderStatusTopic, events.OrderStatusEvent{
		EventType:   events.EventOrderCreated,
		OrderID:     order.ID,
		TableNumber: order.TableNumber,
		Status:      string(order.Status),
		Total:       order.Total,
		OccurredAt:  time.Now().UTC(),
	})

	return order, nil
}

// SearchCatalog filters the POS product grid; cart contents are untouched.
func (s *cartService) SearchCatalog(term string) ([]model.Product, error) {
	return s.productRepo.FindAll(repository.ProductFilter{Search: term})
}

func (s *cartService) snapshot(cart *model.Cart) *model.Cart {
	cp := *cart
	cp.Items = append([]model.CartItem(nil), cart.Items...)
	return &cp
}
