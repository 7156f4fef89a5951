package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"go-restaurant-ws/internal/model"
	"go-restaurant-ws/internal/repository"
	"go-restaurant-ws/internal/ws"
	"go-restaurant-ws/pkg/validator"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

type InventoryService interface {
	ListProducts(filter repository.ProductFilter) ([]model.ProductResponse, error)
	CreateProduct(req *model.Product) (*model.Product, error)
	UpdateProduct(id string, req *model.Product) (*model.Product, error)
	DeleteProduct(id string) error
	ListMovements() ([]model.StockMovement, error)
}

type inventoryService struct {
	productRepo  repository.ProductRepository
	movementRepo repository.StockMovementRepository
	wsHub        *ws.Hub
}

func NewInventoryService(pRepo repository.ProductRepository, mRepo repository.StockMovementRepository, hub *ws.Hub) InventoryService {
	return &inventoryService{
		productRepo:  pRepo,
		movementRepo: mRepo,
		wsHub:        hub,
	}
}

// ListProducts attaches the derived low-stock flag to every returned row.
func (s *inventoryService) ListProducts(filter repository.ProductFilter) ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAll(filter)
	if err != nil {
		return nil, err
	}
	out := make([]model.ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, products[i].ToResponse())
	}
	return out, nil
}

func (s *inventoryService) CreateProduct(req *model.Product) (*model.Product, error) {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return nil, fmt.Errorf("validation failed: field '%s' failed on tag '%s'", firstErr.FailedField, firstErr.Tag)
	}

	count, err := s.productRepo.Count()
	if err != nil {
		return nil, err
	}
	req.ID = strconv.FormatInt(count+1, 10)
	req.LastUpdated = time.Now().Format("2006-01-02")

	if err := s.productRepo.Create(req); err != nil {
		return nil, err
	}

	s.wsHub.Send(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_created",
		"product": map[string]interface{}{
			"id":       req.ID,
			"name":     req.Name,
			"stock":    req.Stock,
			"category": req.Category,
		},
		"message": fmt.Sprintf("Product '%s' created", req.Name),
	})

	return req, nil
}

// UpdateProduct replaces the full record. A change in stock level also
// writes a stock movement audit row carrying the direction and magnitude.
func (s *inventoryService) UpdateProduct(id string, req *model.Product) (*model.Product, error) {
	existing, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	oldStock := existing.Stock

	existing.Name = req.Name
	existing.Price = req.Price
	existing.Stock = req.Stock
	existing.MinStock = req.MinStock
	existing.Unit = req.Unit
	existing.Category = req.Category
	existing.LastUpdated = time.Now().Format("2006-01-02")

	if err := s.productRepo.Update(existing); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	if existing.Stock != oldStock {
		if err := s.recordMovement(existing, oldStock); err != nil {
			return nil, err
		}
	}

	s.wsHub.Send(map[string]interface{}{
		"type":   "stock_update",
		"action": "product_updated",
		"product": map[string]interface{}{
			"id":        existing.ID,
			"name":      existing.Name,
			"old_stock": oldStock,
			"new_stock": existing.Stock,
			"low_stock": existing.LowStock(),
		},
		"message": fmt.Sprintf("Product '%s' updated", existing.Name),
	})

	return existing, nil
}

func (s *inventoryService) recordMovement(product *model.Product, oldStock int) error {
	delta := product.Stock - oldStock
	movementType := model.MovementIn
	if delta < 0 {
		movementType = model.MovementOut
		delta = -delta
	}

	count, err := s.movementRepo.Count()
	if err != nil {
		return err
	}

	return s.movementRepo.Create(&model.StockMovement{
		ID:        strconv.FormatInt(count+1, 10),
		ProductID: product.ID,
		Type:      movementType,
		Quantity:  delta,
		Reason:    "manual adjustment",
		Date:      time.Now().Format("2006-01-02"),
	})
}

func (s *inventoryService) DeleteProduct(id string) error {
	if err := s.productRepo.Delete(id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	s.wsHub.Send(map[string]interface{}{
		"type":    "stock_update",
		"action":  "product_deleted",
		"product": map[string]interface{}{"id": id},
	})

	return nil
}

func (s *inventoryService) ListMovements() ([]model.StockMovement, error) {
	return s.movementRepo.FindAll()
}
