package repository

import (
	"go-restaurant-ws/internal/model"

	"gorm.io/gorm"
)

type movementRepo struct {
	db *gorm.DB
}

func NewMovementRepo(db *gorm.DB) StockMovementRepository {
	return &movementRepo{db}
}

func (r *movementRepo) Create(movement *model.StockMovement) error {
	return r.db.Create(movement).Error
}

func (r *movementRepo) FindAll() ([]model.StockMovement, error) {
	var movements []model.StockMovement
	err := r.db.Find(&movements).Error
	return movements, err
}

func (r *movementRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.StockMovement{}).Count(&count).Error
	return count, err
}
