package repository

import (
	"errors"

	"go-restaurant-ws/internal/model"

	"gorm.io/gorm"
)

type tableRepo struct {
	db *gorm.DB
}

func NewTableRepo(db *gorm.DB) TableRepository {
	return &tableRepo{db}
}

func (r *tableRepo) Create(table *model.Table) error {
	return r.db.Create(table).Error
}

func (r *tableRepo) FindAll() ([]model.Table, error) {
	var tables []model.Table
	err := r.db.Order("id ASC").Find(&tables).Error
	return tables, err
}

func (r *tableRepo) FindByID(id int) (*model.Table, error) {
	var table model.Table
	err := r.db.First(&table, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	return &table, err
}

func (r *tableRepo) Update(table *model.Table) error {
	res := r.db.Save(table)
	if res.Error != nil {
		return res.Error
	}
	return nil
}

func (r *tableRepo) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Table{}).Count(&count).Error
	return count, err
}
