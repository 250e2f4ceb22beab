package repository

import (
	"gorm.io/gorm"
)

// ContentRepository is the shared CRUD access for the uniform content
// collections. The concrete entity type picks the table, orderBy picks the
// collection's natural display order.
type ContentRepository[T any] struct {
	db      *gorm.DB
	orderBy string
}

func NewContentRepository[T any](db *gorm.DB, orderBy string) *ContentRepository[T] {
	return &ContentRepository[T]{
		db:      db,
		orderBy: orderBy,
	}
}

func (r *ContentRepository[T]) List() ([]T, error) {
	var rows []T
	err := r.db.Order(r.orderBy).Find(&rows).Error
	return rows, err
}

func (r *ContentRepository[T]) GetByID(id uint) (*T, error) {
	var row T
	err := r.db.First(&row, id).Error
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *ContentRepository[T]) Create(row *T) error {
	return r.db.Create(row).Error
}

func (r *ContentRepository[T]) Save(row *T) error {
	return r.db.Save(row).Error
}

// Patch updates only the given columns. Keys are column names.
func (r *ContentRepository[T]) Patch(id uint, fields map[string]interface{}) error {
	return r.db.Model(new(T)).Where("id = ?", id).Updates(fields).Error
}

func (r *ContentRepository[T]) Delete(id uint) error {
	return r.db.Delete(new(T), id).Error
}

func (r *ContentRepository[T]) Count() (int64, error) {
	var count int64
	err := r.db.Model(new(T)).Count(&count).Error
	return count, err
}
