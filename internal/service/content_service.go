package service

import (
	"errors"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

// ContentStore is what the content services need from the repository layer.
// *repository.ContentRepository[T] satisfies it.
type ContentStore[T any] interface {
	List() ([]T, error)
	GetByID(id uint) (*T, error)
	Create(row *T) error
	Save(row *T) error
	Patch(id uint, fields map[string]interface{}) error
	Delete(id uint) error
}

// ContentService is the shared admin CRUD service for the uniform content
// collections. One instance per entity type.
type ContentService[T any] struct {
	repo ContentStore[T]
}

func NewContentService[T any](repo ContentStore[T]) *ContentService[T] {
	return &ContentService[T]{repo: repo}
}

func (s *ContentService[T]) List() ([]T, error) {
	return s.repo.List()
}

func (s *ContentService[T]) Get(id uint) (*T, error) {
	row, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *ContentService[T]) Create(row *T) error {
	return s.repo.Create(row)
}

func (s *ContentService[T]) Update(row *T) error {
	return s.repo.Save(row)
}

func (s *ContentService[T]) Patch(id uint, fields map[string]interface{}) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Patch(id, fields)
}

func (s *ContentService[T]) Delete(id uint) error {
	if _, err := s.Get(id); err != nil {
		return err
	}
	return s.repo.Delete(id)
}

// Reorder renumbers sort_order to match the submitted id order, starting at 1.
// Every row is attempted even when one fails; the first error is returned.
func (s *ContentService[T]) Reorder(ids []uint) error {
	var firstErr error
	for i, id := range ids {
		if err := s.repo.Patch(id, map[string]interface{}{"sort_order": i + 1}); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
