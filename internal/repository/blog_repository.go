package repository

import (
	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

type BlogRepository struct {
	db *gorm.DB
}

func NewBlogRepository(db *gorm.DB) *BlogRepository {
	return &BlogRepository{db: db}
}

func (r *BlogRepository) List() ([]models.BlogPost, error) {
	var posts []models.BlogPost
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// ListPublished returns published posts, newest first. limit <= 0 means all.
func (r *BlogRepository) ListPublished(limit int) ([]models.BlogPost, error) {
	var posts []models.BlogPost
	q := r.db.Where("published = ?", true).Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	err := q.Find(&posts).Error
	return posts, err
}

func (r *BlogRepository) GetByID(id uint) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.First(&post, id).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *BlogRepository) GetBySlug(slug string) (*models.BlogPost, error) {
	var post models.BlogPost
	err := r.db.Where("slug = ?", slug).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugExists checks slug uniqueness, ignoring the row being edited.
func (r *BlogRepository) SlugExists(slug string, excludeID uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.BlogPost{}).
		Where("slug = ? AND id <> ?", slug, excludeID).
		Count(&count).Error
	return count > 0, err
}

func (r *BlogRepository) Create(post *models.BlogPost) error {
	return r.db.Create(post).Error
}

func (r *BlogRepository) Save(post *models.BlogPost) error {
	return r.db.Save(post).Error
}

func (r *BlogRepository) Delete(id uint) error {
	return r.db.Delete(&models.BlogPost{}, id).Error
}
