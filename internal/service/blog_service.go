package service

import (
	"errors"
	"io"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

// blogStore is the slice of BlogRepository the service needs.
type blogStore interface {
	List() ([]models.BlogPost, error)
	ListPublished(limit int) ([]models.BlogPost, error)
	GetByID(id uint) (*models.BlogPost, error)
	GetBySlug(slug string) (*models.BlogPost, error)
	SlugExists(slug string, excludeID uint) (bool, error)
	Create(post *models.BlogPost) error
	Save(post *models.BlogPost) error
	Delete(id uint) error
}

type BlogService struct {
	repo  blogStore
	media *MediaService
}

func NewBlogService(repo blogStore, media *MediaService) *BlogService {
	return &BlogService{
		repo:  repo,
		media: media,
	}
}

func (s *BlogService) List() ([]models.BlogPost, error) {
	return s.repo.List()
}

func (s *BlogService) ListPublished(limit int) ([]models.BlogPost, error) {
	return s.repo.ListPublished(limit)
}

// GetPublishedBySlug serves the public article page. Drafts read as missing.
func (s *BlogService) GetPublishedBySlug(slug string) (*models.BlogPost, error) {
	post, err := s.repo.GetBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	if !post.Published {
		return nil, models.ErrNotFound
	}
	return post, nil
}

func (s *BlogService) Get(id uint) (*models.BlogPost, error) {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Create(req models.BlogPostRequest) (*models.BlogPost, error) {
	taken, err := s.repo.SlugExists(req.Slug, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrSlugTaken
	}

	post := &models.BlogPost{
		Title:     req.Title,
		Slug:      req.Slug,
		Excerpt:   req.Excerpt,
		Content:   req.Content,
		Category:  req.Category,
		Published: req.Published,
	}
	if err := s.repo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *BlogService) Update(id uint, req models.BlogPostRequest) (*models.BlogPost, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	taken, err := s.repo.SlugExists(req.Slug, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, models.ErrSlugTaken
	}

	post.Title = req.Title
	post.Slug = req.Slug
	post.Excerpt = req.Excerpt
	post.Content = req.Content
	post.Category = req.Category
	post.Published = req.Published

	if err := s.repo.Save(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UploadCover replaces the post's cover image; the previous binary is removed
// best effort after the row points at the new one.
func (s *BlogService) UploadCover(id uint, filename string, src io.Reader, contentType string) (*models.BlogPost, error) {
	post, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	url, err := s.media.Upload("blog", filename, src, contentType)
	if err != nil {
		return nil, err
	}

	old := post.Image
	post.Image = url
	if err := s.repo.Save(post); err != nil {
		s.media.Remove(url)
		return nil, err
	}

	s.media.Remove(old)
	return post, nil
}

func (s *BlogService) Delete(id uint) error {
	post, err := s.Get(id)
	if err != nil {
		return err
	}

	s.media.Remove(post.Image)
	return s.repo.Delete(id)
}
