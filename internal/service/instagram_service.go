package service

import (
	"errors"
	"io"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

// InstagramUpload is an embedded post link with an optional thumbnail file.
type InstagramUpload struct {
	URL     string
	Type    string
	Caption string

	ThumbnailFilename    string
	ThumbnailContent     io.Reader
	ThumbnailContentType string
}

type InstagramService struct {
	repo  ContentStore[models.InstagramPost]
	media *MediaService
}

func NewInstagramService(repo ContentStore[models.InstagramPost], media *MediaService) *InstagramService {
	return &InstagramService{
		repo:  repo,
		media: media,
	}
}

func (s *InstagramService) List() ([]models.InstagramPost, error) {
	return s.repo.List()
}

func (s *InstagramService) Create(up InstagramUpload) (*models.InstagramPost, error) {
	post := &models.InstagramPost{
		URL:     up.URL,
		Type:    up.Type,
		Caption: up.Caption,
	}
	if post.Type == "" {
		post.Type = "post"
	}

	if up.ThumbnailContent != nil {
		url, err := s.media.Upload("instagram", up.ThumbnailFilename, up.ThumbnailContent, up.ThumbnailContentType)
		if err != nil {
			return nil, err
		}
		post.Thumbnail = url
	}

	if err := s.repo.Create(post); err != nil {
		s.media.Remove(post.Thumbnail)
		return nil, err
	}
	return post, nil
}

func (s *InstagramService) Delete(id uint) error {
	post, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	s.media.Remove(post.Thumbnail)
	return s.repo.Delete(id)
}
