package service

import (
	"errors"
	"io"
	"sort"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

type GalleryService struct {
	repo  ContentStore[models.GalleryPhoto]
	media *MediaService
}

func NewGalleryService(repo ContentStore[models.GalleryPhoto], media *MediaService) *GalleryService {
	return &GalleryService{
		repo:  repo,
		media: media,
	}
}

// List returns photos newest first, optionally filtered by category. Pinned
// photos lead regardless of age.
func (s *GalleryService) List(category string) ([]models.GalleryPhoto, error) {
	photos, err := s.repo.List()
	if err != nil {
		return nil, err
	}

	if category != "" {
		filtered := photos[:0]
		for _, p := range photos {
			if p.Category == category {
				filtered = append(filtered, p)
			}
		}
		photos = filtered
	}

	sort.SliceStable(photos, func(i, j int) bool {
		return photos[i].Pinned && !photos[j].Pinned
	})
	return photos, nil
}

// Upload stores the image binary first and only then creates the row, so a
// failed upload never leaves a dangling record.
func (s *GalleryService) Upload(filename string, src io.Reader, contentType, category, alt string) (*models.GalleryPhoto, error) {
	url, err := s.media.Upload("gallery", filename, src, contentType)
	if err != nil {
		return nil, err
	}

	photo := &models.GalleryPhoto{
		Src:      url,
		Category: category,
		Alt:      alt,
	}
	if photo.Category == "" {
		photo.Category = "fitness"
	}

	if err := s.repo.Create(photo); err != nil {
		s.media.Remove(url)
		return nil, err
	}
	return photo, nil
}

// Patch updates only the submitted fields.
func (s *GalleryService) Patch(id uint, patch models.GalleryPhotoPatch) (*models.GalleryPhoto, error) {
	fields := map[string]interface{}{}
	if patch.Category != nil {
		fields["category"] = *patch.Category
	}
	if patch.Alt != nil {
		fields["alt"] = *patch.Alt
	}
	if patch.Pinned != nil {
		fields["pinned"] = *patch.Pinned
	}

	if len(fields) > 0 {
		if err := s.repo.Patch(id, fields); err != nil {
			return nil, err
		}
	}

	photo, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return photo, nil
}

// Delete removes the stored binary best effort, then the row.
func (s *GalleryService) Delete(id uint) error {
	photo, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	s.media.Remove(photo.Src)
	return s.repo.Delete(id)
}
