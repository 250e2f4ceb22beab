package service

import (
	"errors"
	"io"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/pkg/whatsapp"
	"gorm.io/gorm"
)

// settingsAdminStore is the slice of SettingsRepository the admin settings
// service needs.
type settingsAdminStore interface {
	List() ([]models.SiteSetting, error)
	Get(key string) (*models.SiteSetting, error)
	Upsert(setting *models.SiteSetting) error
}

type SettingsService struct {
	repo  settingsAdminStore
	media *MediaService
}

func NewSettingsService(repo settingsAdminStore, media *MediaService) *SettingsService {
	return &SettingsService{
		repo:  repo,
		media: media,
	}
}

func (s *SettingsService) List() ([]models.SiteSetting, error) {
	return s.repo.List()
}

func (s *SettingsService) Get(key string) (*models.SiteSetting, error) {
	setting, err := s.repo.Get(key)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrNotFound
		}
		return nil, err
	}
	return setting, nil
}

// Set upserts a key. The WhatsApp number is stripped down to digits before it
// is stored so wa.me links never carry formatting.
func (s *SettingsService) Set(key, value string) (*models.SiteSetting, error) {
	if key == models.SettingWhatsAppNumber {
		value = whatsapp.StripNumber(value)
	}

	setting := &models.SiteSetting{Key: key, Value: value}
	if err := s.repo.Upsert(setting); err != nil {
		return nil, err
	}
	return setting, nil
}

// UploadGreetingImage stores the landing page greeting image and points the
// greeting_image setting at it. The previous image is removed best effort.
func (s *SettingsService) UploadGreetingImage(filename string, src io.Reader, contentType string) (*models.SiteSetting, error) {
	url, err := s.media.Upload("settings", filename, src, contentType)
	if err != nil {
		return nil, err
	}

	var old string
	if prev, err := s.repo.Get(models.SettingGreetingImage); err == nil {
		old = prev.Value
	}

	setting := &models.SiteSetting{Key: models.SettingGreetingImage, Value: url}
	if err := s.repo.Upsert(setting); err != nil {
		s.media.Remove(url)
		return nil, err
	}

	s.media.Remove(old)
	return setting, nil
}
