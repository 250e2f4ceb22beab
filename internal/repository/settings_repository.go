package repository

import (
	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) List() ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	err := r.db.Order("key").Find(&settings).Error
	return settings, err
}

func (r *SettingsRepository) Get(key string) (*models.SiteSetting, error) {
	var setting models.SiteSetting
	err := r.db.Where("key = ?", key).First(&setting).Error
	if err != nil {
		return nil, err
	}
	return &setting, nil
}

func (r *SettingsRepository) GetMany(keys []string) ([]models.SiteSetting, error) {
	var settings []models.SiteSetting
	err := r.db.Where("key IN ?", keys).Find(&settings).Error
	return settings, err
}

// Upsert inserts the key or overwrites its value.
func (r *SettingsRepository) Upsert(setting *models.SiteSetting) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(setting).Error
}

func (r *SettingsRepository) Delete(key string) error {
	return r.db.Where("key = ?", key).Delete(&models.SiteSetting{}).Error
}
