package models

import (
	"time"
)

// Well-known setting keys read by the public site.
const (
	SettingWhatsAppNumber = "whatsapp_number"
	SettingGreetingImage  = "greeting_image"
	SettingStatYears      = "stat_years"
	SettingStatClients    = "stat_clients"
	SettingStatEvents     = "stat_events"
	SettingStatPrograms   = "stat_programs"
)

// SiteSetting is a key/value row for singleton site configuration.
type SiteSetting struct {
	Key       string    `json:"key" gorm:"primaryKey"`
	Value     string    `json:"value" gorm:"not null"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SiteSettingRequest struct {
	Key   string `json:"key" validate:"required"`
	Value string `json:"value"`
}
