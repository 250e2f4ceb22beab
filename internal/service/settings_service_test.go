package service

import (
	"strings"
	"testing"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeSettingsAdminStore struct {
	values map[string]string
}

func (f *fakeSettingsAdminStore) List() ([]models.SiteSetting, error) {
	var out []models.SiteSetting
	for k, v := range f.values {
		out = append(out, models.SiteSetting{Key: k, Value: v})
	}
	return out, nil
}

func (f *fakeSettingsAdminStore) Get(key string) (*models.SiteSetting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.SiteSetting{Key: key, Value: v}, nil
}

func (f *fakeSettingsAdminStore) Upsert(setting *models.SiteSetting) error {
	f.values[setting.Key] = setting.Value
	return nil
}

func TestSettingsSetStripsWhatsAppNumber(t *testing.T) {
	store := &fakeSettingsAdminStore{values: map[string]string{}}
	svc := NewSettingsService(store, NewMediaService(newFakeStorage(), zap.NewNop().Sugar()))

	setting, err := svc.Set(models.SettingWhatsAppNumber, "+91 98765-43210")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if setting.Value != "919876543210" {
		t.Errorf("stored number = %q, want digits only", setting.Value)
	}

	// Other keys are stored verbatim.
	setting, err = svc.Set(models.SettingStatYears, "8+")
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	if setting.Value != "8+" {
		t.Errorf("stat value = %q, want verbatim", setting.Value)
	}
}

func TestUploadGreetingImageReplacesOld(t *testing.T) {
	storage := newFakeStorage()
	storage.objects["settings/old.png"] = []byte("old")
	store := &fakeSettingsAdminStore{values: map[string]string{
		models.SettingGreetingImage: "https://cdn.test/settings/old.png",
	}}
	svc := NewSettingsService(store, NewMediaService(storage, zap.NewNop().Sugar()))

	setting, err := svc.UploadGreetingImage("greeting.png", strings.NewReader("new"), "image/png")
	if err != nil {
		t.Fatalf("UploadGreetingImage: %v", err)
	}

	if !strings.HasPrefix(setting.Value, "https://cdn.test/settings/") {
		t.Errorf("greeting image URL = %q", setting.Value)
	}
	if _, ok := storage.objects["settings/old.png"]; ok {
		t.Fatal("old greeting image binary not removed")
	}
	if store.values[models.SettingGreetingImage] != setting.Value {
		t.Errorf("setting not updated: %q", store.values[models.SettingGreetingImage])
	}
}
