package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"go.uber.org/zap"
)

func TestTransformationCreateUploadsBothImages(t *testing.T) {
	store := newFakeContentStore(func(row *models.Transformation, id uint) { row.ID = id })
	storage := newFakeStorage()
	svc := NewTransformationService(store, NewMediaService(storage, zap.NewNop().Sugar()))

	row, err := svc.Create(TransformationUpload{
		ClientName:        "Rahul",
		BeforeFilename:    "before.jpg",
		BeforeContent:     strings.NewReader("b"),
		BeforeContentType: "image/jpeg",
		AfterFilename:     "after.jpg",
		AfterContent:      strings.NewReader("a"),
		AfterContentType:  "image/jpeg",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if len(storage.objects) != 2 {
		t.Fatalf("expected two stored objects, got %d", len(storage.objects))
	}
	if row.BeforeImage == row.AfterImage {
		t.Fatal("before and after must get distinct keys")
	}
	for _, u := range []string{row.BeforeImage, row.AfterImage} {
		if !strings.HasPrefix(u, "https://cdn.test/transformations/") {
			t.Errorf("image URL = %q", u)
		}
	}
}

func TestTransformationCreateCleansUpOnInsertFailure(t *testing.T) {
	store := newFakeContentStore(func(row *models.Transformation, id uint) { row.ID = id })
	store.failCreate = errStoreDown
	storage := newFakeStorage()
	svc := NewTransformationService(store, NewMediaService(storage, zap.NewNop().Sugar()))

	_, err := svc.Create(TransformationUpload{
		BeforeFilename: "b.jpg", BeforeContent: strings.NewReader("b"), BeforeContentType: "image/jpeg",
		AfterFilename: "a.jpg", AfterContent: strings.NewReader("a"), AfterContentType: "image/jpeg",
	})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("err = %v, want store error", err)
	}
	if len(storage.objects) != 0 {
		t.Fatalf("orphaned binaries left: %v", storage.objects)
	}
}

func TestTransformationDeleteRemovesBothImages(t *testing.T) {
	store := newFakeContentStore(func(row *models.Transformation, id uint) { row.ID = id })
	store.add(1, &models.Transformation{
		ID:          1,
		BeforeImage: "https://cdn.test/transformations/b.jpg",
		AfterImage:  "https://cdn.test/transformations/a.jpg",
	})
	storage := newFakeStorage()
	svc := NewTransformationService(store, NewMediaService(storage, zap.NewNop().Sugar()))

	if err := svc.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(storage.deleted) != 2 {
		t.Fatalf("deleted = %v, want both keys", storage.deleted)
	}
}
