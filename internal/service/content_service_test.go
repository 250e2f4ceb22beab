package service

import (
	"errors"
	"testing"

	"github.com/fitfolio/fitfolio-backend/internal/models"
)

func newFAQStore(ids ...uint) *fakeContentStore[models.FAQ] {
	store := newFakeContentStore(func(row *models.FAQ, id uint) { row.ID = id })
	for _, id := range ids {
		store.add(id, &models.FAQ{ID: id})
	}
	return store
}

func TestContentServiceGetNotFound(t *testing.T) {
	svc := NewContentService[models.FAQ](newFAQStore())

	if _, err := svc.Get(9); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReorderRenumbersInSubmittedOrder(t *testing.T) {
	store := newFAQStore(1, 2, 3)
	svc := NewContentService[models.FAQ](store)

	if err := svc.Reorder([]uint{3, 1, 2}); err != nil {
		t.Fatalf("Reorder: %v", err)
	}

	want := map[uint]int{3: 1, 1: 2, 2: 3}
	for id, pos := range want {
		patches := store.patches[id]
		if len(patches) != 1 {
			t.Fatalf("id %d: %d patches", id, len(patches))
		}
		if got := patches[0]["sort_order"]; got != pos {
			t.Errorf("id %d: sort_order = %v, want %d", id, got, pos)
		}
	}
}

func TestReorderContinuesPastFailedRow(t *testing.T) {
	store := newFAQStore(1, 2, 3)
	store.failPatch[1] = errStoreDown
	svc := NewContentService[models.FAQ](store)

	err := svc.Reorder([]uint{3, 1, 2})
	if !errors.Is(err, errStoreDown) {
		t.Fatalf("err = %v, want store error", err)
	}

	// The rows after the failed one are still renumbered.
	if got := store.patches[2]; len(got) != 1 || got[0]["sort_order"] != 3 {
		t.Errorf("id 2 patches = %v, want sort_order 3", got)
	}
}

func TestContentServiceDeleteMissing(t *testing.T) {
	svc := NewContentService[models.FAQ](newFAQStore(1))

	if err := svc.Delete(2); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if err := svc.Delete(1); err != nil {
		t.Fatalf("Delete: %v", err)
	}
}
