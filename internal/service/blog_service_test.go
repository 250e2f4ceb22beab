package service

import (
	"errors"
	"strings"
	"testing"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeBlogStore struct {
	posts  map[uint]*models.BlogPost
	nextID uint
}

func newFakeBlogStore(posts ...*models.BlogPost) *fakeBlogStore {
	f := &fakeBlogStore{posts: map[uint]*models.BlogPost{}}
	for _, p := range posts {
		f.posts[p.ID] = p
		if p.ID > f.nextID {
			f.nextID = p.ID
		}
	}
	return f
}

func (f *fakeBlogStore) List() ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range f.posts {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeBlogStore) ListPublished(limit int) ([]models.BlogPost, error) {
	var out []models.BlogPost
	for _, p := range f.posts {
		if p.Published {
			out = append(out, *p)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeBlogStore) GetByID(id uint) (*models.BlogPost, error) {
	p, ok := f.posts[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *p
	return &copied, nil
}

func (f *fakeBlogStore) GetBySlug(slug string) (*models.BlogPost, error) {
	for _, p := range f.posts {
		if p.Slug == slug {
			copied := *p
			return &copied, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeBlogStore) SlugExists(slug string, excludeID uint) (bool, error) {
	for _, p := range f.posts {
		if p.Slug == slug && p.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBlogStore) Create(post *models.BlogPost) error {
	f.nextID++
	post.ID = f.nextID
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeBlogStore) Save(post *models.BlogPost) error {
	copied := *post
	f.posts[post.ID] = &copied
	return nil
}

func (f *fakeBlogStore) Delete(id uint) error {
	delete(f.posts, id)
	return nil
}

func newTestBlogService(store *fakeBlogStore) (*BlogService, *fakeStorage) {
	storage := newFakeStorage()
	return NewBlogService(store, NewMediaService(storage, zap.NewNop().Sugar())), storage
}

func TestBlogCreateRejectsTakenSlug(t *testing.T) {
	store := newFakeBlogStore(&models.BlogPost{ID: 1, Slug: "cutting-guide"})
	svc, _ := newTestBlogService(store)

	_, err := svc.Create(models.BlogPostRequest{Title: "Another", Slug: "cutting-guide", Content: "x"})
	if !errors.Is(err, models.ErrSlugTaken) {
		t.Fatalf("err = %v, want ErrSlugTaken", err)
	}
}

func TestBlogUpdateAllowsOwnSlug(t *testing.T) {
	store := newFakeBlogStore(&models.BlogPost{ID: 1, Slug: "cutting-guide", Title: "Old"})
	svc, _ := newTestBlogService(store)

	post, err := svc.Update(1, models.BlogPostRequest{Title: "New", Slug: "cutting-guide", Content: "x"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if post.Title != "New" {
		t.Errorf("Title = %q", post.Title)
	}
}

func TestBlogPublishedBySlugHidesDrafts(t *testing.T) {
	store := newFakeBlogStore(
		&models.BlogPost{ID: 1, Slug: "draft-post", Published: false},
		&models.BlogPost{ID: 2, Slug: "live-post", Published: true},
	)
	svc, _ := newTestBlogService(store)

	if _, err := svc.GetPublishedBySlug("draft-post"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("draft err = %v, want ErrNotFound", err)
	}
	if _, err := svc.GetPublishedBySlug("missing"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("missing err = %v, want ErrNotFound", err)
	}

	post, err := svc.GetPublishedBySlug("live-post")
	if err != nil || post.ID != 2 {
		t.Fatalf("live post: %v %v", post, err)
	}
}

func TestBlogUploadCoverReplacesOldBinary(t *testing.T) {
	store := newFakeBlogStore(&models.BlogPost{ID: 1, Slug: "p", Image: "https://cdn.test/blog/old.png"})
	svc, storage := newTestBlogService(store)
	storage.objects["blog/old.png"] = []byte("old")

	post, err := svc.UploadCover(1, "new.png", strings.NewReader("new"), "image/png")
	if err != nil {
		t.Fatalf("UploadCover: %v", err)
	}

	if post.Image == "https://cdn.test/blog/old.png" {
		t.Fatal("cover URL not replaced")
	}
	if _, ok := storage.objects["blog/old.png"]; ok {
		t.Fatal("old cover binary not removed")
	}
}
