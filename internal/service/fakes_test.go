package service

import (
	"errors"
	"io"
	"strings"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

// fakeContentStore is an in-memory ContentStore for tests.
type fakeContentStore[T any] struct {
	rows    map[uint]*T
	order   []uint
	nextID  uint
	setID   func(row *T, id uint)
	patches map[uint][]map[string]interface{}

	failPatch  map[uint]error
	failCreate error
}

func newFakeContentStore[T any](setID func(row *T, id uint)) *fakeContentStore[T] {
	return &fakeContentStore[T]{
		rows:      map[uint]*T{},
		setID:     setID,
		patches:   map[uint][]map[string]interface{}{},
		failPatch: map[uint]error{},
	}
}

func (f *fakeContentStore[T]) add(id uint, row *T) {
	f.rows[id] = row
	f.order = append(f.order, id)
	if id > f.nextID {
		f.nextID = id
	}
}

func (f *fakeContentStore[T]) List() ([]T, error) {
	out := make([]T, 0, len(f.order))
	for _, id := range f.order {
		out = append(out, *f.rows[id])
	}
	return out, nil
}

func (f *fakeContentStore[T]) GetByID(id uint) (*T, error) {
	row, ok := f.rows[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *row
	return &copied, nil
}

func (f *fakeContentStore[T]) Create(row *T) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.nextID++
	if f.setID != nil {
		f.setID(row, f.nextID)
	}
	copied := *row
	f.add(f.nextID, &copied)
	return nil
}

func (f *fakeContentStore[T]) Save(row *T) error {
	return nil
}

func (f *fakeContentStore[T]) Patch(id uint, fields map[string]interface{}) error {
	if err := f.failPatch[id]; err != nil {
		return err
	}
	f.patches[id] = append(f.patches[id], fields)
	return nil
}

func (f *fakeContentStore[T]) Delete(id uint) error {
	if _, ok := f.rows[id]; !ok {
		return nil
	}
	delete(f.rows, id)
	for i, v := range f.order {
		if v == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return nil
}

// fakeCouponStore implements couponStore.
type fakeCouponStore struct {
	coupons map[string]*models.Coupon
	usage   map[uint]int
}

func newFakeCouponStore(coupons ...*models.Coupon) *fakeCouponStore {
	f := &fakeCouponStore{
		coupons: map[string]*models.Coupon{},
		usage:   map[uint]int{},
	}
	for _, c := range coupons {
		f.coupons[c.Code] = c
	}
	return f
}

func (f *fakeCouponStore) GetByCode(code string) (*models.Coupon, error) {
	c, ok := f.coupons[strings.ToUpper(strings.TrimSpace(code))]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCouponStore) SetUsageCount(id uint, count int) error {
	f.usage[id] = count
	return nil
}

// fakeCouponAdminStore implements couponAdminStore.
type fakeCouponAdminStore struct {
	byID   map[uint]*models.Coupon
	nextID uint
}

func newFakeCouponAdminStore(coupons ...*models.Coupon) *fakeCouponAdminStore {
	f := &fakeCouponAdminStore{byID: map[uint]*models.Coupon{}}
	for _, c := range coupons {
		f.byID[c.ID] = c
		if c.ID > f.nextID {
			f.nextID = c.ID
		}
	}
	return f
}

func (f *fakeCouponAdminStore) List() ([]models.Coupon, error) {
	out := make([]models.Coupon, 0, len(f.byID))
	for _, c := range f.byID {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCouponAdminStore) GetByID(id uint) (*models.Coupon, error) {
	c, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *c
	return &copied, nil
}

func (f *fakeCouponAdminStore) Create(coupon *models.Coupon) error {
	f.nextID++
	coupon.ID = f.nextID
	copied := *coupon
	f.byID[coupon.ID] = &copied
	return nil
}

func (f *fakeCouponAdminStore) Save(coupon *models.Coupon) error {
	copied := *coupon
	f.byID[coupon.ID] = &copied
	return nil
}

func (f *fakeCouponAdminStore) Delete(id uint) error {
	delete(f.byID, id)
	return nil
}

// fakeSettingsStore implements settingsStore.
type fakeSettingsStore struct {
	values map[string]string
}

func (f *fakeSettingsStore) Get(key string) (*models.SiteSetting, error) {
	v, ok := f.values[key]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &models.SiteSetting{Key: key, Value: v}, nil
}

// fakeStorage implements storage.StorageService in memory.
type fakeStorage struct {
	objects    map[string][]byte
	deleted    []string
	failUpload error
	failDelete error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{objects: map[string][]byte{}}
}

func (f *fakeStorage) Upload(key string, reader io.Reader, contentType string) error {
	if f.failUpload != nil {
		return f.failUpload
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[key] = data
	return nil
}

func (f *fakeStorage) Delete(key string) error {
	f.deleted = append(f.deleted, key)
	if f.failDelete != nil {
		return f.failDelete
	}
	delete(f.objects, key)
	return nil
}

func (f *fakeStorage) PublicURL(key string) string {
	return "https://cdn.test/" + key
}

var errStoreDown = errors.New("store unavailable")

func onlyKey[T any](t interface{ Fatalf(string, ...interface{}) }, m map[string]T) string {
	if len(m) != 1 {
		t.Fatalf("expected exactly one object, got %d", len(m))
	}
	for k := range m {
		return k
	}
	return ""
}
