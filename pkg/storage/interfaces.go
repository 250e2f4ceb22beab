package storage

import "io"

// StorageService is the object-store contract the content managers depend on.
type StorageService interface {
	Upload(key string, reader io.Reader, contentType string) error
	Delete(key string) error
	PublicURL(key string) string
}
