package service

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"github.com/fitfolio/fitfolio-backend/pkg/storage"
	"github.com/fitfolio/fitfolio-backend/pkg/utils"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MediaService handles the upload-then-link flow shared by all image-backed
// collections: the binary goes to object storage first, the caller links the
// returned public URL into a database row afterwards.
type MediaService struct {
	storage storage.StorageService
	logger  *zap.SugaredLogger
}

func NewMediaService(store storage.StorageService, logger *zap.SugaredLogger) *MediaService {
	return &MediaService{
		storage: store,
		logger:  logger,
	}
}

// Upload stores the file under a fresh key in the given folder and returns
// the public URL to link. Only image content types are accepted.
func (s *MediaService) Upload(folder, filename string, src io.Reader, contentType string) (string, error) {
	if !utils.IsSupportedImageType(contentType) {
		return "", models.ErrUnsupportedImageType
	}

	ext := strings.ToLower(filepath.Ext(filename))
	key := fmt.Sprintf("%s/%s%s", folder, uuid.New().String(), ext)

	if err := s.storage.Upload(key, src, contentType); err != nil {
		return "", err
	}
	return s.storage.PublicURL(key), nil
}

// Remove deletes the object behind a public URL. Deletion is best effort:
// failures are logged and swallowed so the database row can still go away.
func (s *MediaService) Remove(publicURL string) {
	if publicURL == "" {
		return
	}

	base := s.storage.PublicURL("")
	if !strings.HasPrefix(publicURL, base) {
		s.logger.Warnw("skipping delete of foreign media URL", "url", publicURL)
		return
	}

	key := strings.TrimPrefix(publicURL, base)
	if err := s.storage.Delete(key); err != nil {
		s.logger.Errorw("failed to delete media object", "key", key, "error", err)
	}
}
