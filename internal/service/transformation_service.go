package service

import (
	"errors"
	"io"

	"github.com/fitfolio/fitfolio-backend/internal/models"
	"gorm.io/gorm"
)

// TransformationUpload carries the two image files of a before/after pair.
type TransformationUpload struct {
	ClientName  string
	Description string

	BeforeFilename    string
	BeforeContent     io.Reader
	BeforeContentType string

	AfterFilename    string
	AfterContent     io.Reader
	AfterContentType string
}

type TransformationService struct {
	repo  ContentStore[models.Transformation]
	media *MediaService
}

func NewTransformationService(repo ContentStore[models.Transformation], media *MediaService) *TransformationService {
	return &TransformationService{
		repo:  repo,
		media: media,
	}
}

func (s *TransformationService) List() ([]models.Transformation, error) {
	return s.repo.List()
}

// Create uploads both images before touching the database. If the second
// upload or the insert fails, already-stored binaries are removed again.
func (s *TransformationService) Create(up TransformationUpload) (*models.Transformation, error) {
	beforeURL, err := s.media.Upload("transformations", up.BeforeFilename, up.BeforeContent, up.BeforeContentType)
	if err != nil {
		return nil, err
	}

	afterURL, err := s.media.Upload("transformations", up.AfterFilename, up.AfterContent, up.AfterContentType)
	if err != nil {
		s.media.Remove(beforeURL)
		return nil, err
	}

	row := &models.Transformation{
		ClientName:  up.ClientName,
		Description: up.Description,
		BeforeImage: beforeURL,
		AfterImage:  afterURL,
	}
	if err := s.repo.Create(row); err != nil {
		s.media.Remove(beforeURL)
		s.media.Remove(afterURL)
		return nil, err
	}
	return row, nil
}

func (s *TransformationService) Delete(id uint) error {
	row, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.ErrNotFound
		}
		return err
	}

	s.media.Remove(row.BeforeImage)
	s.media.Remove(row.AfterImage)
	return s.repo.Delete(id)
}
