package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/repositories"
	"github.com/sagarshinde/studyhub/internal/app/taxonomy"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
	"github.com/sagarshinde/studyhub/internal/pkg/filestorage"
	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// ResourceService defines the interface for catalog and moderation
// operations. Browse reads see approved records only; moderation reads
// and transitions operate on the full collection and are admin-gated by
// the route middleware before they reach this service.
type ResourceService interface {
	Browse(ctx context.Context, filter *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error)
	GetPublished(ctx context.Context, id string) (*dto.ResourceResponse, error)
	Submit(ctx context.Context, req *dto.CreateResourceRequest, uploadedBy string, file *multipart.FileHeader) (*dto.ResourceResponse, error)
	Download(ctx context.Context, id string) (*dto.DownloadResponse, error)

	ListAll(ctx context.Context, filter *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error)
	Approve(ctx context.Context, id string) error
	Remove(ctx context.Context, id string) error
}

// resourceServiceImpl implements ResourceService
type resourceServiceImpl struct {
	catalogRepo *repositories.CatalogRepository
	fileStorage filestorage.FileStorage
	maxFileSize int64
}

// NewResourceService creates a new ResourceService
func NewResourceService(catalogRepo *repositories.CatalogRepository, fileStorage filestorage.FileStorage, maxFileSize int64) ResourceService {
	return &resourceServiceImpl{
		catalogRepo: catalogRepo,
		fileStorage: fileStorage,
		maxFileSize: maxFileSize,
	}
}

// criteriaFromRequest maps the query DTO onto filter criteria.
func criteriaFromRequest(filter *dto.ResourceFilterRequest) FilterCriteria {
	if filter == nil {
		return FilterCriteria{}
	}
	return FilterCriteria{
		Course:   models.Course(filter.Course),
		Year:     models.Year(filter.Year),
		Semester: models.Semester(filter.Semester),
		Subject:  filter.Subject,
		Type:     models.ResourceType(filter.Type),
		Search:   filter.Search,
	}
}

// Browse returns the approved records matching the filter, newest first.
// A positive limit caps the result for the latest-uploads projection.
func (s *resourceServiceImpl) Browse(ctx context.Context, filter *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error) {
	resources, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	matched := FilterResources(ApprovedOnly(resources), criteriaFromRequest(filter))
	if filter != nil && filter.Limit > 0 && filter.Limit < len(matched) {
		matched = matched[:filter.Limit]
	}

	resp := dto.NewResourceListResponse(matched)
	return &resp, nil
}

// GetPublished returns a single approved record. Pending records are
// invisible on this path.
func (s *resourceServiceImpl) GetPublished(ctx context.Context, id string) (*dto.ResourceResponse, error) {
	resource, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !resource.Approved {
		return nil, apperrors.ErrResourceNotFound
	}

	resp := dto.NewResourceResponse(resource)
	return &resp, nil
}

// validateDraft rejects a submission before the store is touched. All
// classification fields are required, the classification must be
// consistent with the taxonomy and the file must be a PDF within the
// size cap.
func (s *resourceServiceImpl) validateDraft(req *dto.CreateResourceRequest, file *multipart.FileHeader) error {
	if strings.TrimSpace(req.Title) == "" {
		return apperrors.NewValidationError("title is required")
	}
	if req.Course == "" || req.Year == "" || req.Semester == "" || req.Subject == "" {
		return apperrors.NewValidationError("course, year, semester and subject are required")
	}

	switch models.ResourceType(req.Type) {
	case models.TypeBook, models.TypeNote, models.TypePaper:
	default:
		return apperrors.NewValidationError("unknown resource type")
	}

	if !taxonomy.Validate(models.Course(req.Course), models.Year(req.Year), models.Semester(req.Semester), req.Subject) {
		return apperrors.NewCustomError(apperrors.ErrInvalidTaxonomy, "subject does not match the selected course and semester")
	}

	if file == nil {
		return apperrors.NewValidationError("file is required")
	}
	if s.maxFileSize > 0 && file.Size > s.maxFileSize {
		return apperrors.NewValidationError("file exceeds the size limit")
	}

	contentType := file.Header.Get("Content-Type")
	if contentType != "application/pdf" && !strings.EqualFold(filepath.Ext(file.Filename), ".pdf") {
		return apperrors.NewCustomError(apperrors.ErrInvalidFileType, "only PDF files are accepted")
	}

	return nil
}

// Submit validates the draft, stores the file and creates the catalog
// record. New submissions always enter as pending.
func (s *resourceServiceImpl) Submit(ctx context.Context, req *dto.CreateResourceRequest, uploadedBy string, file *multipart.FileHeader) (*dto.ResourceResponse, error) {
	if err := s.validateDraft(req, file); err != nil {
		return nil, err
	}

	fileURL, err := s.fileStorage.SaveFile(file)
	if err != nil {
		return nil, fmt.Errorf("error storing upload: %w", err)
	}

	resource, err := s.catalogRepo.Create(ctx, repositories.ResourceDraft{
		Title:      strings.TrimSpace(req.Title),
		Subject:    req.Subject,
		Course:     models.Course(req.Course),
		Year:       models.Year(req.Year),
		Semester:   models.Semester(req.Semester),
		Type:       models.ResourceType(req.Type),
		UploadedBy: uploadedBy,
		FileURL:    fileURL,
	})
	if err != nil {
		// The record never entered the catalog; drop the orphaned file
		if delErr := s.fileStorage.DeleteFile(fileURL); delErr != nil {
			logger.Warn().Err(delErr).Str("fileUrl", fileURL).Msg("Failed to clean up orphaned upload")
		}
		return nil, fmt.Errorf("error creating resource: %w", err)
	}

	logger.Info().Str("id", resource.ID).Str("title", resource.Title).Msg("Resource submitted for review")

	resp := dto.NewResourceResponse(resource)
	return &resp, nil
}

// Download increments the popularity counter and hands back the file URL.
// Only published records are downloadable.
func (s *resourceServiceImpl) Download(ctx context.Context, id string) (*dto.DownloadResponse, error) {
	resource, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !resource.Approved {
		return nil, apperrors.ErrResourceNotFound
	}

	updated, err := s.catalogRepo.IncrementDownloadCount(ctx, id)
	if err != nil {
		return nil, err
	}

	return &dto.DownloadResponse{
		FileURL:       updated.FileURL,
		DownloadCount: updated.DownloadCount,
	}, nil
}

// ListAll returns the full collection including pending records. This is
// the moderation view.
func (s *resourceServiceImpl) ListAll(ctx context.Context, filter *dto.ResourceFilterRequest) (*dto.ResourceListResponse, error) {
	resources, err := s.catalogRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing resources: %w", err)
	}

	matched := FilterResources(resources, criteriaFromRequest(filter))
	resp := dto.NewResourceListResponse(matched)
	return &resp, nil
}

// Approve publishes a pending record. Approving a published record again
// is a no-op; an absent id is a not-found error.
func (s *resourceServiceImpl) Approve(ctx context.Context, id string) error {
	if err := s.catalogRepo.SetApproved(ctx, id, true); err != nil {
		return err
	}
	logger.Info().Str("id", id).Msg("Resource approved")
	return nil
}

// Remove deletes a record in any state: reject when pending, take down
// when published. Removing an absent id succeeds (best-effort delete).
// The stored file is cleaned up when the record existed.
func (s *resourceServiceImpl) Remove(ctx context.Context, id string) error {
	resource, err := s.catalogRepo.GetByID(ctx, id)
	if err != nil {
		if err == apperrors.ErrResourceNotFound {
			return nil
		}
		return err
	}

	if err := s.catalogRepo.Remove(ctx, id); err != nil {
		return err
	}

	if err := s.fileStorage.DeleteFile(resource.FileURL); err != nil {
		logger.Warn().Err(err).Str("id", id).Msg("Failed to delete stored file for removed resource")
	}

	logger.Info().Str("id", id).Msg("Resource removed")
	return nil
}
