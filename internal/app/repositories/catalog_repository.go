package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
	"github.com/sagarshinde/studyhub/internal/pkg/kvstore"
	"github.com/sagarshinde/studyhub/internal/pkg/logger"
)

// CatalogRepository owns the resource collection. The whole collection is
// one document under the "resources" key: every mutation loads it,
// applies the change and persists the full updated sequence before
// returning. Reads always see the latest completed mutation from this
// instance.
type CatalogRepository struct {
	store kvstore.Store
}

// NewCatalogRepository creates a new CatalogRepository.
func NewCatalogRepository(store kvstore.Store) *CatalogRepository {
	return &CatalogRepository{store: store}
}

// load reads the full collection. An absent key is an empty catalog.
func (r *CatalogRepository) load(ctx context.Context) ([]models.Resource, error) {
	raw, err := r.store.Get(ctx, kvstore.KeyResources)
	if err != nil {
		if err == kvstore.ErrKeyNotFound {
			return []models.Resource{}, nil
		}
		logger.Error().Err(err).Msg("Error loading resource collection")
		return nil, fmt.Errorf("failed to load resources: %w", err)
	}

	var resources []models.Resource
	if err := json.Unmarshal(raw, &resources); err != nil {
		return nil, fmt.Errorf("failed to decode resources: %w", err)
	}
	return resources, nil
}

// save persists the full collection synchronously.
func (r *CatalogRepository) save(ctx context.Context, resources []models.Resource) error {
	raw, err := json.Marshal(resources)
	if err != nil {
		return fmt.Errorf("failed to encode resources: %w", err)
	}
	if err := r.store.Set(ctx, kvstore.KeyResources, raw); err != nil {
		logger.Error().Err(err).Msg("Error persisting resource collection")
		return fmt.Errorf("failed to persist resources: %w", err)
	}
	return nil
}

// List returns the full catalog snapshot, newest-first by insertion.
func (r *CatalogRepository) List(ctx context.Context) ([]models.Resource, error) {
	return r.load(ctx)
}

// Seeded reports whether the collection document exists at all, so first
// run can be told apart from an emptied catalog.
func (r *CatalogRepository) Seeded(ctx context.Context) (bool, error) {
	_, err := r.store.Get(ctx, kvstore.KeyResources)
	if err == kvstore.ErrKeyNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// ReplaceAll overwrites the whole collection. Used by seeding only.
func (r *CatalogRepository) ReplaceAll(ctx context.Context, resources []models.Resource) error {
	return r.save(ctx, resources)
}

// ResourceDraft carries the caller-supplied fields of a new submission.
// Validation happens before the repository is invoked.
type ResourceDraft struct {
	Title      string
	Subject    string
	Course     models.Course
	Year       models.Year
	Semester   models.Semester
	Type       models.ResourceType
	UploadedBy string
	FileURL    string
}

// Create inserts a new resource at the front of the sequence. The record
// gets a fresh identifier, today's date, a zero download count and enters
// the catalog unapproved.
func (r *CatalogRepository) Create(ctx context.Context, draft ResourceDraft) (*models.Resource, error) {
	resources, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	resource := models.Resource{
		ID:            uuid.New().String(),
		Title:         draft.Title,
		Subject:       draft.Subject,
		Course:        draft.Course,
		Year:          draft.Year,
		Semester:      draft.Semester,
		Type:          draft.Type,
		UploadedBy:    draft.UploadedBy,
		UploadDate:    time.Now().Format("2006-01-02"),
		DownloadCount: 0,
		Approved:      false,
		FileURL:       draft.FileURL,
	}

	resources = append([]models.Resource{resource}, resources...)
	if err := r.save(ctx, resources); err != nil {
		return nil, err
	}

	return &resource, nil
}

// SetApproved flips the approved flag. Approving an already approved
// record is a no-op; an absent id is an error.
func (r *CatalogRepository) SetApproved(ctx context.Context, id string, approved bool) error {
	resources, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i := range resources {
		if resources[i].ID == id {
			if resources[i].Approved == approved {
				return nil
			}
			resources[i].Approved = approved
			return r.save(ctx, resources)
		}
	}

	return apperrors.ErrResourceNotFound
}

// Remove deletes the record regardless of approval state. Removing an
// absent id is not an error (best-effort delete).
func (r *CatalogRepository) Remove(ctx context.Context, id string) error {
	resources, err := r.load(ctx)
	if err != nil {
		return err
	}

	kept := resources[:0:0]
	found := false
	for _, res := range resources {
		if res.ID == id {
			found = true
			continue
		}
		kept = append(kept, res)
	}
	if !found {
		return nil
	}

	return r.save(ctx, kept)
}

// IncrementDownloadCount bumps the popularity counter and returns the
// updated record.
func (r *CatalogRepository) IncrementDownloadCount(ctx context.Context, id string) (*models.Resource, error) {
	resources, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range resources {
		if resources[i].ID == id {
			resources[i].DownloadCount++
			if err := r.save(ctx, resources); err != nil {
				return nil, err
			}
			updated := resources[i]
			return &updated, nil
		}
	}

	return nil, apperrors.ErrResourceNotFound
}

// GetByID returns a single record.
func (r *CatalogRepository) GetByID(ctx context.Context, id string) (*models.Resource, error) {
	resources, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for i := range resources {
		if resources[i].ID == id {
			found := resources[i]
			return &found, nil
		}
	}
	return nil, apperrors.ErrResourceNotFound
}
