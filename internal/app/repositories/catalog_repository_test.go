package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
	"github.com/sagarshinde/studyhub/internal/pkg/kvstore"
)

func newCatalogRepo() *CatalogRepository {
	return NewCatalogRepository(kvstore.NewMemory())
}

func seedCatalog(t *testing.T, repo *CatalogRepository, resources []models.Resource) {
	t.Helper()
	require.NoError(t, repo.ReplaceAll(context.Background(), resources))
}

func TestCatalogRepositoryListEmpty(t *testing.T) {
	repo := newCatalogRepo()

	resources, err := repo.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestCatalogRepositorySeeded(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seeded, err := repo.Seeded(ctx)
	require.NoError(t, err)
	assert.False(t, seeded)

	// An emptied catalog still counts as seeded
	require.NoError(t, repo.ReplaceAll(ctx, []models.Resource{}))

	seeded, err = repo.Seeded(ctx)
	require.NoError(t, err)
	assert.True(t, seeded)
}

func TestCatalogRepositoryCreateDefaults(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	created, err := repo.Create(ctx, ResourceDraft{
		Title:      "Computer Networks Notes",
		Subject:    "Computer Networks",
		Course:     models.CourseCS,
		Year:       models.YearSecond,
		Semester:   models.Semester4,
		Type:       models.TypeNote,
		UploadedBy: "Student User",
		FileURL:    "http://localhost:8080/uploads/abc.pdf",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.UploadDate)
	assert.Zero(t, created.DownloadCount)
	assert.False(t, created.Approved)
	assert.Equal(t, models.StatusPending, created.Status())
}

func TestCatalogRepositoryCreateInsertsAtFront(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seedCatalog(t, repo, []models.Resource{{ID: "old", Title: "Old", Approved: true}})

	created, err := repo.Create(ctx, ResourceDraft{Title: "New"})
	require.NoError(t, err)

	resources, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 2)
	assert.Equal(t, created.ID, resources[0].ID)
	assert.Equal(t, "old", resources[1].ID)
}

func TestCatalogRepositorySetApproved(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seedCatalog(t, repo, []models.Resource{{ID: "r1", Title: "Pending", Approved: false}})

	require.NoError(t, repo.SetApproved(ctx, "r1", true))

	resource, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, resource.Approved)
	assert.Equal(t, models.StatusPublished, resource.Status())
}

func TestCatalogRepositorySetApprovedIdempotent(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seedCatalog(t, repo, []models.Resource{{ID: "r1", Approved: true}})

	require.NoError(t, repo.SetApproved(ctx, "r1", true))

	resource, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.True(t, resource.Approved)
}

func TestCatalogRepositorySetApprovedUnknownID(t *testing.T) {
	repo := newCatalogRepo()

	err := repo.SetApproved(context.Background(), "missing", true)

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCatalogRepositoryRemove(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seedCatalog(t, repo, []models.Resource{
		{ID: "r1", Approved: true},
		{ID: "r2", Approved: false},
	})

	require.NoError(t, repo.Remove(ctx, "r1"))

	resources, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, resources, 1)
	assert.Equal(t, "r2", resources[0].ID)

	_, err = repo.GetByID(ctx, "r1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCatalogRepositoryRemoveUnknownIDIsNoOp(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seedCatalog(t, repo, []models.Resource{{ID: "r1"}})

	require.NoError(t, repo.Remove(ctx, "missing"))

	resources, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, resources, 1)
}

func TestCatalogRepositoryIncrementDownloadCount(t *testing.T) {
	repo := newCatalogRepo()
	ctx := context.Background()

	seedCatalog(t, repo, []models.Resource{{ID: "r1", DownloadCount: 41, Approved: true}})

	updated, err := repo.IncrementDownloadCount(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 42, updated.DownloadCount)

	// The bump is persisted, not just returned
	resource, err := repo.GetByID(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, 42, resource.DownloadCount)
}

func TestCatalogRepositoryIncrementDownloadCountUnknownID(t *testing.T) {
	repo := newCatalogRepo()

	_, err := repo.IncrementDownloadCount(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestCatalogRepositoryRoundTrip(t *testing.T) {
	store := kvstore.NewMemory()
	repo := NewCatalogRepository(store)
	ctx := context.Background()

	original := []models.Resource{
		{
			ID:            "1",
			Title:         "Data Structures and Algorithms Complete Notes",
			Subject:       "Data Structures",
			Course:        models.CourseCS,
			Year:          models.YearFirst,
			Semester:      models.Semester2,
			Type:          models.TypeNote,
			UploadedBy:    "Rahul Verma",
			UploadDate:    "2023-10-15",
			DownloadCount: 124,
			Approved:      true,
			FileURL:       "#",
		},
	}
	seedCatalog(t, repo, original)

	// A second repository over the same store sees the same collection
	other := NewCatalogRepository(store)
	resources, err := other.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, original, resources)
}
