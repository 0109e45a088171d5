package services

import (
	"context"
	"errors"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sagarshinde/studyhub/internal/app/models"
	"github.com/sagarshinde/studyhub/internal/app/models/dto"
	"github.com/sagarshinde/studyhub/internal/app/repositories"
	"github.com/sagarshinde/studyhub/internal/pkg/apperrors"
	"github.com/sagarshinde/studyhub/internal/pkg/kvstore"
)

// fakeFileStorage is a hand-rolled FileStorage double.
type fakeFileStorage struct {
	saveURL  string
	saveErr  error
	saved    []string
	deleted  []string
	delError error
}

func (f *fakeFileStorage) SaveFile(fileHeader *multipart.FileHeader) (string, error) {
	if f.saveErr != nil {
		return "", f.saveErr
	}
	f.saved = append(f.saved, fileHeader.Filename)
	return f.saveURL, nil
}

func (f *fakeFileStorage) DeleteFile(fileURL string) error {
	f.deleted = append(f.deleted, fileURL)
	return f.delError
}

func pdfFileHeader(name string, size int64) *multipart.FileHeader {
	return &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/pdf"}},
	}
}

func validSubmission() *dto.CreateResourceRequest {
	return &dto.CreateResourceRequest{
		Title:    "Operating Systems Summary",
		Subject:  "Operating Systems",
		Course:   string(models.CourseCS),
		Year:     string(models.YearSecond),
		Semester: string(models.Semester3),
		Type:     string(models.TypeNote),
	}
}

func newResourceServiceFixture(t *testing.T, seed []models.Resource) (ResourceService, *repositories.CatalogRepository, *fakeFileStorage) {
	t.Helper()
	repo := repositories.NewCatalogRepository(kvstore.NewMemory())
	if seed != nil {
		require.NoError(t, repo.ReplaceAll(context.Background(), seed))
	}
	storage := &fakeFileStorage{saveURL: "http://localhost:8080/uploads/file.pdf"}
	svc := NewResourceService(repo, storage, 25*1024*1024)
	return svc, repo, storage
}

func TestBrowseReturnsApprovedOnly(t *testing.T) {
	svc, _, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Title: "Published", Approved: true},
		{ID: "2", Title: "Pending", Approved: false},
	})

	resp, err := svc.Browse(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, resp.Resources, 1)
	assert.Equal(t, "1", resp.Resources[0].ID)
	assert.Equal(t, models.StatusPublished, resp.Resources[0].Status)
	assert.Equal(t, 1, resp.Total)
}

func TestBrowseAppliesFiltersAndLimit(t *testing.T) {
	svc, _, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Title: "CS Notes A", Course: models.CourseCS, Approved: true},
		{ID: "2", Title: "CS Notes B", Course: models.CourseCS, Approved: true},
		{ID: "3", Title: "IT Notes", Course: models.CourseIT, Approved: true},
	})

	resp, err := svc.Browse(context.Background(), &dto.ResourceFilterRequest{
		Course: string(models.CourseCS),
		Limit:  1,
	})

	require.NoError(t, err)
	require.Len(t, resp.Resources, 1)
	assert.Equal(t, "1", resp.Resources[0].ID)
}

func TestGetPublishedHidesPending(t *testing.T) {
	svc, _, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Approved: false},
	})

	_, err := svc.GetPublished(context.Background(), "1")

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestSubmitCreatesPendingResource(t *testing.T) {
	svc, repo, storage := newResourceServiceFixture(t, nil)

	resp, err := svc.Submit(context.Background(), validSubmission(), "Student User", pdfFileHeader("os.pdf", 1024))

	require.NoError(t, err)
	assert.False(t, resp.Approved)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, "Student User", resp.UploadedBy)
	assert.Equal(t, storage.saveURL, resp.FileURL)
	assert.Zero(t, resp.DownloadCount)

	stored, err := repo.GetByID(context.Background(), resp.ID)
	require.NoError(t, err)
	assert.False(t, stored.Approved)
}

func TestSubmitValidationShortCircuits(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.CreateResourceRequest)
		file   *multipart.FileHeader
	}{
		{
			name:   "blank title",
			mutate: func(r *dto.CreateResourceRequest) { r.Title = "   " },
			file:   pdfFileHeader("x.pdf", 10),
		},
		{
			name:   "missing classification",
			mutate: func(r *dto.CreateResourceRequest) { r.Semester = "" },
			file:   pdfFileHeader("x.pdf", 10),
		},
		{
			name:   "unknown type",
			mutate: func(r *dto.CreateResourceRequest) { r.Type = "Video" },
			file:   pdfFileHeader("x.pdf", 10),
		},
		{
			name:   "inconsistent taxonomy",
			mutate: func(r *dto.CreateResourceRequest) { r.Subject = "Imperative Programming" },
			file:   pdfFileHeader("x.pdf", 10),
		},
		{
			name:   "missing file",
			mutate: func(r *dto.CreateResourceRequest) {},
			file:   nil,
		},
		{
			name:   "oversized file",
			mutate: func(r *dto.CreateResourceRequest) {},
			file:   pdfFileHeader("x.pdf", 100*1024*1024),
		},
		{
			name:   "non-pdf file",
			mutate: func(r *dto.CreateResourceRequest) {},
			file: &multipart.FileHeader{
				Filename: "x.docx",
				Size:     10,
				Header:   textproto.MIMEHeader{"Content-Type": []string{"application/msword"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo, storage := newResourceServiceFixture(t, nil)

			req := validSubmission()
			tt.mutate(req)

			_, err := svc.Submit(context.Background(), req, "Student User", tt.file)
			require.Error(t, err)

			// A rejected submission never touches the store or file storage
			resources, listErr := repo.List(context.Background())
			require.NoError(t, listErr)
			assert.Empty(t, resources)
			assert.Empty(t, storage.saved)
		})
	}
}

func TestSubmitAcceptsPDFByExtension(t *testing.T) {
	svc, _, _ := newResourceServiceFixture(t, nil)

	file := &multipart.FileHeader{
		Filename: "notes.PDF",
		Size:     10,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}

	_, err := svc.Submit(context.Background(), validSubmission(), "Student User", file)

	assert.NoError(t, err)
}

func TestSubmitStorageFailure(t *testing.T) {
	svc, repo, storage := newResourceServiceFixture(t, nil)
	storage.saveErr = errors.New("disk full")

	_, err := svc.Submit(context.Background(), validSubmission(), "Student User", pdfFileHeader("x.pdf", 10))

	require.Error(t, err)
	resources, listErr := repo.List(context.Background())
	require.NoError(t, listErr)
	assert.Empty(t, resources)
}

func TestDownloadIncrementsCounter(t *testing.T) {
	svc, repo, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Approved: true, DownloadCount: 5, FileURL: "http://localhost:8080/uploads/a.pdf"},
	})

	resp, err := svc.Download(context.Background(), "1")

	require.NoError(t, err)
	assert.Equal(t, 6, resp.DownloadCount)
	assert.Equal(t, "http://localhost:8080/uploads/a.pdf", resp.FileURL)

	stored, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.Equal(t, 6, stored.DownloadCount)
}

func TestDownloadRejectsPending(t *testing.T) {
	svc, repo, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Approved: false, DownloadCount: 0},
	})

	_, err := svc.Download(context.Background(), "1")

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)

	stored, getErr := repo.GetByID(context.Background(), "1")
	require.NoError(t, getErr)
	assert.Zero(t, stored.DownloadCount)
}

func TestListAllIncludesPending(t *testing.T) {
	svc, _, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Approved: true},
		{ID: "2", Approved: false},
	})

	resp, err := svc.ListAll(context.Background(), nil)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.Total)
}

func TestApprovePublishes(t *testing.T) {
	svc, repo, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Approved: false},
	})

	require.NoError(t, svc.Approve(context.Background(), "1"))

	stored, err := repo.GetByID(context.Background(), "1")
	require.NoError(t, err)
	assert.True(t, stored.Approved)
}

func TestApproveUnknownID(t *testing.T) {
	svc, _, _ := newResourceServiceFixture(t, nil)

	err := svc.Approve(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
}

func TestRemoveDeletesRecordAndFile(t *testing.T) {
	svc, repo, storage := newResourceServiceFixture(t, []models.Resource{
		{ID: "1", Approved: true, FileURL: "http://localhost:8080/uploads/a.pdf"},
	})

	require.NoError(t, svc.Remove(context.Background(), "1"))

	_, err := repo.GetByID(context.Background(), "1")
	assert.ErrorIs(t, err, apperrors.ErrResourceNotFound)
	assert.Equal(t, []string{"http://localhost:8080/uploads/a.pdf"}, storage.deleted)
}

func TestRemoveWorksInAnyState(t *testing.T) {
	svc, repo, _ := newResourceServiceFixture(t, []models.Resource{
		{ID: "pending", Approved: false},
		{ID: "published", Approved: true},
	})
	ctx := context.Background()

	require.NoError(t, svc.Remove(ctx, "pending"))
	require.NoError(t, svc.Remove(ctx, "published"))

	resources, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, resources)
}

func TestRemoveUnknownIDIsNoOp(t *testing.T) {
	svc, _, storage := newResourceServiceFixture(t, nil)

	assert.NoError(t, svc.Remove(context.Background(), "missing"))
	assert.Empty(t, storage.deleted)
}
