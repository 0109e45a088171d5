package dto

import "github.com/sagarshinde/studyhub/internal/app/models"

// CreateResourceRequest is the multipart form for a new submission. The
// file part is handled separately by the controller.
type CreateResourceRequest struct {
	Title    string `form:"title" binding:"required"`
	Subject  string `form:"subject" binding:"required"`
	Course   string `form:"course" binding:"required"`
	Year     string `form:"year" binding:"required"`
	Semester string `form:"semester" binding:"required"`
	Type     string `form:"type" binding:"required"`
}

// ResourceFilterRequest carries the browse filters. Every criterion is
// optional; an absent criterion matches everything.
type ResourceFilterRequest struct {
	Course   string `form:"course"`
	Year     string `form:"year"`
	Semester string `form:"semester"`
	Subject  string `form:"subject"`
	Type     string `form:"type"`
	Search   string `form:"search"`
	Limit    int    `form:"limit"`
}

// ResourceResponse is the public shape of a catalog entry.
type ResourceResponse struct {
	ID            string                  `json:"id"`
	Title         string                  `json:"title"`
	Subject       string                  `json:"subject"`
	Course        models.Course           `json:"course"`
	Year          models.Year             `json:"year"`
	Semester      models.Semester         `json:"semester"`
	Type          models.ResourceType     `json:"type"`
	UploadedBy    string                  `json:"uploadedBy"`
	UploadDate    string                  `json:"uploadDate"`
	DownloadCount int                     `json:"downloadCount"`
	Approved      bool                    `json:"approved"`
	Status        models.ModerationStatus `json:"status"`
	FileURL       string                  `json:"fileUrl"`
}

// ResourceListResponse wraps a filtered listing.
type ResourceListResponse struct {
	Resources []ResourceResponse `json:"resources"`
	Total     int                `json:"total"`
}

// DownloadResponse is returned by the download action after the counter
// has been incremented.
type DownloadResponse struct {
	FileURL       string `json:"fileUrl"`
	DownloadCount int    `json:"downloadCount"`
}

// NewResourceResponse maps a model to its response shape.
func NewResourceResponse(r *models.Resource) ResourceResponse {
	return ResourceResponse{
		ID:            r.ID,
		Title:         r.Title,
		Subject:       r.Subject,
		Course:        r.Course,
		Year:          r.Year,
		Semester:      r.Semester,
		Type:          r.Type,
		UploadedBy:    r.UploadedBy,
		UploadDate:    r.UploadDate,
		DownloadCount: r.DownloadCount,
		Approved:      r.Approved,
		Status:        r.Status(),
		FileURL:       r.FileURL,
	}
}

// NewResourceListResponse maps a slice of models preserving order.
func NewResourceListResponse(resources []models.Resource) ResourceListResponse {
	out := make([]ResourceResponse, 0, len(resources))
	for i := range resources {
		out = append(out, NewResourceResponse(&resources[i]))
	}
	return ResourceListResponse{Resources: out, Total: len(out)}
}
