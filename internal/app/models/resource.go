package models

// Resource represents a single catalogued study item (note, book or
// question paper). The JSON field names are the persisted layout under the
// "resources" key and must stay stable across releases.
type Resource struct {
	ID            string       `json:"id"` // Unique identifier, assigned at creation
	Title         string       `json:"title"`
	Subject       string       `json:"subject"`
	Course        Course       `json:"course"`
	Year          Year         `json:"year"`
	Semester      Semester     `json:"semester"`
	Type          ResourceType `json:"type"`
	UploadedBy    string       `json:"uploadedBy"` // Uploader display name
	UploadDate    string       `json:"uploadDate"` // Calendar date, assigned at creation
	DownloadCount int          `json:"downloadCount"`
	Approved      bool         `json:"approved"`
	FileURL       string       `json:"fileUrl"`
}

// Status derives the moderation state from the approved flag. A record
// that is present is either pending or published; removal has no stored
// representation.
func (r *Resource) Status() ModerationStatus {
	if r.Approved {
		return StatusPublished
	}
	return StatusPending
}
