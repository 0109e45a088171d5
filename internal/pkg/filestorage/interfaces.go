package filestorage

import "mime/multipart"

// FileStorage defines the interface for upload storage operations. The
// catalog only ever needs the accessible URL back; content handling stays
// behind this boundary.
type FileStorage interface {
	// SaveFile saves an uploaded file and returns its accessible URL
	SaveFile(fileHeader *multipart.FileHeader) (string, error)

	// DeleteFile removes a stored file; deleting an absent file is fine
	DeleteFile(fileURL string) error
}
