// internal/storage/storage.go
package storage

import (
	"context"
	"time"
)

// Namespaces inside the storage root. Uploads are grouped by the owning
// submission's id, generated PDFs are flat and keyed by filename, temp holds
// pre-submission staging files.
const (
	NamespaceUploads   = "uploads"
	NamespaceGenerated = "generated"
	NamespaceTemp      = "temp"
)

// SavedFile describes a stored object.
type SavedFile struct {
	RelPath  string `json:"rel_path"`
	FileName string `json:"file_name"`
	Size     int64  `json:"size"`
}

// FileInfo is the metadata of a stored object.
type FileInfo struct {
	Size       int64     `json:"size"`
	CreatedAt  time.Time `json:"created_at"`
	ModifiedAt time.Time `json:"modified_at"`
}

// Store is key-value byte storage. Keys are relative paths inside the
// store's root; implementations must reject any key that resolves outside
// of it. Delete is idempotent.
type Store interface {
	Save(ctx context.Context, data []byte, originalName, contentType, scope string) (SavedFile, error)
	SaveGenerated(ctx context.Context, data []byte, fileName string) (SavedFile, error)
	SaveTemp(ctx context.Context, data []byte, originalName, contentType string) (SavedFile, error)
	Get(ctx context.Context, relPath string) ([]byte, error)
	Delete(ctx context.Context, relPath string) error
	Metadata(ctx context.Context, relPath string) (FileInfo, error)
}
