// internal/validation/file.go
package validation

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"jobapp-back/internal/apperrors"
)

// DefaultMaxFileSize is the upload size cap when none is configured.
const DefaultMaxFileSize = 10 << 20 // 10 MiB

// DefaultAllowedMimeTypes is the upload allow-list when none is configured.
var DefaultAllowedMimeTypes = []string{"application/pdf"}

// Extensions that are never accepted regardless of declared type.
var deniedExtensions = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".com": true,
	".scr": true,
	".sh":  true,
	".js":  true,
	".msi": true,
	".dll": true,
}

// Declared types whose content is verified against magic bytes.
var sniffedTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
}

// FileRules configures ValidateFile. Zero values fall back to the defaults.
type FileRules struct {
	MaxSize      int64
	AllowedMimes []string
}

func (r FileRules) maxSize() int64 {
	if r.MaxSize > 0 {
		return r.MaxSize
	}
	return DefaultMaxFileSize
}

func (r FileRules) allowedMimes() []string {
	if len(r.AllowedMimes) > 0 {
		return r.AllowedMimes
	}
	return DefaultAllowedMimeTypes
}

// ValidateFile checks an uploaded file's size, declared type, filename and
// leading content bytes. It returns a FILE_UPLOAD_ERROR describing the first
// violation, or nil when the file is acceptable.
func ValidateFile(name string, size int64, declaredMime string, head []byte, rules FileRules) *apperrors.Error {
	if size <= 0 {
		return apperrors.FileUpload("uploaded file is empty")
	}
	if max := rules.maxSize(); size > max {
		return apperrors.FileUpload(fmt.Sprintf("file exceeds the maximum size of %d bytes", max))
	}

	declared := strings.ToLower(strings.TrimSpace(declaredMime))
	if !contains(rules.allowedMimes(), declared) {
		return apperrors.FileUpload(fmt.Sprintf("file type %q is not allowed", declaredMime))
	}

	if name == "" {
		return apperrors.FileUpload("file name is required")
	}
	if strings.ContainsAny(name, "/\\\x00") || strings.Contains(name, "..") {
		return apperrors.FileUpload("file name contains invalid path characters")
	}
	if ext := strings.ToLower(filepath.Ext(name)); deniedExtensions[ext] {
		return apperrors.FileUpload(fmt.Sprintf("file extension %q is not allowed", ext))
	}

	if sniffedTypes[declared] {
		detected := mimetype.Detect(head)
		if !detected.Is(declared) {
			return apperrors.FileUpload(fmt.Sprintf("file content does not match the declared type %q", declaredMime))
		}
	}

	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
