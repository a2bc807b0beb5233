// internal/storage/local.go
package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/google/uuid"

	"jobapp-back/internal/apperrors"
)

// Local stores objects under a root directory on disk.
type Local struct {
	root string
}

// NewLocal creates a disk-backed store rooted at dir, creating the
// namespace directories up front.
func NewLocal(dir string) (*Local, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage root: %w", err)
	}
	for _, ns := range []string{NamespaceUploads, NamespaceGenerated, NamespaceTemp} {
		if err := os.MkdirAll(filepath.Join(abs, ns), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create storage directory: %w", err)
		}
	}
	return &Local{root: abs}, nil
}

// resolve turns a relative key into an absolute path, failing when the
// result escapes the root.
func (l *Local) resolve(relPath string) (string, error) {
	if filepath.IsAbs(relPath) {
		return "", apperrors.New(apperrors.KindPathTraversal, "path escapes the storage root")
	}
	abs := filepath.Join(l.root, relPath)
	if abs == l.root || !strings.HasPrefix(abs, l.root+string(os.PathSeparator)) {
		return "", apperrors.New(apperrors.KindPathTraversal, "path escapes the storage root")
	}
	return abs, nil
}

func (l *Local) Save(ctx context.Context, data []byte, originalName, contentType, scope string) (SavedFile, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	rel := filepath.Join(NamespaceUploads, scope, name)
	return l.write(rel, name, data)
}

func (l *Local) SaveGenerated(ctx context.Context, data []byte, fileName string) (SavedFile, error) {
	rel := filepath.Join(NamespaceGenerated, fileName)
	return l.write(rel, fileName, data)
}

func (l *Local) SaveTemp(ctx context.Context, data []byte, originalName, contentType string) (SavedFile, error) {
	name := uuid.New().String() + filepath.Ext(originalName)
	rel := filepath.Join(NamespaceTemp, name)
	return l.write(rel, name, data)
}

func (l *Local) write(relPath, fileName string, data []byte) (SavedFile, error) {
	abs, err := l.resolve(relPath)
	if err != nil {
		return SavedFile{}, err
	}
	if err := os.MkdirAll(filepath.Dir(abs), 0o755); err != nil {
		return SavedFile{}, mapFSError(err)
	}
	if err := os.WriteFile(abs, data, 0o644); err != nil {
		return SavedFile{}, mapFSError(err)
	}

	// Post-write verification: the file on disk must be exactly what was
	// requested or the save is treated as failed.
	info, err := os.Stat(abs)
	if err != nil {
		return SavedFile{}, mapFSError(err)
	}
	if info.Size() != int64(len(data)) {
		os.Remove(abs)
		return SavedFile{}, apperrors.New(apperrors.KindInternal,
			fmt.Sprintf("wrote %d bytes, expected %d", info.Size(), len(data)))
	}

	return SavedFile{RelPath: filepath.ToSlash(relPath), FileName: fileName, Size: info.Size()}, nil
}

func (l *Local) Get(ctx context.Context, relPath string) ([]byte, error) {
	abs, err := l.resolve(relPath)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, mapFSError(err)
	}
	return data, nil
}

func (l *Local) Delete(ctx context.Context, relPath string) error {
	abs, err := l.resolve(relPath)
	if err != nil {
		return err
	}
	if err := os.Remove(abs); err != nil && !os.IsNotExist(err) {
		return mapFSError(err)
	}
	return nil
}

func (l *Local) Metadata(ctx context.Context, relPath string) (FileInfo, error) {
	abs, err := l.resolve(relPath)
	if err != nil {
		return FileInfo{}, err
	}
	info, err := os.Stat(abs)
	if err != nil {
		return FileInfo{}, mapFSError(err)
	}
	// Plain stat has no birth time; creation falls back to mtime.
	return FileInfo{
		Size:       info.Size(),
		CreatedAt:  info.ModTime(),
		ModifiedAt: info.ModTime(),
	}, nil
}

// mapFSError translates a raw filesystem error into the taxonomy.
func mapFSError(err error) error {
	switch {
	case os.IsNotExist(err):
		return apperrors.Wrap(apperrors.KindFSNotFound, "file not found", err)
	case os.IsPermission(err):
		return apperrors.Wrap(apperrors.KindFSPermission, "permission denied", err)
	case errors.Is(err, syscall.ENOSPC):
		return apperrors.Wrap(apperrors.KindFSNoSpace, "no space left on device", err)
	case errors.Is(err, syscall.EMFILE), errors.Is(err, syscall.ENFILE):
		return apperrors.Wrap(apperrors.KindFSTooManyFiles, "too many open files", err)
	default:
		return apperrors.Internal(err)
	}
}
