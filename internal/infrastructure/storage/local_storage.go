package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"creovibe/internal/domain/repositories"
	"creovibe/pkg/constants"
	"creovibe/pkg/file"
)

// LocalStorage keeps uploads flat inside BasePath; the HTTP layer serves the
// directory under constants.UploadsRoute.
type LocalStorage struct {
	BasePath string
}

func NewLocalStorage(basePath string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &LocalStorage{BasePath: basePath}, nil
}

// Save streams content to a temp file next to the target and renames it in
// place, so a failed copy never leaves a partial upload under the final name.
func (l *LocalStorage) Save(ctx context.Context, name string, content io.Reader) error {
	if err := file.ValidateStorageName(name); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(l.BasePath, ".upload-*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := io.Copy(tmp, content); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing file: %w", err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("chmod file: %w", err)
	}
	if err := os.Rename(tmpName, filepath.Join(l.BasePath, name)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("moving file into place: %w", err)
	}
	return nil
}

func (l *LocalStorage) Delete(_ context.Context, name string) error {
	if err := file.ValidateStorageName(name); err != nil {
		return err
	}
	err := os.Remove(filepath.Join(l.BasePath, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

func (l *LocalStorage) Exists(_ context.Context, name string) (bool, error) {
	if err := file.ValidateStorageName(name); err != nil {
		return false, err
	}
	_, err := os.Stat(filepath.Join(l.BasePath, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// List skips directories and in-flight temp files.
func (l *LocalStorage) List(_ context.Context) ([]repositories.StoredObject, error) {
	entries, err := os.ReadDir(l.BasePath)
	if err != nil {
		return nil, fmt.Errorf("reading upload dir: %w", err)
	}

	objects := make([]repositories.StoredObject, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, err
		}
		objects = append(objects, repositories.StoredObject{
			Name:    entry.Name(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}
	return objects, nil
}

func (l *LocalStorage) URL(name string) string {
	return constants.UploadsRoute + "/" + name
}
