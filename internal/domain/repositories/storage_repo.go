package repositories

import (
	"context"
	"io"
	"time"
)

type StoredObject struct {
	Name    string
	Size    int64
	ModTime time.Time
}

// StorageStrategy keeps uploaded binaries under their opaque storage names.
type StorageStrategy interface {
	Save(ctx context.Context, name string, content io.Reader) error
	// Delete succeeds when the object is already absent.
	Delete(ctx context.Context, name string) error
	Exists(ctx context.Context, name string) (bool, error)
	List(ctx context.Context) ([]StoredObject, error)
	URL(name string) string
}
