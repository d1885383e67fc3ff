package usecases

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"creovibe/internal/domain/entities"
	"creovibe/internal/domain/repositories"
	"creovibe/internal/infrastructure/db"
	infraRepos "creovibe/internal/infrastructure/repositories"
	"creovibe/internal/infrastructure/storage"
	"creovibe/internal/pkg/config"
	"creovibe/pkg/logger"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var testExtensions = []string{"png", "jpg", "jpeg", "gif", "mp4", "webm", "ogg", "mov"}

type fixture struct {
	client   *db.Client
	media    repositories.MediaRepository
	services repositories.ServiceRepository
	store    *storage.LocalStorage
	dir      string
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()
	client, err := db.New(ctx, config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "site.db")}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Migrate(ctx, logger.Nop()))

	dir := t.TempDir()
	store, err := storage.NewLocalStorage(dir)
	require.NoError(t, err)

	return &fixture{
		client:   client,
		media:    infraRepos.NewMediaRepository(client.DB()),
		services: infraRepos.NewServiceRepository(client.DB()),
		store:    store,
		dir:      dir,
	}
}

func (f *fixture) mediaService(store repositories.StorageStrategy, media repositories.MediaRepository) MediaService {
	if store == nil {
		store = f.store
	}
	if media == nil {
		media = f.media
	}
	return NewMediaService(f.client, media, f.services, store, testExtensions, logger.Nop(), nil)
}

func (f *fixture) allMedia(t *testing.T) []entities.Media {
	t.Helper()
	var rows []entities.Media
	require.NoError(t, f.client.DB().Order("id").Find(&rows).Error)
	return rows
}

// failingStorage wraps a real storage and fails Save after consuming the input.
type failingStorage struct {
	repositories.StorageStrategy
	deleted []string
}

func (s *failingStorage) Save(_ context.Context, _ string, content io.Reader) error {
	_, _ = io.Copy(io.Discard, content)
	return errors.New("disk full")
}

func (s *failingStorage) Delete(ctx context.Context, name string) error {
	s.deleted = append(s.deleted, name)
	return s.StorageStrategy.Delete(ctx, name)
}

// recordingStorage counts deletes and can fail the existence check.
type recordingStorage struct {
	repositories.StorageStrategy
	existsErr error
	deleted   []string
}

func (s *recordingStorage) Exists(ctx context.Context, name string) (bool, error) {
	if s.existsErr != nil {
		return false, s.existsErr
	}
	return s.StorageStrategy.Exists(ctx, name)
}

func (s *recordingStorage) Delete(ctx context.Context, name string) error {
	s.deleted = append(s.deleted, name)
	return s.StorageStrategy.Delete(ctx, name)
}

// failingCreateRepo lets the file write succeed and then fails the insert.
type failingCreateRepo struct {
	repositories.MediaRepository
}

func (failingCreateRepo) Create(context.Context, *gorm.DB, *entities.Media) error {
	return errors.New("database is locked")
}

type stubMailer struct {
	sent []repositories.OutgoingMail
	err  error
}

func (m *stubMailer) Send(_ context.Context, mail repositories.OutgoingMail) error {
	m.sent = append(m.sent, mail)
	return m.err
}
