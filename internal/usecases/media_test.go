package usecases

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"creovibe/internal/domain/dto"
	"creovibe/internal/domain/entities"
	appErrors "creovibe/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func upload(filename string, page entities.Page) dto.UploadMediaDTO {
	return dto.UploadMediaDTO{
		Filename: filename,
		Content:  strings.NewReader("bytes of " + filename),
		Page:     page,
	}
}

func TestUpload_StoresFileAndRow(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)

	req := upload("Holiday Photo.PNG", entities.PageHome)
	req.Caption = "  Summer shoot  "
	media, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(media.Filename, ".png"))
	assert.Len(t, media.Filename, 32+len(".png"))
	assert.NotContains(t, media.Filename, "Holiday")
	assert.Equal(t, entities.MediaKindImage, media.MediaType)
	assert.Equal(t, "Summer shoot", media.CaptionText())

	data, err := os.ReadFile(filepath.Join(f.dir, media.Filename))
	require.NoError(t, err)
	assert.Equal(t, "bytes of Holiday Photo.PNG", string(data))

	rows := f.allMedia(t)
	require.Len(t, rows, 1)
	assert.Equal(t, media.Filename, rows[0].Filename)
	assert.Equal(t, entities.PageHome, rows[0].PageName)
	assert.Nil(t, rows[0].ServiceID)
}

func TestUpload_BlankCaptionIsNull(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)

	req := upload("clip.MOV", entities.PagePortfolio)
	req.Caption = "   "
	media, err := svc.Upload(context.Background(), req)
	require.NoError(t, err)

	assert.Nil(t, media.Caption)
	assert.Equal(t, entities.MediaKindVideo, media.MediaType)
}

func TestUpload_RejectsUnsupportedExtension(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)

	_, err := svc.Upload(context.Background(), upload("malware.exe", entities.PageHome))
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeValidation))
	ae, ok := appErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Unsupported file type.", ae.Message)

	assert.Empty(t, f.allMedia(t))
	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestUpload_RequiresFile(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)

	_, err := svc.Upload(context.Background(), dto.UploadMediaDTO{Page: entities.PageHome})
	ae, ok := appErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Please select a file.", ae.Message)

	_, err = svc.Upload(context.Background(), dto.UploadMediaDTO{Filename: " ", Content: strings.NewReader("x"), Page: entities.PageHome})
	assert.True(t, appErrors.IsCode(err, appErrors.CodeValidation))
}

func TestUpload_HeroReplacesPreviousHero(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)
	ctx := context.Background()

	first := upload("old.jpg", entities.PageServices)
	first.IsHero = true
	old, err := svc.Upload(ctx, first)
	require.NoError(t, err)

	aboutHero := upload("about.jpg", entities.PageAbout)
	aboutHero.IsHero = true
	_, err = svc.Upload(ctx, aboutHero)
	require.NoError(t, err)

	second := upload("photo.png", entities.PageServices)
	second.IsHero = true
	replacement, err := svc.Upload(ctx, second)
	require.NoError(t, err)

	hero, err := f.media.HeroForPage(ctx, entities.PageServices)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, replacement.ID, hero.ID)

	previous, err := f.media.GetByID(ctx, old.ID)
	require.NoError(t, err)
	assert.False(t, previous.IsHero)

	about, err := f.media.HeroForPage(ctx, entities.PageAbout)
	require.NoError(t, err)
	require.NotNil(t, about)

	heroes := 0
	for _, row := range f.allMedia(t) {
		if row.PageName == entities.PageServices && row.IsHero {
			heroes++
		}
	}
	assert.Equal(t, 1, heroes)
}

func TestUpload_ServiceMustExist(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)
	ctx := context.Background()

	for _, raw := range []string{"abc", "0", "-1", "999"} {
		req := upload("p.jpg", entities.PageServices)
		req.ServiceID = raw
		_, err := svc.Upload(ctx, req)
		ae, ok := appErrors.As(err)
		require.True(t, ok, raw)
		assert.Equal(t, "Unknown service.", ae.Message, raw)
	}
	assert.Empty(t, f.allMedia(t))

	req := upload("p.jpg", entities.PageServices)
	req.ServiceID = "1"
	media, err := svc.Upload(ctx, req)
	require.NoError(t, err)
	require.NotNil(t, media.ServiceID)
	assert.Equal(t, uint(1), *media.ServiceID)
}

func TestUpload_StorageFailureRollsBackHeroClear(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	first := upload("old.jpg", entities.PageHome)
	first.IsHero = true
	old, err := f.mediaService(nil, nil).Upload(ctx, first)
	require.NoError(t, err)

	broken := &failingStorage{StorageStrategy: f.store}
	req := upload("new.jpg", entities.PageHome)
	req.IsHero = true
	_, err = f.mediaService(broken, nil).Upload(ctx, req)
	require.Error(t, err)
	assert.True(t, appErrors.IsCode(err, appErrors.CodePersistence))
	assert.Len(t, broken.deleted, 1)

	hero, err := f.media.HeroForPage(ctx, entities.PageHome)
	require.NoError(t, err)
	require.NotNil(t, hero)
	assert.Equal(t, old.ID, hero.ID)
	assert.Len(t, f.allMedia(t), 1)
}

func TestUpload_InsertFailureRemovesFile(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, failingCreateRepo{MediaRepository: f.media})

	_, err := svc.Upload(context.Background(), upload("lost.png", entities.PageHome))
	require.Error(t, err)
	ae, ok := appErrors.As(err)
	require.True(t, ok)
	assert.Equal(t, "Upload failed", ae.Message)

	entries, err := os.ReadDir(f.dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Empty(t, f.allMedia(t))
}

func TestDelete_RemovesRowAndFile(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)
	ctx := context.Background()

	media, err := svc.Upload(ctx, upload("gone.png", entities.PageAbout))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, media.ID))

	assert.Empty(t, f.allMedia(t))
	_, err = os.Stat(filepath.Join(f.dir, media.Filename))
	assert.True(t, os.IsNotExist(err))
}

func TestDelete_MissingFileStillDeletesRow(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)
	ctx := context.Background()

	media, err := svc.Upload(ctx, upload("gone.png", entities.PageAbout))
	require.NoError(t, err)
	require.NoError(t, os.Remove(filepath.Join(f.dir, media.Filename)))

	store := &recordingStorage{StorageStrategy: f.store}
	require.NoError(t, f.mediaService(store, nil).Delete(ctx, media.ID))
	assert.Empty(t, f.allMedia(t))
	assert.Empty(t, store.deleted)
}

func TestDelete_StorageCheckFailureKeepsRow(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	media, err := f.mediaService(nil, nil).Upload(ctx, upload("keep.png", entities.PagePortfolio))
	require.NoError(t, err)

	store := &recordingStorage{StorageStrategy: f.store, existsErr: errors.New("bucket unreachable")}
	err = f.mediaService(store, nil).Delete(ctx, media.ID)
	assert.True(t, appErrors.IsCode(err, appErrors.CodePersistence))
	assert.Empty(t, store.deleted)
	assert.Len(t, f.allMedia(t), 1)
	assert.FileExists(t, filepath.Join(f.dir, media.Filename))
}

func TestDelete_UnknownIDChangesNothing(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)
	ctx := context.Background()

	_, err := svc.Upload(ctx, upload("keep.png", entities.PageHome))
	require.NoError(t, err)

	err = svc.Delete(ctx, 4242)
	assert.True(t, appErrors.IsCode(err, appErrors.CodeNotFound))
	assert.Len(t, f.allMedia(t), 1)
}

func TestDashboard_NewestFirstWithFallback(t *testing.T) {
	f := newFixture(t)
	svc := f.mediaService(nil, nil)
	ctx := context.Background()

	_, err := svc.Upload(ctx, upload("one.png", entities.PageHome))
	require.NoError(t, err)
	second, err := svc.Upload(ctx, upload("two.png", entities.PageHome))
	require.NoError(t, err)
	_, err = svc.Upload(ctx, upload("elsewhere.png", entities.PageAbout))
	require.NoError(t, err)

	view, err := svc.Dashboard(ctx, entities.Page("bogus"))
	require.NoError(t, err)
	assert.Equal(t, "home", view.SelectedPage)
	assert.Equal(t, []string{"home", "about", "services", "portfolio"}, view.Pages)
	require.Len(t, view.Media, 2)
	assert.Equal(t, second.ID, view.Media[0].ID)
	assert.Equal(t, "/uploads/"+second.Filename, view.Media[0].URL)
	require.Len(t, view.Services, 1)
	assert.Equal(t, "Photography", view.Services[0].Name)
}
