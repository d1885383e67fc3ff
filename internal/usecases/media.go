package usecases

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"creovibe/internal/domain/dto"
	"creovibe/internal/domain/entities"
	"creovibe/internal/domain/mapper"
	"creovibe/internal/domain/repositories"
	"creovibe/pkg/constants"
	appErrors "creovibe/pkg/errors"
	"creovibe/pkg/file"
	"creovibe/pkg/logger"
	"creovibe/pkg/metrics"

	"gorm.io/gorm"
)

type MediaService interface {
	Upload(ctx context.Context, req dto.UploadMediaDTO) (*entities.Media, error)
	Delete(ctx context.Context, id uint) error
	Dashboard(ctx context.Context, page entities.Page) (*dto.DashboardView, error)
}

type mediaService struct {
	tx          repositories.Transactor
	mediaRepo   repositories.MediaRepository
	serviceRepo repositories.ServiceRepository
	storage     repositories.StorageStrategy
	allowed     []string
	logg        *logger.Logger
	metrics     *metrics.Site
}

func NewMediaService(
	tx repositories.Transactor,
	mediaRepo repositories.MediaRepository,
	serviceRepo repositories.ServiceRepository,
	storage repositories.StorageStrategy,
	allowedExtensions []string,
	logg *logger.Logger,
	site *metrics.Site,
) MediaService {
	if logg == nil {
		logg = logger.Nop()
	}
	return &mediaService{
		tx:          tx,
		mediaRepo:   mediaRepo,
		serviceRepo: serviceRepo,
		storage:     storage,
		allowed:     allowedExtensions,
		logg:        logg,
		metrics:     site,
	}
}

// Upload stores the file under an opaque name and records it. The hero clear,
// the file write and the insert share one transaction; when anything after the
// write fails the file is removed again.
func (s *mediaService) Upload(ctx context.Context, req dto.UploadMediaDTO) (*entities.Media, error) {
	if req.Content == nil || strings.TrimSpace(req.Filename) == "" {
		s.metrics.IncUpload(req.Page.String(), constants.StatusRejected)
		return nil, appErrors.ErrNoFile()
	}
	if !req.Page.IsValid() {
		s.metrics.IncUpload(req.Page.String(), constants.StatusRejected)
		return nil, appErrors.ErrInvalidPage(req.Page.String())
	}
	if !file.IsAllowed(req.Filename, s.allowed) {
		s.metrics.IncUpload(req.Page.String(), constants.StatusRejected)
		return nil, appErrors.ErrUnsupportedType(req.Filename)
	}

	serviceID, err := s.resolveService(ctx, req.ServiceID)
	if err != nil {
		s.metrics.IncUpload(req.Page.String(), constants.StatusRejected)
		return nil, err
	}

	name := file.StorageName(req.Filename)
	media := &entities.Media{
		Filename:  name,
		MediaType: entities.KindFromExtension(file.Extension(req.Filename)),
		IsHero:    req.IsHero,
		PageName:  req.Page,
		ServiceID: serviceID,
	}
	if caption := strings.TrimSpace(req.Caption); caption != "" {
		media.Caption = &caption
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"page":     req.Page.String(),
		"filename": name,
		"hero":     req.IsHero,
	})

	written := false
	err = s.tx.WithTx(ctx, func(tx *gorm.DB) error {
		if req.IsHero {
			if err := s.mediaRepo.ClearHero(ctx, tx, req.Page); err != nil {
				return fmt.Errorf("clearing hero: %w", err)
			}
		}
		// set before Save: a failed write may still have left bytes behind
		written = true
		if err := s.storage.Save(ctx, name, req.Content); err != nil {
			return fmt.Errorf("saving file: %w", err)
		}
		if err := s.mediaRepo.Create(ctx, tx, media); err != nil {
			return fmt.Errorf("inserting media: %w", err)
		}
		return nil
	})
	if err != nil {
		if written {
			if derr := s.storage.Delete(context.WithoutCancel(ctx), name); derr != nil {
				s.logg.Error(ctx, "failed to remove file after upload error", derr)
			}
		}
		s.logg.Error(ctx, "media upload failed", err)
		s.metrics.IncUpload(req.Page.String(), constants.StatusFailed)
		return nil, appErrors.ErrUploadFailed(err)
	}

	s.logg.Info(ctx, "media uploaded")
	s.metrics.IncUpload(req.Page.String(), constants.StatusOK)
	return media, nil
}

// resolveService returns nil for an empty value; anything else must name an
// existing service.
func (s *mediaService) resolveService(ctx context.Context, raw string) (*uint, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.ParseUint(raw, 10, 0)
	if err != nil || id == 0 {
		return nil, appErrors.ErrUnknownService(fmt.Errorf("service_id %q", raw))
	}
	ok, err := s.serviceRepo.Exists(ctx, uint(id))
	if err != nil {
		return nil, appErrors.ErrUploadFailed(err)
	}
	if !ok {
		return nil, appErrors.ErrUnknownService(fmt.Errorf("service %d does not exist", id))
	}
	serviceID := uint(id)
	return &serviceID, nil
}

// Delete removes the stored file first, then the row. A file that is already
// gone does not block removing the row.
func (s *mediaService) Delete(ctx context.Context, id uint) error {
	ctx = s.logg.WithField(ctx, "media_id", id)

	media, err := s.mediaRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		s.metrics.IncDelete(constants.StatusNotFound)
		return appErrors.ErrMediaNotFound(err)
	}
	if err != nil {
		s.metrics.IncDelete(constants.StatusFailed)
		return appErrors.ErrDeleteFailed(err)
	}

	ctx = s.logg.WithField(ctx, "filename", media.Filename)
	stored, err := s.storage.Exists(ctx, media.Filename)
	if err != nil {
		s.logg.Error(ctx, "failed to check media file", err)
		s.metrics.IncDelete(constants.StatusFailed)
		return appErrors.ErrDeleteFailed(err)
	}
	if !stored {
		s.logg.Warn(ctx, "media file already missing, deleting row only")
	} else if err := s.storage.Delete(ctx, media.Filename); err != nil {
		s.logg.Error(ctx, "failed to remove media file", err)
		s.metrics.IncDelete(constants.StatusFailed)
		return appErrors.ErrDeleteFailed(err)
	}
	if err := s.mediaRepo.Delete(ctx, nil, id); err != nil {
		s.logg.Error(ctx, "failed to delete media row", err)
		s.metrics.IncDelete(constants.StatusFailed)
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErrors.ErrMediaNotFound(err)
		}
		return appErrors.ErrDeleteFailed(err)
	}

	s.logg.Info(ctx, "media deleted")
	s.metrics.IncDelete(constants.StatusOK)
	return nil
}

func (s *mediaService) Dashboard(ctx context.Context, page entities.Page) (*dto.DashboardView, error) {
	if !page.IsValid() {
		page = entities.PageHome
	}

	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}
	media, err := s.mediaRepo.ListByPage(ctx, page, true)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}

	pages := make([]string, 0, len(entities.Pages))
	for _, p := range entities.Pages {
		pages = append(pages, p.String())
	}

	return &dto.DashboardView{
		SelectedPage: page.String(),
		Pages:        pages,
		Services:     mapper.ServiceListToView(services, s.storage.URL),
		Media:        mapper.MediaListToView(media, s.storage.URL),
	}, nil
}
