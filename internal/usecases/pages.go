package usecases

import (
	"context"
	"errors"

	"creovibe/internal/domain/dto"
	"creovibe/internal/domain/entities"
	"creovibe/internal/domain/mapper"
	"creovibe/internal/domain/repositories"
	appErrors "creovibe/pkg/errors"

	"gorm.io/gorm"
)

// PageService assembles the public views. Nothing is cached; every call reads
// the current rows.
type PageService interface {
	Page(ctx context.Context, page entities.Page) (*dto.PageView, error)
	Services(ctx context.Context) (*dto.ServicesView, error)
	ServiceDetail(ctx context.Context, id uint) (*dto.ServiceDetailView, error)
}

type pageService struct {
	mediaRepo   repositories.MediaRepository
	serviceRepo repositories.ServiceRepository
	storage     repositories.StorageStrategy
}

func NewPageService(
	mediaRepo repositories.MediaRepository,
	serviceRepo repositories.ServiceRepository,
	storage repositories.StorageStrategy,
) PageService {
	return &pageService{
		mediaRepo:   mediaRepo,
		serviceRepo: serviceRepo,
		storage:     storage,
	}
}

func (s *pageService) Page(ctx context.Context, page entities.Page) (*dto.PageView, error) {
	if !page.IsValid() {
		return nil, appErrors.ErrInvalidPage(page.String())
	}

	hero, err := s.mediaRepo.HeroForPage(ctx, page)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}
	media, err := s.mediaRepo.ListByPage(ctx, page, false)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}

	return &dto.PageView{
		Page:  page.String(),
		Hero:  mapper.MediaToHero(hero, s.storage.URL),
		Media: mapper.MediaListToView(media, s.storage.URL),
	}, nil
}

func (s *pageService) Services(ctx context.Context) (*dto.ServicesView, error) {
	hero, err := s.mediaRepo.HeroForPage(ctx, entities.PageServices)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}
	services, err := s.serviceRepo.List(ctx)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}

	return &dto.ServicesView{
		Hero:     mapper.MediaToHero(hero, s.storage.URL),
		Services: mapper.ServiceListToView(services, s.storage.URL),
	}, nil
}

func (s *pageService) ServiceDetail(ctx context.Context, id uint) (*dto.ServiceDetailView, error) {
	service, err := s.serviceRepo.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, appErrors.ErrServiceNotFound(err)
	}
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}

	photos, err := s.mediaRepo.ListByService(ctx, service.ID, entities.MediaKindImage)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}
	videos, err := s.mediaRepo.ListByService(ctx, service.ID, entities.MediaKindVideo)
	if err != nil {
		return nil, appErrors.ErrInternal(err)
	}

	return &dto.ServiceDetailView{
		Service: mapper.ServiceToView(service, s.storage.URL),
		Photos:  mapper.MediaListToView(photos, s.storage.URL),
		Videos:  mapper.MediaListToView(videos, s.storage.URL),
	}, nil
}
