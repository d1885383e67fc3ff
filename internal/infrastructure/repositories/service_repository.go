package repositories

import (
	"context"

	"creovibe/internal/domain/entities"
	"creovibe/internal/domain/repositories"

	"gorm.io/gorm"
)

type serviceRepository struct {
	db *gorm.DB
}

func NewServiceRepository(db *gorm.DB) repositories.ServiceRepository {
	return &serviceRepository{
		db: db,
	}
}

func (r *serviceRepository) Create(ctx context.Context, service *entities.Service) error {
	return r.db.WithContext(ctx).Omit("Media").Create(service).Error
}

func (r *serviceRepository) GetByID(ctx context.Context, id uint) (*entities.Service, error) {
	var service entities.Service
	if err := r.db.WithContext(ctx).First(&service, id).Error; err != nil {
		return nil, err
	}
	return &service, nil
}

func (r *serviceRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.Service{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *serviceRepository) List(ctx context.Context) ([]entities.Service, error) {
	var services []entities.Service
	if err := r.db.WithContext(ctx).Order("id").Find(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}
