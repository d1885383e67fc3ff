package repositories

import (
	"context"
	"errors"

	"creovibe/internal/domain/entities"
	"creovibe/internal/domain/repositories"

	"gorm.io/gorm"
)

type mediaRepository struct {
	db *gorm.DB
}

func NewMediaRepository(db *gorm.DB) repositories.MediaRepository {
	return &mediaRepository{
		db: db,
	}
}

func (r *mediaRepository) conn(ctx context.Context, tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx.WithContext(ctx)
	}
	return r.db.WithContext(ctx)
}

func (r *mediaRepository) Create(ctx context.Context, tx *gorm.DB, media *entities.Media) error {
	return r.conn(ctx, tx).Omit("Service").Create(media).Error
}

func (r *mediaRepository) ClearHero(ctx context.Context, tx *gorm.DB, page entities.Page) error {
	return r.conn(ctx, tx).
		Model(&entities.Media{}).
		Where("page_name = ? AND is_hero = ?", page, true).
		Update("is_hero", false).Error
}

func (r *mediaRepository) GetByID(ctx context.Context, id uint) (*entities.Media, error) {
	var media entities.Media
	if err := r.db.WithContext(ctx).First(&media, id).Error; err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) Delete(ctx context.Context, tx *gorm.DB, id uint) error {
	res := r.conn(ctx, tx).Delete(&entities.Media{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// HeroForPage returns nil without error when the page has no hero.
func (r *mediaRepository) HeroForPage(ctx context.Context, page entities.Page) (*entities.Media, error) {
	var media entities.Media
	err := r.db.WithContext(ctx).
		Where("page_name = ? AND is_hero = ?", page, true).
		Order("id").
		First(&media).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &media, nil
}

func (r *mediaRepository) ListByPage(ctx context.Context, page entities.Page, newestFirst bool) ([]entities.Media, error) {
	// ids grow with insertion, so they order by upload time
	order := "id ASC"
	if newestFirst {
		order = "id DESC"
	}
	var media []entities.Media
	if err := r.db.WithContext(ctx).Where("page_name = ?", page).Order(order).Find(&media).Error; err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) ListByService(ctx context.Context, serviceID uint, kind entities.MediaKind) ([]entities.Media, error) {
	var media []entities.Media
	err := r.db.WithContext(ctx).
		Where("service_id = ? AND media_type = ?", serviceID, kind).
		Order("id ASC").
		Find(&media).Error
	if err != nil {
		return nil, err
	}
	return media, nil
}

func (r *mediaRepository) ListFilenames(ctx context.Context) ([]string, error) {
	var names []string
	if err := r.db.WithContext(ctx).Model(&entities.Media{}).Pluck("filename", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
