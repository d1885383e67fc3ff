package repositories

import (
	"context"

	"creovibe/internal/domain/entities"

	"gorm.io/gorm"
)

//* Methods taking a tx run on it when non-nil, otherwise on the repository's own connection.

type MediaRepository interface {
	Create(ctx context.Context, tx *gorm.DB, media *entities.Media) error
	ClearHero(ctx context.Context, tx *gorm.DB, page entities.Page) error
	GetByID(ctx context.Context, id uint) (*entities.Media, error)
	Delete(ctx context.Context, tx *gorm.DB, id uint) error
	HeroForPage(ctx context.Context, page entities.Page) (*entities.Media, error)
	ListByPage(ctx context.Context, page entities.Page, newestFirst bool) ([]entities.Media, error)
	ListByService(ctx context.Context, serviceID uint, kind entities.MediaKind) ([]entities.Media, error)
	ListFilenames(ctx context.Context) ([]string, error)
}

type ServiceRepository interface {
	Create(ctx context.Context, service *entities.Service) error
	GetByID(ctx context.Context, id uint) (*entities.Service, error)
	Exists(ctx context.Context, id uint) (bool, error)
	List(ctx context.Context) ([]entities.Service, error)
}

// Transactor runs fn inside a database transaction, committing when fn returns nil.
type Transactor interface {
	WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error
}
