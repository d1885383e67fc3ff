package dto

import (
	"io"

	"creovibe/internal/domain/entities"
)

// UploadMediaDTO is the admin upload form after page resolution. ServiceID is
// the raw form value; an empty string means "no service".
type UploadMediaDTO struct {
	Filename  string
	Content   io.Reader
	Caption   string
	Page      entities.Page
	ServiceID string
	IsHero    bool
}

type ContactMessageDTO struct {
	Name    string
	Email   string
	Message string
}
