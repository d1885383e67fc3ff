package mapper

import (
	"strings"

	"creovibe/internal/domain/dto"
	"creovibe/internal/domain/entities"
)

// URLFunc resolves a storage name to the URL a browser can fetch.
type URLFunc func(name string) string

func MediaToView(m *entities.Media, url URLFunc) dto.MediaView {
	view := dto.MediaView{
		ID:        m.ID,
		URL:       url(m.Filename),
		Filename:  m.Filename,
		Caption:   m.CaptionText(),
		IsVideo:   m.IsVideo(),
		IsHero:    m.IsHero,
		Page:      m.PageName.String(),
		CreatedAt: m.CreatedAt,
	}
	if m.ServiceID != nil {
		view.ServiceID = *m.ServiceID
	}
	return view
}

// MediaToHero returns nil for a page without hero.
func MediaToHero(m *entities.Media, url URLFunc) *dto.MediaView {
	if m == nil {
		return nil
	}
	view := MediaToView(m, url)
	return &view
}

func MediaListToView(list []entities.Media, url URLFunc) []dto.MediaView {
	views := make([]dto.MediaView, 0, len(list))
	for i := range list {
		views = append(views, MediaToView(&list[i], url))
	}
	return views
}

// ServiceToView keeps absolute or rooted image paths as they are and treats
// anything else as a storage name.
func ServiceToView(s *entities.Service, url URLFunc) dto.ServiceView {
	view := dto.ServiceView{
		ID:          s.ID,
		Name:        s.Name,
		Description: s.Description,
	}
	if s.Image != nil && *s.Image != "" {
		image := *s.Image
		if strings.HasPrefix(image, "/") || strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
			view.ImageURL = image
		} else {
			view.ImageURL = url(image)
		}
	}
	return view
}

func ServiceListToView(list []entities.Service, url URLFunc) []dto.ServiceView {
	views := make([]dto.ServiceView, 0, len(list))
	for i := range list {
		views = append(views, ServiceToView(&list[i], url))
	}
	return views
}
