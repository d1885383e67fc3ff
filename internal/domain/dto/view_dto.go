package dto

import "time"

// View models handed to the html templates. URLs are already resolved
// against the active storage backend.

type MediaView struct {
	ID        uint
	URL       string
	Filename  string
	Caption   string
	IsVideo   bool
	IsHero    bool
	Page      string
	ServiceID uint
	CreatedAt time.Time
}

type ServiceView struct {
	ID          uint
	Name        string
	Description string
	ImageURL    string
}

type PageView struct {
	Page  string
	Hero  *MediaView
	Media []MediaView
}

type ServicesView struct {
	Hero     *MediaView
	Services []ServiceView
}

type ServiceDetailView struct {
	Service ServiceView
	Photos  []MediaView
	Videos  []MediaView
}

type DashboardView struct {
	SelectedPage string
	Pages        []string
	Services     []ServiceView
	Media        []MediaView
}
