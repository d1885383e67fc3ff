package entities

import (
	"strings"
	"time"
)

type MediaKind string

const (
	MediaKindImage MediaKind = "image"
	MediaKindVideo MediaKind = "video"
)

var videoExtensions = map[string]struct{}{
	".mp4":  {},
	".webm": {},
	".ogg":  {},
	".mov":  {},
}

// KindFromExtension classifies an extension (with or without the leading dot).
// Anything that is not a known video extension is treated as an image.
func KindFromExtension(ext string) MediaKind {
	ext = strings.ToLower(strings.TrimSpace(ext))
	if ext != "" && !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	if _, ok := videoExtensions[ext]; ok {
		return MediaKindVideo
	}
	return MediaKindImage
}

type Media struct {
	ID        uint      `gorm:"primaryKey"`
	Filename  string    `gorm:"type:varchar(300);not null"`
	Caption   *string   `gorm:"type:varchar(300)"`
	MediaType MediaKind `gorm:"column:media_type;type:varchar(10);not null"`
	IsHero    bool      `gorm:"column:is_hero;not null;default:false"`
	PageName  Page      `gorm:"column:page_name;type:varchar(50);not null;default:home"`
	ServiceID *uint     `gorm:"column:service_id;index"`
	Service   *Service  `gorm:"foreignKey:ServiceID"`
	CreatedAt time.Time
}

func (Media) TableName() string {
	return "media"
}

func (m *Media) IsVideo() bool {
	return m.MediaType == MediaKindVideo
}

func (m *Media) CaptionText() string {
	if m.Caption == nil {
		return ""
	}
	return *m.Caption
}
