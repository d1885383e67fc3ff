package entities

// Service is managed through seed data and the sitectl CLI; the web panel only reads it.
type Service struct {
	ID          uint    `gorm:"primaryKey"`
	Name        string  `gorm:"type:varchar(100);not null"`
	Description string  `gorm:"type:text;not null"`
	Image       *string `gorm:"type:varchar(200)"`
	Media       []Media `gorm:"foreignKey:ServiceID"`
}

func (Service) TableName() string {
	return "service"
}
