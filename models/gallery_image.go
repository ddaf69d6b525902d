package models

import "time"

type GalleryImage struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	ImagePath    string    `gorm:"type:varchar(255);not null" json:"image_path"`
	DisplayOrder int       `gorm:"not null;default:0" json:"display_order"`
	CreatedAt    time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time `gorm:"not null" json:"updated_at"`
}
