package entity

import (
	"time"

	"gorm.io/gorm"
)

type Team struct {
	Base
	Name        string `gorm:"unique"`
	Description string
	Department  string
	CreatedBy   string `gorm:"not null"`

	CreatedByUser User `gorm:"foreignKey:CreatedBy"`
}

type TeamMember struct {
	TeamID    string `gorm:"primaryKey"`
	UserID    string `gorm:"primaryKey"`
	Role      string `gorm:"default:member"`
	CreatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	Team Team `gorm:"foreignKey:TeamID"`
	User User `gorm:"foreignKey:UserID"`
}
