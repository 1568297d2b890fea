package models

import "time"

type User struct {
	ID        uint `gorm:"primarykey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Email     string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
	FullName  string `gorm:"type:varchar(200)"`
	Phone     string `gorm:"type:varchar(20)"`
	Role      string `gorm:"not null;default:'user'"`
	Version   int    `gorm:"default:1"`
}
