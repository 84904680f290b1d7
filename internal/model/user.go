package model

import "time"

// User 用户
type User struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Username  string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Email     string `gorm:"type:varchar(128);uniqueIndex;not null"`
	Password  string `gorm:"type:varchar(128);not null"`
	Nickname  string `gorm:"type:varchar(32)"`
	Bio       string `gorm:"type:varchar(255)"`
	Age       int
	IsAdmin   bool `gorm:"default:false"`
	IsActive  bool `gorm:"default:true"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (User) TableName() string { return "users" }
