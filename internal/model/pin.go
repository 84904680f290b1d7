package model

import "time"

// Pin 动态（短内容）
type Pin struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID  string `gorm:"type:varchar(36);index:idx_pin_author;not null"`
	Body      string `gorm:"type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Pin) TableName() string { return "pins" }
