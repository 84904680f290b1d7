package model

import "time"

// Category 分类
type Category struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Desc      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (Category) TableName() string { return "categories" }

// Topic 话题
type Topic struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Desc      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
}

func (Topic) TableName() string { return "topics" }
