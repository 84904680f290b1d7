package model

import "time"

// Tag 标签
type Tag struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	Name      string `gorm:"type:varchar(32);uniqueIndex;not null"`
	Slug      string `gorm:"type:varchar(255);uniqueIndex;not null"`
	CreatedAt time.Time
}

func (Tag) TableName() string { return "tags" }

// TaggedItem 标签边：tag -> (content_type, object_id)
type TaggedItem struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	TagID       string `gorm:"type:varchar(36);index:idx_tagged_tag;index:idx_tagged_key,unique;not null" edge:"source"`
	ContentType string `gorm:"type:varchar(32);index:idx_tagged_key,unique;index:idx_tagged_target;not null" edge:"kind"`
	ObjectID    string `gorm:"type:varchar(36);index:idx_tagged_key,unique;index:idx_tagged_target;not null" edge:"target"`
	CreatedAt   time.Time
}

func (TaggedItem) TableName() string { return "tagged_items" }
