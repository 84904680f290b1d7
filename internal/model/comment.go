package model

import "time"

// Comment 评论边：author -> (content_type, object_id)
// 多值关系，无复合唯一键；parent 构成评论树，创建后不可改挂
type Comment struct {
	ID          string  `gorm:"primaryKey;type:varchar(36)"`
	AuthorID    string  `gorm:"type:varchar(36);index:idx_comment_author;not null" edge:"source"`
	ContentType string  `gorm:"type:varchar(32);index:idx_comment_target;not null" edge:"kind"`
	ObjectID    string  `gorm:"type:varchar(36);index:idx_comment_target;not null" edge:"target"`
	ParentID    *string `gorm:"type:varchar(36);index:idx_comment_parent"`
	Body        string  `gorm:"type:text;not null"`
	Enabled     bool    `gorm:"default:true"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Comment) TableName() string { return "comments" }

func (c Comment) IsOwned(userID string) bool { return c.AuthorID == userID }
