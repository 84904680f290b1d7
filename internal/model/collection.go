package model

import "time"

// Collection 收藏夹；user_id 创建后不可变，仅属主可增删成员
type Collection struct {
	ID        string `gorm:"primaryKey;type:varchar(36)"`
	UserID    string `gorm:"type:varchar(36);index:idx_collection_user;not null"`
	Name      string `gorm:"type:varchar(32);not null"`
	Desc      string `gorm:"type:varchar(255)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Collection) TableName() string { return "collections" }

// IsOwned 是否属于该用户
func (c Collection) IsOwned(userID string) bool { return c.UserID == userID }
