package model

import "time"

// Follow 关注边：sender -> (content_type, object_id)
// 目标可以是用户、分类、话题或收藏夹
type Follow struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	SenderID    string `gorm:"type:varchar(36);index:idx_follow_sender;index:idx_follow_key,unique;not null" edge:"source"`
	ContentType string `gorm:"type:varchar(32);index:idx_follow_key,unique;index:idx_follow_target;not null" edge:"kind"`
	ObjectID    string `gorm:"type:varchar(36);index:idx_follow_key,unique;index:idx_follow_target;not null" edge:"target"`
	CreatedAt   time.Time
}

func (Follow) TableName() string { return "follows" }

func (f Follow) IsOwned(userID string) bool { return f.SenderID == userID }
