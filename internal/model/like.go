package model

import "time"

// Like 点赞边：sender -> (content_type, object_id)
// 复合唯一键避免重复点赞；idx_like_target 服务反向查询
type Like struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	SenderID    string `gorm:"type:varchar(36);index:idx_like_sender;index:idx_like_key,unique;not null" edge:"source"`
	ContentType string `gorm:"type:varchar(32);index:idx_like_key,unique;index:idx_like_target;not null" edge:"kind"`
	ObjectID    string `gorm:"type:varchar(36);index:idx_like_key,unique;index:idx_like_target;not null" edge:"target"`
	CreatedAt   time.Time
}

func (Like) TableName() string { return "likes" }

// IsOwned 点赞只能由发起者本人删除
func (l Like) IsOwned(userID string) bool { return l.SenderID == userID }
