package model

import "time"

// Collect 收藏边：收藏夹 -> (content_type, object_id)
// 动作主体是收藏夹而非用户；归属判定走收藏夹属主
type Collect struct {
	ID           string `gorm:"primaryKey;type:varchar(36)"`
	CollectionID string `gorm:"type:varchar(36);index:idx_collect_collection;index:idx_collect_key,unique;not null" edge:"source"`
	ContentType  string `gorm:"type:varchar(32);index:idx_collect_key,unique;index:idx_collect_target;not null" edge:"kind"`
	ObjectID     string `gorm:"type:varchar(36);index:idx_collect_key,unique;index:idx_collect_target;not null" edge:"target"`
	CreatedAt    time.Time
}

func (Collect) TableName() string { return "collects" }
