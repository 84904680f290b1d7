package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type goodEdge struct {
	ID          string `gorm:"primaryKey;type:varchar(36)"`
	SenderID    string `edge:"source"`
	ContentType string `edge:"kind"`
	ObjectID    string `edge:"target"`
}

func (goodEdge) TableName() string { return "good_edges" }

type renamedEdge struct {
	ID     string `gorm:"primaryKey"`
	Owner  string `gorm:"column:owner_uid" edge:"source"`
	Kind   string `gorm:"column:target_kind" edge:"kind"`
	Target string `gorm:"column:target_uid" edge:"target"`
}

func (renamedEdge) TableName() string { return "renamed_edges" }

type brokenEdge struct {
	ID       string `gorm:"primaryKey"`
	SenderID string `edge:"source"`
}

func (brokenEdge) TableName() string { return "broken_edges" }

func TestLayoutOfFollowsNaming(t *testing.T) {
	l := LayoutOf(goodEdge{})
	assert.Equal(t, "good_edges", l.Table)
	assert.Equal(t, "sender_id", l.Source)
	assert.Equal(t, "content_type", l.Kind)
	assert.Equal(t, "object_id", l.Target)

	// 指针解析到同一缓存条目
	assert.Equal(t, l, LayoutOf(&goodEdge{}))
}

func TestLayoutOfHonorsColumnTag(t *testing.T) {
	l := LayoutOf(renamedEdge{})
	assert.Equal(t, "owner_uid", l.Source)
	assert.Equal(t, "target_kind", l.Kind)
	assert.Equal(t, "target_uid", l.Target)
}

func TestLayoutOfMissingRolePanics(t *testing.T) {
	assert.Panics(t, func() { LayoutOf(brokenEdge{}) })
}
