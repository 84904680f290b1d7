package service

import (
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

// PurgeTargetEdges 删除指向 (kind, objectID) 的全部边。
// 多态目标没有真实外键，目标行删除时必须显式级联，否则边表会静默悬挂。
// 指向该目标的评论（含回复，它们挂在同一目标键上）自身也是点赞目标，先清理它们的点赞。
// 必须在删除目标本体的同一事务内调用；counter 为 nil 时跳过计数回收。
func PurgeTargetEdges(tx *gorm.DB, counter *ReactionCounter, kind catalog.Kind, objectID string) error {
	var commentIDs []string
	if err := tx.Model(&model.Comment{}).
		Where("content_type = ? AND object_id = ?", string(kind), objectID).
		Pluck("id", &commentIDs).Error; err != nil {
		return err
	}
	if len(commentIDs) > 0 {
		if err := tx.Where("content_type = ? AND object_id IN ?", string(model.KindComment), commentIDs).
			Delete(&model.Like{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id IN ?", commentIDs).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
	}

	where := "content_type = ? AND object_id = ?"
	args := []any{string(kind), objectID}
	if err := tx.Where(where, args...).Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if err := tx.Where(where, args...).Delete(&model.Follow{}).Error; err != nil {
		return err
	}
	if err := tx.Where(where, args...).Delete(&model.Collect{}).Error; err != nil {
		return err
	}
	if err := tx.Where(where, args...).Delete(&model.TaggedItem{}).Error; err != nil {
		return err
	}

	// 计数是展示值，目标没了键也一起回收
	if counter != nil {
		for _, id := range commentIDs {
			counter.EnqueuePurge(model.KindComment, id, "like")
		}
		counter.EnqueuePurge(kind, objectID, "like", "follow", "collect")
	}
	return nil
}

// PurgeCommentTree 删除评论时清理整棵回复树上的点赞边与全部后代回复。
// 回复与根评论挂在同一目标键上，只能沿 parent_id 逐层收集；
// 根评论本体由调用方在同一事务内删除。
func PurgeCommentTree(tx *gorm.DB, counter *ReactionCounter, rootID string) error {
	ids := []string{rootID}
	frontier := []string{rootID}
	for len(frontier) > 0 {
		var children []string
		if err := tx.Model(&model.Comment{}).
			Where("parent_id IN ?", frontier).
			Pluck("id", &children).Error; err != nil {
			return err
		}
		ids = append(ids, children...)
		frontier = children
	}
	if err := tx.Where("content_type = ? AND object_id IN ?", string(model.KindComment), ids).
		Delete(&model.Like{}).Error; err != nil {
		return err
	}
	if len(ids) > 1 {
		if err := tx.Where("id IN ?", ids[1:]).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
	}
	if counter != nil {
		for _, id := range ids {
			counter.EnqueuePurge(model.KindComment, id, "like")
		}
	}
	return nil
}

// PurgeCollectionEdges 删除收藏夹时清理夹内的收藏边。
// 被收藏的目标仍然存活，收藏计数必须逐条递减而不是整键移除。
func PurgeCollectionEdges(tx *gorm.DB, counter *ReactionCounter, collectionID string) error {
	var edges []model.Collect
	if err := tx.Where("collection_id = ?", collectionID).Find(&edges).Error; err != nil {
		return err
	}
	if len(edges) == 0 {
		return nil
	}
	if err := tx.Where("collection_id = ?", collectionID).Delete(&model.Collect{}).Error; err != nil {
		return err
	}
	if counter != nil {
		for _, e := range edges {
			counter.EnqueueDecr("collect", catalog.Kind(e.ContentType), e.ObjectID)
		}
	}
	return nil
}
