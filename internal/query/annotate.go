package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

// Relations selects which viewer-relationship columns to compute. Each
// enabled relation costs exactly one LEFT OUTER JOIN (is_collected uses a
// single EXISTS semi-join, see below), never a per-row query.
type Relations struct {
	IsLiked     bool // viewer liked the row
	IsFollowing bool // viewer follows the row
	IsFollowed  bool // the row (a user) follows the viewer
	IsCollected bool // one of the viewer's collections collected the row
}

// ViewerMeta carries the projected annotation columns for one result row.
// Embed it next to the base model in a scan destination.
type ViewerMeta struct {
	LikeID      *string `gorm:"column:like_id" json:"-"`
	FollowingID *string `gorm:"column:following_id" json:"-"`
	FollowedID  *string `gorm:"column:followed_id" json:"-"`
	Collected   bool    `gorm:"column:is_collected" json:"-"`
}

func (m ViewerMeta) IsLiked() bool     { return m.LikeID != nil }
func (m ViewerMeta) IsFollowing() bool { return m.FollowingID != nil }
func (m ViewerMeta) IsFollowed() bool  { return m.FollowedID != nil }
func (m ViewerMeta) IsCollected() bool { return m.Collected }

// Annotate attaches the requested viewer-relationship columns to a query
// over the base table. An empty viewerID (anonymous) attaches nothing, so
// every annotation reads as false; these columns are informational, not
// access control.
//
// is_liked / is_following join the edge table on
// (edge.object_id = base.pk AND edge.content_type = kind AND edge.sender_id = viewer);
// is_followed flips the column pair to (edge.sender_id = base.pk AND
// edge.object_id = viewer). is_collected must hop through the collections
// table to reach the viewer, and a viewer may own several collections
// holding the same row, so a plain join would duplicate base rows; it is
// computed as one uncorrelated-per-page EXISTS instead.
func Annotate(db *gorm.DB, cat *catalog.Catalog, base catalog.Meta, viewerID string, rel Relations) *gorm.DB {
	selects := []string{base.Table + ".*"}
	if viewerID == "" {
		return db.Select(strings.Join(selects, ", "))
	}

	args := make([]any, 0, 2)
	b := NewBuilder(db, base)

	if rel.IsLiked {
		like := catalog.LayoutOf(model.Like{})
		alias := b.OuterJoin(like,
			[][2]string{{base.PK, like.Target}},
			Cond{like.Kind, string(base.Kind)},
			Cond{like.Source, viewerID},
		)
		selects = append(selects, alias+".id AS like_id")
	}
	if rel.IsFollowing {
		follow := catalog.LayoutOf(model.Follow{})
		alias := b.OuterJoin(follow,
			[][2]string{{base.PK, follow.Target}},
			Cond{follow.Kind, string(base.Kind)},
			Cond{follow.Source, viewerID},
		)
		selects = append(selects, alias+".id AS following_id")
	}
	if rel.IsFollowed {
		follow := catalog.LayoutOf(model.Follow{})
		alias := b.OuterJoin(follow,
			[][2]string{{base.PK, follow.Source}},
			Cond{follow.Kind, string(base.Kind)},
			Cond{follow.Target, viewerID},
		)
		selects = append(selects, alias+".id AS followed_id")
	}
	if rel.IsCollected {
		collect := catalog.LayoutOf(model.Collect{})
		collections := cat.MustLookup(model.KindCollection)
		selects = append(selects, fmt.Sprintf(
			"EXISTS(SELECT 1 FROM %s JOIN %s ON %s.%s = %s.%s WHERE %s.%s = %s.%s AND %s.%s = ? AND %s.user_id = ?) AS is_collected",
			collect.Table, collections.Table,
			collections.Table, collections.PK, collect.Table, collect.Source,
			collect.Table, collect.Target, base.Table, base.PK,
			collect.Table, collect.Kind,
			collections.Table,
		))
		args = append(args, string(base.Kind), viewerID)
	}

	return b.DB().Select(strings.Join(selects, ", "), args...)
}
