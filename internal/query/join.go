package query

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
)

// Cond is one extra equality predicate ANDed into a join's ON clause,
// e.g. {"sender_id", viewerID}.
type Cond struct {
	Column string
	Value  any
}

// Builder appends LEFT OUTER JOINs onto a base query. Each join gets a
// deterministic alias, so the same edge table can be joined twice in one
// query (following vs followed) without collision. Rows of the base query
// are always preserved; a missing edge surfaces as a NULL projected column.
type Builder struct {
	db   *gorm.DB
	base catalog.Meta
	seq  map[string]int
}

func NewBuilder(db *gorm.DB, base catalog.Meta) *Builder {
	return &Builder{db: db, base: base, seq: make(map[string]int)}
}

// OuterJoin joins the edge table with ON conditions built from joinCols
// (pairs of base column, edge column) plus every extra predicate. Returns
// the alias to project columns from. An empty condition list would emit an
// invalid ON clause, so it panics at construction time.
func (b *Builder) OuterJoin(edge catalog.EdgeLayout, joinCols [][2]string, conds ...Cond) string {
	if len(joinCols) == 0 && len(conds) == 0 {
		panic("query: outer join generated an empty ON clause")
	}

	b.seq[edge.Table]++
	alias := fmt.Sprintf("%s_j%d", edge.Table, b.seq[edge.Table])

	parts := make([]string, 0, len(joinCols)+len(conds))
	args := make([]any, 0, len(conds))
	for _, jc := range joinCols {
		parts = append(parts, fmt.Sprintf("%s.%s = %s.%s", alias, jc[1], b.base.Table, jc[0]))
	}
	for _, c := range conds {
		parts = append(parts, fmt.Sprintf("%s.%s = ?", alias, c.Column))
		args = append(args, c.Value)
	}

	join := fmt.Sprintf("LEFT JOIN %s AS %s ON %s", edge.Table, alias, strings.Join(parts, " AND "))
	b.db = b.db.Joins(join, args...)
	return alias
}

// DB returns the query with all joins applied.
func (b *Builder) DB() *gorm.DB { return b.db }
