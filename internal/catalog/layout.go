package catalog

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"gorm.io/gorm/schema"
)

// EdgeLayout names the column roles of an edge table: which column points at
// the owning side (source), which carries the kind discriminator, and which
// carries the polymorphic target id. Discovered from the edge struct's
// declared layout so one accessor serves every edge table.
type EdgeLayout struct {
	Table  string
	Source string
	Kind   string
	Target string
}

var (
	layoutCache  sync.Map // reflect.Type -> EdgeLayout
	layoutNaming = schema.NamingStrategy{}
)

// LayoutOf resolves the column roles of an edge model from its `edge` struct
// tags. Column names follow gorm naming unless an explicit column tag is set.
// A model missing any of the three roles is a programmer error.
func LayoutOf(edge Tabler) EdgeLayout {
	t := reflect.TypeOf(edge)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if cached, ok := layoutCache.Load(t); ok {
		return cached.(EdgeLayout)
	}

	layout := EdgeLayout{Table: edge.TableName()}
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		role := f.Tag.Get("edge")
		if role == "" {
			continue
		}
		col := columnName(f)
		switch role {
		case "source":
			layout.Source = col
		case "kind":
			layout.Kind = col
		case "target":
			layout.Target = col
		default:
			panic(fmt.Sprintf("catalog: unknown edge role %q on %s.%s", role, t.Name(), f.Name))
		}
	}
	if layout.Source == "" || layout.Kind == "" || layout.Target == "" {
		panic(fmt.Sprintf("catalog: %s does not declare source/kind/target edge columns", t.Name()))
	}

	layoutCache.Store(t, layout)
	return layout
}

func columnName(f reflect.StructField) string {
	for _, part := range strings.Split(f.Tag.Get("gorm"), ";") {
		if strings.HasPrefix(part, "column:") {
			return strings.TrimPrefix(part, "column:")
		}
	}
	return layoutNaming.ColumnName("", f.Name)
}
