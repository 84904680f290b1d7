package catalog

import (
	"context"
	"fmt"
	"reflect"

	"gorm.io/gorm"
)

// Kind is the stable tag identifying a participating entity type. It is
// persisted inside edge rows (content_type column), so values must never be
// renamed once written.
type Kind string

// Tabler matches gorm's convention for models that declare their table name.
type Tabler interface {
	TableName() string
}

// Meta describes one registered entity type.
type Meta struct {
	Kind  Kind
	Table string
	PK    string // primary key column

	rtype reflect.Type
}

// NewRows returns a pointer to an empty slice of the registered model type,
// suitable as a gorm Find destination.
func (m Meta) NewRows() any {
	return reflect.New(reflect.SliceOf(m.rtype)).Interface()
}

// Catalog maps entity types to their stable kinds and table metadata. All
// registrations happen during startup; afterwards reads are lock-free.
type Catalog struct {
	byKind map[Kind]Meta
	byType map[reflect.Type]Meta
}

func New() *Catalog {
	return &Catalog{
		byKind: make(map[Kind]Meta),
		byType: make(map[reflect.Type]Meta),
	}
}

// Register adds a model under the given kind. The prototype must declare its
// table name; the primary key column is `id` across the schema. Registering
// the same kind twice is a programmer error.
func (c *Catalog) Register(kind Kind, prototype Tabler) {
	if _, ok := c.byKind[kind]; ok {
		panic(fmt.Sprintf("catalog: kind %q registered twice", kind))
	}
	t := reflect.TypeOf(prototype)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	m := Meta{Kind: kind, Table: prototype.TableName(), PK: "id", rtype: t}
	c.byKind[kind] = m
	c.byType[t] = m
}

// Resolve returns the metadata for a concrete model value or pointer.
// Unregistered types are a programmer error and panic.
func (c *Catalog) Resolve(v any) Meta {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	m, ok := c.byType[t]
	if !ok {
		panic(fmt.Sprintf("catalog: unregistered entity type %T", v))
	}
	return m
}

// Lookup returns the metadata for a kind tag.
func (c *Catalog) Lookup(kind Kind) (Meta, bool) {
	m, ok := c.byKind[kind]
	return m, ok
}

// MustLookup panics on unknown kinds; use when the kind came from code, not
// from request input.
func (c *Catalog) MustLookup(kind Kind) Meta {
	m, ok := c.byKind[kind]
	if !ok {
		panic(fmt.Sprintf("catalog: unregistered kind %q", kind))
	}
	return m
}

// Exists reports whether a live row of the given kind exists. Kinds coming
// from request input should be checked with Lookup first.
func (c *Catalog) Exists(ctx context.Context, db *gorm.DB, kind Kind, id string) (bool, error) {
	m, ok := c.Lookup(kind)
	if !ok {
		return false, fmt.Errorf("catalog: unknown kind %q", kind)
	}
	var cnt int64
	err := db.WithContext(ctx).Table(m.Table).
		Where(fmt.Sprintf("%s = ?", m.PK), id).
		Count(&cnt).Error
	if err != nil {
		return false, err
	}
	return cnt > 0, nil
}
