package model

import (
	"sync"

	"github.com/d60-Lab/weblog/internal/catalog"
)

// 实体类型标签；已落库到边表 content_type 列，不可改名
const (
	KindUser       catalog.Kind = "user"
	KindArticle    catalog.Kind = "article"
	KindPin        catalog.Kind = "pin"
	KindCategory   catalog.Kind = "category"
	KindTopic      catalog.Kind = "topic"
	KindCollection catalog.Kind = "collection"
	KindComment    catalog.Kind = "comment"
	KindTag        catalog.Kind = "tag"
)

var (
	catalogOnce    sync.Once
	defaultCatalog *catalog.Catalog
)

// Catalog 返回注册了全部参与实体的目录（进程内单例）
func Catalog() *catalog.Catalog {
	catalogOnce.Do(func() {
		c := catalog.New()
		c.Register(KindUser, User{})
		c.Register(KindArticle, Article{})
		c.Register(KindPin, Pin{})
		c.Register(KindCategory, Category{})
		c.Register(KindTopic, Topic{})
		c.Register(KindCollection, Collection{})
		c.Register(KindComment, Comment{})
		c.Register(KindTag, Tag{})
		defaultCatalog = c
	})
	return defaultCatalog
}

// All 全部模型，用于 AutoMigrate
func All() []any {
	return []any{
		&User{}, &Article{}, &Pin{}, &Category{}, &Topic{},
		&Collection{}, &Tag{}, &Comment{},
		&Like{}, &Follow{}, &Collect{}, &TaggedItem{},
	}
}
