package model

import "time"

// ArticleStatus 文章状态常量
const (
	ArticleStatusDraft     = 0
	ArticleStatusPublished = 1
)

// Article 文章
type Article struct {
	ID         string `gorm:"primaryKey;type:varchar(36)"`
	AuthorID   string `gorm:"type:varchar(36);index:idx_article_author;not null"`
	CategoryID string `gorm:"type:varchar(36);index:idx_article_category"`
	Title      string `gorm:"type:varchar(128);not null"`
	Body       string `gorm:"type:text"`
	Status     int8   `gorm:"index;not null;default:0"` // 0:draft, 1:published
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (Article) TableName() string { return "articles" }
