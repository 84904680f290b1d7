package service

import (
	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

// 各动作允许指向的内容类型（对应动作合法性表）
var (
	likeTargets = map[catalog.Kind]bool{
		model.KindArticle:    true,
		model.KindPin:        true,
		model.KindComment:    true,
		model.KindCollection: true,
	}
	followTargets = map[catalog.Kind]bool{
		model.KindUser:       true,
		model.KindCategory:   true,
		model.KindTopic:      true,
		model.KindCollection: true,
	}
	collectTargets = map[catalog.Kind]bool{
		model.KindArticle: true,
		model.KindPin:     true,
	}
	commentTargets = map[catalog.Kind]bool{
		model.KindArticle: true,
		model.KindPin:     true,
	}
	tagTargets = map[catalog.Kind]bool{
		model.KindArticle: true,
		model.KindPin:     true,
	}
)
