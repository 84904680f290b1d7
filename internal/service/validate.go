package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/internal/catalog"
)

// checkFunc 单个校验步骤；返回 nil 表示通过
type checkFunc func(ctx context.Context) error

// runChecks 按声明顺序执行校验链，首个失败即返回。
// 顺序有语义：内容类型合法性先于目标存在性，存在性先于归属。
func runChecks(ctx context.Context, checks ...checkFunc) error {
	for _, check := range checks {
		if err := check(ctx); err != nil {
			return err
		}
	}
	return nil
}

// checkKindAllowed 内容类型是否在该动作的合法性表内
func checkKindAllowed(allowed map[catalog.Kind]bool, kind catalog.Kind) checkFunc {
	return func(context.Context) error {
		if !allowed[kind] {
			return ErrKindNotAllowed
		}
		return nil
	}
}

// checkTargetExists 目标行当前是否存在（多态目标没有真实外键，只能写前校验）
func checkTargetExists(db *gorm.DB, cat *catalog.Catalog, kind catalog.Kind, objectID string) checkFunc {
	return func(ctx context.Context) error {
		ok, err := cat.Exists(ctx, db, kind, objectID)
		if err != nil {
			return err
		}
		if !ok {
			return ErrTargetNotFound
		}
		return nil
	}
}

// checkOwner 属主或管理员
func checkOwner(actor Actor, ownerID string) checkFunc {
	return func(context.Context) error {
		if actor.Admin || actor.ID == ownerID {
			return nil
		}
		return ErrNotOwner
	}
}
