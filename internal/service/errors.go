package service

import "errors"

var (
	// ErrFollowSelf 不能关注自己
	ErrFollowSelf = errors.New("cannot follow self")
	// ErrTargetNotFound 边指向的目标行不存在
	ErrTargetNotFound = errors.New("target object not found")
	// ErrKindNotAllowed 该动作不允许指向这种内容类型
	ErrKindNotAllowed = errors.New("content type not allowed for this action")
	// ErrNotOwner 非属主且非管理员
	ErrNotOwner = errors.New("not the owner of this object")
	// ErrParentMismatch 父评论不属于同一目标
	ErrParentMismatch = errors.New("parent comment belongs to a different target")
	// ErrNotFound 对象不存在
	ErrNotFound = errors.New("object not found")
)

// Actor 执行动作的主体（来自认证层）
type Actor struct {
	ID    string
	Admin bool
}
