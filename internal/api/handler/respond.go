package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/service"
	"github.com/d60-Lab/weblog/pkg/response"
)

// respondServiceError 服务层错误到 HTTP 状态的统一映射
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrKindNotAllowed),
		errors.Is(err, service.ErrTargetNotFound),
		errors.Is(err, service.ErrFollowSelf),
		errors.Is(err, service.ErrParentMismatch):
		response.BadRequest(c, err.Error())
	case errors.Is(err, service.ErrNotOwner):
		response.Forbidden(c, err.Error())
	case errors.Is(err, service.ErrNotFound):
		response.NotFound(c, err.Error())
	default:
		response.InternalError(c, err)
	}
}
