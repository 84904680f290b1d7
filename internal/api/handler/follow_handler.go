package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/pkg/response"
)

// Follow 关注
// @Summary 关注用户/分类/话题/收藏夹（幂等）
// @Tags 关注
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body edgeRequest true "目标"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/follows [post]
func (h *Handler) Follow(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	follow, err := h.followSvc.Follow(c.Request.Context(), viewerID(c), catalog.Kind(req.ContentType), req.ObjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, follow)
}

// Unfollow 取消关注
// @Summary 取消关注
// @Tags 关注
// @Security BearerAuth
// @Param id path string true "关注ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/follows/{id} [delete]
func (h *Handler) Unfollow(c *gin.Context) {
	if err := h.followSvc.Unfollow(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListFollowing 某用户关注的用户列表
// @Summary 关注列表
// @Tags 关注
// @Param id path string true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{id}/following [get]
func (h *Handler) ListFollowing(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	users, err := h.followSvc.ListFollowing(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": users})
}

// ListFollowers 某用户的粉丝列表
// @Summary 粉丝列表
// @Tags 关注
// @Param id path string true "用户ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/users/{id}/followers [get]
func (h *Handler) ListFollowers(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	fans, err := h.followSvc.ListFollowers(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": fans})
}
