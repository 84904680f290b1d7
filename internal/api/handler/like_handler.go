package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/pkg/response"
)

type edgeRequest struct {
	ContentType string `json:"content_type" binding:"required,entitykind"`
	ObjectID    string `json:"object_id" binding:"required"`
}

// Like 点赞
// @Summary 点赞（幂等）
// @Tags 点赞
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body edgeRequest true "目标"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/likes [post]
func (h *Handler) Like(c *gin.Context) {
	var req edgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	like, err := h.likeSvc.Like(c.Request.Context(), viewerID(c), catalog.Kind(req.ContentType), req.ObjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, like)
}

// Unlike 取消点赞
// @Summary 取消点赞
// @Tags 点赞
// @Security BearerAuth
// @Param id path string true "点赞ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/likes/{id} [delete]
func (h *Handler) Unlike(c *gin.Context) {
	if err := h.likeSvc.Unlike(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListMyLikes 我的点赞列表
// @Summary 我的点赞
// @Tags 点赞
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/likes [get]
func (h *Handler) ListMyLikes(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	list, err := h.likeSvc.ListBySender(c.Request.Context(), viewerID(c), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": list})
}
