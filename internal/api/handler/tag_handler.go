package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/pkg/response"
)

type tagRequest struct {
	Name        string `json:"name" binding:"required,max=32"`
	ContentType string `json:"content_type" binding:"required,entitykind"`
	ObjectID    string `json:"object_id" binding:"required"`
}

// TagTarget 给内容贴标签
// @Summary 贴标签（标签不存在则创建，幂等）
// @Tags 标签
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body tagRequest true "标签与目标"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/tags [post]
func (h *Handler) TagTarget(c *gin.Context) {
	var req tagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	item, err := h.tagSvc.TagTarget(c.Request.Context(), actor(c), req.Name, catalog.Kind(req.ContentType), req.ObjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, item)
}

// UntagTarget 移除标签
// @Summary 移除标签
// @Tags 标签
// @Security BearerAuth
// @Param id path string true "贴标签记录ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/tags/items/{id} [delete]
func (h *Handler) UntagTarget(c *gin.Context) {
	if err := h.tagSvc.UntagTarget(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListTagArticles 某标签下的文章
// @Summary 标签文章列表
// @Tags 标签
// @Param id path string true "标签ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/tags/{id}/articles [get]
func (h *Handler) ListTagArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	articles, err := h.tagSvc.ListTagArticles(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": articles})
}
