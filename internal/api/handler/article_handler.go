package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/query"
	"github.com/d60-Lab/weblog/pkg/response"
)

type createArticleRequest struct {
	CategoryID string `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,max=128"`
	Body       string `json:"body" binding:"required"`
	Publish    bool   `json:"publish"`
}

// CreateArticle 发布文章
// @Summary 创建文章
// @Tags 文章
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createArticleRequest true "文章内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/articles [post]
func (h *Handler) CreateArticle(c *gin.Context) {
	var req createArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	article, err := h.articleSvc.Create(c.Request.Context(), viewerID(c), req.CategoryID, req.Title, req.Body, req.Publish)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, article)
}

// GetArticle 文章详情
// @Summary 文章详情
// @Tags 文章
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/articles/{id} [get]
func (h *Handler) GetArticle(c *gin.Context) {
	article, err := h.articleSvc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, article)
}

// ListArticles 已发布文章列表；登录时注解 is_liked/is_collected
// @Summary 文章列表
// @Tags 文章
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/articles [get]
func (h *Handler) ListArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	rel := query.Relations{IsLiked: true, IsCollected: true}
	articles, err := h.articleSvc.List(c.Request.Context(), viewerID(c), rel, page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": articles})
}

// DeleteArticle 删除文章并级联清理其全部关联边
// @Summary 删除文章
// @Tags 文章
// @Security BearerAuth
// @Param id path string true "文章ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/articles/{id} [delete]
func (h *Handler) DeleteArticle(c *gin.Context) {
	if err := h.articleSvc.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
