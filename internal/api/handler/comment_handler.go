package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/pkg/response"
)

type createCommentRequest struct {
	ContentType string  `json:"content_type" binding:"required,entitykind"`
	ObjectID    string  `json:"object_id" binding:"required"`
	ParentID    *string `json:"parent_id"`
	Body        string  `json:"body" binding:"required,max=2000"`
}

// CreateComment 发表评论
// @Summary 发表评论或回复
// @Tags 评论
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createCommentRequest true "评论内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/comments [post]
func (h *Handler) CreateComment(c *gin.Context) {
	var req createCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	comment, err := h.commentSvc.Comment(c.Request.Context(), viewerID(c), catalog.Kind(req.ContentType), req.ObjectID, req.ParentID, req.Body)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, comment)
}

// DeleteComment 删除评论
// @Summary 删除评论
// @Tags 评论
// @Security BearerAuth
// @Param id path string true "评论ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/comments/{id} [delete]
func (h *Handler) DeleteComment(c *gin.Context) {
	if err := h.commentSvc.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListComments 目标的顶层评论
// @Summary 评论列表
// @Tags 评论
// @Param content_type query string true "目标类型"
// @Param object_id query string true "目标ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Failure 400 {object} response.Response
// @Router /api/v1/comments [get]
func (h *Handler) ListComments(c *gin.Context) {
	kind := c.Query("content_type")
	objectID := c.Query("object_id")
	if kind == "" || objectID == "" {
		response.BadRequest(c, "content_type and object_id are required")
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	comments, err := h.commentSvc.ListByTarget(c.Request.Context(), catalog.Kind(kind), objectID, page, pageSize)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": comments})
}

// ListCommentReplies 某条评论的子回复
// @Summary 回复列表
// @Tags 评论
// @Param id path string true "父评论ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/comments/{id}/replies [get]
func (h *Handler) ListCommentReplies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	replies, err := h.commentSvc.ListChildren(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": replies})
}
