package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/query"
	"github.com/d60-Lab/weblog/pkg/response"
)

type createPinRequest struct {
	Body string `json:"body" binding:"required,max=1000"`
}

// CreatePin 发布动态
// @Summary 发布动态
// @Tags 动态
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createPinRequest true "动态内容"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/pins [post]
func (h *Handler) CreatePin(c *gin.Context) {
	var req createPinRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	pin, err := h.pinSvc.Create(c.Request.Context(), viewerID(c), req.Body)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, pin)
}

// ListPins 动态列表；登录时注解 is_liked/is_collected
// @Summary 动态列表
// @Tags 动态
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/pins [get]
func (h *Handler) ListPins(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	rel := query.Relations{IsLiked: true, IsCollected: true}
	pins, err := h.pinSvc.List(c.Request.Context(), viewerID(c), rel, page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": pins})
}

// DeletePin 删除动态并级联清理其全部关联边
// @Summary 删除动态
// @Tags 动态
// @Security BearerAuth
// @Param id path string true "动态ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/pins/{id} [delete]
func (h *Handler) DeletePin(c *gin.Context) {
	if err := h.pinSvc.Delete(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}
