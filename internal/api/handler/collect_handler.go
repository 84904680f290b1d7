package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/pkg/response"
)

type createCollectionRequest struct {
	Name string `json:"name" binding:"required,max=64"`
	Desc string `json:"desc" binding:"max=255"`
}

type collectRequest struct {
	CollectionID string `json:"collection_id" binding:"required"`
	ContentType  string `json:"content_type" binding:"required,entitykind"`
	ObjectID     string `json:"object_id" binding:"required"`
}

// CreateCollection 创建收藏夹
// @Summary 创建收藏夹
// @Tags 收藏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body createCollectionRequest true "收藏夹信息"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /api/v1/collections [post]
func (h *Handler) CreateCollection(c *gin.Context) {
	var req createCollectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	collection, err := h.collectSvc.CreateCollection(c.Request.Context(), viewerID(c), req.Name, req.Desc)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, collection)
}

// ListMyCollections 我的收藏夹
// @Summary 我的收藏夹列表
// @Tags 收藏
// @Security BearerAuth
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/collections [get]
func (h *Handler) ListMyCollections(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	collections, err := h.collectSvc.ListMyCollections(c.Request.Context(), viewerID(c), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": collections})
}

// DeleteCollection 删除收藏夹
// @Summary 删除收藏夹（夹内收藏一并清理）
// @Tags 收藏
// @Security BearerAuth
// @Param id path string true "收藏夹ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /api/v1/collections/{id} [delete]
func (h *Handler) DeleteCollection(c *gin.Context) {
	if err := h.collectSvc.DeleteCollection(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// Collect 收藏内容到收藏夹
// @Summary 收藏文章或沸点（幂等）
// @Tags 收藏
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body collectRequest true "收藏夹与目标"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/collects [post]
func (h *Handler) Collect(c *gin.Context) {
	var req collectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	collect, err := h.collectSvc.Collect(c.Request.Context(), actor(c), req.CollectionID, catalog.Kind(req.ContentType), req.ObjectID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, collect)
}

// Uncollect 取消收藏
// @Summary 取消收藏
// @Tags 收藏
// @Security BearerAuth
// @Param id path string true "收藏ID"
// @Success 200 {object} response.Response
// @Failure 403 {object} response.Response
// @Router /api/v1/collects/{id} [delete]
func (h *Handler) Uncollect(c *gin.Context) {
	if err := h.collectSvc.Uncollect(c.Request.Context(), actor(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	response.Success(c, nil)
}

// ListCollectionArticles 收藏夹内的文章
// @Summary 收藏夹文章列表
// @Tags 收藏
// @Param id path string true "收藏夹ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/collections/{id}/articles [get]
func (h *Handler) ListCollectionArticles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	articles, err := h.collectSvc.ListCollectionArticles(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": articles})
}

// ListCollectionPins 收藏夹内的沸点
// @Summary 收藏夹沸点列表
// @Tags 收藏
// @Param id path string true "收藏夹ID"
// @Param page query int false "页码" default(1)
// @Param page_size query int false "每页数量" default(10)
// @Success 200 {object} response.Response{data=map[string]interface{}}
// @Router /api/v1/collections/{id}/pins [get]
func (h *Handler) ListCollectionPins(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	pins, err := h.collectSvc.ListCollectionPins(c.Request.Context(), c.Param("id"), page, pageSize)
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"page": page, "page_size": pageSize, "list": pins})
}
