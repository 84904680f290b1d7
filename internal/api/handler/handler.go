package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/weblog/internal/api/middleware"
	"github.com/d60-Lab/weblog/internal/service"
)

// Handler 聚合全部 HTTP 处理器
type Handler struct {
	userSvc    service.UserService
	articleSvc service.ArticleService
	pinSvc     service.PinService
	likeSvc    service.LikeService
	followSvc  service.FollowService
	collectSvc service.CollectService
	commentSvc service.CommentService
	tagSvc     service.TagService
}

func NewHandler(
	userSvc service.UserService,
	articleSvc service.ArticleService,
	pinSvc service.PinService,
	likeSvc service.LikeService,
	followSvc service.FollowService,
	collectSvc service.CollectService,
	commentSvc service.CommentService,
	tagSvc service.TagService,
) *Handler {
	return &Handler{
		userSvc:    userSvc,
		articleSvc: articleSvc,
		pinSvc:     pinSvc,
		likeSvc:    likeSvc,
		followSvc:  followSvc,
		collectSvc: collectSvc,
		commentSvc: commentSvc,
		tagSvc:     tagSvc,
	}
}

func viewerID(c *gin.Context) string {
	return c.GetString(middleware.ContextViewerID)
}

func actor(c *gin.Context) service.Actor {
	return service.Actor{
		ID:    c.GetString(middleware.ContextViewerID),
		Admin: c.GetBool(middleware.ContextIsAdmin),
	}
}
