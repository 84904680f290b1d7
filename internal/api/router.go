package api

import (
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/d60-Lab/weblog/config"
	_ "github.com/d60-Lab/weblog/docs"
	"github.com/d60-Lab/weblog/internal/api/handler"
	"github.com/d60-Lab/weblog/internal/api/middleware"
	"github.com/d60-Lab/weblog/internal/catalog"
	"github.com/d60-Lab/weblog/internal/model"
)

// registerValidators 把实体类型标签注册成 binding 校验器
func registerValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("entitykind", func(fl validator.FieldLevel) bool {
			_, ok := model.Catalog().Lookup(catalog.Kind(fl.Field().String()))
			return ok
		})
	}
}

// NewRouter 组装路由与中间件
func NewRouter(cfg *config.Config, h *handler.Handler) *gin.Engine {
	gin.SetMode(cfg.App.Mode)
	registerValidators()

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(gzip.Gzip(gzip.DefaultCompression))
	r.Use(otelgin.Middleware(cfg.App.Name))
	if cfg.Sentry.DSN != "" {
		r.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	r.Use(middleware.RateLimit(cfg.RateLimit.QPS, cfg.RateLimit.Burst))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	v1 := r.Group("/api/v1")

	// 匿名可访问，带 token 时注入查看者视角
	public := v1.Group("", middleware.OptionalAuth(cfg.JWT.Secret))
	{
		public.POST("/users/register", h.Register)
		public.POST("/users/login", h.Login)
		public.GET("/users", h.ListUsers)
		public.GET("/users/:id/following", h.ListFollowing)
		public.GET("/users/:id/followers", h.ListFollowers)

		public.GET("/articles", h.ListArticles)
		public.GET("/articles/:id", h.GetArticle)
		public.GET("/pins", h.ListPins)

		public.GET("/collections/:id/articles", h.ListCollectionArticles)
		public.GET("/collections/:id/pins", h.ListCollectionPins)

		public.GET("/comments", h.ListComments)
		public.GET("/comments/:id/replies", h.ListCommentReplies)

		public.GET("/tags/:id/articles", h.ListTagArticles)
	}

	// 必须登录
	authed := v1.Group("", middleware.Auth(cfg.JWT.Secret))
	{
		authed.POST("/articles", h.CreateArticle)
		authed.DELETE("/articles/:id", h.DeleteArticle)

		authed.POST("/pins", h.CreatePin)
		authed.DELETE("/pins/:id", h.DeletePin)

		authed.POST("/likes", h.Like)
		authed.GET("/likes", h.ListMyLikes)
		authed.DELETE("/likes/:id", h.Unlike)

		authed.POST("/follows", h.Follow)
		authed.DELETE("/follows/:id", h.Unfollow)

		authed.POST("/collections", h.CreateCollection)
		authed.GET("/collections", h.ListMyCollections)
		authed.DELETE("/collections/:id", h.DeleteCollection)
		authed.POST("/collects", h.Collect)
		authed.DELETE("/collects/:id", h.Uncollect)

		authed.POST("/comments", h.CreateComment)
		authed.DELETE("/comments/:id", h.DeleteComment)

		authed.POST("/tags", h.TagTarget)
		authed.DELETE("/tags/items/:id", h.UntagTarget)
	}

	return r
}
