package main

import (
    "context"
    "fmt"
    "net/http"
    "os/signal"
    "syscall"
    "time"

    "github.com/getsentry/sentry-go"
    "go.uber.org/zap"

    "github.com/d60-Lab/weblog/config"
    "github.com/d60-Lab/weblog/internal/api"
    "github.com/d60-Lab/weblog/internal/api/handler"
    "github.com/d60-Lab/weblog/internal/cache"
    "github.com/d60-Lab/weblog/internal/repository"
    "github.com/d60-Lab/weblog/internal/service"
    "github.com/d60-Lab/weblog/pkg/database"
    "github.com/d60-Lab/weblog/pkg/logger"
    "github.com/d60-Lab/weblog/pkg/tracing"
)

// @title weblog API
// @version 1.0
// @description 博客内容与互动关系服务
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func main() {
    cfg := must(config.Load())
    if err := logger.Init(cfg.App.Mode); err != nil { panic(err) }
    defer logger.Sync()

    if cfg.Sentry.DSN != "" {
        if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.Sentry.DSN}); err != nil {
            logger.Warn("sentry init failed", zap.Error(err))
        } else {
            defer sentry.Flush(2 * time.Second)
        }
    }

    ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
    defer stop()

    if cfg.Trace.Enabled {
        shutdown := must(tracing.Init(ctx, cfg))
        defer func() { _ = shutdown(context.Background()) }()
    }

    db := must(database.InitDB(cfg))

    // redis 不可用时降级：计数与粉丝缓存走数据库直查
    var followers *cache.FollowerCache
    var counter *service.ReactionCounter
    rdb, err := database.InitRedis(cfg)
    if err != nil {
        logger.Warn("redis unavailable, counters and follower cache disabled", zap.Error(err))
    } else {
        followers = cache.NewFollowerCache(db, rdb, 10*time.Minute)
        counter = service.NewReactionCounter(rdb, 100000)
        stopCounter := counter.Start(4)
        defer func() { _ = stopCounter(context.Background()) }()
    }

    userRepo := repository.NewUserRepository(db)
    articleRepo := repository.NewArticleRepository(db)
    pinRepo := repository.NewPinRepository(db)
    likeRepo := repository.NewLikeRepository(db)
    followRepo := repository.NewFollowRepository(db)
    collectRepo := repository.NewCollectRepository(db)
    collectionRepo := repository.NewCollectionRepository(db)
    commentRepo := repository.NewCommentRepository(db)
    tagRepo := repository.NewTagRepository(db)
    relations := repository.NewRelationAccessor(db)

    h := handler.NewHandler(
        service.NewUserService(userRepo, cfg.JWT),
        service.NewArticleService(db, articleRepo, counter),
        service.NewPinService(db, pinRepo, counter),
        service.NewLikeService(db, likeRepo, counter),
        service.NewFollowService(db, followRepo, relations, followers, counter),
        service.NewCollectService(db, collectRepo, collectionRepo, relations, counter),
        service.NewCommentService(db, commentRepo, counter),
        service.NewTagService(db, tagRepo, relations),
    )

    srv := &http.Server{
        Addr:    fmt.Sprintf(":%d", cfg.App.Port),
        Handler: api.NewRouter(cfg, h),
    }

    go func() {
        logger.Info("server listening", zap.Int("port", cfg.App.Port))
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            logger.Fatal("server failed", zap.Error(err))
        }
    }()

    <-ctx.Done()
    logger.Info("shutting down")
    shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
    defer cancel()
    if err := srv.Shutdown(shutdownCtx); err != nil {
        logger.Error("shutdown error", zap.Error(err))
    }
}
