package main

import (
    "context"
    "fmt"
    "math/rand"
    "os"
    "strconv"
    "time"

    "github.com/d60-Lab/weblog/config"
    "github.com/d60-Lab/weblog/internal/model"
    "github.com/d60-Lab/weblog/internal/query"
    "github.com/d60-Lab/weblog/internal/repository"
    "github.com/d60-Lab/weblog/internal/service"
    "github.com/d60-Lab/weblog/pkg/database"
    "github.com/d60-Lab/weblog/pkg/logger"
)

func must[T any](v T, err error) T { if err != nil { panic(err) }; return v }

func envInt(name string, def int) int {
    if s := os.Getenv(name); s != "" {
        if n, err := strconv.Atoi(s); err == nil && n > 0 { return n }
    }
    return def
}

// 生成演示数据：注册用户、发文章，再在随机抽样的目标上铺点赞/关注/评论边
func main() {
    cfg := must(config.Load())
    _ = logger.Init(cfg.App.Mode)
    db := must(database.InitDB(cfg))

    USERS := envInt("USERS", 200)
    ARTICLES := envInt("ARTICLES", 500)
    EDGES := envInt("EDGES", 2000)

    userRepo := repository.NewUserRepository(db)
    articleRepo := repository.NewArticleRepository(db)
    likeRepo := repository.NewLikeRepository(db)
    followRepo := repository.NewFollowRepository(db)
    commentRepo := repository.NewCommentRepository(db)

    userSvc := service.NewUserService(userRepo, cfg.JWT)
    articleSvc := service.NewArticleService(db, articleRepo, nil)
    likeSvc := service.NewLikeService(db, likeRepo, nil)
    followSvc := service.NewFollowService(db, followRepo, repository.NewRelationAccessor(db), nil, nil)
    commentSvc := service.NewCommentService(db, commentRepo, nil)

    ctx := context.Background()
    cat := model.Catalog()

    t0 := time.Now()
    category := model.Category{Name: fmt.Sprintf("seed-%d", time.Now().Unix())}
    _ = db.Create(&category).Error

    users := make([]*model.User, 0, USERS)
    for i := 0; i < USERS; i++ {
        tag := fmt.Sprintf("seed%d_%d", time.Now().UnixNano(), i)
        u, err := userSvc.Register(ctx, tag, tag+"@example.com", "password")
        if err != nil { continue }
        users = append(users, u)
    }
    for i := 0; i < ARTICLES; i++ {
        author := users[rand.Intn(len(users))]
        _, _ = articleSvc.Create(ctx, author.ID, category.ID, fmt.Sprintf("article %d", i), "body", true)
    }
    fmt.Printf("seeded %d users, %d articles in %v\n", len(users), ARTICLES, time.Since(t0))

    // 在随机样本上铺边；抽样器保证表大于样本时恰好取 n 行
    var sampledArticles []model.Article
    if err := query.Sample(ctx, db, cat.MustLookup(model.KindArticle), 100, &sampledArticles); err != nil { panic(err) }
    var sampledUsers []model.User
    if err := query.Sample(ctx, db, cat.MustLookup(model.KindUser), 100, &sampledUsers); err != nil { panic(err) }

    t1 := time.Now()
    likes, follows, comments := 0, 0, 0
    for i := 0; i < EDGES; i++ {
        sender := users[rand.Intn(len(users))]
        switch i % 3 {
        case 0:
            a := sampledArticles[rand.Intn(len(sampledArticles))]
            if _, err := likeSvc.Like(ctx, sender.ID, model.KindArticle, a.ID); err == nil { likes++ }
        case 1:
            target := sampledUsers[rand.Intn(len(sampledUsers))]
            if _, err := followSvc.Follow(ctx, sender.ID, model.KindUser, target.ID); err == nil { follows++ }
        case 2:
            a := sampledArticles[rand.Intn(len(sampledArticles))]
            if _, err := commentSvc.Comment(ctx, sender.ID, model.KindArticle, a.ID, nil, "nice"); err == nil { comments++ }
        }
    }
    fmt.Printf("seeded %d likes, %d follows, %d comments in %v\n", likes, follows, comments, time.Since(t1))
}
