package service

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/d60-Lab/weblog/config"
	"github.com/d60-Lab/weblog/internal/model"
	"github.com/d60-Lab/weblog/internal/query"
	"github.com/d60-Lab/weblog/internal/repository"
)

// UserService 用户注册/认证与用户列表
type UserService interface {
	Register(ctx context.Context, username, email, password string) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (*model.User, error)
	IssueToken(u *model.User) (string, error)
	List(ctx context.Context, viewerID string, rel query.Relations, page, pageSize int) ([]repository.UserRow, error)
}

type userService struct {
	userRepo repository.UserRepository
	jwtCfg   config.JWTConfig
}

func NewUserService(userRepo repository.UserRepository, jwtCfg config.JWTConfig) UserService {
	return &userService{userRepo: userRepo, jwtCfg: jwtCfg}
}

func (s *userService) Register(ctx context.Context, username, email, password string) (*model.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return s.userRepo.Create(ctx, &model.User{
		Username: username,
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	})
}

func (s *userService) Authenticate(ctx context.Context, username, password string) (*model.User, error) {
	u, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, ErrNotOwner
	}
	return u, nil
}

func (s *userService) IssueToken(u *model.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":   u.ID,
		"admin": u.IsAdmin,
		"exp":   time.Now().Add(time.Duration(s.jwtCfg.ExpireHours) * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtCfg.Secret))
}

func (s *userService) List(ctx context.Context, viewerID string, rel query.Relations, page, pageSize int) ([]repository.UserRow, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 10
	}
	return s.userRepo.ListActive(ctx, viewerID, rel, (page-1)*pageSize, pageSize)
}
