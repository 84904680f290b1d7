package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/d60-Lab/weblog/pkg/response"
)

const (
	ContextViewerID = "viewer_id"
	ContextIsAdmin  = "is_admin"
)

func parseToken(c *gin.Context, secret string) (string, bool, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false, false
	}
	raw := strings.TrimPrefix(header, "Bearer ")

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (any, error) {
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", false, false
	}

	sub, _ := claims["sub"].(string)
	admin, _ := claims["admin"].(bool)
	return sub, admin, sub != ""
}

// Auth 要求合法 token，否则 401
func Auth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		viewerID, admin, ok := parseToken(c, secret)
		if !ok {
			response.Unauthorized(c, "invalid or missing token")
			c.Abort()
			return
		}
		c.Set(ContextViewerID, viewerID)
		c.Set(ContextIsAdmin, admin)
		c.Next()
	}
}

// OptionalAuth 匿名可过；带合法 token 时注入查看者身份
func OptionalAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if viewerID, admin, ok := parseToken(c, secret); ok {
			c.Set(ContextViewerID, viewerID)
			c.Set(ContextIsAdmin, admin)
		}
		c.Next()
	}
}
