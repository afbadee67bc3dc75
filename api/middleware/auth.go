package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"navportal/internal/service"
)

// Auth 认证中间件
// 校验通过后把管理员身份放进上下文，失败时直接拒绝，不会触达存储层
func Auth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 从header里面获取token，格式为：Authorization: Bearer token
		authHeader := c.Request.Header.Get("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "访问被拒绝"})
			c.Abort()
			return
		}

		claims, err := auth.Verify(token)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "令牌无效"})
			c.Abort()
			return
		}

		c.Set("admin_id", claims.ID)
		c.Set("username", claims.Username)
		c.Next()
	}
}
