package api

import (
	"github.com/gin-gonic/gin"

	"navportal/api/handler"
	"navportal/api/middleware"
	"navportal/internal/service"
)

// SetupRouter 设置API路由
func SetupRouter(services *service.Services) *gin.Engine {
	// 创建Gin路由
	router := gin.New()
	// 添加中间件
	router.Use(middleware.Logger())
	router.Use(middleware.Cors())
	router.Use(middleware.Recovery())

	apiGroup := router.Group("/api")
	{
		// 公开API
		apiGroup.GET("/settings", handler.GetSettings(services.Repos.Setting))
		apiGroup.POST("/admin/login", handler.AdminLogin(services.Auth))
		apiGroup.GET("/nav-buttons", handler.GetNavButtons(services.Repos.NavButton))
		apiGroup.GET("/announcements/latest", handler.GetLatestAnnouncement(services.Repos.Announcement))

		// 管理员API，写操作都在认证中间件之后
		authMiddleware := middleware.Auth(services.Auth)
		apiGroup.POST("/settings/update", authMiddleware, handler.UpdateSettings(services.Repos.Setting))
		apiGroup.POST("/nav-buttons/update", authMiddleware, handler.UpdateNavButtons(services.Repos.NavButton))
		apiGroup.POST("/announcements/publish", authMiddleware, handler.PublishAnnouncement(services.Repos.Announcement))
	}

	return router
}
