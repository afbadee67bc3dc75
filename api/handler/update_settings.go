package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navportal/internal/repository"
)

// UpdateSettingsReq 设置更新请求
type UpdateSettingsReq struct {
	Settings map[string]string `json:"settings" binding:"required"`
}

// UpdateSettings 批量更新系统设置，需要管理员权限
func UpdateSettings(repo repository.SettingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateSettingsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
			return
		}

		if err := repo.UpdateAll(req.Settings); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "设置更新成功"})
	}
}
