package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navportal/internal/repository"
)

// GetSettings 获取全部系统设置
func GetSettings(repo repository.SettingRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		settings, err := repo.GetAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, settings)
	}
}
