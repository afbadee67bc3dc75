package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navportal/internal/repository"
)

// GetLatestAnnouncement 获取最新公告，没有公告时返回null
func GetLatestAnnouncement(repo repository.AnnouncementRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		announcement, err := repo.FindLatest()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, announcement)
	}
}
