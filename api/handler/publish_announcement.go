package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navportal/internal/model"
	"navportal/internal/repository"
)

// PublishAnnouncementReq 发布公告请求
type PublishAnnouncementReq struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// PublishAnnouncement 发布公告，需要管理员权限
func PublishAnnouncement(repo repository.AnnouncementRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req PublishAnnouncementReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
			return
		}

		announcement := model.Announcement{
			Title:   req.Title,
			Content: req.Content,
		}
		if err := repo.Create(&announcement); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "公告发布成功"})
	}
}
