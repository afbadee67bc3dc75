package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navportal/internal/model"
	"navportal/internal/repository"
)

// NavButtonPayload 提交的单个按钮，展示顺序由提交顺序决定
type NavButtonPayload struct {
	ID     uint   `json:"id"`
	Number int    `json:"number"`
	Text   string `json:"text"`
	URL    string `json:"url"`
}

// UpdateNavButtonsReq 导航按钮整表替换请求
// buttons字段必须出现，允许为空列表
type UpdateNavButtonsReq struct {
	Buttons *[]NavButtonPayload `json:"buttons" binding:"required"`
}

// UpdateNavButtons 整表替换导航按钮，需要管理员权限
func UpdateNavButtons(repo repository.NavButtonRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req UpdateNavButtonsReq
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "无效的请求参数"})
			return
		}

		buttons := make([]model.NavButton, 0, len(*req.Buttons))
		for _, b := range *req.Buttons {
			buttons = append(buttons, model.NavButton{
				ID:     b.ID,
				Number: b.Number,
				Text:   b.Text,
				URL:    b.URL,
			})
		}

		if err := repo.ReplaceAll(buttons); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{"message": "导航按钮更新成功"})
	}
}
