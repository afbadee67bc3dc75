package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navportal/internal/repository"
)

// GetNavButtons 按展示顺序返回导航按钮
func GetNavButtons(repo repository.NavButtonRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		buttons, err := repo.FindAll()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, buttons)
	}
}
