package repository

import (
	"gorm.io/gorm"

	"navportal/internal/model"
)

// AdminUserRepository 管理员账号仓库接口，本系统只读
type AdminUserRepository interface {
	FindByUsername(username string) (*model.AdminUser, error)
}

type adminUserRepository struct {
	db *gorm.DB
}

// NewAdminUserRepository 创建管理员账号仓库
func NewAdminUserRepository(db *gorm.DB) AdminUserRepository {
	return &adminUserRepository{db: db}
}

// FindByUsername 根据用户名查找管理员
func (r *adminUserRepository) FindByUsername(username string) (*model.AdminUser, error) {
	var user model.AdminUser
	if err := r.db.Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}
