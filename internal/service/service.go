package service

import (
	"gorm.io/gorm"

	"navportal/config"
	"navportal/internal/repository"
	"navportal/internal/util"
)

// Services 所有服务的集合
type Services struct {
	Repos   *repository.Repositories
	Auth    AuthService
	Rotator RotatorService
}

// NewServices 初始化所有服务
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	// 创建仓库集合
	repos := repository.NewRepositories(db)

	// 创建群消息通知客户端
	notifier := util.NewNotifyClient(cfg.Notify)

	return &Services{
		Repos:   repos,
		Auth:    NewAuthService(repos.AdminUser, cfg.Auth.Secret),
		Rotator: NewRotatorService(repos.Setting, notifier),
	}
}
