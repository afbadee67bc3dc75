package service

import (
	"fmt"
	"log"
	"time"

	"navportal/internal/model"
	"navportal/internal/repository"
	"navportal/internal/util"
)

// passwordLength 每日密码长度
const passwordLength = 8

// RotatorService 每日密码轮换服务接口
type RotatorService interface {
	Rotate() error
}

type rotatorService struct {
	settings repository.SettingRepository
	notifier *util.NotifyClient
}

// NewRotatorService 创建每日密码轮换服务
func NewRotatorService(settings repository.SettingRepository, notifier *util.NotifyClient) RotatorService {
	return &rotatorService{
		settings: settings,
		notifier: notifier,
	}
}

// Rotate 生成新密码写入系统设置，然后发布到群
// 通知只尝试一次，失败不回滚已写入的密码
func (s *rotatorService) Rotate() error {
	password, err := util.GeneratePassword(passwordLength)
	if err != nil {
		return err
	}

	if err := s.settings.Set(model.DailyPasswordKey, password); err != nil {
		return err
	}

	message := fmt.Sprintf("【系统公告】\n今日访问密码：%s\n有效期：%s",
		password, time.Now().Format("2006/01/02"))
	if err := s.notifier.SendGroupMessage(message); err != nil {
		log.Printf("密码发布到群失败: %v", err)
	} else {
		log.Println("密码已发布到群")
	}

	log.Println("每日密码已更新")
	return nil
}
