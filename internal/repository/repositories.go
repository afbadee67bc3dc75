package repository

import "gorm.io/gorm"

// Repositories 所有仓库的集合
type Repositories struct {
	Setting      SettingRepository
	AdminUser    AdminUserRepository
	NavButton    NavButtonRepository
	Announcement AnnouncementRepository
}

// NewRepositories 创建仓库集合
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Setting:      NewSettingRepository(db),
		AdminUser:    NewAdminUserRepository(db),
		NavButton:    NewNavButtonRepository(db),
		Announcement: NewAnnouncementRepository(db),
	}
}
