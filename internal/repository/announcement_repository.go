package repository

import (
	"errors"

	"gorm.io/gorm"

	"navportal/internal/model"
)

// AnnouncementRepository 公告仓库接口
type AnnouncementRepository interface {
	Create(announcement *model.Announcement) error
	FindLatest() (*model.Announcement, error)
}

type announcementRepository struct {
	db *gorm.DB
}

// NewAnnouncementRepository 创建公告仓库
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create 追加一条公告，时间戳由gorm写入
func (r *announcementRepository) Create(announcement *model.Announcement) error {
	return r.db.Create(announcement).Error
}

// FindLatest 返回最新一条公告，没有公告时返回nil
func (r *announcementRepository) FindLatest() (*model.Announcement, error) {
	var announcement model.Announcement
	err := r.db.Order("created_at DESC").First(&announcement).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &announcement, nil
}
