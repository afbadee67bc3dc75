package repository

import (
	"gorm.io/gorm"

	"navportal/internal/model"
)

// SettingRepository 系统设置仓库接口
type SettingRepository interface {
	GetAll() (map[string]string, error)
	Set(name string, value string) error
	UpdateAll(settings map[string]string) error
}

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建系统设置仓库
func NewSettingRepository(db *gorm.DB) SettingRepository {
	return &settingRepository{db: db}
}

// GetAll 获取全部设置，返回name到value的映射
func (r *settingRepository) GetAll() (map[string]string, error) {
	var settings []model.Setting
	if err := r.db.Find(&settings).Error; err != nil {
		return nil, err
	}
	result := make(map[string]string)
	for _, s := range settings {
		result[s.Name] = s.Value
	}
	return result, nil
}

// Set 写入单个设置，不存在时插入
func (r *settingRepository) Set(name string, value string) error {
	setting := model.Setting{
		Name:  name,
		Value: value,
	}
	return r.db.Save(&setting).Error
}

// UpdateAll 在一个事务里批量写入设置，任一失败整体回滚
func (r *settingRepository) UpdateAll(settings map[string]string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for name, value := range settings {
			setting := model.Setting{
				Name:  name,
				Value: value,
			}
			if err := tx.Save(&setting).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
