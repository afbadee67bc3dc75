package repository

import (
	"gorm.io/gorm"

	"navportal/internal/model"
)

// NavButtonRepository 导航按钮仓库接口
type NavButtonRepository interface {
	FindAll() ([]model.NavButton, error)
	ReplaceAll(buttons []model.NavButton) error
}

type navButtonRepository struct {
	db *gorm.DB
}

// NewNavButtonRepository 创建导航按钮仓库
func NewNavButtonRepository(db *gorm.DB) NavButtonRepository {
	return &navButtonRepository{db: db}
}

// FindAll 按展示顺序返回所有按钮
func (r *navButtonRepository) FindAll() ([]model.NavButton, error) {
	var buttons []model.NavButton
	if err := r.db.Order("\"order\"").Find(&buttons).Error; err != nil {
		return nil, err
	}
	return buttons, nil
}

// ReplaceAll 整表替换导航按钮
// 删除和插入放在同一个事务里，避免中途失败导致表为空
func (r *navButtonRepository) ReplaceAll(buttons []model.NavButton) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.NavButton{}).Error; err != nil {
			return err
		}
		if len(buttons) == 0 {
			return nil
		}
		// 按提交顺序重新编号
		for i := range buttons {
			buttons[i].Order = i
		}
		return tx.Create(&buttons).Error
	})
}
