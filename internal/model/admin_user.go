package model

// AdminUser 管理员账号，密码为bcrypt哈希
// 账号由初始化脚本写入，本系统不提供增删接口
type AdminUser struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex" json:"username"`
	Password string `json:"-"`
}

func (AdminUser) TableName() string {
	return "admin_users"
}
