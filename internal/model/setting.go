package model

// Setting 系统设置（键值对存储）
type Setting struct {
	Name  string `gorm:"primaryKey" json:"name"`
	Value string `json:"value"`
}

func (Setting) TableName() string {
	return "system_settings"
}

// DailyPasswordKey 每日访问密码在系统设置表中的保留键
const DailyPasswordKey = "daily_password"
