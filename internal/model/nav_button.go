package model

// NavButton 导航按钮
// order为展示顺序，整表替换时按提交顺序重新编号
type NavButton struct {
	ID     uint   `gorm:"primaryKey" json:"id"`
	Number int    `json:"number"`
	Text   string `json:"text"`
	URL    string `json:"url"`
	Order  int    `gorm:"column:order" json:"order"`
}

func (NavButton) TableName() string {
	return "nav_buttons"
}
