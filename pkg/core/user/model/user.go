package model

// User 用户身份文档（Redis），owned 列表只追加
type User struct {
	ID       string  `json:"_id"`
	UserID   string  `json:"userID"`
	Email    string  `json:"email"`
	Password string  `json:"password,omitempty"` // bcrypt 哈希，读取时默认不返回
	Albums   []int64 `json:"albums"`
	Photos   []int64 `json:"photos"`
}

// WithoutPassword 返回去掉密码哈希的副本
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
