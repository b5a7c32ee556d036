package model

// Photo 照片；userid 与 albumid 创建后不可修改
type Photo struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string  `gorm:"column:userid;type:varchar(255);not null;index" json:"userid"`
	AlbumID int64   `gorm:"column:albumid;not null;index" json:"albumid"`
	Caption *string `gorm:"column:caption;type:text" json:"caption"`
	Data    string  `gorm:"column:data;type:mediumtext;not null" json:"data"`
}

// TableName 定义映射表名
func (Photo) TableName() string {
	return "photos"
}

// SameOwnership 判断更新是否保持了所属用户与相册
func (p Photo) SameOwnership(other Photo) bool {
	return p.UserID == other.UserID && p.AlbumID == other.AlbumID
}
