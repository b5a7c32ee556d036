package model

// Album 相册，ownerid 指向用户文档的 userID（跨库，不做外键约束）
type Album struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	OwnerID string  `gorm:"column:ownerid;type:varchar(255);not null;index" json:"ownerid"`
	Name    string  `gorm:"column:name;type:varchar(255);not null" json:"name"`
	Date    string  `gorm:"column:date;type:varchar(32);not null" json:"date"`
	Email   *string `gorm:"column:email;type:varchar(255)" json:"email"`
}

// TableName 定义映射表名
func (Album) TableName() string {
	return "albums"
}

// Review 评论，只在相册详情中读取
type Review struct {
	ID      int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID  string  `gorm:"column:userid;type:varchar(255);not null;index" json:"userid"`
	AlbumID int64   `gorm:"column:albumid;not null;index" json:"albumid"`
	Rating  int     `gorm:"column:rating;not null" json:"rating"`
	Review  *string `gorm:"column:review;type:text" json:"review"`
}

func (Review) TableName() string {
	return "reviews"
}
