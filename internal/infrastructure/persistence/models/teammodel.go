package models

type TeamModel struct {
	ID          uint   `gorm:"primaryKey"`
	Name        string `gorm:"size:100;uniqueIndex;not null"`
	Description string `gorm:"type:text"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null"`
}

func (TeamModel) TableName() string {
	return "teams"
}
