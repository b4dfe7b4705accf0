package models

type ConfigMasterModel struct {
	ID        uint    `gorm:"primaryKey"`
	Type      string  `gorm:"size:50;not null;index"`
	Value     string  `gorm:"size:100;not null"`
	Label     string  `gorm:"size:100;not null"`
	Color     *string `gorm:"size:20"`
	Parent    *string `gorm:"size:50"`
	CreatedAt int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (ConfigMasterModel) TableName() string {
	return "config_master"
}
