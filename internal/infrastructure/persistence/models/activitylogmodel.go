package models

type ActivityLogModel struct {
	ID        uint   `gorm:"primaryKey"`
	UserID    uint   `gorm:"not null;index"`
	TicketID  *uint  `gorm:"index"`
	Action    string `gorm:"size:200;not null"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
