package models

type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Username     string `gorm:"uniqueIndex;size:80;not null"`
	PasswordHash string `gorm:"size:255;not null"`
	Fullname     string `gorm:"size:50"`
	Designation  string `gorm:"size:50"`
	Role         string `gorm:"size:20"`
	Approver     bool   `gorm:"not null;default:false"`
	CreatedAt    int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt    int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations. Relationships and
	// cascade deletes are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}
