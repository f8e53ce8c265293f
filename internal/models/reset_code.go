package models

// PasswordResetCode rows are never updated except to flip IsUsed. Issuing
// a new code supersedes (marks used) every older unused code for the same
// email; a best-effort sweep deletes rows older than 24 hours.
type PasswordResetCode struct {
	ID        uint   `gorm:"column:code_id;primaryKey;autoIncrement"`
	UserID    uint   `gorm:"not null;index"`
	Email     string `gorm:"not null;index"`
	Code      string `gorm:"not null"`
	CreatedAt string `gorm:"not null"`
	ExpiresAt string `gorm:"not null"`
	IsUsed    bool   `gorm:"not null;default:false"`
}

func (PasswordResetCode) TableName() string { return "password_reset_codes" }
