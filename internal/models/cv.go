package models

type CV struct {
	ID         uint   `gorm:"column:cv_id;primaryKey;autoIncrement"`
	UserID     uint   `gorm:"not null;index"`
	CVName     string `gorm:"column:cv_name;not null"`
	FilePath   string `gorm:"not null"`
	FileSize   *int64
	MimeType   *string
	IsPrimary  bool   `gorm:"not null;default:false"`
	UploadedAt string `gorm:"not null"`
}

func (CV) TableName() string { return "cvs" }
