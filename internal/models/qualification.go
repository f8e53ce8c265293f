package models

type Qualification struct {
	ID                uint   `gorm:"column:qualification_id;primaryKey;autoIncrement"`
	UserID            uint   `gorm:"not null;index"`
	QualificationType string `gorm:"not null"`
	Institution       string `gorm:"not null"`
	FieldOfStudy      *string
	QualificationName string `gorm:"not null"`
	StartDate         *string
	EndDate           *string
	IsCurrent         bool `gorm:"not null;default:false"`
	GradeOrGpa        *string
	Description       *string
	CreatedAt         string `gorm:"not null"`
}

func (Qualification) TableName() string { return "qualifications" }
