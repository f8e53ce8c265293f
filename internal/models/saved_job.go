package models

// SavedJob is a denormalized bookmark: it snapshots the listing instead of
// referencing the jobs table.
type SavedJob struct {
	ID             uint   `gorm:"column:saved_job_id;primaryKey;autoIncrement"`
	UserID         uint   `gorm:"not null;index"`
	JobTitle       string `gorm:"not null"`
	CompanyName    string `gorm:"not null"`
	JobLocation    *string
	SalaryRange    *string
	JobDescription *string
	SavedAt        string `gorm:"not null"`
}

func (SavedJob) TableName() string { return "saved_jobs" }

type JobApplication struct {
	ID              uint   `gorm:"column:application_id;primaryKey;autoIncrement"`
	UserID          uint   `gorm:"not null;index"`
	JobTitle        string `gorm:"not null"`
	CompanyName     string `gorm:"not null"`
	ApplicationDate string `gorm:"not null"`
	Status          string `gorm:"not null;default:pending"`
	Notes           *string
}

func (JobApplication) TableName() string { return "job_applications" }
