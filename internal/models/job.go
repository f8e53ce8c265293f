package models

type Business struct {
	ID           uint   `gorm:"column:business_id;primaryKey;autoIncrement"`
	BusinessName string `gorm:"not null"`
	Industry     *string
	Location     *string
	Website      *string
	Description  *string
	CreatedAt    string `gorm:"not null"`
}

func (Business) TableName() string { return "businesses" }

type Job struct {
	ID              uint   `gorm:"column:job_id;primaryKey;autoIncrement"`
	BusinessID      uint   `gorm:"not null;index"`
	JobTitle        string `gorm:"not null"`
	JobDescription  *string
	JobLocation     *string
	SalaryRange     *string
	EmploymentType  *string // full-time, part-time, contract, internship
	WorkArrangement *string // on-site, remote, hybrid
	IsActive        bool   `gorm:"not null;default:true"`
	DatePosted      string `gorm:"not null"`
}

func (Job) TableName() string { return "jobs" }

// JobListing is the read shape of the jobs↔businesses join used by the
// active listing and search queries.
type JobListing struct {
	ID              uint `gorm:"column:job_id"`
	BusinessID      uint
	JobTitle        string
	JobDescription  *string
	JobLocation     *string
	SalaryRange     *string
	EmploymentType  *string
	WorkArrangement *string
	DatePosted      string
	BusinessName    string
	Industry        *string
}
