package models

// Timestamps across the schema are ISO-8601 UTC strings generated by the
// writing component, never by the database.

type User struct {
	ID           uint   `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `gorm:"uniqueIndex;not null"`
	Email        string `gorm:"uniqueIndex;not null"`
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null;default:user"`
	IsActive     bool   `gorm:"not null;default:true"`
	CreatedAt    string `gorm:"not null"`
	UpdatedAt    *string

	ProfileImage *string
	ProfileName  *string
	ProfileBio   *string
	PhoneNumber  *string
	Location     *string
	SideProjects *string
}

func (User) TableName() string { return "users" }

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)
