package models

type Union struct {
	ID              uint   `gorm:"column:union_id;primaryKey;autoIncrement"`
	RegisterNum     string `gorm:"uniqueIndex;not null"`
	SectorInfo      string `gorm:"not null"`
	MembershipSize  int    `gorm:"not null;default:0"`
	IsActiveCouncil bool   `gorm:"not null;default:false"`
	CreatedAt       string `gorm:"not null"`
}

func (Union) TableName() string { return "unions" }

// UnionMember rows are unique per (worker_id, union_id) pair.
type UnionMember struct {
	ID            uint   `gorm:"column:membership_id;primaryKey;autoIncrement"`
	WorkerID      uint   `gorm:"not null;uniqueIndex:idx_union_members_pair"`
	UnionID       uint   `gorm:"not null;uniqueIndex:idx_union_members_pair"`
	MembershipNum string `gorm:"not null"`
	Status        string `gorm:"not null;default:active"`
	CreatedAt     string `gorm:"not null"`
}

func (UnionMember) TableName() string { return "union_members" }
