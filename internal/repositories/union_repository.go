package repositories

import (
	"errors"
	"fmt"
	"time"

	"workwise_backend/internal/models"

	"gorm.io/gorm"
)

var (
	ErrUnionNotFound      = errors.New("union not found")
	ErrUnionAlreadyExists = errors.New("union register number already exists")
	ErrAlreadyMember      = errors.New("worker is already a member of this union")
)

type UnionRepository interface {
	List() ([]models.Union, error)
	FindByID(unionID uint) (*models.Union, error)
	Create(union *models.Union) error

	ListMembers(unionID *uint) ([]models.UnionMember, error)
	AddMember(member *models.UnionMember) error
}

type UnionRepositoryImpl struct {
	db *gorm.DB
}

func NewUnionRepository(db *gorm.DB) UnionRepository {
	return &UnionRepositoryImpl{db: db}
}

func (r *UnionRepositoryImpl) List() ([]models.Union, error) {
	var unions []models.Union
	err := r.db.Order("union_id").Find(&unions).Error
	return unions, err
}

func (r *UnionRepositoryImpl) FindByID(unionID uint) (*models.Union, error) {
	var union models.Union
	err := r.db.First(&union, "union_id = ?", unionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUnionNotFound
		}
		return nil, err
	}
	return &union, nil
}

// Create inserts the union. register_num uniqueness is enforced by the
// index; a violation maps to ErrUnionAlreadyExists.
func (r *UnionRepositoryImpl) Create(union *models.Union) error {
	if union.CreatedAt == "" {
		union.CreatedAt = nowUTC()
	}
	if err := r.db.Create(union).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUnionAlreadyExists
		}
		return err
	}
	return nil
}

func (r *UnionRepositoryImpl) ListMembers(unionID *uint) ([]models.UnionMember, error) {
	query := r.db.Order("membership_id")
	if unionID != nil {
		query = query.Where("union_id = ?", *unionID)
	}
	var members []models.UnionMember
	err := query.Find(&members).Error
	return members, err
}

// AddMember inserts the membership row and bumps the union's counter in
// one transaction; the counter must never drift from the actual member
// count, so neither write lands without the other. The (worker, union)
// pair is unique.
func (r *UnionRepositoryImpl) AddMember(member *models.UnionMember) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var union models.Union
		if err := tx.First(&union, "union_id = ?", member.UnionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUnionNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.UnionMember{}).
			Where("worker_id = ? AND union_id = ?", member.WorkerID, member.UnionID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyMember
		}

		if member.MembershipNum == "" {
			member.MembershipNum = GenerateMembershipNum(member.WorkerID, member.UnionID)
		}
		if member.Status == "" {
			member.Status = "active"
		}
		if member.CreatedAt == "" {
			member.CreatedAt = nowUTC()
		}

		if err := tx.Create(member).Error; err != nil {
			if isUniqueViolation(err) {
				return ErrAlreadyMember
			}
			return err
		}

		return tx.Model(&models.Union{}).
			Where("union_id = ?", member.UnionID).
			Update("membership_size", gorm.Expr("membership_size + 1")).Error
	})
}

// GenerateMembershipNum embeds both ids and the issue date. Not globally
// unique by construction, but collisions need the same pair on the same
// day, which the pair-uniqueness check already rules out.
func GenerateMembershipNum(workerID, unionID uint) string {
	return fmt.Sprintf("MEM-%d-%d-%s", workerID, unionID, time.Now().UTC().Format("20060102"))
}
