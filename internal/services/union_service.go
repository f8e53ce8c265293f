package services

import (
	"workwise_backend/internal/models"
	"workwise_backend/internal/repositories"
	"workwise_backend/internal/services/dto"
	"workwise_backend/pkg/apperrors"
)

type UnionService interface {
	List() ([]dto.UnionResponse, error)
	Create(req *dto.UnionCreateRequest) (*dto.UnionResponse, error)

	ListMembers(unionID *uint) ([]dto.UnionMemberResponse, error)
	AddMember(req *dto.UnionMemberCreateRequest) (*dto.UnionMemberResponse, error)
}

type UnionServiceImpl struct {
	unionRepo repositories.UnionRepository
	userRepo  repositories.UserRepository
}

func NewUnionService(unionRepo repositories.UnionRepository, userRepo repositories.UserRepository) UnionService {
	return &UnionServiceImpl{unionRepo: unionRepo, userRepo: userRepo}
}

func (s *UnionServiceImpl) List() ([]dto.UnionResponse, error) {
	unions, err := s.unionRepo.List()
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.UnionsFromModels(unions), nil
}

func (s *UnionServiceImpl) Create(req *dto.UnionCreateRequest) (*dto.UnionResponse, error) {
	union := &models.Union{
		RegisterNum:     req.RegisterNum,
		SectorInfo:      req.SectorInfo,
		MembershipSize:  req.MembershipSize,
		IsActiveCouncil: req.IsActiveCouncil,
	}

	if err := s.unionRepo.Create(union); err != nil {
		if apperrors.Is(err, repositories.ErrUnionAlreadyExists) {
			return nil, apperrors.ErrConflict(err, "unions", "Register number is already taken")
		}
		return nil, apperrors.StoreError(err)
	}
	return dto.UnionFromModel(union), nil
}

func (s *UnionServiceImpl) ListMembers(unionID *uint) ([]dto.UnionMemberResponse, error) {
	members, err := s.unionRepo.ListMembers(unionID)
	if err != nil {
		return nil, apperrors.StoreError(err)
	}
	return dto.UnionMembersFromModels(members), nil
}

// AddMember enrolls a worker. The worker must be a real account and the
// pair (worker, union) must not already exist; the repository bumps the
// union's membership counter in the same transaction as the insert.
func (s *UnionServiceImpl) AddMember(req *dto.UnionMemberCreateRequest) (*dto.UnionMemberResponse, error) {
	if _, err := s.userRepo.FindByID(req.WorkerID); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.StoreError(err)
	}

	member := &models.UnionMember{
		WorkerID: req.WorkerID,
		UnionID:  req.UnionID,
	}
	if req.MembershipNum != nil {
		member.MembershipNum = *req.MembershipNum
	}
	if req.Status != nil {
		member.Status = *req.Status
	}

	if err := s.unionRepo.AddMember(member); err != nil {
		switch {
		case apperrors.Is(err, repositories.ErrUnionNotFound):
			return nil, apperrors.ErrNotFound(err)
		case apperrors.Is(err, repositories.ErrAlreadyMember):
			return nil, apperrors.ErrConflict(err, "unions", "Worker is already a member of this union")
		default:
			return nil, apperrors.StoreError(err)
		}
	}
	return dto.UnionMemberFromModel(member), nil
}
