package dto

import "workwise_backend/internal/models"

type UnionCreateRequest struct {
	RegisterNum     string `json:"registerNum" binding:"required" validate:"required"`
	SectorInfo      string `json:"sectorInfo" binding:"required" validate:"required"`
	MembershipSize  int    `json:"membershipSize"`
	IsActiveCouncil bool   `json:"isActiveCouncil"`
}

type UnionResponse struct {
	UnionID         uint   `json:"unionId"`
	RegisterNum     string `json:"registerNum"`
	SectorInfo      string `json:"sectorInfo"`
	MembershipSize  int    `json:"membershipSize"`
	IsActiveCouncil bool   `json:"isActiveCouncil"`
	CreatedAt       string `json:"createdAt"`
}

type UnionMemberCreateRequest struct {
	WorkerID      uint    `json:"workerId" binding:"required" validate:"required"`
	UnionID       uint    `json:"unionId" binding:"required" validate:"required"`
	MembershipNum *string `json:"membershipNum"`
	Status        *string `json:"status" validate:"omitempty,oneof=active suspended resigned"`
}

type UnionMemberResponse struct {
	MembershipID  uint   `json:"membershipId"`
	WorkerID      uint   `json:"workerId"`
	UnionID       uint   `json:"unionId"`
	MembershipNum string `json:"membershipNum"`
	Status        string `json:"status"`
	CreatedAt     string `json:"createdAt"`
}

func UnionFromModel(u *models.Union) *UnionResponse {
	return &UnionResponse{
		UnionID:         u.ID,
		RegisterNum:     u.RegisterNum,
		SectorInfo:      u.SectorInfo,
		MembershipSize:  u.MembershipSize,
		IsActiveCouncil: u.IsActiveCouncil,
		CreatedAt:       u.CreatedAt,
	}
}

func UnionsFromModels(unions []models.Union) []UnionResponse {
	out := make([]UnionResponse, 0, len(unions))
	for i := range unions {
		out = append(out, *UnionFromModel(&unions[i]))
	}
	return out
}

func UnionMemberFromModel(m *models.UnionMember) *UnionMemberResponse {
	return &UnionMemberResponse{
		MembershipID:  m.ID,
		WorkerID:      m.WorkerID,
		UnionID:       m.UnionID,
		MembershipNum: m.MembershipNum,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}

func UnionMembersFromModels(members []models.UnionMember) []UnionMemberResponse {
	out := make([]UnionMemberResponse, 0, len(members))
	for i := range members {
		out = append(out, *UnionMemberFromModel(&members[i]))
	}
	return out
}
