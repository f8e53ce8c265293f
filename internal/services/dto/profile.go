package dto

import "workwise_backend/internal/models"

type UserProfileResponse struct {
	UserID       uint    `json:"userId"`
	Username     string  `json:"username"`
	Email        string  `json:"email"`
	Role         string  `json:"role"`
	ProfileImage *string `json:"profileImage"`
	ProfileName  *string `json:"profileName"`
	ProfileBio   *string `json:"profileBio"`
	PhoneNumber  *string `json:"phoneNumber"`
	Location     *string `json:"location"`
	SideProjects *string `json:"sideProjects"`
	CreatedAt    string  `json:"createdAt"`
	UpdatedAt    *string `json:"updatedAt"`
}

// UserProfilePatch carries only the fields the caller wants to change.
// Nil means "leave untouched"; a pointer to the empty string clears the
// column.
type UserProfilePatch struct {
	ProfileName  *string `json:"profileName"`
	ProfileBio   *string `json:"profileBio"`
	PhoneNumber  *string `json:"phoneNumber"`
	Location     *string `json:"location"`
	SideProjects *string `json:"sideProjects"`
}

type ProfileImageResponse struct {
	UserID       uint   `json:"userId"`
	ProfileImage string `json:"profileImage"`
	Message      string `json:"message"`
}

type UserStatsResponse struct {
	ApplicationsCount int64 `json:"applicationsCount"`
	SavedJobsCount    int64 `json:"savedJobsCount"`
}

func UserProfileFromModel(u *models.User) *UserProfileResponse {
	return &UserProfileResponse{
		UserID:       u.ID,
		Username:     u.Username,
		Email:        u.Email,
		Role:         u.Role,
		ProfileImage: u.ProfileImage,
		ProfileName:  u.ProfileName,
		ProfileBio:   u.ProfileBio,
		PhoneNumber:  u.PhoneNumber,
		Location:     u.Location,
		SideProjects: u.SideProjects,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}
