package repositories

import (
	"errors"

	"workwise_backend/internal/models"
	"workwise_backend/internal/services/dto"

	"gorm.io/gorm"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

type UserRepository interface {
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	FindByUsernameOrEmail(usernameOrEmail string) (*models.User, error)
	ExistsByUsernameOrEmail(username, email string) (bool, error)
	EmailExists(email string) (bool, error)
	Create(user *models.User) error
	UpdateProfile(userID uint, patch *dto.UserProfilePatch) error
	SetProfileImage(userID uint, path string) error
	UpdatePassword(userID uint, newHash string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByUsernameOrEmail(usernameOrEmail string) (*models.User, error) {
	var user models.User
	err := r.db.Where("username = ? OR email = ?", usernameOrEmail, usernameOrEmail).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) ExistsByUsernameOrEmail(username, email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	return count > 0, err
}

func (r *UserRepositoryImpl) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// Create inserts the account. Username and email uniqueness is enforced
// by the indexes; a violation maps to ErrUserAlreadyExists, so a racing
// insert surfaces as a conflict rather than a store failure.
func (r *UserRepositoryImpl) Create(user *models.User) error {
	if user.CreatedAt == "" {
		user.CreatedAt = nowUTC()
	}
	if err := r.db.Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return ErrUserAlreadyExists
		}
		return err
	}
	return nil
}

// UpdateProfile builds the column list from whichever patch fields are
// present. createdAt is immutable; updatedAt is stamped on any mutation.
func (r *UserRepositoryImpl) UpdateProfile(userID uint, patch *dto.UserProfilePatch) error {
	updates := userProfileColumns(patch)
	if len(updates) == 0 {
		return ErrNoFieldsToUpdate
	}
	updates["updated_at"] = nowUTC()

	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) SetProfileImage(userID uint, path string) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"profile_image": path,
		"updated_at":    nowUTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

func (r *UserRepositoryImpl) UpdatePassword(userID uint, newHash string) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).Updates(map[string]interface{}{
		"password_hash": newHash,
		"updated_at":    nowUTC(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// userProfileColumns is the wire-field → storage-column walk for the
// profile patch. New profile fields are added here and nowhere else.
func userProfileColumns(patch *dto.UserProfilePatch) map[string]interface{} {
	updates := make(map[string]interface{})
	if patch.ProfileName != nil {
		updates["profile_name"] = *patch.ProfileName
	}
	if patch.ProfileBio != nil {
		updates["profile_bio"] = *patch.ProfileBio
	}
	if patch.PhoneNumber != nil {
		updates["phone_number"] = *patch.PhoneNumber
	}
	if patch.Location != nil {
		updates["location"] = *patch.Location
	}
	if patch.SideProjects != nil {
		updates["side_projects"] = *patch.SideProjects
	}
	return updates
}
