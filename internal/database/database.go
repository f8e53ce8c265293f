package database

import (
	"errors"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"workwise_backend/internal/auth"
	"workwise_backend/internal/config"
	"workwise_backend/internal/logger"
	"workwise_backend/internal/models"
)

// Connect opens the sqlite database file and runs migrations. The busy
// timeout keeps concurrent writers from failing immediately on lock
// contention.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := cfg.Database.Path + "?_busy_timeout=5000&_foreign_keys=on"

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	// sqlite allows one writer at a time; a single connection avoids
	// SQLITE_BUSY inside multi-statement transactions.
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(1)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the schema for every model.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.CV{},
		&models.Qualification{},
		&models.SavedJob{},
		&models.JobApplication{},
		&models.Business{},
		&models.Job{},
		&models.Union{},
		&models.UnionMember{},
		&models.PasswordResetCode{},
	)
}

// SeedFirstAdmin provisions the bootstrap admin account when the config
// carries credentials and no user with that email exists yet.
func SeedFirstAdmin(db *gorm.DB, cfg *config.Config) error {
	if cfg.Admin.Email == "" || cfg.Admin.Password == "" {
		logger.Warn("admin credentials not configured, skipping admin seeding")
		return nil
	}

	var existing models.User
	err := db.Where("email = ?", cfg.Admin.Email).First(&existing).Error
	if err == nil {
		logger.Info("admin user already exists", "email", cfg.Admin.Email)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := auth.HashPassword(cfg.Admin.Password)
	if err != nil {
		return err
	}

	username := cfg.Admin.Username
	if username == "" {
		username = "admin"
	}

	admin := &models.User{
		Username:     username,
		Email:        cfg.Admin.Email,
		PasswordHash: hash,
		Role:         models.RoleAdmin,
		IsActive:     true,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	logger.Info("seeded first admin user", "email", cfg.Admin.Email)
	return nil
}
