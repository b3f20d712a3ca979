package repository

import (
	"github.com/projectdeck/project-management-api/internal/models"
	"gorm.io/gorm"
)

// GormUserRepository is a GORM implementation of UserRepository
type GormUserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &GormUserRepository{db: db}
}

// Create creates a new user
func (r *GormUserRepository) Create(user *models.User) error {
	return r.db.Create(user).Error
}

// FindByID finds a user by ID
func (r *GormUserRepository) FindByID(id models.EntityID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id.String()).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail finds a user by email
func (r *GormUserRepository) FindByEmail(email string) (*models.User, error) {
	var user models.User
	if err := r.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// UpdateRefreshTokenHash replaces the stored refresh-token hash.
func (r *GormUserRepository) UpdateRefreshTokenHash(id models.EntityID, hash *string) error {
	return r.db.Model(&models.User{}).
		Where("id = ?", id.String()).
		Update("refresh_token_hash", hash).Error
}
