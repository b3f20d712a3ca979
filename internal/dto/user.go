package dto

import (
	"time"

	"github.com/projectdeck/project-management-api/internal/models"
)

// UserDTO represents a user in API responses. Hashes never leave the
// service boundary.
type UserDTO struct {
	ID        models.EntityID `json:"id"`
	Email     string          `json:"email"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToUserDTO converts a user model to DTO
func ToUserDTO(user models.User) UserDTO {
	return UserDTO{
		ID:        user.ID,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}
