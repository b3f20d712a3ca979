package repository

import (
	"github.com/projectdeck/project-management-api/internal/models"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *models.User) error

	// FindByID finds a user by ID
	FindByID(id models.EntityID) (*models.User, error)

	// FindByEmail finds a user by email
	FindByEmail(email string) (*models.User, error)

	// UpdateRefreshTokenHash replaces the stored refresh-token hash.
	// A nil hash logs the user out.
	UpdateRefreshTokenHash(id models.EntityID, hash *string) error
}

// TaskStore is the narrow surface the task service needs: load the
// parent project, mutate its embedded task list, save the whole record.
// A per-task collection with atomic field updates could replace this
// without touching the task service's authorization logic.
type TaskStore interface {
	// FindByID finds a project by ID
	FindByID(id models.EntityID) (*models.Project, error)

	// Save persists the whole project record
	Save(project *models.Project) error
}

// ProjectRepository defines the interface for project data access
type ProjectRepository interface {
	TaskStore

	// Create creates a new project
	Create(project *models.Project) error

	// FindAllForUser retrieves projects the user owns or collaborates on
	FindAllForUser(userID models.EntityID) ([]models.Project, error)

	// Delete removes a project
	Delete(id models.EntityID) error
}
