package repository

import (
	"github.com/projectdeck/project-management-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// Create creates a new project
func (r *GormProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// FindByID finds a project by ID
func (r *GormProjectRepository) FindByID(id models.EntityID) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("id = ?", id.String()).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindAllForUser retrieves projects where the user is the owner or a
// listed collaborator. Collaborator ids are uuids stored inside a JSON
// column, so the quoted-id pattern match cannot false-positive.
func (r *GormProjectRepository) FindAllForUser(userID models.EntityID) ([]models.Project, error) {
	var projects []models.Project
	pattern := `%"` + userID.String() + `"%`
	if err := r.db.
		Where("owner_id = ? OR collaborators LIKE ?", userID.String(), pattern).
		Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// Save persists the whole project record. Task-list and collaborator
// mutations go through here; last write wins at the record level.
func (r *GormProjectRepository) Save(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete removes a project
func (r *GormProjectRepository) Delete(id models.EntityID) error {
	return r.db.Where("id = ?", id.String()).Delete(&models.Project{}).Error
}
