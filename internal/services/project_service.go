package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/repository"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound      = errors.New("project not found")
	ErrProjectTitleRequired = errors.New("title is required")
	ErrCannotUpdateProject  = errors.New("invalid credentials: cannot update resource")
	ErrCannotDeleteProject  = errors.New("invalid credentials: cannot delete resource")
)

// ProjectService provides business logic for project operations.
type ProjectService struct {
	projectRepo repository.ProjectRepository
	userRepo    repository.UserRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository, userRepo repository.UserRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
		userRepo:    userRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Title       string
	Description string
}

// Create stores a new project owned by the given user. The title check
// repeats boundary validation because tests exercise the service directly.
func (s *ProjectService) Create(userID models.EntityID, input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrProjectTitleRequired
	}

	project := &models.Project{
		Title:         input.Title,
		Description:   input.Description,
		OwnerID:       userID,
		Collaborators: models.EntityIDList{},
		Tasks:         models.TaskList{},
	}

	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// FindAllForUser returns projects the user owns or collaborates on.
func (s *ProjectService) FindAllForUser(userID models.EntityID) ([]models.Project, error) {
	projects, err := s.projectRepo.FindAllForUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// FindOne returns a project by id. Read-by-id carries no role check;
// any authenticated caller who knows the id can read the project.
func (s *ProjectService) FindOne(projectID models.EntityID) (*models.Project, error) {
	return s.loadProject(projectID)
}

// ProjectMember is a member entry as exposed by GetMembers.
type ProjectMember struct {
	ID    models.EntityID
	Email string
}

// GetMembers returns the owner followed by collaborators in stored
// order, deduplicated.
func (s *ProjectService) GetMembers(projectID models.EntityID) ([]ProjectMember, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	memberIDs := make([]models.EntityID, 0, len(project.Collaborators)+1)
	memberIDs = append(memberIDs, project.OwnerID)
	for _, collaboratorID := range project.Collaborators {
		if !containsID(memberIDs, collaboratorID) {
			memberIDs = append(memberIDs, collaboratorID)
		}
	}

	members := make([]ProjectMember, 0, len(memberIDs))
	for _, memberID := range memberIDs {
		user, err := s.userRepo.FindByID(memberID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to load project member: %w", err)
		}
		members = append(members, ProjectMember{ID: user.ID, Email: user.Email})
	}

	return members, nil
}

// UpdateProjectInput represents a partial project update. Nil fields
// keep their stored values. There is deliberately no owner field.
type UpdateProjectInput struct {
	Title         *string
	Description   *string
	Collaborators *models.EntityIDList
}

// Update applies the supplied fields if the user is the owner or a
// collaborator. The stored owner survives regardless of request content.
func (s *ProjectService) Update(userID, projectID models.EntityID, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.loadProject(projectID)
	if err != nil {
		return nil, err
	}

	if ResolveProjectRole(userID, project) == RoleNone {
		return nil, ErrCannotUpdateProject
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrProjectTitleRequired
		}
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}
	if input.Collaborators != nil {
		project.Collaborators = *input.Collaborators
	}

	if err := s.projectRepo.Save(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// Remove deletes a project. Deletion is owner-only; collaborators may
// edit but not delete.
func (s *ProjectService) Remove(userID, projectID models.EntityID) error {
	project, err := s.loadProject(projectID)
	if err != nil {
		return err
	}

	if ResolveProjectRole(userID, project) != RoleOwner {
		return ErrCannotDeleteProject
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

func (s *ProjectService) loadProject(projectID models.EntityID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}
	return project, nil
}

func containsID(ids []models.EntityID, id models.EntityID) bool {
	for _, candidate := range ids {
		if candidate.Equal(id) {
			return true
		}
	}
	return false
}
