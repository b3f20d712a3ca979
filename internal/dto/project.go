package dto

import (
	"time"

	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/services"
)

// ProjectDTO represents a project in API responses
type ProjectDTO struct {
	ID            models.EntityID     `json:"id"`
	Title         string              `json:"title"`
	Description   string              `json:"description"`
	OwnerID       models.EntityID     `json:"owner_id"`
	Collaborators models.EntityIDList `json:"collaborators"`
	Tasks         []TaskDTO           `json:"tasks"`
	CreatedAt     time.Time           `json:"created_at"`
	UpdatedAt     time.Time           `json:"updated_at"`
}

// ProjectMemberDTO represents a project member entry
type ProjectMemberDTO struct {
	ID    models.EntityID `json:"id"`
	Email string          `json:"email"`
}

// ToProjectDTO converts a project model to DTO
func ToProjectDTO(project models.Project) ProjectDTO {
	collaborators := project.Collaborators
	if collaborators == nil {
		collaborators = models.EntityIDList{}
	}

	return ProjectDTO{
		ID:            project.ID,
		Title:         project.Title,
		Description:   project.Description,
		OwnerID:       project.OwnerID,
		Collaborators: collaborators,
		Tasks:         ToTaskDTOs(project.Tasks),
		CreatedAt:     project.CreatedAt,
		UpdatedAt:     project.UpdatedAt,
	}
}

// ToProjectDTOs converts a list of project models to DTOs
func ToProjectDTOs(projects []models.Project) []ProjectDTO {
	dtos := make([]ProjectDTO, len(projects))
	for i, project := range projects {
		dtos[i] = ToProjectDTO(project)
	}
	return dtos
}

// ToProjectMemberDTOs converts member entries to DTOs
func ToProjectMemberDTOs(members []services.ProjectMember) []ProjectMemberDTO {
	dtos := make([]ProjectMemberDTO, len(members))
	for i, member := range members {
		dtos[i] = ProjectMemberDTO{ID: member.ID, Email: member.Email}
	}
	return dtos
}
