package dto

import (
	"github.com/projectdeck/project-management-api/internal/models"
)

// TaskDTO represents a task in API responses
type TaskDTO struct {
	ID                models.EntityID     `json:"id"`
	Title             string              `json:"title"`
	State             models.TaskState    `json:"state"`
	Description       string              `json:"description"`
	AssignedMemberIDs models.EntityIDList `json:"assigned_member_ids"`
}

// ToTaskDTO converts a task model to DTO
func ToTaskDTO(task models.Task) TaskDTO {
	assigned := task.AssignedMemberIDs
	if assigned == nil {
		assigned = models.EntityIDList{}
	}

	return TaskDTO{
		ID:                task.ID,
		Title:             task.Title,
		State:             task.State,
		Description:       task.Description,
		AssignedMemberIDs: assigned,
	}
}

// ToTaskDTOs converts a task list to DTOs
func ToTaskDTOs(tasks models.TaskList) []TaskDTO {
	dtos := make([]TaskDTO, len(tasks))
	for i, task := range tasks {
		dtos[i] = ToTaskDTO(task)
	}
	return dtos
}
