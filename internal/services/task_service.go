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
	ErrTaskNotFound      = errors.New("task not found")
	ErrTaskTitleRequired = errors.New("title is required")
)

// TaskService manipulates tasks embedded in a project record. Every
// operation loads and authorizes the parent project first, then saves
// the whole record back. Owner and collaborator are equally permitted
// for all task operations, deletion included.
type TaskService struct {
	store repository.TaskStore
}

// NewTaskService creates a new TaskService.
func NewTaskService(store repository.TaskStore) *TaskService {
	return &TaskService{store: store}
}

// CreateTaskInput represents input for creating a task.
type CreateTaskInput struct {
	Title             string
	State             models.TaskState
	Description       string
	AssignedMemberIDs models.EntityIDList
}

// Create appends a new task to the project's task list. Assigned member
// ids are stored as given, without a membership check.
func (s *TaskService) Create(userID, projectID models.EntityID, input CreateTaskInput) (*models.Task, error) {
	project, err := s.loadAuthorizedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrTaskTitleRequired
	}
	if input.State == "" {
		input.State = models.TaskStateTodo
	}

	task := models.Task{
		ID:                models.NewEntityID(),
		Title:             input.Title,
		State:             input.State,
		Description:       input.Description,
		AssignedMemberIDs: input.AssignedMemberIDs,
	}
	if task.AssignedMemberIDs == nil {
		task.AssignedMemberIDs = models.EntityIDList{}
	}

	project.Tasks = append(project.Tasks, task)
	if err := s.store.Save(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	return &task, nil
}

// FindAll returns the project's task list.
func (s *TaskService) FindAll(userID, projectID models.EntityID) (models.TaskList, error) {
	project, err := s.loadAuthorizedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	if project.Tasks == nil {
		return models.TaskList{}, nil
	}
	return project.Tasks, nil
}

// FindOne returns a task by id.
func (s *TaskService) FindOne(userID, projectID, taskID models.EntityID) (*models.Task, error) {
	project, err := s.loadAuthorizedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	index := project.Tasks.FindIndex(taskID)
	if index < 0 {
		return nil, ErrTaskNotFound
	}

	task := project.Tasks[index]
	return &task, nil
}

// UpdateTaskInput represents a partial task update. Nil fields keep
// their stored values.
type UpdateTaskInput struct {
	Title             *string
	State             *models.TaskState
	Description       *string
	AssignedMemberIDs *models.EntityIDList
}

// Update merges the supplied fields over the existing task and saves the
// whole project. The task id is stable across updates.
func (s *TaskService) Update(userID, projectID, taskID models.EntityID, input UpdateTaskInput) (*models.Task, error) {
	project, err := s.loadAuthorizedProject(userID, projectID)
	if err != nil {
		return nil, err
	}

	index := project.Tasks.FindIndex(taskID)
	if index < 0 {
		return nil, ErrTaskNotFound
	}

	task := project.Tasks[index]
	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrTaskTitleRequired
		}
		task.Title = *input.Title
	}
	if input.State != nil {
		task.State = *input.State
	}
	if input.Description != nil {
		task.Description = *input.Description
	}
	if input.AssignedMemberIDs != nil {
		task.AssignedMemberIDs = *input.AssignedMemberIDs
	}

	project.Tasks[index] = task
	if err := s.store.Save(project); err != nil {
		return nil, fmt.Errorf("failed to save project: %w", err)
	}

	return &task, nil
}

// Remove splices a task out of the project's task list.
func (s *TaskService) Remove(userID, projectID, taskID models.EntityID) error {
	project, err := s.loadAuthorizedProject(userID, projectID)
	if err != nil {
		return err
	}

	index := project.Tasks.FindIndex(taskID)
	if index < 0 {
		return ErrTaskNotFound
	}

	project.Tasks = append(project.Tasks[:index], project.Tasks[index+1:]...)
	if err := s.store.Save(project); err != nil {
		return fmt.Errorf("failed to save project: %w", err)
	}

	return nil
}

func (s *TaskService) loadAuthorizedProject(userID, projectID models.EntityID) (*models.Project, error) {
	project, err := s.store.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if ResolveProjectRole(userID, project) == RoleNone {
		return nil, ErrCannotAccessProject
	}

	return project, nil
}
