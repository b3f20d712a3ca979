package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/projectdeck/project-management-api/internal/dto"
	apierrors "github.com/projectdeck/project-management-api/internal/errors"
	"github.com/projectdeck/project-management-api/internal/middleware"
	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/services"
)

// TaskHandler coordinates task-related HTTP handlers.
type TaskHandler struct {
	taskService *services.TaskService
}

// NewTaskHandler creates a new TaskHandler.
func NewTaskHandler(taskService *services.TaskService) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
	}
}

// Create appends a new task to a project.
func (h *TaskHandler) Create(c *gin.Context) {
	type CreateTaskRequest struct {
		Title             string              `json:"title" binding:"required"`
		State             models.TaskState    `json:"state"`
		Description       string              `json:"description"`
		AssignedMemberIDs models.EntityIDList `json:"assigned_member_ids"`
	}

	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	task, err := h.taskService.Create(identity.ID, projectID, services.CreateTaskInput{
		Title:             req.Title,
		State:             req.State,
		Description:       req.Description,
		AssignedMemberIDs: req.AssignedMemberIDs,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTaskDTO(*task))
}

// List returns a project's task list.
func (h *TaskHandler) List(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	tasks, err := h.taskService.FindAll(identity.ID, projectID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTOs(tasks))
}

// Get returns a single task by id.
func (h *TaskHandler) Get(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	taskID := models.EntityID(c.Param("taskId"))
	task, err := h.taskService.FindOne(identity.ID, projectID, taskID)
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Update applies a partial update to a task.
func (h *TaskHandler) Update(c *gin.Context) {
	type UpdateTaskRequest struct {
		Title             *string              `json:"title"`
		State             *models.TaskState    `json:"state"`
		Description       *string              `json:"description"`
		AssignedMemberIDs *models.EntityIDList `json:"assigned_member_ids"`
	}

	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	taskID := models.EntityID(c.Param("taskId"))
	task, err := h.taskService.Update(identity.ID, projectID, taskID, services.UpdateTaskInput{
		Title:             req.Title,
		State:             req.State,
		Description:       req.Description,
		AssignedMemberIDs: req.AssignedMemberIDs,
	})
	if err != nil {
		respondTaskError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTaskDTO(*task))
}

// Delete removes a task from its project.
func (h *TaskHandler) Delete(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	taskID := models.EntityID(c.Param("taskId"))
	if err := h.taskService.Remove(identity.ID, projectID, taskID); err != nil {
		respondTaskError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondTaskError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound),
		errors.Is(err, services.ErrTaskNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrTaskTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCannotAccessProject):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
