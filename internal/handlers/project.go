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

// ProjectHandler coordinates project-related HTTP handlers.
type ProjectHandler struct {
	projectService *services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{
		projectService: projectService,
	}
}

// Create stores a new project owned by the caller.
func (h *ProjectHandler) Create(c *gin.Context) {
	type CreateProjectRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
	}

	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	project, err := h.projectService.Create(identity.ID, services.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToProjectDTO(*project))
}

// List returns projects the caller owns or collaborates on.
func (h *ProjectHandler) List(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projects, err := h.projectService.FindAllForUser(identity.ID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTOs(projects))
}

// Get returns a single project by id.
func (h *ProjectHandler) Get(c *gin.Context) {
	projectID := models.EntityID(c.Param("projectId"))

	project, err := h.projectService.FindOne(projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// GetMembers returns the project's owner and collaborators.
func (h *ProjectHandler) GetMembers(c *gin.Context) {
	projectID := models.EntityID(c.Param("projectId"))

	members, err := h.projectService.GetMembers(projectID)
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectMemberDTOs(members))
}

// Update applies a partial update to a project.
func (h *ProjectHandler) Update(c *gin.Context) {
	type UpdateProjectRequest struct {
		Title         *string              `json:"title"`
		Description   *string              `json:"description"`
		Collaborators *models.EntityIDList `json:"collaborators"`
	}

	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	var req UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	project, err := h.projectService.Update(identity.ID, projectID, services.UpdateProjectInput{
		Title:         req.Title,
		Description:   req.Description,
		Collaborators: req.Collaborators,
	})
	if err != nil {
		respondProjectError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProjectDTO(*project))
}

// Delete removes a project.
func (h *ProjectHandler) Delete(c *gin.Context) {
	identity, exists := middleware.GetIdentity(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	projectID := models.EntityID(c.Param("projectId"))
	if err := h.projectService.Remove(identity.ID, projectID); err != nil {
		respondProjectError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func respondProjectError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrProjectNotFound):
		apierrors.NotFound(c, err.Error())
	case errors.Is(err, services.ErrProjectTitleRequired):
		apierrors.BadRequest(c, err.Error())
	case errors.Is(err, services.ErrCannotUpdateProject),
		errors.Is(err, services.ErrCannotDeleteProject),
		errors.Is(err, services.ErrCannotAccessProject):
		apierrors.Forbidden(c, err.Error())
	default:
		apierrors.InternalError(c, "")
	}
}
