package services

import (
	"errors"

	"github.com/projectdeck/project-management-api/internal/models"
)

// ErrCannotAccessProject is returned when a user is neither the owner
// nor a collaborator of the project they are trying to touch.
var ErrCannotAccessProject = errors.New("invalid credentials: cannot access resource")

// ProjectRole classifies a user's standing against a project.
type ProjectRole int

const (
	RoleNone ProjectRole = iota
	RoleCollaborator
	RoleOwner
)

// ResolveProjectRole decides owner/collaborator/none for a user against
// a project. Collaborator lists are mutable, so callers evaluate this on
// the freshly loaded record for every request, never a cached one.
func ResolveProjectRole(userID models.EntityID, project *models.Project) ProjectRole {
	if project.OwnerID.Equal(userID) {
		return RoleOwner
	}
	if project.Collaborators.Contains(userID) {
		return RoleCollaborator
	}
	return RoleNone
}
