package handlers

import (
	"net/http"
	"testing"

	"github.com/projectdeck/project-management-api/internal/dto"
	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/stretchr/testify/require"
)

func createProjectForTest(t *testing.T, env apiTestEnv, accessToken, title string) dto.ProjectDTO {
	t.Helper()
	w := env.do(t, http.MethodPost, "/projects", accessToken, map[string]string{"title": title})
	require.Equal(t, http.StatusCreated, w.Code)
	var project dto.ProjectDTO
	decodeJSON(t, w, &project)
	return project
}

func TestTaskHandler_CreateAndList(t *testing.T) {
	env := setupAPITestEnv(t)
	owner := env.register(t, "owner@x.com", "supersecret")
	project := createProjectForTest(t, env, owner.AccessToken, "T")
	basePath := "/projects/" + project.ID.String() + "/tasks"

	w := env.do(t, http.MethodPost, basePath, owner.AccessToken, map[string]string{
		"title": "K",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var task dto.TaskDTO
	decodeJSON(t, w, &task)
	require.False(t, task.ID.IsZero())
	require.Equal(t, models.TaskStateTodo, task.State)

	w = env.do(t, http.MethodGet, basePath, owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var tasks []dto.TaskDTO
	decodeJSON(t, w, &tasks)
	require.Len(t, tasks, 1)

	t.Run("missing title", func(t *testing.T) {
		w := env.do(t, http.MethodPost, basePath, owner.AccessToken, map[string]string{
			"description": "no title",
		})
		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestTaskHandler_PartialUpdate(t *testing.T) {
	env := setupAPITestEnv(t)
	owner := env.register(t, "owner@x.com", "supersecret")
	project := createProjectForTest(t, env, owner.AccessToken, "T")
	basePath := "/projects/" + project.ID.String() + "/tasks"

	w := env.do(t, http.MethodPost, basePath, owner.AccessToken, map[string]interface{}{
		"title":               "K",
		"description":         "original description",
		"assigned_member_ids": []string{env.userID(t, "owner@x.com").String()},
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task dto.TaskDTO
	decodeJSON(t, w, &task)

	w = env.do(t, http.MethodPatch, basePath+"/"+task.ID.String(), owner.AccessToken, map[string]string{
		"title": "renamed",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, basePath+"/"+task.ID.String(), owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched dto.TaskDTO
	decodeJSON(t, w, &fetched)
	require.Equal(t, "renamed", fetched.Title)
	require.Equal(t, "original description", fetched.Description)
	require.Len(t, fetched.AssignedMemberIDs, 1)
}

func TestTaskHandler_DeleteThenFetch(t *testing.T) {
	env := setupAPITestEnv(t)
	owner := env.register(t, "owner@x.com", "supersecret")
	project := createProjectForTest(t, env, owner.AccessToken, "T")
	basePath := "/projects/" + project.ID.String() + "/tasks"

	w := env.do(t, http.MethodPost, basePath, owner.AccessToken, map[string]string{"title": "K"})
	require.Equal(t, http.StatusCreated, w.Code)
	var task dto.TaskDTO
	decodeJSON(t, w, &task)

	w = env.do(t, http.MethodDelete, basePath+"/"+task.ID.String(), owner.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.do(t, http.MethodGet, basePath+"/"+task.ID.String(), owner.AccessToken, nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	w = env.do(t, http.MethodGet, basePath, owner.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var tasks []dto.TaskDTO
	decodeJSON(t, w, &tasks)
	require.Len(t, tasks, 0)
}

// Full scenario: register A, create a project and a task, rename the
// task, share the project with B, verify B's access and C's lack of it.
func TestTaskHandler_CollaborationScenario(t *testing.T) {
	env := setupAPITestEnv(t)

	userA := env.register(t, "a@x.com", "supersecret")
	env.register(t, "b@x.com", "supersecret")
	userC := env.register(t, "c@x.com", "supersecret")

	login := env.do(t, http.MethodPost, "/auth/local/login", "", map[string]string{
		"email":    "a@x.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, login.Code)
	decodeJSON(t, login, &userA)

	project := createProjectForTest(t, env, userA.AccessToken, "T")
	projectPath := "/projects/" + project.ID.String()
	tasksPath := projectPath + "/tasks"

	w := env.do(t, http.MethodPost, tasksPath, userA.AccessToken, map[string]string{
		"title":       "K",
		"description": "keep me",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var task dto.TaskDTO
	decodeJSON(t, w, &task)
	taskPath := tasksPath + "/" + task.ID.String()

	w = env.do(t, http.MethodPatch, taskPath, userA.AccessToken, map[string]string{"title": "K renamed"})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, taskPath, userA.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fetched dto.TaskDTO
	decodeJSON(t, w, &fetched)
	require.Equal(t, "K renamed", fetched.Title)
	require.Equal(t, "keep me", fetched.Description)

	// A shares the project with B.
	w = env.do(t, http.MethodPatch, projectPath, userA.AccessToken, map[string]interface{}{
		"collaborators": []string{env.userID(t, "b@x.com").String()},
	})
	require.Equal(t, http.StatusOK, w.Code)

	loginB := env.do(t, http.MethodPost, "/auth/local/login", "", map[string]string{
		"email":    "b@x.com",
		"password": "supersecret",
	})
	require.Equal(t, http.StatusOK, loginB.Code)
	var userB struct {
		AccessToken string `json:"access_token"`
	}
	decodeJSON(t, loginB, &userB)

	w = env.do(t, http.MethodPatch, projectPath, userB.AccessToken, map[string]string{
		"description": "updated by B",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, taskPath, userB.AccessToken, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// C is neither owner nor collaborator.
	w = env.do(t, http.MethodPatch, projectPath, userC.AccessToken, map[string]string{"title": "nope"})
	require.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodPatch, taskPath, userC.AccessToken, map[string]string{"title": "nope"})
	require.Equal(t, http.StatusForbidden, w.Code)
	w = env.do(t, http.MethodDelete, taskPath, userC.AccessToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// B may delete tasks.
	w = env.do(t, http.MethodDelete, taskPath, userB.AccessToken, nil)
	require.Equal(t, http.StatusNoContent, w.Code)
}
