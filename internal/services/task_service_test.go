package services

import (
	"testing"

	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type taskServiceTestEnv struct {
	db          *gorm.DB
	projectRepo repository.ProjectRepository
	service     *TaskService

	ownerID        models.EntityID
	collaboratorID models.EntityID
	strangerID     models.EntityID
	projectID      models.EntityID
}

func setupTaskServiceTestEnv(t *testing.T) taskServiceTestEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}))

	projectRepo := repository.NewProjectRepository(db)
	service := NewTaskService(projectRepo)

	ownerID := models.NewEntityID()
	collaboratorID := models.NewEntityID()

	project := &models.Project{
		Title:         "T",
		OwnerID:       ownerID,
		Collaborators: models.EntityIDList{collaboratorID},
		Tasks:         models.TaskList{},
	}
	require.NoError(t, projectRepo.Create(project))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return taskServiceTestEnv{
		db:             db,
		projectRepo:    projectRepo,
		service:        service,
		ownerID:        ownerID,
		collaboratorID: collaboratorID,
		strangerID:     models.NewEntityID(),
		projectID:      project.ID,
	}
}

func TestTaskService_CreateAppendsTask(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	task, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{Title: "K"})
	require.NoError(t, err)
	require.False(t, task.ID.IsZero())
	require.Equal(t, models.TaskStateTodo, task.State)

	tasks, err := env.service.FindAll(env.ownerID, env.projectID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.True(t, tasks[0].ID.Equal(task.ID))
}

func TestTaskService_CreateRequiresTitle(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	_, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{Title: ""})
	require.ErrorIs(t, err, ErrTaskTitleRequired)
}

func TestTaskService_CreateAcceptsArbitraryAssignees(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	// Assigned member ids are stored as given; membership is not checked.
	nonMember := models.NewEntityID()
	task, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{
		Title:             "K",
		AssignedMemberIDs: models.EntityIDList{nonMember},
	})
	require.NoError(t, err)
	require.True(t, task.AssignedMemberIDs.Contains(nonMember))
}

func TestTaskService_FindOne(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	task, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{Title: "K"})
	require.NoError(t, err)

	found, err := env.service.FindOne(env.collaboratorID, env.projectID, task.ID)
	require.NoError(t, err)
	require.Equal(t, "K", found.Title)

	_, err = env.service.FindOne(env.ownerID, env.projectID, models.NewEntityID())
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_UpdateMergesFields(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	assignee := models.NewEntityID()
	task, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{
		Title:             "K",
		Description:       "original description",
		AssignedMemberIDs: models.EntityIDList{assignee},
	})
	require.NoError(t, err)

	newTitle := "renamed"
	updated, err := env.service.Update(env.ownerID, env.projectID, task.ID, UpdateTaskInput{Title: &newTitle})
	require.NoError(t, err)

	// Omitted fields keep their prior values; the id is stable.
	require.True(t, updated.ID.Equal(task.ID))
	require.Equal(t, "renamed", updated.Title)
	require.Equal(t, "original description", updated.Description)
	require.True(t, updated.AssignedMemberIDs.Contains(assignee))

	newState := models.TaskStateDone
	updated, err = env.service.Update(env.ownerID, env.projectID, task.ID, UpdateTaskInput{State: &newState})
	require.NoError(t, err)
	require.Equal(t, models.TaskStateDone, updated.State)
	require.Equal(t, "renamed", updated.Title)
}

func TestTaskService_UpdateMissingTask(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	newTitle := "renamed"
	_, err := env.service.Update(env.ownerID, env.projectID, models.NewEntityID(), UpdateTaskInput{Title: &newTitle})
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_Remove(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	first, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{Title: "first"})
	require.NoError(t, err)
	second, err := env.service.Create(env.ownerID, env.projectID, CreateTaskInput{Title: "second"})
	require.NoError(t, err)

	// Collaborators may delete tasks, unlike projects.
	require.NoError(t, env.service.Remove(env.collaboratorID, env.projectID, first.ID))

	_, err = env.service.FindOne(env.ownerID, env.projectID, first.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := env.service.FindAll(env.ownerID, env.projectID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.True(t, tasks[0].ID.Equal(second.ID))

	err = env.service.Remove(env.ownerID, env.projectID, first.ID)
	require.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_AuthorizationAppliesToEveryOperation(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	task, err := env.service.Create(env.collaboratorID, env.projectID, CreateTaskInput{Title: "K"})
	require.NoError(t, err)

	_, err = env.service.Create(env.strangerID, env.projectID, CreateTaskInput{Title: "nope"})
	require.ErrorIs(t, err, ErrCannotAccessProject)

	_, err = env.service.FindAll(env.strangerID, env.projectID)
	require.ErrorIs(t, err, ErrCannotAccessProject)

	_, err = env.service.FindOne(env.strangerID, env.projectID, task.ID)
	require.ErrorIs(t, err, ErrCannotAccessProject)

	newTitle := "nope"
	_, err = env.service.Update(env.strangerID, env.projectID, task.ID, UpdateTaskInput{Title: &newTitle})
	require.ErrorIs(t, err, ErrCannotAccessProject)

	err = env.service.Remove(env.strangerID, env.projectID, task.ID)
	require.ErrorIs(t, err, ErrCannotAccessProject)
}

func TestTaskService_MissingProject(t *testing.T) {
	env := setupTaskServiceTestEnv(t)

	_, err := env.service.FindAll(env.ownerID, models.NewEntityID())
	require.ErrorIs(t, err, ErrProjectNotFound)
}
