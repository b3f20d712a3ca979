package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/projectdeck/project-management-api/internal/models"
	"github.com/projectdeck/project-management-api/internal/repository"
	"github.com/projectdeck/project-management-api/internal/security"
	"github.com/projectdeck/project-management-api/internal/services"
	"github.com/projectdeck/project-management-api/internal/token"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type apiTestEnv struct {
	router   *gin.Engine
	db       *gorm.DB
	userRepo repository.UserRepository
	tokens   *token.Service
}

func setupAPITestEnv(t *testing.T) apiTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Project{}))

	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	hasher := security.NewHasher()
	tokens := token.NewService("access-secret", "refresh-secret", 15*time.Minute, 7*24*time.Hour)

	authService := services.NewAuthService(userRepo, hasher, tokens)
	projectService := services.NewProjectService(projectRepo, userRepo)
	taskService := services.NewTaskService(projectRepo)

	r := gin.New()
	Register(
		r,
		tokens,
		NewAuthHandler(authService),
		NewUserHandler(authService),
		NewProjectHandler(projectService),
		NewTaskHandler(taskService),
	)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return apiTestEnv{
		router:   r,
		db:       db,
		userRepo: userRepo,
		tokens:   tokens,
	}
}

// do sends a JSON request through the router, optionally with a bearer token.
func (env apiTestEnv) do(t *testing.T, method, path, bearer string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

// register creates a user through the HTTP surface and returns the token pair.
func (env apiTestEnv) register(t *testing.T, email, password string) token.Pair {
	t.Helper()

	w := env.do(t, http.MethodPost, "/auth/local/register", "", map[string]string{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var pair token.Pair
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pair))
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)
	return pair
}

func (env apiTestEnv) userID(t *testing.T, email string) models.EntityID {
	t.Helper()
	user, err := env.userRepo.FindByEmail(email)
	require.NoError(t, err)
	return user.ID
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), target))
}
