package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/projectdeck/project-management-api/internal/config"
	"github.com/projectdeck/project-management-api/internal/database"
	"github.com/projectdeck/project-management-api/internal/handlers"
	"github.com/projectdeck/project-management-api/internal/repository"
	"github.com/projectdeck/project-management-api/internal/security"
	"github.com/projectdeck/project-management-api/internal/services"
	"github.com/projectdeck/project-management-api/internal/token"
)

var rootCmd = &cobra.Command{
	Use:           "project-api",
	Short:         "Project management API",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		gin.SetMode(cfg.GinMode)

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}
		if err := database.Migrate(db); err != nil {
			return err
		}

		userRepo := repository.NewUserRepository(db)
		projectRepo := repository.NewProjectRepository(db)

		hasher := security.NewHasher()
		tokens := token.NewService(
			cfg.AccessTokenSecret,
			cfg.RefreshTokenSecret,
			cfg.AccessTokenTTL,
			cfg.RefreshTokenTTL,
		)

		authService := services.NewAuthService(userRepo, hasher, tokens)
		projectService := services.NewProjectService(projectRepo, userRepo)
		taskService := services.NewTaskService(projectRepo)

		r := gin.Default()

		r.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		handlers.Register(
			r,
			tokens,
			handlers.NewAuthHandler(authService),
			handlers.NewUserHandler(authService),
			handlers.NewProjectHandler(projectService),
			handlers.NewTaskHandler(taskService),
		)

		srv := &http.Server{
			Addr:    ":" + cfg.Port,
			Handler: r,
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		go func() {
			log.Printf("HTTP server listening on :%s", cfg.Port)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Printf("server stopped: %v", err)
			}
		}()

		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}

		log.Println("HTTP server shut down gracefully")
		return nil
	},
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations and exit",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg)
		if err != nil {
			return err
		}

		if err := database.Migrate(db); err != nil {
			return err
		}

		log.Println("Database migrations completed")
		return nil
	},
}

func loadConfig() (*config.Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println(".env file not found, using environment variables")
	}
	return config.Load()
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}
