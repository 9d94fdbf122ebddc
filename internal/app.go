// internal/app.go
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jmoiron/sqlx"

	router "userbase/internal/api"
	"userbase/internal/api/handler"
	"userbase/internal/config"
	"userbase/internal/repository"
	"userbase/internal/repository/postgres"
	"userbase/internal/service"
	"userbase/internal/util"
	"userbase/pkg/db"
)

// Application holds all the initialized components of the application. The
// store handle is constructed here and passed down explicitly; no component
// reaches for ambient state.
type Application struct {
	Config *config.AppConfig
	Logger *slog.Logger
	DB     *sqlx.DB

	// Repositories
	UserRepository repository.UserRepository

	// Services
	UserService service.UserService

	// HTTP API
	HTTPHandler http.Handler
}

// NewApplication creates a new Application instance.
func NewApplication() *Application {
	return &Application{}
}

// Initialize initializes all application components.
func (app *Application) Initialize(ctx context.Context) error {
	// 1. Initialize Logger
	util.InitLogger()
	app.Logger = util.GetLogger()

	// 2. Load Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	app.Config = cfg
	app.Logger.Info("Application configuration loaded successfully.")

	// 3. Connect to Database
	database, err := db.NewPostgresDB(app.Config.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = database
	app.Logger.Info("Database connection established.")

	if err := db.EnsureSchema(ctx, app.DB); err != nil {
		return fmt.Errorf("failed to prepare database schema: %w", err)
	}

	// 4. Initialize Repositories
	app.UserRepository = postgres.NewUserRepository(app.DB)
	app.Logger.Info("Repositories initialized.")

	// 5. Initialize Services
	app.UserService = service.NewUserService(app.DB, app.UserRepository)
	app.Logger.Info("Services initialized.")

	// 6. Initialize HTTP Handlers and Router
	userHandler := handler.NewUserHandler(app.UserService, app.Logger)
	app.HTTPHandler = router.NewRouter(userHandler, app.Logger)
	app.Logger.Info("HTTP router and handlers initialized.")

	return nil
}

// Shutdown gracefully shuts down application resources.
func (app *Application) Shutdown(ctx context.Context) error {
	app.Logger.Info("Shutting down application...")
	if app.DB != nil {
		if err := app.DB.Close(); err != nil {
			app.Logger.Error("Failed to close database connection", "error", err)
			return fmt.Errorf("failed to close database connection: %w", err)
		}
		app.Logger.Info("Database connection closed.")
	}
	app.Logger.Info("Application shut down gracefully.")
	return nil
}
