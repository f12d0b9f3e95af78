package app

import (
	"context"
	"fmt"

	"github.com/Open-MSS/mscolab-provision/config"
	"github.com/Open-MSS/mscolab-provision/internal/database"
	"github.com/Open-MSS/mscolab-provision/internal/repository"
	"github.com/Open-MSS/mscolab-provision/internal/service"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
)

// AppInterface defines the interface for the App
type AppInterface interface {
	Initialize() error

	// RunTest provisions the throwaway test fixture
	RunTest(ctx context.Context) error
	// RunInit provisions an empty deployment
	RunInit(ctx context.Context) error

	GetConfig() *config.Config
	GetLogger() logger.Logger
}

// App encapsulates the provisioning dependencies and configuration
type App struct {
	config    *config.Config
	logger    logger.Logger
	connector database.Connector
	newWriter service.SeedWriterFactory

	// Services
	seedService      *service.SeedService
	scaffolder       *service.WorkspaceScaffolder
	provisionService *service.ProvisionService
}

// AppOption defines a functional option for configuring the App
type AppOption func(*App)

// WithLogger sets a custom logger
func WithLogger(logger logger.Logger) AppOption {
	return func(a *App) {
		a.logger = logger
	}
}

// WithConnector replaces the database connector, mostly for tests
func WithConnector(connector database.Connector) AppOption {
	return func(a *App) {
		a.connector = connector
	}
}

// WithSeedWriterFactory replaces how seed writers are bound to a database
func WithSeedWriterFactory(factory service.SeedWriterFactory) AppOption {
	return func(a *App) {
		a.newWriter = factory
	}
}

// NewApp creates a new application instance
func NewApp(cfg *config.Config, opts ...AppOption) AppInterface {
	app := &App{
		config:    cfg,
		logger:    logger.NewLoggerWithLevel(cfg.LogLevel),
		connector: database.SQLConnector{},
		newWriter: repository.NewSeedWriter,
	}

	for _, opt := range opts {
		opt(app)
	}

	return app
}

// InitServices wires the seeder, the workspace scaffolder and the orchestrator
func (a *App) InitServices() error {
	a.seedService = service.NewSeedService(a.logger)
	a.scaffolder = service.NewWorkspaceScaffolder(
		a.config.StubCode,
		a.logger,
		service.WorkspaceNames(a.seedService.Dataset()),
	)
	a.provisionService = service.NewProvisionService(
		a.config,
		a.logger,
		a.connector,
		a.seedService,
		a.scaffolder,
		a.newWriter,
	)
	return nil
}

// Initialize sets up all application components
func (a *App) Initialize() error {
	if a.config == nil {
		return fmt.Errorf("configuration is required")
	}

	a.logger.WithFields(map[string]interface{}{
		"version":  a.config.Version,
		"base_dir": a.config.Paths.BaseDir,
	}).Debug("Initializing provisioning")

	if err := a.InitServices(); err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return nil
}

func (a *App) ensureInitialized() error {
	if a.provisionService != nil {
		return nil
	}
	return a.Initialize()
}

// RunTest rebuilds the test data directory and database with the reference dataset
func (a *App) RunTest(ctx context.Context) error {
	if err := a.ensureInitialized(); err != nil {
		return err
	}
	return a.provisionService.ProvisionTest(ctx)
}

// RunInit creates the deployment directories and an empty schema
func (a *App) RunInit(ctx context.Context) error {
	if err := a.ensureInitialized(); err != nil {
		return err
	}
	return a.provisionService.ProvisionDeployment(ctx)
}

// GetConfig returns the app's configuration
func (a *App) GetConfig() *config.Config {
	return a.config
}

// GetLogger returns the app's logger
func (a *App) GetLogger() logger.Logger {
	return a.logger
}
