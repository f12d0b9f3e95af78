package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/Open-MSS/mscolab-provision/config"
	"github.com/Open-MSS/mscolab-provision/internal/database"
	"github.com/Open-MSS/mscolab-provision/internal/database/schema"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
	"github.com/Open-MSS/mscolab-provision/pkg/logger"
)

// SeedWriterFactory binds a domain.SeedWriter to an open database
type SeedWriterFactory func(db *sql.DB, kind domain.BackendKind) domain.SeedWriter

// ProvisionService prepares a collaboration server's database and file store,
// either as a throwaway test fixture or as an empty deployment.
type ProvisionService struct {
	config     *config.Config
	logger     logger.Logger
	connector  database.Connector
	seeder     *SeedService
	scaffolder *WorkspaceScaffolder
	newWriter  SeedWriterFactory
}

// NewProvisionService creates a new provisioning service
func NewProvisionService(
	cfg *config.Config,
	logger logger.Logger,
	connector database.Connector,
	seeder *SeedService,
	scaffolder *WorkspaceScaffolder,
	newWriter SeedWriterFactory,
) *ProvisionService {
	return &ProvisionService{
		config:     cfg,
		logger:     logger,
		connector:  connector,
		seeder:     seeder,
		scaffolder: scaffolder,
		newWriter:  newWriter,
	}
}

// resolveBackend picks the backend for dataDir and fails before anything is
// touched when it is unknown or its driver is missing from the build.
func (s *ProvisionService) resolveBackend(dataDir string) (domain.BackendKind, string, error) {
	uri := s.config.DatabaseURI(dataDir)
	kind, err := domain.ParseBackend(uri)
	if err != nil {
		return "", "", err
	}
	if !database.DriverAvailable(kind) {
		return "", "", &domain.ErrDriverUnavailable{Driver: kind.DriverName()}
	}
	return kind, uri, nil
}

// ProvisionTest rebuilds the test data directory and database from scratch
// and fills them with the reference dataset.
func (s *ProvisionService) ProvisionTest(ctx context.Context) error {
	dataDir := s.config.TestDataDir()
	kind, uri, err := s.resolveBackend(dataDir)
	if err != nil {
		return err
	}

	log := s.logger.WithFields(map[string]interface{}{
		"run_id":  uuid.New().String(),
		"mode":    "test",
		"backend": kind.String(),
	})
	log.WithField("data_dir", dataDir).Info("Provisioning test data")

	if err := os.RemoveAll(dataDir); err != nil {
		return fmt.Errorf("failed to remove test data directory: %w", err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create test data directory: %w", err)
	}
	if err := s.scaffolder.Scaffold(dataDir); err != nil {
		return err
	}

	switch kind {
	case domain.BackendSQLite:
		err = s.provisionSQLiteTest(ctx, log, uri)
	case domain.BackendMySQL:
		err = s.provisionMySQLTest(ctx, log)
	case domain.BackendPostgres:
		err = s.provisionPostgresTest(ctx, log)
	}
	if err != nil {
		return err
	}

	log.Info("Test data provisioned")
	return nil
}

func (s *ProvisionService) provisionSQLiteTest(ctx context.Context, log logger.Logger, uri string) error {
	db, err := s.openSystem(domain.BackendSQLite, uri)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.CleanDatabase(db, domain.BackendSQLite); err != nil {
		return err
	}
	if err := database.InitializeDatabase(db, domain.BackendSQLite); err != nil {
		return err
	}
	return s.seed(ctx, log, db, domain.BackendSQLite)
}

func (s *ProvisionService) provisionMySQLTest(ctx context.Context, log logger.Logger) error {
	kind := domain.BackendMySQL
	dbName := s.config.Database.DBName

	admin, err := s.openAdmin(kind)
	if err != nil {
		return err
	}
	exists, err := database.DatabaseExists(admin, kind, dbName)
	if err == nil && exists {
		err = &domain.ErrDatabaseExists{Name: dbName}
	}
	if err == nil {
		err = database.CreateDatabase(admin, kind, dbName)
	}
	admin.Close()
	if err != nil {
		return err
	}
	log.WithField("database", dbName).Info("Database created")

	db, err := s.openSystem(kind, "")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := s.runSeedScript(log, db); err != nil {
		return err
	}
	if err := database.InitializeDatabase(db, kind); err != nil {
		return err
	}
	return s.seed(ctx, log, db, kind)
}

func (s *ProvisionService) runSeedScript(log logger.Logger, db *sql.DB) error {
	path := s.config.Database.SeedScriptPath
	if path == "" {
		return nil
	}
	executed, err := database.ExecSeedScriptFile(db, path)
	if errors.Is(err, fs.ErrNotExist) {
		log.WithField("path", path).Warn("Seed script not found, skipping")
		return nil
	}
	if err != nil {
		return err
	}
	log.WithFields(map[string]interface{}{
		"path":       path,
		"statements": executed,
	}).Info("Seed script executed")
	return nil
}

func (s *ProvisionService) provisionPostgresTest(ctx context.Context, log logger.Logger) error {
	kind := domain.BackendPostgres
	dbName := s.config.Database.DBName

	admin, err := s.openAdmin(kind)
	if err != nil {
		return err
	}
	err = database.DropDatabase(admin, kind, dbName)
	if err == nil {
		err = database.CreateDatabase(admin, kind, dbName)
	}
	admin.Close()
	if err != nil {
		return err
	}
	log.WithField("database", dbName).Info("Database recreated")

	db, err := s.openSystem(kind, "")
	if err != nil {
		return err
	}
	err = database.InitializeDatabase(db, kind)
	db.Close()
	if err != nil {
		return err
	}

	// sequences are restarted and seeded over a new connection
	db, err = s.openSystem(kind, "")
	if err != nil {
		return err
	}
	defer db.Close()

	if err := database.ResetSequences(db, schema.SequenceRestarts); err != nil {
		return err
	}
	return s.seed(ctx, log, db, kind)
}

// ProvisionDeployment prepares an empty deployment: directories and schema
// only. Existing data is never removed.
func (s *ProvisionService) ProvisionDeployment(ctx context.Context) error {
	dataDir := s.config.DeploymentDataDir()
	kind, uri, err := s.resolveBackend(dataDir)
	if err != nil {
		return err
	}

	log := s.logger.WithFields(map[string]interface{}{
		"run_id":  uuid.New().String(),
		"mode":    "deployment",
		"backend": kind.String(),
	})
	log.WithField("data_dir", dataDir).Info("Provisioning deployment data")

	if err := s.ensureMSSDir(log); err != nil {
		return err
	}
	if err := s.scaffolder.EnsureLayout(dataDir); err != nil {
		return err
	}

	if kind == domain.BackendSQLite {
		err = s.installSQLiteDeployment(log, uri)
	} else {
		err = s.installServerDeployment(log, kind)
	}
	if err != nil {
		return err
	}

	log.Info("Deployment data provisioned")
	return nil
}

func (s *ProvisionService) ensureMSSDir(log logger.Logger) error {
	home, err := s.config.ResolveHomeDir()
	if err != nil {
		return err
	}
	dir := filepath.Join(home, s.config.MSSDirName())
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}
	log.WithField("path", dir).Debug("Client configuration directory ready")
	return nil
}

func (s *ProvisionService) installSQLiteDeployment(log logger.Logger, uri string) error {
	kind := domain.BackendSQLite
	db, err := s.openSystem(kind, uri)
	if err != nil {
		return err
	}
	defer db.Close()

	installed, err := database.SchemaInstalled(db, kind)
	if err != nil {
		return err
	}
	if installed {
		log.WithField("uri", uri).Warn("Schema already present, existing tables are kept")
	}
	return database.InitializeDatabase(db, kind)
}

func (s *ProvisionService) installServerDeployment(log logger.Logger, kind domain.BackendKind) error {
	dbName := s.config.Database.DBName

	admin, err := s.openAdmin(kind)
	if err != nil {
		return err
	}
	created, err := database.EnsureDatabaseExists(admin, kind, dbName)
	admin.Close()
	if err != nil {
		return err
	}
	if created {
		log.WithField("database", dbName).Info("Database created")
	}

	db, err := s.openSystem(kind, "")
	if err != nil {
		return err
	}
	defer db.Close()

	return database.InitializeDatabase(db, kind)
}

func (s *ProvisionService) openAdmin(kind domain.BackendKind) (*sql.DB, error) {
	dsn, err := database.GetAdminDSN(&s.config.Database, kind)
	if err != nil {
		return nil, err
	}
	db, err := s.connector.Open(kind, dsn)
	if err != nil {
		return nil, err
	}
	// CREATE and DROP DATABASE cannot run inside a transaction
	db.SetMaxOpenConns(1)
	return db, nil
}

func (s *ProvisionService) openSystem(kind domain.BackendKind, uri string) (*sql.DB, error) {
	dsn, err := database.GetSystemDSN(&s.config.Database, kind, uri)
	if err != nil {
		return nil, err
	}
	return s.connector.Open(kind, dsn)
}

func (s *ProvisionService) seed(ctx context.Context, log logger.Logger, db *sql.DB, kind domain.BackendKind) error {
	w := s.newWriter(db, kind)
	if err := s.seeder.Seed(ctx, w); err != nil {
		if r, ok := w.(interface{ Rollback() error }); ok {
			if rbErr := r.Rollback(); rbErr != nil {
				log.WithField("error", rbErr.Error()).Warn("Failed to roll back seed batch")
			}
		}
		return fmt.Errorf("failed to seed reference data: %w", err)
	}

	counts := make(map[string]interface{}, len(schema.TableNames))
	for _, table := range schema.TableNames {
		n, err := database.CountRows(db, kind, table)
		if err != nil {
			return err
		}
		counts[table] = n
	}
	log.WithFields(counts).Info("Reference data seeded")
	return nil
}
