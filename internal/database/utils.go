package database

import (
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/lib/pq"

	"github.com/Open-MSS/mscolab-provision/config"
	"github.com/Open-MSS/mscolab-provision/internal/database/schema"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
)

const (
	defaultPostgresPort = 5432
	defaultMySQLPort    = 3306
	sqliteMemory        = ":memory:"
)

// Connector opens database handles for a backend
type Connector interface {
	Open(kind domain.BackendKind, dsn string) (*sql.DB, error)
}

// SQLConnector opens real connections through database/sql
type SQLConnector struct{}

// Open connects and pings the database, closing the handle if the ping fails
func (SQLConnector) Open(kind domain.BackendKind, dsn string) (*sql.DB, error) {
	if !DriverAvailable(kind) {
		return nil, &domain.ErrDriverUnavailable{Driver: kind.DriverName()}
	}

	db, err := sql.Open(kind.DriverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %w", kind, err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s database: %w", kind, err)
	}

	maxOpen, maxIdle, maxLifetime := GetConnectionPoolSettings(kind)
	db.SetMaxOpenConns(maxOpen)
	db.SetMaxIdleConns(maxIdle)
	db.SetConnMaxLifetime(maxLifetime)

	return db, nil
}

// GetConnectionPoolSettings returns pool settings for a provisioning run.
// Runs are sequential so pools stay tiny; sqlite must stay on a single
// connection so that in-memory databases are not split across connections.
func GetConnectionPoolSettings(kind domain.BackendKind) (maxOpen, maxIdle int, maxLifetime time.Duration) {
	if kind == domain.BackendSQLite {
		return 1, 1, 0
	}
	return 2, 1, 5 * time.Minute
}

func hostPort(cfg *config.DatabaseConfig, kind domain.BackendKind) string {
	port := cfg.Port
	if port == 0 {
		port = defaultPostgresPort
		if kind == domain.BackendMySQL {
			port = defaultMySQLPort
		}
	}
	return net.JoinHostPort(cfg.Host, strconv.Itoa(port))
}

// GetPostgresDSN returns the DSN for a named database on the configured server
func GetPostgresDSN(cfg *config.DatabaseConfig, dbName string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(cfg.User, cfg.Password),
		Host:     hostPort(cfg, domain.BackendPostgres),
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + url.QueryEscape(cfg.SSLMode),
	}
	return u.String()
}

// GetMySQLDSN returns the DSN for a named database; an empty name connects
// to the server without selecting a database.
func GetMySQLDSN(cfg *config.DatabaseConfig, dbName string) string {
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true",
		cfg.User,
		cfg.Password,
		hostPort(cfg, domain.BackendMySQL),
		dbName,
	)
}

// SQLitePath extracts the database file from an SQLAlchemy sqlite URI.
// "sqlite:///rel.db" is relative, "sqlite:////abs/path.db" absolute, and
// "sqlite://" an in-memory database.
func SQLitePath(uri string) (string, error) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(uri), "sqlite://")
	if !ok {
		return "", fmt.Errorf("not a sqlite uri: %q", uri)
	}
	rest, _, _ = strings.Cut(rest, "?")
	if rest == "" || rest == "/" || rest == "/"+sqliteMemory {
		return sqliteMemory, nil
	}
	return strings.TrimPrefix(rest, "/"), nil
}

// GetSQLiteDSN returns the modernc sqlite DSN for a database file
func GetSQLiteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// GetSystemDSN returns the DSN of the mscolab database itself
func GetSystemDSN(cfg *config.DatabaseConfig, kind domain.BackendKind, uri string) (string, error) {
	switch kind {
	case domain.BackendSQLite:
		path, err := SQLitePath(uri)
		if err != nil {
			return "", err
		}
		return GetSQLiteDSN(path), nil
	case domain.BackendPostgres:
		return GetPostgresDSN(cfg, cfg.DBName), nil
	case domain.BackendMySQL:
		return GetMySQLDSN(cfg, cfg.DBName), nil
	}
	return "", &domain.ErrUnsupportedBackend{Scheme: kind.String()}
}

// GetAdminDSN returns the DSN used for database-level statements: the admin
// catalog on postgres, no selected database on mysql.
func GetAdminDSN(cfg *config.DatabaseConfig, kind domain.BackendKind) (string, error) {
	switch kind {
	case domain.BackendPostgres:
		return GetPostgresDSN(cfg, cfg.AdminDBName), nil
	case domain.BackendMySQL:
		return GetMySQLDSN(cfg, ""), nil
	}
	return "", fmt.Errorf("backend %s has no admin connection", kind)
}

// QuoteIdentifier quotes a database or sequence name for the backend
func QuoteIdentifier(kind domain.BackendKind, name string) string {
	if kind == domain.BackendMySQL {
		return "`" + strings.ReplaceAll(name, "`", "``") + "`"
	}
	return pq.QuoteIdentifier(name)
}

// DatabaseExists checks the server catalog for a database
func DatabaseExists(admin *sql.DB, kind domain.BackendKind, dbName string) (bool, error) {
	var query string
	switch kind {
	case domain.BackendPostgres:
		query = "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)"
	case domain.BackendMySQL:
		query = "SELECT EXISTS(SELECT 1 FROM information_schema.SCHEMATA WHERE SCHEMA_NAME = ?)"
	default:
		return false, fmt.Errorf("backend %s has no database catalog", kind)
	}

	var exists bool
	if err := admin.QueryRow(query, dbName).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check if database exists: %w", err)
	}
	return exists, nil
}

// CreateDatabase creates a database on the server
func CreateDatabase(admin *sql.DB, kind domain.BackendKind, dbName string) error {
	if _, err := admin.Exec("CREATE DATABASE " + QuoteIdentifier(kind, dbName)); err != nil {
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}
	return nil
}

// DropDatabase drops a database if it exists
func DropDatabase(admin *sql.DB, kind domain.BackendKind, dbName string) error {
	if _, err := admin.Exec("DROP DATABASE IF EXISTS " + QuoteIdentifier(kind, dbName)); err != nil {
		return fmt.Errorf("failed to drop database %s: %w", dbName, err)
	}
	return nil
}

// EnsureDatabaseExists creates the database if it doesn't exist and reports
// whether it had to.
func EnsureDatabaseExists(admin *sql.DB, kind domain.BackendKind, dbName string) (bool, error) {
	exists, err := DatabaseExists(admin, kind, dbName)
	if err != nil {
		return false, err
	}
	if exists {
		return false, nil
	}
	if err := CreateDatabase(admin, kind, dbName); err != nil {
		return false, err
	}
	return true, nil
}

// ResetSequences restarts postgres id sequences. Each statement runs on its
// own outside any transaction.
func ResetSequences(db *sql.DB, restarts []schema.SequenceRestart) error {
	for _, r := range restarts {
		query := fmt.Sprintf("ALTER SEQUENCE %s RESTART WITH %d",
			QuoteIdentifier(domain.BackendPostgres, r.Sequence), r.RestartWith)
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to restart sequence %s: %w", r.Sequence, err)
		}
	}
	return nil
}
