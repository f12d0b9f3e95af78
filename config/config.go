package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const VERSION = "1.0"

const (
	// TestDataDirName is the top-level directory rebuilt on every test-mode run
	TestDataDirName = "colabTestData"
	// DeploymentDataDirName is the top-level directory used by deployment-mode runs
	DeploymentDataDirName = "colabdata"
	// SQLiteFileName is the default database file placed under the data directory
	SQLiteFileName = "mscolab.db"
)

// DefaultStubCode is the flight track written into every scaffolded workspace
const DefaultStubCode = `<?xml version="1.0" encoding="utf-8"?>
<FlightTrack version="1.7.6">
  <ListOfWaypoints>
    <Waypoint flightlevel="250" lat="67.821" location="Kiruna" lon="20.336">
      <Comments></Comments>
    </Waypoint>
    <Waypoint flightlevel="250" lat="78.928" location="Ny-Alesund" lon="11.986">
      <Comments></Comments>
    </Waypoint>
  </ListOfWaypoints>
</FlightTrack>
`

type Config struct {
	Database    DatabaseConfig
	Paths       PathsConfig
	StubCode    string
	Environment string
	LogLevel    string
	Version     string
}

type DatabaseConfig struct {
	// URI is an SQLAlchemy style connection string, its scheme selects the backend.
	// Empty means a sqlite file under the active data directory.
	URI         string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	AdminDBName string
	SSLMode     string

	// SeedScriptPath points at the statement file replayed on the mysql test path
	SeedScriptPath string
}

type PathsConfig struct {
	BaseDir string
	MSSDir  string
	HomeDir string
}

// LoadOptions contains options for loading configuration
type LoadOptions struct {
	EnvFile string // Optional environment file to load (e.g., ".env", ".env.test")
}

// Load loads the configuration with default options
func Load() (*Config, error) {
	// Try to load .env file but don't require it
	return LoadWithOptions(LoadOptions{EnvFile: ".env"})
}

// LoadWithOptions loads the configuration with the specified options
func LoadWithOptions(opts LoadOptions) (*Config, error) {
	v := viper.New()

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 0)
	v.SetDefault("DB_USER", "mscolab")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "mscolab")
	v.SetDefault("DB_ADMIN_NAME", "template1")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("SQLALCHEMY_DB_URI", "")
	v.SetDefault("SEED_SCRIPT_PATH", "schema_seed.sql")
	v.SetDefault("MSS_DIR", filepath.Join("~", ".config", "msui"))
	v.SetDefault("STUB_CODE", DefaultStubCode)
	v.SetDefault("ENVIRONMENT", "production")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("VERSION", VERSION)

	currentPath, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("error getting current directory: %w", err)
	}
	v.SetDefault("BASE_DIR", currentPath)

	// Load environment file if specified
	if opts.EnvFile != "" {
		v.SetConfigName(opts.EnvFile)
		v.SetConfigType("env")
		v.AddConfigPath(currentPath)

		if err := v.ReadInConfig(); err != nil {
			// It's okay if config file doesn't exist
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	baseDir := v.GetString("BASE_DIR")
	if strings.TrimSpace(baseDir) == "" {
		return nil, fmt.Errorf("BASE_DIR is required")
	}
	baseDir, err = filepath.Abs(baseDir)
	if err != nil {
		return nil, fmt.Errorf("error resolving BASE_DIR: %w", err)
	}

	config := &Config{
		Database: DatabaseConfig{
			URI:            v.GetString("SQLALCHEMY_DB_URI"),
			Host:           v.GetString("DB_HOST"),
			Port:           v.GetInt("DB_PORT"),
			User:           v.GetString("DB_USER"),
			Password:       v.GetString("DB_PASSWORD"),
			DBName:         v.GetString("DB_NAME"),
			AdminDBName:    v.GetString("DB_ADMIN_NAME"),
			SSLMode:        v.GetString("DB_SSLMODE"),
			SeedScriptPath: v.GetString("SEED_SCRIPT_PATH"),
		},
		Paths: PathsConfig{
			BaseDir: baseDir,
			MSSDir:  v.GetString("MSS_DIR"),
			HomeDir: v.GetString("HOME_DIR"),
		},
		StubCode:    v.GetString("STUB_CODE"),
		Environment: v.GetString("ENVIRONMENT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Version:     v.GetString("VERSION"),
	}

	if config.Database.DBName == "" {
		return nil, fmt.Errorf("DB_NAME is required")
	}

	return config, nil
}

// TestDataDir returns the directory that test-mode provisioning wipes and rebuilds
func (c *Config) TestDataDir() string {
	return filepath.Join(c.Paths.BaseDir, TestDataDirName)
}

// DeploymentDataDir returns the directory that deployment-mode provisioning fills in
func (c *Config) DeploymentDataDir() string {
	return filepath.Join(c.Paths.BaseDir, DeploymentDataDirName)
}

// DatabaseURI returns the configured connection string, falling back to a
// sqlite file inside dataDir.
func (c *Config) DatabaseURI(dataDir string) string {
	if c.Database.URI != "" {
		return c.Database.URI
	}
	return "sqlite:///" + filepath.Join(dataDir, SQLiteFileName)
}

// MSSDirName is the folder created under the home directory in deployment mode
func (c *Config) MSSDirName() string {
	return filepath.Base(c.Paths.MSSDir)
}

// ResolveHomeDir returns HOME_DIR when set, otherwise the user's home directory
func (c *Config) ResolveHomeDir() (string, error) {
	if c.Paths.HomeDir != "" {
		return c.Paths.HomeDir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("error resolving home directory: %w", err)
	}
	return home, nil
}

// IsDevelopment returns true if the environment is set to development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}
