package testutil

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/Open-MSS/mscolab-provision/internal/database"
	"github.com/Open-MSS/mscolab-provision/internal/database/schema"
	"github.com/Open-MSS/mscolab-provision/internal/domain"
)

// SetupMockDB creates a mock database connection for testing
func SetupMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db, mock
}

// SetupSQLiteDB opens a file-backed sqlite database under t.TempDir with the
// mscolab tables installed
func SetupSQLiteDB(t *testing.T) (*sql.DB, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "mscolab.db")
	db, err := database.SQLConnector{}.Open(domain.BackendSQLite, database.GetSQLiteDSN(path))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, database.InitializeDatabase(db, domain.BackendSQLite))
	return db, path
}

// CountTables returns the row count of every mscolab table
func CountTables(t *testing.T, db *sql.DB, kind domain.BackendKind) map[string]int {
	t.Helper()

	counts := map[string]int{}
	for _, table := range schema.TableNames {
		n, err := database.CountRows(db, kind, table)
		require.NoError(t, err)
		counts[table] = n
	}
	return counts
}
