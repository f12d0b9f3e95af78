package database

import (
	"database/sql"
	"slices"

	_ "github.com/lib/pq"   // PostgreSQL driver
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/Open-MSS/mscolab-provision/internal/domain"
)

// DriverAvailable reports whether the backend's driver is registered in this build
func DriverAvailable(kind domain.BackendKind) bool {
	name := kind.DriverName()
	return name != "" && slices.Contains(sql.Drivers(), name)
}
