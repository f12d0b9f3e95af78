// Package schema defines the mscolab tables for each supported backend.
//
// The shape follows the application's models: users, projects, and the
// permissions join table between them. Every statement is safe to re-run.
package schema

import "github.com/Open-MSS/mscolab-provision/internal/domain"

// TableNames lists the tables in creation order; permissions references the
// other two and must be dropped first.
var TableNames = []string{
	"users",
	"projects",
	"permissions",
}

var sqliteTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username VARCHAR(255),
		emailid VARCHAR(255) UNIQUE,
		password VARCHAR(255),
		registered_on TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		path VARCHAR(255) UNIQUE,
		description VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		u_id INTEGER REFERENCES users(id),
		p_id INTEGER REFERENCES projects(id),
		access_level VARCHAR(255)
	)`,
}

var postgresTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		username VARCHAR(255),
		emailid VARCHAR(255) UNIQUE,
		password VARCHAR(255),
		registered_on TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		path VARCHAR(255) UNIQUE,
		description VARCHAR(255)
	)`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id SERIAL PRIMARY KEY,
		u_id INTEGER REFERENCES users(id),
		p_id INTEGER REFERENCES projects(id),
		access_level VARCHAR(255)
	)`,
}

var mysqlTables = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		username VARCHAR(255),
		emailid VARCHAR(255) UNIQUE,
		password VARCHAR(255),
		registered_on TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS projects (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		path VARCHAR(255) UNIQUE,
		description VARCHAR(255)
	) ENGINE=InnoDB`,
	`CREATE TABLE IF NOT EXISTS permissions (
		id INT NOT NULL AUTO_INCREMENT PRIMARY KEY,
		u_id INT,
		p_id INT,
		access_level VARCHAR(255),
		FOREIGN KEY (u_id) REFERENCES users(id),
		FOREIGN KEY (p_id) REFERENCES projects(id)
	) ENGINE=InnoDB`,
}

// TableDefinitions returns the CREATE TABLE statements for the backend, in
// the order of TableNames. Unknown backends get nil.
func TableDefinitions(kind domain.BackendKind) []string {
	switch kind {
	case domain.BackendSQLite:
		return sqliteTables
	case domain.BackendPostgres:
		return postgresTables
	case domain.BackendMySQL:
		return mysqlTables
	}
	return nil
}

// SequenceRestart is an id sequence and the value it restarts with
type SequenceRestart struct {
	Sequence    string
	RestartWith int64
}

// SequenceRestarts are applied to postgres after a test-mode reseed. The
// values match the long-standing demo data setup, not max(id)+1 of the seed
// rows: users_id_seq restarts below the seeded account ids 8-11.
var SequenceRestarts = []SequenceRestart{
	{Sequence: "users_id_seq", RestartWith: 4},
	{Sequence: "projects_id_seq", RestartWith: 4},
	{Sequence: "permissions_id_seq", RestartWith: 11},
}
